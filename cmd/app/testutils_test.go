package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/portfolio/internal/authservice"
	"github.com/sushihentaime/portfolio/internal/blogservice"
	"github.com/sushihentaime/portfolio/internal/common"
	"github.com/sushihentaime/portfolio/internal/contactservice"
	"github.com/sushihentaime/portfolio/internal/mediaservice"
	"github.com/sushihentaime/portfolio/internal/profileservice"
	"github.com/sushihentaime/portfolio/internal/projectservice"
	"github.com/sushihentaime/portfolio/internal/resumeservice"
)

const (
	testAdminEmail    = "admin@portfolio.com"
	testAdminPassword = "admin123"
)

type MockMessageProducer struct {
	mock.Mock
}

func (m *MockMessageProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	args := m.Called(msg, key, exchange)
	return args.Error(0)
}

type testDeps struct {
	store    *common.MemoryStore
	producer *MockMessageProducer
}

func testConfig() *Config {
	return &Config{
		Port:              ":0",
		Environment:       "testing",
		Version:           "test",
		TrustedOrigins:    []string{"http://example.com"},
		AdminEmail:        testAdminEmail,
		AdminPassword:     testAdminPassword,
		JWTSecret:         "0123456789abcdef0123456789abcdef",
		JWTIssuer:         "portfolio",
		BlogDefaultAuthor: "Jane Doe",
		RateLimitRPS:      2,
		RateLimitBurst:    4,
		RateLimitEnabled:  false,
	}
}

// newTestApplication wires every service against a fresh postgres container, an in-memory
// object store and a mocked broker.
func newTestApplication(t *testing.T) (*application, *testDeps) {
	cfg := testConfig()
	db := common.TestDB("file://../../migrations", t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	deps := &testDeps{
		store:    common.NewMemoryStore(),
		producer: new(MockMessageProducer),
	}
	deps.producer.On("Publish", mock.Anything, common.ContactSubmittedKey, common.ContactExchange).Return(nil)

	auth, err := authservice.NewAuthService(authservice.Config{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		Secret:        cfg.JWTSecret,
		Issuer:        cfg.JWTIssuer,
	})
	require.NoError(t, err)

	app := &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		storage:        deps.store,
		limiter:        newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitEnabled),
		authService:    auth,
		profileService: profileservice.NewProfileService(db, cache),
		projectService: projectservice.NewProjectService(db),
		blogService:    blogservice.NewBlogService(db, cfg.BlogDefaultAuthor),
		resumeService:  resumeservice.NewResumeService(db, deps.store, cache, logger),
		mediaService:   mediaservice.NewMediaService(deps.store),
		contactService: contactservice.NewContactService(deps.producer),
	}

	return app, deps
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var envelope envelope
	err = json.Unmarshal(responseBody, &envelope)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, envelope
}

// decode converts the value stored under key into dst.
func (e envelope) decode(t *testing.T, key string, dst any) {
	t.Helper()

	b, err := json.Marshal(e[key])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, dst))
}

func (ts *testServer) do(t *testing.T, method, path string, token *string, body io.Reader, contentType string) (int, http.Header, envelope) {
	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) send(t *testing.T, method, path string, token *string, payload any) (int, http.Header, envelope) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	return ts.do(t, method, path, token, body, "application/json")
}

func (ts *testServer) post(t *testing.T, path string, token *string, payload any) (int, http.Header, envelope) {
	return ts.send(t, http.MethodPost, path, token, payload)
}

func (ts *testServer) get(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return ts.send(t, http.MethodGet, path, token, nil)
}

func (ts *testServer) put(t *testing.T, path string, token *string, payload any) (int, http.Header, envelope) {
	return ts.send(t, http.MethodPut, path, token, payload)
}

func (ts *testServer) delete(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return ts.send(t, http.MethodDelete, path, token, nil)
}

type filePart struct {
	field       string
	name        string
	contentType string
	data        []byte
}

func (ts *testServer) upload(t *testing.T, path string, token *string, parts ...filePart) (int, http.Header, envelope) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.field, p.name))
		h.Set("Content-Type", p.contentType)

		w, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = w.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return ts.do(t, http.MethodPost, path, token, &buf, mw.FormDataContentType())
}

// login returns a token for the configured admin.
func (ts *testServer) login(t *testing.T) *string {
	status, _, body := ts.post(t, "/v1/auth/login", nil, map[string]string{
		"identifier": testAdminEmail,
		"secret":     testAdminPassword,
	})
	require.Equal(t, http.StatusOK, status)

	token, ok := body["token"].(string)
	require.True(t, ok)
	return &token
}

func strptr(s string) *string {
	return &s
}
