package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"

	"github.com/sushihentaime/portfolio/internal/authservice"
	"github.com/sushihentaime/portfolio/internal/blogservice"
	"github.com/sushihentaime/portfolio/internal/common"
	"github.com/sushihentaime/portfolio/internal/contactservice"
	"github.com/sushihentaime/portfolio/internal/mailservice"
	"github.com/sushihentaime/portfolio/internal/mediaservice"
	"github.com/sushihentaime/portfolio/internal/profileservice"
	"github.com/sushihentaime/portfolio/internal/projectservice"
	"github.com/sushihentaime/portfolio/internal/resumeservice"
)

type application struct {
	config         *Config
	logger         *slog.Logger
	db             *sql.DB
	storage        pinger
	limiter        *rateLimiter
	authService    *authservice.AuthService
	profileService *profileservice.ProfileService
	projectService *projectservice.ProjectService
	blogService    *blogservice.BlogService
	resumeService  *resumeservice.ResumeService
	mediaService   *mediaservice.MediaService
	contactService *contactservice.ContactService
	mailService    *mailservice.MailService
}

func main() {
	configPath := flag.String("config", ".env", "path to the .env configuration file")
	flag.Parse()

	// Load the configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg.Environment)

	// Initialize the database
	db, err := common.NewDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBMaxIdleTime)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	if cfg.MigrationsPath != "" {
		dsn := common.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		if _, err := common.Migrate(cfg.MigrationsPath, dsn); err != nil {
			logger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Initialize the message broker
	URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.MQUser, cfg.MQPassword, cfg.MQHost, cfg.MQPort)
	broker, err := common.NewMessageBroker(URI)
	if err != nil {
		logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	err = common.SetupContactExchange(broker)
	if err != nil {
		logger.Error("failed to setup the contact exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the object store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	storage, err := common.NewMinIOStorage(ctx, common.StorageConfig{
		Endpoint:  cfg.StorageEndpoint,
		AccessKey: cfg.StorageAccessKey,
		SecretKey: cfg.StorageSecretKey,
		Bucket:    cfg.StorageBucket,
		UseSSL:    cfg.StorageUseSSL,
		PublicURL: cfg.StoragePublicURL,
	})
	cancel()
	if err != nil {
		logger.Error("failed to connect to object storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	auth, err := authservice.NewAuthService(authservice.Config{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		Secret:        cfg.JWTSecret,
		Issuer:        cfg.JWTIssuer,
	})
	if err != nil {
		logger.Error("invalid admin configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	// Initialize the services
	app := &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		storage:        storage,
		limiter:        newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitEnabled),
		authService:    auth,
		profileService: profileservice.NewProfileService(db, cache),
		projectService: projectservice.NewProjectService(db),
		blogService:    blogservice.NewBlogService(db, cfg.BlogDefaultAuthor),
		resumeService:  resumeservice.NewResumeService(db, storage, cache, logger),
		mediaService:   mediaservice.NewMediaService(storage),
		contactService: contactservice.NewContactService(broker),
		mailService:    mailservice.NewMailService(broker, cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.AdminEmail, cfg.MailPort, logger),
	}

	// Initialize the consumer
	if err := app.mailService.SendContactMessages(); err != nil {
		logger.Error("failed to start the contact mail consumer", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.mailService.Close()

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type pinger interface {
	Ping(ctx context.Context) error
}

func newLogger(environment string) *slog.Logger {
	if environment == "development" {
		return slog.New(devslog.NewHandler(os.Stdout, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
		}))
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
