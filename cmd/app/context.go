package main

import (
	"context"
	"net/http"

	"github.com/sushihentaime/portfolio/internal/authservice"
)

type contextKey string

const claimsContextKey = contextKey("claims")

func (app *application) createClaimsContext(r *http.Request, claims *authservice.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsContextKey, claims)
	return r.WithContext(ctx)
}

// getClaimsContext returns nil for anonymous requests.
func (app *application) getClaimsContext(r *http.Request) *authservice.Claims {
	claims, ok := r.Context().Value(claimsContextKey).(*authservice.Claims)
	if !ok {
		return nil
	}
	return claims
}
