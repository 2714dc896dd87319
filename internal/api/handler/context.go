package handler

import (
	"context"

	"github.com/camperplan/camperplan/internal/api/middleware"
)

// GetUserID extracts the authenticated user ID from the request context.
// Returns an empty string when the request did not pass auth middleware.
func GetUserID(ctx context.Context) string {
	return middleware.GetUserID(ctx)
}
