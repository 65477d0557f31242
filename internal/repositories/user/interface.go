package user

import (
	"context"

	"github.com/KirkDiggler/lanstats/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/lanstats/internal/repositories/user Repository

// Repository defines the interface for user data persistence
type Repository interface {
	// UpsertUser inserts a user or refreshes an existing record
	UpsertUser(ctx context.Context, input *UpsertUserInput) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)
}
