package repo_interfaces

import (
	"context"

	"github.com/api-sage/pfm-ledger/internal/domain"
)

type UserProfileRepository interface {
	Create(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error)
	GetByID(ctx context.Context, id string) (domain.UserProfile, error)
}
