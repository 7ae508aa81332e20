package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
)

type UserProfileRepository struct {
	db *sql.DB
}

func NewUserProfileRepository(db *sql.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

func (r *UserProfileRepository) Create(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error) {
	const query = `
INSERT INTO user_profile (email, password_hash, name, surname, tax_identification_number)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		profile.Email,
		profile.PasswordHash,
		profile.Name,
		profile.Surname,
		profile.TaxIdentificationNumber,
	).Scan(&profile.ID, &profile.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.UserProfile{}, commons.ErrDuplicateRecord
		}
		return domain.UserProfile{}, fmt.Errorf("create user profile: %w", err)
	}
	return profile, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *UserProfileRepository) GetByID(ctx context.Context, id string) (domain.UserProfile, error) {
	const query = `
SELECT id, email, password_hash, name, surname, tax_identification_number, created_at
FROM user_profile
WHERE id::text = $1`

	var profile domain.UserProfile
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.Name,
		&profile.Surname,
		&profile.TaxIdentificationNumber,
		&profile.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.UserProfile{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("get user profile: %w", err)
	}
	return profile, nil
}
