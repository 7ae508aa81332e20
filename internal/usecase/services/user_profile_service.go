package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/logger"
)

type UserProfileService struct {
	userProfileRepo repo_interfaces.UserProfileRepository
}

func NewUserProfileService(userProfileRepo repo_interfaces.UserProfileRepository) *UserProfileService {
	return &UserProfileService{userProfileRepo: userProfileRepo}
}

func (s *UserProfileService) CreateUserProfile(ctx context.Context, req models.CreateUserProfileRequest) (commons.Response[models.UserProfileResponse], error) {
	logger.Info("user profile service create profile request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user profile service create profile validation failed", err, nil)
		return commons.ErrorResponse[models.UserProfileResponse]("validation failed", err.Error()), err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(req.Password)), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("user profile service password hashing failed", err, nil)
		return commons.ErrorResponse[models.UserProfileResponse]("failed to create user profile", "Unable to create user profile right now"), err
	}

	profile := domain.UserProfile{
		Email:                   strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:            string(hash),
		Name:                    strings.TrimSpace(req.Name),
		Surname:                 strings.TrimSpace(req.Surname),
		TaxIdentificationNumber: strings.TrimSpace(req.TaxIdentificationNumber),
	}

	created, err := s.userProfileRepo.Create(ctx, profile)
	if err != nil {
		if errors.Is(err, commons.ErrDuplicateRecord) {
			return commons.ErrorResponse[models.UserProfileResponse]("email already registered"), err
		}
		logger.Error("user profile service create profile failed", err, nil)
		return commons.ErrorResponse[models.UserProfileResponse]("failed to create user profile", "Unable to create user profile right now"), err
	}

	logger.Info("user profile service create profile success", logger.Fields{
		"userProfileId": created.ID,
	})

	return commons.SuccessResponse("user profile created successfully", mapUserProfileToResponse(created)), nil
}

func (s *UserProfileService) GetUserProfile(ctx context.Context, id string) (commons.Response[models.UserProfileResponse], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		err := errors.New("id is required")
		return commons.ErrorResponse[models.UserProfileResponse]("validation failed", err.Error()), err
	}

	profile, err := s.userProfileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.UserProfileResponse]("User profile not found"), err
		}
		logger.Error("user profile service get profile failed", err, logger.Fields{"userProfileId": id})
		return commons.ErrorResponse[models.UserProfileResponse]("failed to get user profile", "Unable to fetch user profile right now"), err
	}

	return commons.SuccessResponse("user profile fetched successfully", mapUserProfileToResponse(profile)), nil
}

func mapUserProfileToResponse(profile domain.UserProfile) models.UserProfileResponse {
	return models.UserProfileResponse{
		ID:                      profile.ID,
		Email:                   profile.Email,
		Name:                    profile.Name,
		Surname:                 profile.Surname,
		TaxIdentificationNumber: profile.TaxIdentificationNumber,
		CreatedAt:               profile.CreatedAt.Format(time.RFC3339),
	}
}
