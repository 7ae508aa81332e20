package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/logger"
)

const accountNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type AccountService struct {
	accountRepo     repo_interfaces.AccountRepository
	userProfileRepo repo_interfaces.UserProfileRepository
	bankRepo        repo_interfaces.BankRepository
}

func NewAccountService(
	accountRepo repo_interfaces.AccountRepository,
	userProfileRepo repo_interfaces.UserProfileRepository,
	bankRepo repo_interfaces.BankRepository,
) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		userProfileRepo: userProfileRepo,
		bankRepo:        bankRepo,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	if _, err := s.userProfileRepo.GetByID(ctx, strings.TrimSpace(req.UserProfileID)); err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("User profile not found"), err
		}
		logger.Error("account service user profile lookup failed", err, logger.Fields{"userProfileId": req.UserProfileID})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	if _, err := s.bankRepo.GetByID(ctx, strings.TrimSpace(req.BankID)); err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Bank not found"), err
		}
		logger.Error("account service bank lookup failed", err, logger.Fields{"bankId": req.BankID})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	account := domain.Account{
		UserProfileID: strings.TrimSpace(req.UserProfileID),
		BankID:        strings.TrimSpace(req.BankID),
		AccountNumber: randomAlphanumeric(10),
		IBANCode:      randomAlphanumeric(10 + rand.Intn(25)),
		Currency:      strings.ToUpper(strings.TrimSpace(req.Currency)),
		Balance:       decimal.Zero,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service create account failed", err, logger.Fields{
			"userProfileId": account.UserProfileID,
			"bankId":        account.BankID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	logger.Info("account service create account success", logger.Fields{
		"accountId": created.ID,
	})

	return commons.SuccessResponse("account created successfully", mapAccountToResponse(created)), nil
}

func (s *AccountService) GetAccount(ctx context.Context, id string) (commons.Response[models.AccountResponse], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		err := errors.New("id is required")
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		logger.Error("account service get account failed", err, logger.Fields{"accountId": id})
		return commons.ErrorResponse[models.AccountResponse]("failed to get account", "Unable to fetch account right now"), err
	}

	return commons.SuccessResponse("account fetched successfully", mapAccountToResponse(account)), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to fetch accounts right now"), err
	}

	responses := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, mapAccountToResponse(account))
	}

	return commons.SuccessResponse("accounts fetched successfully", responses), nil
}

// DeleteAccount refuses to remove an account that any loan, investment,
// insurance policy, or transaction still references.
func (s *AccountService) DeleteAccount(ctx context.Context, id string) (commons.Response[commons.MessageResponse], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		err := errors.New("id is required")
		return commons.ErrorResponse[commons.MessageResponse]("validation failed", err.Error()), err
	}

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, commons.ErrRecordNotFound):
			return commons.ErrorResponse[commons.MessageResponse]("Account not found"), err
		case errors.Is(err, commons.ErrAccountInUse):
			return commons.ErrorResponse[commons.MessageResponse]("account in use", "Account is referenced by existing records and cannot be deleted"), err
		default:
			logger.Error("account service delete account failed", err, logger.Fields{"accountId": id})
			return commons.ErrorResponse[commons.MessageResponse]("failed to delete account", "Unable to delete account right now"), err
		}
	}

	logger.Info("account service delete account success", logger.Fields{"accountId": id})

	message := commons.MessageResponse{Message: "Account deleted successfully"}
	return commons.SuccessResponse("account deleted successfully", message), nil
}

func randomAlphanumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = accountNumberAlphabet[rand.Intn(len(accountNumberAlphabet))]
	}
	return string(b)
}

func mapAccountToResponse(account domain.Account) models.AccountResponse {
	return models.AccountResponse{
		ID:            account.ID,
		UserProfileID: account.UserProfileID,
		BankID:        account.BankID,
		AccountNumber: account.AccountNumber,
		IBANCode:      account.IBANCode,
		Currency:      account.Currency,
		Balance:       account.Balance,
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
	}
}
