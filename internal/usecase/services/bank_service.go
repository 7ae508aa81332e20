package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/logger"
)

type BankService struct {
	bankRepo repo_interfaces.BankRepository
}

func NewBankService(bankRepo repo_interfaces.BankRepository) *BankService {
	return &BankService{bankRepo: bankRepo}
}

func (s *BankService) CreateBank(ctx context.Context, req models.CreateBankRequest) (commons.Response[models.BankResponse], error) {
	logger.Info("bank service create bank request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service create bank validation failed", err, nil)
		return commons.ErrorResponse[models.BankResponse]("validation failed", err.Error()), err
	}

	bank := domain.Bank{
		Name:      strings.TrimSpace(req.Name),
		Address:   strings.TrimSpace(req.Address),
		Phone:     strings.TrimSpace(req.Phone),
		SwiftCode: randomAlphanumeric(8 + rand.Intn(9)),
	}

	created, err := s.bankRepo.Create(ctx, bank)
	if err != nil {
		logger.Error("bank service create bank failed", err, nil)
		return commons.ErrorResponse[models.BankResponse]("failed to create bank", "Unable to create bank right now"), err
	}

	logger.Info("bank service create bank success", logger.Fields{"bankId": created.ID})

	return commons.SuccessResponse("bank created successfully", mapBankToResponse(created)), nil
}

func (s *BankService) GetBank(ctx context.Context, id string) (commons.Response[models.BankResponse], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		err := errors.New("id is required")
		return commons.ErrorResponse[models.BankResponse]("validation failed", err.Error()), err
	}

	bank, err := s.bankRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BankResponse]("Bank not found"), err
		}
		logger.Error("bank service get bank failed", err, logger.Fields{"bankId": id})
		return commons.ErrorResponse[models.BankResponse]("failed to get bank", "Unable to fetch bank right now"), err
	}

	return commons.SuccessResponse("bank fetched successfully", mapBankToResponse(bank)), nil
}

func (s *BankService) ListBanks(ctx context.Context) (commons.Response[[]models.BankResponse], error) {
	banks, err := s.bankRepo.List(ctx)
	if err != nil {
		logger.Error("bank service list banks failed", err, nil)
		return commons.ErrorResponse[[]models.BankResponse]("failed to list banks", "Unable to fetch banks right now"), err
	}

	responses := make([]models.BankResponse, 0, len(banks))
	for _, bank := range banks {
		responses = append(responses, mapBankToResponse(bank))
	}

	return commons.SuccessResponse("banks fetched successfully", responses), nil
}

func mapBankToResponse(bank domain.Bank) models.BankResponse {
	return models.BankResponse{
		ID:        bank.ID,
		Name:      bank.Name,
		Address:   bank.Address,
		Phone:     bank.Phone,
		SwiftCode: bank.SwiftCode,
	}
}
