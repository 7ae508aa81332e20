package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/logger"
)

type InvestmentService struct {
	ledgerRepo            repo_interfaces.LedgerRepository
	investmentRepo        repo_interfaces.InvestmentRepository
	investmentProductRepo repo_interfaces.InvestmentProductRepository
}

func NewInvestmentService(
	ledgerRepo repo_interfaces.LedgerRepository,
	investmentRepo repo_interfaces.InvestmentRepository,
	investmentProductRepo repo_interfaces.InvestmentProductRepository,
) *InvestmentService {
	return &InvestmentService{
		ledgerRepo:            ledgerRepo,
		investmentRepo:        investmentRepo,
		investmentProductRepo: investmentProductRepo,
	}
}

func (s *InvestmentService) CreateInvestment(ctx context.Context, req models.CreateInvestmentRequest) (commons.Response[models.InvestmentResponse], error) {
	logger.Info("investment service create investment request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("investment service create investment validation failed", err, nil)
		return commons.ErrorResponse[models.InvestmentResponse]("validation failed", err.Error()), err
	}

	investment := req.ToDomain(time.Now().UTC())

	if _, err := s.investmentProductRepo.GetByID(ctx, investment.InvestmentProductID); err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.InvestmentResponse]("Investment product not found"), err
		}
		logger.Error("investment service product lookup failed", err, logger.Fields{
			"investmentProductId": investment.InvestmentProductID,
		})
		return commons.ErrorResponse[models.InvestmentResponse]("failed to create investment", "Unable to create investment right now"), err
	}

	created, err := s.ledgerRepo.CreateInvestment(ctx, investment)
	if err != nil {
		logger.Error("investment service create investment failed", err, logger.Fields{
			"bankAccountId": investment.BankAccountID,
		})

		var insufficient *commons.InsufficientFundsError
		switch {
		case errors.Is(err, commons.ErrRecordNotFound):
			return commons.ErrorResponse[models.InvestmentResponse]("Bank account not found"), err
		case errors.As(err, &insufficient):
			return commons.ErrorResponse[models.InvestmentResponse]("amount too large", err.Error()), err
		default:
			return commons.ErrorResponse[models.InvestmentResponse]("failed to create investment", "Unable to create investment right now"), err
		}
	}

	logger.Info("investment service create investment success", logger.Fields{
		"investmentId": created.ID,
	})

	return commons.SuccessResponse("investment created successfully", mapInvestmentToResponse(created)), nil
}

// ApplyAction transitions the investment's status. An action whose target
// status equals the current one is rejected without mutation.
func (s *InvestmentService) ApplyAction(ctx context.Context, id string, req models.InvestmentActionRequest) (commons.Response[commons.MessageResponse], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		err := errors.New("id is required")
		return commons.ErrorResponse[commons.MessageResponse]("validation failed", err.Error()), err
	}
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[commons.MessageResponse]("validation failed", err.Error()), err
	}

	action := domain.InvestmentAction(strings.TrimSpace(req.Action))
	target := domain.InvestmentStatusByAction[action]

	investment, err := s.investmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[commons.MessageResponse]("Investment not found"), err
		}
		logger.Error("investment service get investment for action failed", err, logger.Fields{"investmentId": id})
		return commons.ErrorResponse[commons.MessageResponse]("failed to apply action", "Unable to apply action right now"), err
	}

	if investment.Status == target {
		err := &commons.InvalidStatusTransitionError{Status: string(target)}
		return commons.ErrorResponse[commons.MessageResponse]("invalid status transition", err.Error()), err
	}

	if err := s.investmentRepo.UpdateStatus(ctx, id, target); err != nil {
		var invalidTransition *commons.InvalidStatusTransitionError
		switch {
		case errors.Is(err, commons.ErrRecordNotFound):
			return commons.ErrorResponse[commons.MessageResponse]("Investment not found"), err
		case errors.As(err, &invalidTransition):
			return commons.ErrorResponse[commons.MessageResponse]("invalid status transition", err.Error()), err
		default:
			logger.Error("investment service update status failed", err, logger.Fields{"investmentId": id})
			return commons.ErrorResponse[commons.MessageResponse]("failed to apply action", "Unable to apply action right now"), err
		}
	}

	logger.Info("investment service apply action success", logger.Fields{
		"investmentId": id,
		"action":       action,
		"status":       target,
	})

	message := commons.MessageResponse{
		Message: fmt.Sprintf("Action %s successfully performed on resource %s", action, id),
	}
	return commons.SuccessResponse("action applied successfully", message), nil
}

func (s *InvestmentService) GetInvestment(ctx context.Context, id string) (commons.Response[models.InvestmentResponse], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		err := errors.New("id is required")
		return commons.ErrorResponse[models.InvestmentResponse]("validation failed", err.Error()), err
	}

	investment, err := s.investmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.InvestmentResponse]("Investment not found"), err
		}
		logger.Error("investment service get investment failed", err, logger.Fields{"investmentId": id})
		return commons.ErrorResponse[models.InvestmentResponse]("failed to get investment", "Unable to fetch investment right now"), err
	}

	return commons.SuccessResponse("investment fetched successfully", mapInvestmentToResponse(investment)), nil
}

func (s *InvestmentService) ListInvestments(ctx context.Context, bankAccountID string) (commons.Response[[]models.InvestmentResponse], error) {
	investments, err := s.investmentRepo.List(ctx, strings.TrimSpace(bankAccountID))
	if err != nil {
		logger.Error("investment service list investments failed", err, nil)
		return commons.ErrorResponse[[]models.InvestmentResponse]("failed to list investments", "Unable to fetch investments right now"), err
	}

	responses := make([]models.InvestmentResponse, 0, len(investments))
	for _, investment := range investments {
		responses = append(responses, mapInvestmentToResponse(investment))
	}

	return commons.SuccessResponse("investments fetched successfully", responses), nil
}

func mapInvestmentToResponse(investment domain.Investment) models.InvestmentResponse {
	return models.InvestmentResponse{
		ID:                  investment.ID,
		Amount:              investment.Amount,
		StartDate:           investment.StartDate.Format(time.RFC3339),
		EndDate:             investment.EndDate.Format(time.RFC3339),
		InvestmentProductID: investment.InvestmentProductID,
		BankAccountID:       investment.BankAccountID,
		Status:              string(investment.Status),
	}
}
