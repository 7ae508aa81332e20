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

type InsurancePolicyService struct {
	ledgerRepo        repo_interfaces.LedgerRepository
	policyRepo        repo_interfaces.InsurancePolicyRepository
	policyProductRepo repo_interfaces.InsurancePolicyProductRepository
}

func NewInsurancePolicyService(
	ledgerRepo repo_interfaces.LedgerRepository,
	policyRepo repo_interfaces.InsurancePolicyRepository,
	policyProductRepo repo_interfaces.InsurancePolicyProductRepository,
) *InsurancePolicyService {
	return &InsurancePolicyService{
		ledgerRepo:        ledgerRepo,
		policyRepo:        policyRepo,
		policyProductRepo: policyProductRepo,
	}
}

// CreatePolicy charges the product's annual premium against the linked
// account and commits the policy together with the debit.
func (s *InsurancePolicyService) CreatePolicy(ctx context.Context, req models.CreateInsurancePolicyRequest) (commons.Response[models.InsurancePolicyResponse], error) {
	logger.Info("insurance policy service create policy request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("insurance policy service create policy validation failed", err, nil)
		return commons.ErrorResponse[models.InsurancePolicyResponse]("validation failed", err.Error()), err
	}

	policy := req.ToDomain(time.Now().UTC())

	product, err := s.policyProductRepo.GetByID(ctx, policy.InsurancePolicyProductID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.InsurancePolicyResponse]("Insurance policy product not found"), err
		}
		logger.Error("insurance policy service product lookup failed", err, logger.Fields{
			"insurancePolicyProductId": policy.InsurancePolicyProductID,
		})
		return commons.ErrorResponse[models.InsurancePolicyResponse]("failed to create insurance policy", "Unable to create insurance policy right now"), err
	}

	created, err := s.ledgerRepo.CreateInsurancePolicy(ctx, policy, product.AnnualPremium)
	if err != nil {
		logger.Error("insurance policy service create policy failed", err, logger.Fields{
			"bankAccountId": policy.BankAccountID,
		})

		var insufficient *commons.InsufficientFundsError
		switch {
		case errors.Is(err, commons.ErrRecordNotFound):
			return commons.ErrorResponse[models.InsurancePolicyResponse]("Bank account not found"), err
		case errors.As(err, &insufficient):
			return commons.ErrorResponse[models.InsurancePolicyResponse]("amount too large", err.Error()), err
		default:
			return commons.ErrorResponse[models.InsurancePolicyResponse]("failed to create insurance policy", "Unable to create insurance policy right now"), err
		}
	}

	logger.Info("insurance policy service create policy success", logger.Fields{
		"insurancePolicyId": created.ID,
	})

	return commons.SuccessResponse("insurance policy created successfully", mapInsurancePolicyToResponse(created)), nil
}

func (s *InsurancePolicyService) ApplyAction(ctx context.Context, id string, req models.InsurancePolicyActionRequest) (commons.Response[commons.MessageResponse], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		err := errors.New("id is required")
		return commons.ErrorResponse[commons.MessageResponse]("validation failed", err.Error()), err
	}
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[commons.MessageResponse]("validation failed", err.Error()), err
	}

	action := domain.InsurancePolicyAction(strings.TrimSpace(req.Action))
	target := domain.InsurancePolicyStatusByAction[action]

	policy, err := s.policyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[commons.MessageResponse]("Insurance policy not found"), err
		}
		logger.Error("insurance policy service get policy for action failed", err, logger.Fields{"insurancePolicyId": id})
		return commons.ErrorResponse[commons.MessageResponse]("failed to apply action", "Unable to apply action right now"), err
	}

	if policy.Status == target {
		err := &commons.InvalidStatusTransitionError{Status: string(target)}
		return commons.ErrorResponse[commons.MessageResponse]("invalid status transition", err.Error()), err
	}

	if err := s.policyRepo.UpdateStatus(ctx, id, target); err != nil {
		var invalidTransition *commons.InvalidStatusTransitionError
		switch {
		case errors.Is(err, commons.ErrRecordNotFound):
			return commons.ErrorResponse[commons.MessageResponse]("Insurance policy not found"), err
		case errors.As(err, &invalidTransition):
			return commons.ErrorResponse[commons.MessageResponse]("invalid status transition", err.Error()), err
		default:
			logger.Error("insurance policy service update status failed", err, logger.Fields{"insurancePolicyId": id})
			return commons.ErrorResponse[commons.MessageResponse]("failed to apply action", "Unable to apply action right now"), err
		}
	}

	logger.Info("insurance policy service apply action success", logger.Fields{
		"insurancePolicyId": id,
		"action":            action,
		"status":            target,
	})

	message := commons.MessageResponse{
		Message: fmt.Sprintf("Action %s successfully performed on resource %s", action, id),
	}
	return commons.SuccessResponse("action applied successfully", message), nil
}

func (s *InsurancePolicyService) GetPolicy(ctx context.Context, id string) (commons.Response[models.InsurancePolicyResponse], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		err := errors.New("id is required")
		return commons.ErrorResponse[models.InsurancePolicyResponse]("validation failed", err.Error()), err
	}

	policy, err := s.policyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.InsurancePolicyResponse]("Insurance policy not found"), err
		}
		logger.Error("insurance policy service get policy failed", err, logger.Fields{"insurancePolicyId": id})
		return commons.ErrorResponse[models.InsurancePolicyResponse]("failed to get insurance policy", "Unable to fetch insurance policy right now"), err
	}

	return commons.SuccessResponse("insurance policy fetched successfully", mapInsurancePolicyToResponse(policy)), nil
}

func (s *InsurancePolicyService) ListPolicies(ctx context.Context, bankAccountID string) (commons.Response[[]models.InsurancePolicyResponse], error) {
	policies, err := s.policyRepo.List(ctx, strings.TrimSpace(bankAccountID))
	if err != nil {
		logger.Error("insurance policy service list policies failed", err, nil)
		return commons.ErrorResponse[[]models.InsurancePolicyResponse]("failed to list insurance policies", "Unable to fetch insurance policies right now"), err
	}

	responses := make([]models.InsurancePolicyResponse, 0, len(policies))
	for _, policy := range policies {
		responses = append(responses, mapInsurancePolicyToResponse(policy))
	}

	return commons.SuccessResponse("insurance policies fetched successfully", responses), nil
}

func mapInsurancePolicyToResponse(policy domain.InsurancePolicy) models.InsurancePolicyResponse {
	return models.InsurancePolicyResponse{
		ID:                       policy.ID,
		StartDate:                policy.StartDate.Format(time.RFC3339),
		EndDate:                  policy.EndDate.Format(time.RFC3339),
		InsurancePolicyProductID: policy.InsurancePolicyProductID,
		BankAccountID:            policy.BankAccountID,
		Status:                   string(policy.Status),
	}
}
