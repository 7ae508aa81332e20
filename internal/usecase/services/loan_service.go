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
	"github.com/shopspring/decimal"
)

type LoanService struct {
	ledgerRepo      repo_interfaces.LedgerRepository
	loanRepo        repo_interfaces.LoanRepository
	loanProductRepo repo_interfaces.LoanProductRepository
	accountRepo     repo_interfaces.AccountRepository
}

func NewLoanService(
	ledgerRepo repo_interfaces.LedgerRepository,
	loanRepo repo_interfaces.LoanRepository,
	loanProductRepo repo_interfaces.LoanProductRepository,
	accountRepo repo_interfaces.AccountRepository,
) *LoanService {
	return &LoanService{
		ledgerRepo:      ledgerRepo,
		loanRepo:        loanRepo,
		loanProductRepo: loanProductRepo,
		accountRepo:     accountRepo,
	}
}

// CreateLoan disburses the loan amount onto the linked account and books a
// Deposit transaction as the audit trail, committed together with the loan.
func (s *LoanService) CreateLoan(ctx context.Context, req models.CreateLoanRequest) (commons.Response[models.LoanResponse], error) {
	logger.Info("loan service create loan request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("loan service create loan validation failed", err, nil)
		return commons.ErrorResponse[models.LoanResponse]("validation failed", err.Error()), err
	}

	loan := req.ToDomain(time.Now().UTC())

	product, err := s.loanProductRepo.GetByID(ctx, loan.LoanProductID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoanResponse]("Loan product not found"), err
		}
		logger.Error("loan service loan product lookup failed", err, logger.Fields{"loanProductId": loan.LoanProductID})
		return commons.ErrorResponse[models.LoanResponse]("failed to create loan", "Unable to create loan right now"), err
	}

	if _, err := s.accountRepo.GetByID(ctx, loan.BankAccountID); err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoanResponse]("Bank account not found"), err
		}
		logger.Error("loan service account lookup failed", err, logger.Fields{"bankAccountId": loan.BankAccountID})
		return commons.ErrorResponse[models.LoanResponse]("failed to create loan", "Unable to create loan right now"), err
	}

	booking := domain.Transaction{
		Reference:            newLedgerReference(),
		Type:                 domain.TransactionTypeDeposit,
		Amount:               loan.Amount,
		Fee:                  decimal.Zero,
		DestinationAccountID: &loan.BankAccountID,
		Description:          fmt.Sprintf("Loan disbursement: %s", product.Name),
	}

	created, createdBooking, err := s.ledgerRepo.CreateLoan(ctx, loan, booking)
	if err != nil {
		logger.Error("loan service create loan failed", err, logger.Fields{
			"bankAccountId": loan.BankAccountID,
			"loanProductId": loan.LoanProductID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoanResponse]("Bank account not found"), err
		}
		return commons.ErrorResponse[models.LoanResponse]("failed to create loan", "Unable to create loan right now"), err
	}

	logger.Info("loan service create loan success", logger.Fields{
		"loanId":        created.ID,
		"transactionId": createdBooking.ID,
	})

	return commons.SuccessResponse("loan created successfully", mapLoanToResponse(created)), nil
}

func (s *LoanService) GetLoan(ctx context.Context, id string) (commons.Response[models.LoanResponse], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		err := errors.New("id is required")
		return commons.ErrorResponse[models.LoanResponse]("validation failed", err.Error()), err
	}

	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoanResponse]("Loan not found"), err
		}
		logger.Error("loan service get loan failed", err, logger.Fields{"loanId": id})
		return commons.ErrorResponse[models.LoanResponse]("failed to get loan", "Unable to fetch loan right now"), err
	}

	return commons.SuccessResponse("loan fetched successfully", mapLoanToResponse(loan)), nil
}

func (s *LoanService) ListLoans(ctx context.Context, bankAccountID string) (commons.Response[[]models.LoanResponse], error) {
	loans, err := s.loanRepo.List(ctx, strings.TrimSpace(bankAccountID))
	if err != nil {
		logger.Error("loan service list loans failed", err, nil)
		return commons.ErrorResponse[[]models.LoanResponse]("failed to list loans", "Unable to fetch loans right now"), err
	}

	responses := make([]models.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		responses = append(responses, mapLoanToResponse(loan))
	}

	return commons.SuccessResponse("loans fetched successfully", responses), nil
}

func mapLoanToResponse(loan domain.Loan) models.LoanResponse {
	return models.LoanResponse{
		ID:            loan.ID,
		Amount:        loan.Amount,
		StartDate:     loan.StartDate.Format(time.RFC3339),
		EndDate:       loan.EndDate.Format(time.RFC3339),
		LoanProductID: loan.LoanProductID,
		BankAccountID: loan.BankAccountID,
	}
}
