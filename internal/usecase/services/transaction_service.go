package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/logger"
)

// TransactionService is the orchestrator for deposit, withdraw, and transfer
// postings. It validates the request shape, prepares the ledger record, and
// hands the whole posting to the ledger repository as one unit of work.
type TransactionService struct {
	ledgerRepo      repo_interfaces.LedgerRepository
	transactionRepo repo_interfaces.TransactionRepository
}

func NewTransactionService(
	ledgerRepo repo_interfaces.LedgerRepository,
	transactionRepo repo_interfaces.TransactionRepository,
) *TransactionService {
	return &TransactionService{
		ledgerRepo:      ledgerRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *TransactionService) PostTransaction(ctx context.Context, req models.PostTransactionRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service post transaction request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transaction service post transaction validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	txn := req.ToDomain()
	txn.Reference = newLedgerReference()

	created, err := s.ledgerRepo.PostTransaction(ctx, txn)
	if err != nil {
		logger.Error("transaction service post transaction failed", err, logger.Fields{
			"reference": txn.Reference,
			"type":      txn.Type,
		})

		var insufficient *commons.InsufficientFundsError
		switch {
		case errors.Is(err, commons.ErrRecordNotFound):
			return commons.ErrorResponse[models.TransactionResponse]("Account not found"), err
		case errors.As(err, &insufficient):
			return commons.ErrorResponse[models.TransactionResponse]("amount too large", err.Error()), err
		default:
			return commons.ErrorResponse[models.TransactionResponse]("failed to post transaction", "Unable to post transaction right now"), err
		}
	}

	logger.Info("transaction service post transaction success", logger.Fields{
		"transactionId": created.ID,
		"reference":     created.Reference,
	})

	return commons.SuccessResponse("transaction posted successfully", mapTransactionToResponse(created)), nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, id string) (commons.Response[models.TransactionResponse], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		err := errors.New("id is required")
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	txn, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Transaction not found"), err
		}
		logger.Error("transaction service get transaction failed", err, logger.Fields{"transactionId": id})
		return commons.ErrorResponse[models.TransactionResponse]("failed to get transaction", "Unable to fetch transaction right now"), err
	}

	return commons.SuccessResponse("transaction fetched successfully", mapTransactionToResponse(txn)), nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, req models.ListTransactionsRequest) (commons.Response[[]models.TransactionResponse], error) {
	filter := repo_interfaces.TransactionFilter{
		SourceAccountID:      strings.TrimSpace(req.SourceAccountID),
		DestinationAccountID: strings.TrimSpace(req.DestinationAccountID),
		InvolvedAccountID:    strings.TrimSpace(req.InvolvedAccountID),
	}

	transactions, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		logger.Error("transaction service list transactions failed", err, nil)
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to list transactions", "Unable to fetch transactions right now"), err
	}

	responses := make([]models.TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		responses = append(responses, mapTransactionToResponse(txn))
	}

	return commons.SuccessResponse("transactions fetched successfully", responses), nil
}

func mapTransactionToResponse(txn domain.Transaction) models.TransactionResponse {
	return models.TransactionResponse{
		ID:                   txn.ID,
		Reference:            txn.Reference,
		Type:                 string(txn.Type),
		Amount:               txn.Amount,
		Fee:                  txn.Fee,
		SourceAccountID:      txn.SourceAccountID,
		DestinationAccountID: txn.DestinationAccountID,
		Description:          txn.Description,
		CreatedAt:            txn.CreatedAt.Format(time.RFC3339),
	}
}
