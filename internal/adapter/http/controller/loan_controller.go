package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/commons"
)

type LoanService interface {
	CreateLoan(ctx context.Context, req models.CreateLoanRequest) (commons.Response[models.LoanResponse], error)
	GetLoan(ctx context.Context, id string) (commons.Response[models.LoanResponse], error)
	ListLoans(ctx context.Context, bankAccountID string) (commons.Response[[]models.LoanResponse], error)
}

type LoanController struct {
	service LoanService
}

func NewLoanController(service LoanService) *LoanController {
	return &LoanController{service: service}
}

func (c *LoanController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /loans", wrap(c.createLoan))
	mux.Handle("GET /loans", wrap(c.listLoans))
	mux.Handle("GET /loans/{id}", wrap(c.getLoan))
}

func (c *LoanController) createLoan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.LoanResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateLoan(r.Context(), req)
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *LoanController) getLoan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetLoan(r.Context(), r.PathValue("id"))
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *LoanController) listLoans(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListLoans(r.Context(), r.URL.Query().Get("bankAccountId"))
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
