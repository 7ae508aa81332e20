package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/commons"
)

type BankService interface {
	CreateBank(ctx context.Context, req models.CreateBankRequest) (commons.Response[models.BankResponse], error)
	GetBank(ctx context.Context, id string) (commons.Response[models.BankResponse], error)
	ListBanks(ctx context.Context) (commons.Response[[]models.BankResponse], error)
}

type BankController struct {
	service BankService
}

func NewBankController(service BankService) *BankController {
	return &BankController{service: service}
}

func (c *BankController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /banks", wrap(c.createBank))
	mux.Handle("GET /banks", wrap(c.listBanks))
	mux.Handle("GET /banks/{id}", wrap(c.getBank))
}

func (c *BankController) createBank(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.BankResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateBank(r.Context(), req)
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *BankController) getBank(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetBank(r.Context(), r.PathValue("id"))
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *BankController) listBanks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListBanks(r.Context())
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
