package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/commons"
)

type InvestmentService interface {
	CreateInvestment(ctx context.Context, req models.CreateInvestmentRequest) (commons.Response[models.InvestmentResponse], error)
	ApplyAction(ctx context.Context, id string, req models.InvestmentActionRequest) (commons.Response[commons.MessageResponse], error)
	GetInvestment(ctx context.Context, id string) (commons.Response[models.InvestmentResponse], error)
	ListInvestments(ctx context.Context, bankAccountID string) (commons.Response[[]models.InvestmentResponse], error)
}

type InvestmentController struct {
	service InvestmentService
}

func NewInvestmentController(service InvestmentService) *InvestmentController {
	return &InvestmentController{service: service}
}

func (c *InvestmentController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /investments", wrap(c.createInvestment))
	mux.Handle("GET /investments", wrap(c.listInvestments))
	mux.Handle("GET /investments/{id}", wrap(c.getInvestment))
	mux.Handle("POST /investments/{id}/actions", wrap(c.applyAction))
}

func (c *InvestmentController) createInvestment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.InvestmentResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateInvestment(r.Context(), req)
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *InvestmentController) applyAction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.InvestmentActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[commons.MessageResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.ApplyAction(r.Context(), r.PathValue("id"), req)
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *InvestmentController) getInvestment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetInvestment(r.Context(), r.PathValue("id"))
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *InvestmentController) listInvestments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListInvestments(r.Context(), r.URL.Query().Get("bankAccountId"))
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
