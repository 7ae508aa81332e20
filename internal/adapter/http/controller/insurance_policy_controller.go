package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/commons"
)

type InsurancePolicyService interface {
	CreatePolicy(ctx context.Context, req models.CreateInsurancePolicyRequest) (commons.Response[models.InsurancePolicyResponse], error)
	ApplyAction(ctx context.Context, id string, req models.InsurancePolicyActionRequest) (commons.Response[commons.MessageResponse], error)
	GetPolicy(ctx context.Context, id string) (commons.Response[models.InsurancePolicyResponse], error)
	ListPolicies(ctx context.Context, bankAccountID string) (commons.Response[[]models.InsurancePolicyResponse], error)
}

type InsurancePolicyController struct {
	service InsurancePolicyService
}

func NewInsurancePolicyController(service InsurancePolicyService) *InsurancePolicyController {
	return &InsurancePolicyController{service: service}
}

func (c *InsurancePolicyController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /insurance-policies", wrap(c.createPolicy))
	mux.Handle("GET /insurance-policies", wrap(c.listPolicies))
	mux.Handle("GET /insurance-policies/{id}", wrap(c.getPolicy))
	mux.Handle("POST /insurance-policies/{id}/actions", wrap(c.applyAction))
}

func (c *InsurancePolicyController) createPolicy(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateInsurancePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.InsurancePolicyResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.CreatePolicy(r.Context(), req)
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *InsurancePolicyController) applyAction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.InsurancePolicyActionRequest
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

func (c *InsurancePolicyController) getPolicy(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetPolicy(r.Context(), r.PathValue("id"))
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *InsurancePolicyController) listPolicies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListPolicies(r.Context(), r.URL.Query().Get("bankAccountId"))
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
