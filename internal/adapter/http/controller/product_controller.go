package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/commons"
)

type ProductService interface {
	CreateLoanProduct(ctx context.Context, req models.CreateLoanProductRequest) (commons.Response[models.LoanProductResponse], error)
	GetLoanProduct(ctx context.Context, id string) (commons.Response[models.LoanProductResponse], error)
	ListLoanProducts(ctx context.Context) (commons.Response[[]models.LoanProductResponse], error)
	CreateInvestmentProduct(ctx context.Context, req models.CreateInvestmentProductRequest) (commons.Response[models.InvestmentProductResponse], error)
	GetInvestmentProduct(ctx context.Context, id string) (commons.Response[models.InvestmentProductResponse], error)
	ListInvestmentProducts(ctx context.Context) (commons.Response[[]models.InvestmentProductResponse], error)
	CreateInsurancePolicyProduct(ctx context.Context, req models.CreateInsurancePolicyProductRequest) (commons.Response[models.InsurancePolicyProductResponse], error)
	GetInsurancePolicyProduct(ctx context.Context, id string) (commons.Response[models.InsurancePolicyProductResponse], error)
	ListInsurancePolicyProducts(ctx context.Context) (commons.Response[[]models.InsurancePolicyProductResponse], error)
}

type ProductController struct {
	service ProductService
}

func NewProductController(service ProductService) *ProductController {
	return &ProductController{service: service}
}

func (c *ProductController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /products/loans", wrap(c.createLoanProduct))
	mux.Handle("GET /products/loans", wrap(c.listLoanProducts))
	mux.Handle("GET /products/loans/{id}", wrap(c.getLoanProduct))
	mux.Handle("POST /products/investments", wrap(c.createInvestmentProduct))
	mux.Handle("GET /products/investments", wrap(c.listInvestmentProducts))
	mux.Handle("GET /products/investments/{id}", wrap(c.getInvestmentProduct))
	mux.Handle("POST /products/insurance-policies", wrap(c.createInsurancePolicyProduct))
	mux.Handle("GET /products/insurance-policies", wrap(c.listInsurancePolicyProducts))
	mux.Handle("GET /products/insurance-policies/{id}", wrap(c.getInsurancePolicyProduct))
}

func (c *ProductController) createLoanProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateLoanProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.LoanProductResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateLoanProduct(r.Context(), req)
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *ProductController) getLoanProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetLoanProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *ProductController) listLoanProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListLoanProducts(r.Context())
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *ProductController) createInvestmentProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateInvestmentProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.InvestmentProductResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateInvestmentProduct(r.Context(), req)
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *ProductController) getInvestmentProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetInvestmentProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *ProductController) listInvestmentProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListInvestmentProducts(r.Context())
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *ProductController) createInsurancePolicyProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateInsurancePolicyProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.InsurancePolicyProductResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateInsurancePolicyProduct(r.Context(), req)
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *ProductController) getInsurancePolicyProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetInsurancePolicyProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *ProductController) listInsurancePolicyProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListInsurancePolicyProducts(r.Context())
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
