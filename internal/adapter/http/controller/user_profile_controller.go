package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/commons"
)

type UserProfileService interface {
	CreateUserProfile(ctx context.Context, req models.CreateUserProfileRequest) (commons.Response[models.UserProfileResponse], error)
	GetUserProfile(ctx context.Context, id string) (commons.Response[models.UserProfileResponse], error)
}

type UserProfileController struct {
	service UserProfileService
}

func NewUserProfileController(service UserProfileService) *UserProfileController {
	return &UserProfileController{service: service}
}

func (c *UserProfileController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /user-profiles", wrap(c.createUserProfile))
	mux.Handle("GET /user-profiles/{id}", wrap(c.getUserProfile))
}

func (c *UserProfileController) createUserProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateUserProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.UserProfileResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateUserProfile(r.Context(), req)
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *UserProfileController) getUserProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetUserProfile(r.Context(), r.PathValue("id"))
	if err != nil {
		status := statusForServiceError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
