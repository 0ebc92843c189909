package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ItemGateway/internal/auth"
	"ItemGateway/internal/config"
	"ItemGateway/internal/model"
	"ItemGateway/internal/repo"
	"ItemGateway/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService *service.UserService
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, ItemService: itemService, Logger: logger, Config: cfg}
}

type currentUserResponse struct {
	UserID string `json:"userId"`
}

// CurrentUser резолвит Authorization: Bearer <token> в id пользователя.
func (h *UserHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.CurrentUser(r.Context(), r.Header.Get("Authorization"))
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		writeError(w, r, http.StatusUnauthorized, "missing bearer token")
		return
	case errors.Is(err, auth.ErrInvalidToken):
		writeBackendError(w, r, http.StatusUnauthorized, "invalid or expired token", err)
		return
	case err != nil:
		h.Logger.Errorw("CurrentUser: auth service error", "error", err)
		writeBackendError(w, r, http.StatusInternalServerError, "failed to verify token", err)
		return
	}
	render.JSON(w, r, currentUserResponse{UserID: u.ID})
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	p, err := h.UserService.GetProfile(r.Context(), userID)
	switch {
	case errors.Is(err, service.ErrMissingID):
		writeError(w, r, http.StatusBadRequest, "user id is required")
		return
	case errors.Is(err, repo.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "profile not found")
		return
	case err != nil:
		h.Logger.Errorw("GetProfile: backend error", "user_id", userID, "error", err)
		writeBackendError(w, r, http.StatusInternalServerError, "failed to fetch profile", err)
		return
	}
	render.JSON(w, r, p)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	var req model.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateProfile: invalid request body", "user_id", userID, "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.UserService.UpdateProfile(r.Context(), userID, req)
	switch {
	case errors.Is(err, service.ErrMissingID):
		writeError(w, r, http.StatusBadRequest, "user id is required")
		return
	case errors.Is(err, service.ErrEmptyUpdate):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.Logger.Errorw("UpdateProfile: backend error", "user_id", userID, "error", err)
		writeBackendError(w, r, http.StatusInternalServerError, "failed to update profile", err)
		return
	}
	render.JSON(w, r, MessageResponse{Message: "profile updated"})
}

// ListItems: записи владельца по ?user_id= (обязателен) и ?situation=.
func (h *UserHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.ItemService.ListByOwner(r.Context(), q.Get("user_id"), q.Get("situation"))
	switch {
	case errors.Is(err, service.ErrMissingParam):
		writeError(w, r, http.StatusBadRequest, "user_id query parameter is required")
		return
	case err != nil:
		h.Logger.Warnw("ListItems: backend error", "user_id", q.Get("user_id"), "error", err)
		writeBackendError(w, r, http.StatusBadRequest, "failed to list items", err)
		return
	}
	render.JSON(w, r, items)
}
