package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ItemGateway/internal/config"
	"ItemGateway/internal/model"
	"ItemGateway/internal/repo"
	"ItemGateway/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// ItemHandler: CRUD по таблице items и составное удаление с фотографией.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// List отдаёт строки по фильтрам ?situation= и ?user_id=.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.ItemFilter{
		Situation: r.URL.Query().Get("situation"),
		UserID:    r.URL.Query().Get("user_id"),
	}
	items, err := h.ItemService.List(r.Context(), filter)
	if err != nil {
		h.Logger.Warnw("List: backend error", "situation", filter.Situation, "user_id", filter.UserID, "error", err)
		writeBackendError(w, r, http.StatusBadRequest, "failed to list items", err)
		return
	}
	render.JSON(w, r, items)
}

// Create вставляет одну запись.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.ItemService.Create(r.Context(), req)
	if err != nil {
		h.Logger.Warnw("Create: backend error", "error", err)
		writeBackendError(w, r, http.StatusBadRequest, "failed to create item", err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

// Update меняет только переданные name/situation.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req model.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "id", id, "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.ItemService.Update(r.Context(), id, req)
	switch {
	case errors.Is(err, service.ErrMissingID), errors.Is(err, service.ErrEmptyUpdate):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.Logger.Warnw("Update: backend error", "id", id, "error", err)
		writeBackendError(w, r, http.StatusBadRequest, "failed to update item", err)
		return
	}
	render.JSON(w, r, updated)
}

// Delete удаляет только строку.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.ItemService.Delete(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrMissingID):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.Logger.Warnw("Delete: backend error", "id", id, "error", err)
		writeBackendError(w, r, http.StatusBadRequest, "failed to delete item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteWithPhoto удаляет фото из bucket, затем строку. Ответ говорит, на каком шаге остановились.
func (h *ItemHandler) DeleteWithPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, err := h.ItemService.DeleteWithPhoto(r.Context(), id)
	if err != nil {
		h.writeDeleteError(w, r, id, err)
		return
	}
	h.Logger.Infow("DeleteWithPhoto: done", "id", id, "key", res.BlobKey)
	render.JSON(w, r, MessageResponse{Message: "item and photo deleted"})
}

func (h *ItemHandler) writeDeleteError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if errors.Is(err, service.ErrMissingID) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var stepErr *service.DeleteStepError
	if !errors.As(err, &stepErr) {
		h.Logger.Errorw("DeleteWithPhoto: unexpected error", "id", id, "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	switch stepErr.Step {
	case service.StepLookup:
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "item not found")
			return
		}
		h.Logger.Errorw("DeleteWithPhoto: lookup failed", "id", id, "error", err)
		writeBackendError(w, r, http.StatusInternalServerError, "failed to fetch item", stepErr.Err)
	case service.StepBlob:
		writeBackendError(w, r, http.StatusInternalServerError, "failed to remove photo; item was not deleted", stepErr.Err)
	case service.StepRow:
		writeBackendError(w, r, http.StatusInternalServerError, "photo removed but item deletion failed", stepErr.Err)
	}
}
