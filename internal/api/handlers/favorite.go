package handlers

import (
	"net/http"
	"strings"

	"github.com/dom/snowseeker/internal/domain"
	"github.com/dom/snowseeker/internal/service"
	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

type FavoriteStatusResponse struct {
	ResortID   string `json:"resortId"`
	IsFavorite bool   `json:"isFavorite"`
}

type FavoritesResponse struct {
	IDs     []string        `json:"ids"`
	Resorts []domain.Resort `json:"resorts"`
}

// Add marks a resort as favorite. Storage failures are absorbed by the store,
// so this always succeeds once the id is present.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := resortIDParam(w, r, "favorite.Add")
	if !ok {
		return
	}

	h.favoriteService.Add(r.Context(), id)
	writeJSON(w, FavoriteStatusResponse{ResortID: id, IsFavorite: h.favoriteService.IsFavorite(id)})
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := resortIDParam(w, r, "favorite.Remove")
	if !ok {
		return
	}

	h.favoriteService.Remove(r.Context(), id)
	writeJSON(w, FavoriteStatusResponse{ResortID: id, IsFavorite: h.favoriteService.IsFavorite(id)})
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	list := h.favoriteService.List(r.Context())
	writeJSON(w, FavoritesResponse{IDs: list.IDs, Resorts: list.Resorts})
}

// resortIDParam returns the id exactly as sent. Only blank ids are refused.
func resortIDParam(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	id := chi.URLParam(r, "id")
	if strings.TrimSpace(id) == "" {
		log.Errorf("[%s] missing resort id", op)
		http.Error(w, "Resort id required", http.StatusBadRequest)
		return "", false
	}
	return id, true
}
