package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dom/snowseeker/internal/catalog"
	"github.com/dom/snowseeker/internal/domain"
	"github.com/dom/snowseeker/internal/service"
	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

type ResortHandler struct {
	resortService *service.ResortService
}

func NewResortHandler(resortService *service.ResortService) *ResortHandler {
	return &ResortHandler{resortService: resortService}
}

type ResortResponse struct {
	domain.Resort
	IsFavorite bool `json:"isFavorite"`
}

type ResortsResponse struct {
	Resorts []ResortResponse `json:"resorts"`
	Total   int              `json:"total"`
}

type ResortDetailResponse struct {
	domain.Resort
	SizeLabel     string            `json:"sizeLabel"`
	PriceLabel    string            `json:"priceLabel"`
	FacilityTypes []domain.Facility `json:"facilityTypes"`
	IsFavorite    bool              `json:"isFavorite"`
}

type FacilitiesResponse struct {
	Facilities []domain.Facility `json:"facilities"`
}

func (h *ResortHandler) List(w http.ResponseWriter, r *http.Request) {
	order, err := catalog.ParseSortOrder(r.URL.Query().Get("sort"))
	if err != nil {
		log.Errorf("[resort.List] sort=%q: %v", r.URL.Query().Get("sort"), err)
		http.Error(w, "Invalid sort order", http.StatusBadRequest)
		return
	}

	summaries, err := h.resortService.List(r.Context(), service.ListResortsInput{
		Query: r.URL.Query().Get("q"),
		Sort:  order,
	})
	if err != nil {
		log.Errorf("[resort.List]: %v", err)
		http.Error(w, "Failed to list resorts", http.StatusInternalServerError)
		return
	}

	resp := ResortsResponse{
		Resorts: make([]ResortResponse, len(summaries)),
		Total:   h.resortService.Count(),
	}
	for i, s := range summaries {
		resp.Resorts[i] = ResortResponse{Resort: s.Resort, IsFavorite: s.IsFavorite}
	}

	writeJSON(w, resp)
}

func (h *ResortHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.resortService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrResortNotFound) {
			log.Warnf("[resort.Get] resortID=%s: %v", id, err)
			http.Error(w, "Resort not found", http.StatusNotFound)
			return
		}
		log.Errorf("[resort.Get] resortID=%s: %v", id, err)
		http.Error(w, "Failed to get resort", http.StatusInternalServerError)
		return
	}

	writeJSON(w, ResortDetailResponse{
		Resort:        detail.Resort,
		SizeLabel:     detail.SizeLabel,
		PriceLabel:    detail.PriceLabel,
		FacilityTypes: detail.FacilityTypes,
		IsFavorite:    detail.IsFavorite,
	})
}

func (h *ResortHandler) Facilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, FacilitiesResponse{Facilities: h.resortService.Facilities()})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}
