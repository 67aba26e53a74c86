package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"agrishare-backend/internal/domain"
	"agrishare-backend/internal/service"

	"github.com/gorilla/mux"
)

type ResourceHandler struct {
	resources service.ResourceService
}

func NewResourceHandler(resources service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

type createResourceRequest struct {
	OwnerID     int32   `json:"owner_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ListingType string  `json:"listing_type"`
	Condition   string  `json:"condition"`
	AgeYears    int32   `json:"age_years"`
	Quality     int32   `json:"quality"`
	ImageURL    string  `json:"image_url"`
	Location    string  `json:"location"`
}

func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}

	resource := &domain.Resource{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		ListingType: domain.ListingType(req.ListingType),
		Condition:   req.Condition,
		AgeYears:    req.AgeYears,
		Quality:     req.Quality,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
	}
	if err := h.resources.ListResource(r.Context(), resource); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resource)
}

func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}

	resource, err := h.resources.GetResource(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resource)
}

func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	category := r.URL.Query().Get("category")
	listingType := r.URL.Query().Get("listing_type")

	resources, total, err := h.resources.ListAvailable(r.Context(), category, listingType, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: resources, Total: total, Page: page})
}

func (h *ResourceHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	page, pageSize := pagination(r)

	resources, total, err := h.resources.ListMyResources(r.Context(), ownerID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: resources, Total: total, Page: page})
}

type updateResourceRequest struct {
	OwnerID     int32    `json:"owner_id"`
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Condition   *string  `json:"condition"`
	AgeYears    *int32   `json:"age_years"`
	Quality     *int32   `json:"quality"`
	ImageURL    *string  `json:"image_url"`
	Location    *string  `json:"location"`
	IsAvailable *bool    `json:"is_available"`
}

func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}

	fields := service.ResourceUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		AgeYears:    req.AgeYears,
		Quality:     req.Quality,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		IsAvailable: req.IsAvailable,
	}
	resource, err := h.resources.UpdateResource(r.Context(), id, req.OwnerID, fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resource)
}

func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}

	ownerID, err := strconv.ParseInt(r.URL.Query().Get("owner_id"), 10, 32)
	if err != nil || ownerID <= 0 {
		writeError(w, domain.ErrValidation)
		return
	}

	if err := h.resources.RemoveResource(r.Context(), id, int32(ownerID)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
