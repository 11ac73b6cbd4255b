package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fortune-auction/gateway/internal/backend"
	"github.com/fortune-auction/gateway/internal/catalog"
	"github.com/fortune-auction/gateway/internal/model"
	"github.com/fortune-auction/gateway/internal/service"
	"github.com/fortune-auction/gateway/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const (
	subtypeParamKey = "subtype"
	jewelryParamKey = "jewelryId"
)

type CatalogHandler struct {
	svc service.CatalogServicer
	log *logger.Logger
}

func NewCatalogHandler(svc service.CatalogServicer, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
		log: log,
	}
}

// filterFromQuery maps the listing query params onto a filter state. Absent
// params stay inactive.
func filterFromQuery(q url.Values) catalog.Filter {
	f := catalog.Filter{
		Query:    q.Get("query"),
		GoldAge:  q.Get("goldAge"),
		Purity:   q.Get("purity"),
		Category: q.Get("category"),
		Material: q.Get("material"),
		Clarity:  q.Get("clarity"),
		Carat:    q.Get("carat"),
	}
	if v := q.Get("minWeight"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinWeight = &parsed
		}
	}
	if v := q.Get("maxWeight"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxWeight = &parsed
		}
	}
	return f
}

// Listings serves the member jewelry page: verified catalog, filtered and
// paginated three to a page.
func (h *CatalogHandler) Listings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := filterFromQuery(query)

	page := 1
	if v := query.Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			page = parsed
		}
	}

	result, err := h.svc.VerifiedListings(r.Context(), filter, page, catalog.DefaultPerPage)
	if err != nil {
		h.log.Errorw("[CATALOG] verified listings failed", "error", err)
		// degrade to an empty page instead of failing the view
		result = catalog.Page[model.JewelryItem]{Items: []model.JewelryItem{}, Number: 1, PerPage: catalog.DefaultPerPage}
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Listings fetched successfully", result)
}

// ModerationListings serves the staff view across all three subtype
// collections with the same filter engine, unpaginated.
func (h *CatalogHandler) ModerationListings(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r.URL.Query())

	items, err := h.svc.ModerationListings(r.Context(), filter)
	if err != nil {
		h.log.Errorw("[CATALOG] moderation listings failed", "error", err)
		items = []model.JewelryItem{}
	}
	if items == nil {
		items = []model.JewelryItem{}
	}

	resp := map[string]any{
		"jewelry": items,
	}
	RespondSuccessJSON(w, r, http.StatusOK, "Jewelry fetched successfully", resp)
}

// JewelryByID serves one jewelry detail by subtype and id.
func (h *CatalogHandler) JewelryByID(w http.ResponseWriter, r *http.Request) {
	subtype := model.Subtype(chi.URLParam(r, subtypeParamKey))
	if !subtype.Valid() {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrUnknownSubtype.Error(), "Unknown jewelry subtype", nil)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, jewelryParamKey))
	if err != nil || id <= 0 {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "Jewelry ID is required", nil)
		return
	}

	item, err := h.svc.JewelryByID(r.Context(), subtype, id)
	if err != nil {
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			RespondErrorJSON(w, r, http.StatusNotFound, ErrJewelryNotFound.Error(), "Jewelry not found", nil)
			return
		}
		h.log.Errorw("[CATALOG] jewelry fetch failed", "subtype", subtype, "jewelry_id", id, "error", err)
		RespondErrorJSON(w, r, http.StatusBadGateway, ErrBackend.Error(), "Failed to retrieve jewelry", nil)
		return
	}

	resp := map[string]any{
		"jewelry": item,
	}
	RespondSuccessJSON(w, r, http.StatusOK, "Jewelry fetched successfully", resp)
}
