package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// gearRequest is the JSON body accepted by CreateGearItem and UpdateGearItem.
type gearRequest struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	PurchaseDate string          `json:"purchase_date"`
	Photo        []byte          `json:"photo"`
}

// gearResponse is a gear item plus its display name.
type gearResponse struct {
	domain.GearItem
	DisplayName string `json:"display_name"`
}

func gearToResponse(g domain.GearItem) gearResponse {
	return gearResponse{GearItem: g, DisplayName: g.DisplayName()}
}

func requestToGear(req gearRequest) (domain.GearItem, error) {
	item := domain.GearItem{
		Name:  req.Name,
		Price: req.Price,
		Photo: req.Photo,
	}
	if req.PurchaseDate != "" {
		d, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return domain.GearItem{}, err
		}
		item.PurchaseDate = d
	}
	return item, nil
}

// CreateGearItem handles POST /gear.
func (s *Server) CreateGearItem(w http.ResponseWriter, r *http.Request) {
	var req gearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "invalid request body")
		return
	}

	item, err := requestToGear(req)
	if err != nil {
		requestError(w, "purchase_date must be formatted as YYYY-MM-DD")
		return
	}

	created, err := s.gear.Create(r.Context(), item)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, gearToResponse(created))
}

// ListGearItems handles GET /gear.
// Supports the same ?page= and ?limit= parameters as GET /trips.
func (s *Server) ListGearItems(w http.ResponseWriter, r *http.Request) {
	params := paginationFromQuery(r)

	items, err := s.gear.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	page := domain.Slice(items, params)
	data := make([]gearResponse, len(page))
	for i, g := range page {
		data[i] = gearToResponse(g)
	}

	writeJSON(w, http.StatusOK, listResponse[gearResponse]{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(items),
		},
	})
}

// GetGearItem handles GET /gear/{id}.
func (s *Server) GetGearItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		requestError(w, "invalid gear id")
		return
	}

	item, err := s.gear.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gearToResponse(item))
}

// UpdateGearItem handles PUT /gear/{id}.
func (s *Server) UpdateGearItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		requestError(w, "invalid gear id")
		return
	}

	var req gearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "invalid request body")
		return
	}

	item, err := requestToGear(req)
	if err != nil {
		requestError(w, "purchase_date must be formatted as YYYY-MM-DD")
		return
	}
	item.ID = id

	updated, err := s.gear.Update(r.Context(), item)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gearToResponse(updated))
}

// DeleteGearItem handles DELETE /gear/{id}.
func (s *Server) DeleteGearItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		requestError(w, "invalid gear id")
		return
	}

	if err := s.gear.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
