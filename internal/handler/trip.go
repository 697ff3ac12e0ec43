package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// tripRequest is the JSON body accepted by CreateTrip and UpdateTrip.
// Dates travel as "2006-01-02" strings; amounts as JSON numbers or
// numeric strings (decimal.Decimal accepts both).
type tripRequest struct {
	Date     *string `json:"date"`
	Location string  `json:"location"`

	Fuel       decimal.Decimal `json:"fuel"`
	Bait       decimal.Decimal `json:"bait"`
	License    decimal.Decimal `json:"license"`
	BoatRental decimal.Decimal `json:"boat_rental"`
	Food       decimal.Decimal `json:"food"`
	Other      decimal.Decimal `json:"other"`

	IncomeFromSale decimal.Decimal `json:"income_from_sale"`

	Notes        string   `json:"notes"`
	FishCaught   string   `json:"fish_caught"`
	Weather      string   `json:"weather"`
	TemperatureC *float64 `json:"temperature_c"`
	Photo        []byte   `json:"photo"`
}

// tripResponse is a trip plus its derived figures. The derived fields are
// computed on every read, never stored.
type tripResponse struct {
	domain.Trip
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	NetBalance      decimal.Decimal `json:"net_balance"`
	DisplayLocation string          `json:"display_location"`
}

func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		Trip:            t,
		TotalExpenses:   t.TotalExpenses(),
		NetBalance:      t.NetBalance(),
		DisplayLocation: t.DisplayLocation(),
	}
}

// requestToTrip maps a request body onto a domain trip. An empty or
// missing date becomes nil (date unknown), never a zero time.
func requestToTrip(req tripRequest) (domain.Trip, error) {
	trip := domain.Trip{
		Location:       req.Location,
		Fuel:           req.Fuel,
		Bait:           req.Bait,
		License:        req.License,
		BoatRental:     req.BoatRental,
		Food:           req.Food,
		Other:          req.Other,
		IncomeFromSale: req.IncomeFromSale,
		Notes:          req.Notes,
		FishCaught:     req.FishCaught,
		Weather:        req.Weather,
		TemperatureC:   req.TemperatureC,
		Photo:          req.Photo,
	}
	if req.Date != nil && *req.Date != "" {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return domain.Trip{}, err
		}
		trip.Date = &d
	}
	return trip, nil
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "invalid request body")
		return
	}

	trip, err := requestToTrip(req)
	if err != nil {
		requestError(w, "date must be formatted as YYYY-MM-DD")
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := paginationFromQuery(r)

	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	page := domain.Slice(trips, params)
	data := make([]tripResponse, len(page))
	for i, t := range page {
		data[i] = tripToResponse(t)
	}

	writeJSON(w, http.StatusOK, listResponse[tripResponse]{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(trips),
		},
	})
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		requestError(w, "invalid trip id")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		requestError(w, "invalid trip id")
		return
	}

	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "invalid request body")
		return
	}

	trip, err := requestToTrip(req)
	if err != nil {
		requestError(w, "date must be formatted as YYYY-MM-DD")
		return
	}
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		requestError(w, "invalid trip id")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listResponse is the envelope every paginated list endpoint returns.
type listResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// paginationFromQuery reads optional ?page= and ?limit= query parameters.
// Unparsable values fall back to the defaults.
func paginationFromQuery(r *http.Request) domain.PaginationParams {
	var page, limit *int
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = &n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = &n
		}
	}
	return domain.NewPaginationParams(page, limit)
}
