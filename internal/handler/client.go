package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
)

// clientRequest is the JSON body for creating or updating a client.
type clientRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Company *string `json:"company,omitempty"`
	Country *string `json:"country,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// clientPage is the paginated list envelope.
type clientPage struct {
	Data       []domain.Client `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

// CreateClient handles POST /api/clients.
func (s *Server) CreateClient(w http.ResponseWriter, r *http.Request) {
	var body clientRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body")
		return
	}

	created, err := s.clients.Create(r.Context(), requestToClient(body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListClients handles GET /api/clients.
func (s *Server) ListClients(w http.ResponseWriter, r *http.Request) {
	params := pageParams(r)
	clients, total, err := s.clients.ListPaged(r.Context(), params)
	if err != nil {
		respondInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, clientPage{
		Data:       clients,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetClient handles GET /api/clients/{id}.
func (s *Server) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondNotFound(w, "client not found")
		return
	}

	client, err := s.clients.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "client not found")
			return
		}
		respondInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// UpdateClient handles PUT /api/clients/{id}.
func (s *Server) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondNotFound(w, "client not found")
		return
	}

	var body clientRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body")
		return
	}

	client := requestToClient(body)
	client.ID = id

	updated, err := s.clients.Update(r.Context(), client)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "client not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteClient handles DELETE /api/clients/{id}.
func (s *Server) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondNotFound(w, "client not found")
		return
	}

	if err := s.clients.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "client not found")
			return
		}
		respondInternal(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestToClient converts a clientRequest body into a domain.Client.
func requestToClient(body clientRequest) domain.Client {
	c := domain.Client{Name: body.Name}
	if body.Email != nil {
		c.Email = *body.Email
	}
	if body.Company != nil {
		c.Company = *body.Company
	}
	if body.Country != nil {
		c.Country = *body.Country
	}
	if body.Notes != nil {
		c.Notes = *body.Notes
	}
	return c
}
