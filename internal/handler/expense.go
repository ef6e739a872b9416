package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
)

// expenseRequest is the JSON body for creating or updating an expense.
type expenseRequest struct {
	Category    string             `json:"category"`
	Description *string            `json:"description,omitempty"`
	AmountCents int64              `json:"amount_cents"`
	Currency    string             `json:"currency"`
	Date        openapi_types.Date `json:"date"`
}

// expenseResponse is the JSON representation of an expense.
type expenseResponse struct {
	ID          uuid.UUID          `json:"id"`
	Category    string             `json:"category"`
	Description *string            `json:"description,omitempty"`
	AmountCents int64              `json:"amount_cents"`
	Currency    string             `json:"currency"`
	Date        openapi_types.Date `json:"date"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// expensePage is the paginated list envelope.
type expensePage struct {
	Data       []expenseResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// CreateExpense handles POST /api/expenses.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var body expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body")
		return
	}

	created, err := s.expenses.Create(r.Context(), requestToExpense(body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, expenseToResponse(created))
}

// ListExpenses handles GET /api/expenses.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	params := pageParams(r)
	expenses, total, err := s.expenses.ListPaged(r.Context(), params)
	if err != nil {
		respondInternal(w, r, err)
		return
	}

	data := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		data[i] = expenseToResponse(e)
	}
	writeJSON(w, http.StatusOK, expensePage{
		Data:       data,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetExpense handles GET /api/expenses/{id}.
func (s *Server) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondNotFound(w, "expense not found")
		return
	}

	expense, err := s.expenses.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "expense not found")
			return
		}
		respondInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, expenseToResponse(expense))
}

// UpdateExpense handles PUT /api/expenses/{id}.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondNotFound(w, "expense not found")
		return
	}

	var body expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body")
		return
	}

	expense := requestToExpense(body)
	expense.ID = id

	updated, err := s.expenses.Update(r.Context(), expense)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "expense not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, expenseToResponse(updated))
}

// DeleteExpense handles DELETE /api/expenses/{id}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondNotFound(w, "expense not found")
		return
	}

	if err := s.expenses.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "expense not found")
			return
		}
		respondInternal(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestToExpense converts an expenseRequest body into a domain.Expense.
func requestToExpense(body expenseRequest) domain.Expense {
	e := domain.Expense{
		Category:    body.Category,
		AmountCents: body.AmountCents,
		Currency:    body.Currency,
		Date:        body.Date.Time,
	}
	if body.Description != nil {
		e.Description = *body.Description
	}
	return e
}

// expenseToResponse converts a domain.Expense into its wire representation.
func expenseToResponse(e domain.Expense) expenseResponse {
	resp := expenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		AmountCents: e.AmountCents,
		Currency:    e.Currency,
		Date:        openapi_types.Date{Time: e.Date},
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Description != "" {
		resp.Description = &e.Description
	}
	return resp
}
