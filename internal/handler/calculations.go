package handler

import (
	"net/http"
)

// GetTaxResidency handles GET /api/trips/calculations/tax-residency.
// Returns the per-country 183-day rule evaluation sorted highest-risk first.
// ?as_of=YYYY-MM-DD overrides the reference date (defaults to today, UTC).
func (s *Server) GetTaxResidency(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "as_of must be a YYYY-MM-DD date")
		return
	}

	result, err := s.compliance.TaxResidency(r.Context(), asOf)
	if err != nil {
		respondInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetSchengen handles GET /api/trips/calculations/schengen.
func (s *Server) GetSchengen(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "as_of must be a YYYY-MM-DD date")
		return
	}

	result, err := s.compliance.Schengen(r.Context(), asOf)
	if err != nil {
		respondInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetTravelSummary handles GET /api/trips/calculations/summary.
func (s *Server) GetTravelSummary(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "as_of must be a YYYY-MM-DD date")
		return
	}

	result, err := s.compliance.Summary(r.Context(), asOf)
	if err != nil {
		respondInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
