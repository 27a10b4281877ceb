package httpapi

import (
	"net/http"

	"github.com/Usmantahir0707/Luxe-Bags/internal/phone"
)

// PhoneHandler serves the dial-code registry and as-you-type formatting the
// checkout phone field consumes.
type PhoneHandler struct{}

type PhoneNumberDTO struct {
	Number    string `json:"number"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
	Country   string `json:"country,omitempty"`
}

func (PhoneHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, phone.Countries())
}

func (PhoneHandler) InspectNumber(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	if number == "" {
		respondError(w, http.StatusBadRequest, "invalid_number", "number query parameter is required")
		return
	}

	dto := PhoneNumberDTO{
		Number:    phone.Normalize(number),
		Formatted: phone.Format(number),
		Valid:     phone.Valid(number),
	}
	if country, ok := phone.Match(number); ok {
		dto.Country = country.ISO
	}
	respondJSON(w, http.StatusOK, dto)
}
