package http

import (
	"net/http"
	"time"

	"loan-compare/domain"
	"loan-compare/service"
)

type RatesHandler struct {
	rates *service.RateService
	now   func() time.Time
}

func NewRatesHandler(rates *service.RateService) *RatesHandler {
	return &RatesHandler{rates: rates, now: time.Now}
}

type ratesResponse struct {
	Table  domain.RateTable  `json:"rates"`
	Status domain.RateStatus `json:"status"`
}

func (h *RatesHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	table, err := h.rates.Table(nil)
	if err != nil {
		http.Error(w, "failed to load rates", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ratesResponse{Table: table, Status: table.Status(h.now())})
}

type personalizeRequest struct {
	Bank    domain.BankID      `json:"bank"`
	Profile domain.UserProfile `json:"profile"`
}

func (h *RatesHandler) Personalize(w http.ResponseWriter, r *http.Request) {
	var req personalizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.rates.Personalize(req.Bank, req.Profile)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
