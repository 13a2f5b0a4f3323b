package handlers

import (
	"net/http"

	"github.com/clearbooks/backend/internal/services"
)

type ReportHandler struct {
	service *services.LedgerService
}

func NewReportHandler(service *services.LedgerService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetTrialBalance returns the trial balance
// @Summary Trial balance
// @Description Every account balance split into debit/credit columns
// @Tags reports
// @Produce json
// @Success 200 {object} models.TrialBalance
// @Router /reports/trial-balance [get]
func (h *ReportHandler) GetTrialBalance(w http.ResponseWriter, r *http.Request) {
	services.SendJSONResponse(w, http.StatusOK, h.service.TrialBalance(r.Context()))
}

// GetBalanceSheet returns the balance sheet
// @Summary Balance sheet
// @Description Assets against liabilities, equity and net income
// @Tags reports
// @Produce json
// @Success 200 {object} models.BalanceSheet
// @Router /reports/balance-sheet [get]
func (h *ReportHandler) GetBalanceSheet(w http.ResponseWriter, r *http.Request) {
	services.SendJSONResponse(w, http.StatusOK, h.service.BalanceSheet(r.Context()))
}

// GetIncomeStatement returns the income statement
// @Summary Income statement
// @Description Revenue minus expenses, optionally over a date range
// @Tags reports
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.IncomeStatement
// @Failure 400 {object} services.ErrorResponse
// @Router /reports/income-statement [get]
func (h *ReportHandler) GetIncomeStatement(w http.ResponseWriter, r *http.Request) {
	startDate, err := parseDateParam(r, "start_date")
	if err != nil {
		services.SendErrorResponse(w, "Invalid start_date", http.StatusBadRequest, nil)
		return
	}
	endDate, err := parseDateParam(r, "end_date")
	if err != nil {
		services.SendErrorResponse(w, "Invalid end_date", http.StatusBadRequest, nil)
		return
	}

	services.SendJSONResponse(w, http.StatusOK, h.service.IncomeStatement(r.Context(), startDate, endDate))
}

// GetSummary returns the flattened account summary
// @Summary Account summary
// @Description Per-type totals with the accounting equation check
// @Tags reports
// @Produce json
// @Success 200 {object} models.Summary
// @Router /reports/summary [get]
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	services.SendJSONResponse(w, http.StatusOK, h.service.Summary(r.Context()))
}
