package http

import "net/http"

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	month, err := queryMonth(r)
	if err != nil {
		writeError(w, err)
		return
	}
	stats, err := h.reports.Dashboard(r.Context(), owner, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	month, err := queryMonth(r)
	if err != nil {
		writeError(w, err)
		return
	}
	report, err := h.reports.MonthlyReport(r.Context(), owner, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
