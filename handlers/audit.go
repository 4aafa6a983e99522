package handlers

import (
    "net/http"

    "rentadmin-go/models"
)

func (h *Handlers) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
    page, limit := pageParams(r, 20)

    logs, total, err := h.audits.History(page, limit)
    if err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to fetch audit logs", err.Error())
        return
    }

    sendJSON(w, http.StatusOK, models.AuditPage{
        Logs:  logs,
        Total: total,
        Page:  page,
        Limit: limit,
    })
}
