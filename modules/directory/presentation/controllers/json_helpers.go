package controllers

import (
	"net/http"
	"time"

	"github.com/parishdesk/parishdesk/pkg/composables"
	"github.com/parishdesk/parishdesk/pkg/httpapi"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	_ = httpapi.WriteJSON(w, status, payload)
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	if status >= http.StatusInternalServerError {
		composables.UseLogger(r.Context()).WithField("code", code).Error(message)
	}
	_ = httpapi.WriteError(w, status, code, message, nil)
}

func dateString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
