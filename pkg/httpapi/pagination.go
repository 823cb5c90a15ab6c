package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/parishdesk/parishdesk/pkg/configuration"
)

// Pagination reads `limit` and `offset` from the query string. The limit
// defaults to PAGE_SIZE and is capped at MAX_PAGE_SIZE; values that do not
// parse fall back to the defaults.
func Pagination(r *http.Request) (limit, offset int) {
	conf := configuration.Use()
	limit = conf.PageSize
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= conf.MaxPageSize {
			limit = parsed
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("offset")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}
