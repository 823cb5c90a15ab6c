package httpapi

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parishdesk/parishdesk/pkg/configuration"
)

func TestPagination(t *testing.T) {
	conf := configuration.Use()

	cases := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", conf.PageSize, 0},
		{"explicit", "?limit=40&offset=80", 40, 80},
		{"limit over cap falls back", "?limit=500", conf.PageSize, 0},
		{"zero limit falls back", "?limit=0", conf.PageSize, 0},
		{"garbage falls back", "?limit=abc&offset=-3", conf.PageSize, 0},
		{"at cap", "?limit=100", conf.MaxPageSize, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/households"+tc.query, nil)
			limit, offset := Pagination(r)
			require.Equal(t, tc.wantLimit, limit)
			require.Equal(t, tc.wantOffset, offset)
		})
	}
}
