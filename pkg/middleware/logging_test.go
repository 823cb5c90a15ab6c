package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestWithLogger(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)

	r := mux.NewRouter()
	r.Use(WithLogger(logger))
	r.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("pong"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))

	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, "request started", entries[0].Message)

	completed := entries[1]
	require.Equal(t, "request completed", completed.Message)
	require.Equal(t, http.StatusTeapot, completed.Data["status"])
	require.Equal(t, int64(len("pong")), completed.Data["bytes"])
}
