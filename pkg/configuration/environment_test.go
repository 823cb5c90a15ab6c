package configuration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImportOptionsValidate(t *testing.T) {
	require.NoError(t, (&ImportOptions{MaxRows: 1}).Validate())
	require.NoError(t, (&ImportOptions{MaxRows: 10000}).Validate())
	require.Error(t, (&ImportOptions{MaxRows: 0}).Validate())
	require.Error(t, (&ImportOptions{MaxRows: -1}).Validate())
}

func TestLogrusLogLevel(t *testing.T) {
	cases := map[string]string{
		"silent": "panic",
		"error":  "error",
		"warn":   "warning",
		"info":   "info",
		"debug":  "debug",
		"bogus":  "error",
		"":       "error",
	}
	for in, want := range cases {
		c := &Configuration{LogLevel: in}
		require.Equal(t, want, c.LogrusLogLevel().String(), "level %q", in)
	}
}

func TestDatabaseConnectionString(t *testing.T) {
	d := &DatabaseOptions{
		Name:     "parishdesk",
		Host:     "db.local",
		Port:     "5433",
		User:     "app",
		Password: "secret",
	}
	require.Equal(t,
		"host=db.local port=5433 user=app dbname=parishdesk password=secret sslmode=disable",
		d.ConnectionString(),
	)
}
