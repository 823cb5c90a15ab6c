package composables

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/parishdesk/parishdesk/pkg/constants"
)

// UseLogger returns the request-scoped fields logger, falling back to the
// standard logger when the middleware did not run.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logger.(*logrus.Entry)
}

// User identifies the authenticated caller as carried by the auth middleware.
type User struct {
	Subject string
	Email   string
	Role    string
}

func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, constants.UserKey, u)
}

func UseUser(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(constants.UserKey).(User)
	return u, ok
}
