package server

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/parishdesk/parishdesk/pkg/application"
	"github.com/parishdesk/parishdesk/pkg/configuration"
	"github.com/parishdesk/parishdesk/pkg/constants"
	"github.com/parishdesk/parishdesk/pkg/middleware"
	"github.com/parishdesk/parishdesk/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	app.RegisterMiddleware(
		middleware.WithLogger(options.Logger),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.Cors(options.Configuration.Origin),
	)

	return server.NewHTTPServer(app), nil
}
