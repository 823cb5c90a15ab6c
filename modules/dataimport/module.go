package dataimport

import (
	"github.com/sirupsen/logrus"

	directorypersistence "github.com/parishdesk/parishdesk/modules/directory/infrastructure/persistence"
	givingpersistence "github.com/parishdesk/parishdesk/modules/giving/infrastructure/persistence"

	"github.com/parishdesk/parishdesk/modules/dataimport/presentation/controllers"
	"github.com/parishdesk/parishdesk/modules/dataimport/services"
	"github.com/parishdesk/parishdesk/pkg/application"
	"github.com/parishdesk/parishdesk/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()

	app.RegisterServices(
		services.NewImportService(
			directorypersistence.NewHouseholdRepository(),
			directorypersistence.NewMemberRepository(),
			givingpersistence.NewDonationRepository(),
			app.EventPublisher(),
			app.Logger(),
			conf.Import.MaxRows,
		),
	)

	app.RegisterControllers(
		controllers.NewUploadAPIController(app),
	)

	app.EventPublisher().Subscribe(func(e *services.ImportCompletedEvent) {
		app.Logger().WithFields(logrus.Fields{
			"entity":   e.Entity,
			"format":   e.Report.Format,
			"inserted": e.Report.Inserted,
			"updated":  e.Report.Updated,
			"skipped":  e.Report.Skipped,
			"errors":   e.Report.Errors,
			"total":    e.Report.Total,
		}).Info("spreadsheet import completed")
	})

	return nil
}

func (m *Module) Name() string {
	return "dataimport"
}
