package bulletin

import (
	"github.com/parishdesk/parishdesk/modules/bulletin/infrastructure/persistence"
	"github.com/parishdesk/parishdesk/modules/bulletin/presentation/controllers"
	"github.com/parishdesk/parishdesk/modules/bulletin/services"
	"github.com/parishdesk/parishdesk/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewAnnouncementService(persistence.NewAnnouncementRepository()),
	)

	app.RegisterControllers(
		controllers.NewBulletinAPIController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "bulletin"
}
