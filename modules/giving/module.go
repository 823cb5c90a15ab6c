package giving

import (
	"github.com/parishdesk/parishdesk/modules/giving/infrastructure/persistence"
	"github.com/parishdesk/parishdesk/modules/giving/presentation/controllers"
	"github.com/parishdesk/parishdesk/modules/giving/services"
	"github.com/parishdesk/parishdesk/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewDonationService(persistence.NewDonationRepository()),
	)

	app.RegisterControllers(
		controllers.NewGivingAPIController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "giving"
}
