package directory

import (
	"github.com/parishdesk/parishdesk/modules/directory/infrastructure/persistence"
	"github.com/parishdesk/parishdesk/modules/directory/presentation/controllers"
	"github.com/parishdesk/parishdesk/modules/directory/services"
	"github.com/parishdesk/parishdesk/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	householdRepo := persistence.NewHouseholdRepository()
	memberRepo := persistence.NewMemberRepository()

	app.RegisterServices(
		services.NewHouseholdService(householdRepo, memberRepo),
		services.NewMemberService(memberRepo),
	)

	app.RegisterControllers(
		controllers.NewDirectoryAPIController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "directory"
}
