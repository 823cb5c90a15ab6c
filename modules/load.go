package modules

import (
	"github.com/parishdesk/parishdesk/modules/bulletin"
	"github.com/parishdesk/parishdesk/modules/dataimport"
	"github.com/parishdesk/parishdesk/modules/directory"
	"github.com/parishdesk/parishdesk/modules/giving"
	"github.com/parishdesk/parishdesk/pkg/application"
)

var BuiltInModules = []application.Module{
	directory.NewModule(),
	giving.NewModule(),
	dataimport.NewModule(),
	bulletin.NewModule(),
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
