package modules

import (
	"github.com/louisbranch/atrium/internal/services/web/modules/api"
	"github.com/louisbranch/atrium/internal/services/web/modules/authpage"
	"github.com/louisbranch/atrium/internal/services/web/modules/dashboard"
	"github.com/louisbranch/atrium/internal/services/web/modules/home"
	"github.com/louisbranch/atrium/internal/services/web/modules/locale"
)

// Default returns the web modules in mount order.
func Default() []Module {
	return []Module{
		home.New(),
		authpage.New(),
		dashboard.New(),
		locale.New(),
		api.New(),
	}
}
