package adminauth

import (
	"github.com/pricedesk/supmap/internal/adminauth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("adminauth.service",
	fx.Provide(service.New),
)
