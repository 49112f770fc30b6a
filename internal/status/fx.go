package status

import (
	"github.com/pricedesk/supmap/internal/status/service"
	"go.uber.org/fx"
)

var Module = fx.Module("status.service",
	fx.Provide(service.New),
)
