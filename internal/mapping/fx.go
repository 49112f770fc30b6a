package mapping

import (
	"github.com/pricedesk/supmap/internal/mapping/repository"
	"github.com/pricedesk/supmap/internal/mapping/service"
	"go.uber.org/fx"
)

var Module = fx.Module("mapping.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
