package supplier

import (
	"github.com/pricedesk/supmap/internal/supplier/repository"
	"github.com/pricedesk/supmap/internal/supplier/service"
	"go.uber.org/fx"
)

var Module = fx.Module("supplier.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
