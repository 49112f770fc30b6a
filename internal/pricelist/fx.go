package pricelist

import (
	"github.com/pricedesk/supmap/internal/pricelist/repository"
	"github.com/pricedesk/supmap/internal/pricelist/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pricelist.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
