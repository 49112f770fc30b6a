package sellertoken

import (
	"github.com/pricedesk/supmap/internal/sellertoken/repository"
	"github.com/pricedesk/supmap/internal/sellertoken/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sellertoken.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
