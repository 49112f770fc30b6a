package moderation

import (
	"github.com/pricedesk/supmap/internal/moderation/repository"
	"github.com/pricedesk/supmap/internal/moderation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("moderation.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
