package issue

import (
	"github.com/pricedesk/supmap/internal/issue/repository"
	"github.com/pricedesk/supmap/internal/issue/service"
	"go.uber.org/fx"
)

var Module = fx.Module("issue.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
