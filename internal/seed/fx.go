package seed

import (
	"context"

	"github.com/pricedesk/supmap/internal/config"
	pricelistdomain "github.com/pricedesk/supmap/internal/pricelist/domain"
	sellertokendomain "github.com/pricedesk/supmap/internal/sellertoken/domain"
	supplierdomain "github.com/pricedesk/supmap/internal/supplier/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config    config.Config
	DB        *gorm.DB
	Log       *zap.Logger
	Suppliers supplierdomain.Service
	Groups    pricelistdomain.Repository
	Importer  pricelistdomain.Service
	Tokens    sellertokendomain.Service
}

var Module = fx.Module("seed",
	fx.Invoke(func(p Params) error {
		if !p.Config.SeedDemo {
			return nil
		}
		return EnsureDemoData(
			context.Background(),
			p.DB,
			p.Log.Named("seed"),
			p.Suppliers,
			p.Groups,
			p.Importer,
			p.Tokens,
		)
	}),
)
