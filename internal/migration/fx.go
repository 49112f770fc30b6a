package migration

import (
	"github.com/pricedesk/supmap/internal/config"
	issuedomain "github.com/pricedesk/supmap/internal/issue/domain"
	mappingdomain "github.com/pricedesk/supmap/internal/mapping/domain"
	moderationdomain "github.com/pricedesk/supmap/internal/moderation/domain"
	pricelistdomain "github.com/pricedesk/supmap/internal/pricelist/domain"
	sellertokendomain "github.com/pricedesk/supmap/internal/sellertoken/domain"
	supplierdomain "github.com/pricedesk/supmap/internal/supplier/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		// The versioned migrations are written for postgres. Other
		// dialects (sqlite for local runs, mysql) get the schema from
		// the models instead.
		return conn.AutoMigrate(
			&supplierdomain.Supplier{},
			&pricelistdomain.PriceItem{},
			&pricelistdomain.SupplierGroup{},
			&mappingdomain.SupplierMapping{},
			&moderationdomain.Event{},
			&issuedomain.SellerIssue{},
			&sellertokendomain.SellerToken{},
		)
	}),
)
