package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/pricedesk/supmap/internal/config"
	"github.com/pricedesk/supmap/internal/migration"
	"github.com/pricedesk/supmap/internal/observability"
	"github.com/pricedesk/supmap/internal/seed"
	"github.com/pricedesk/supmap/internal/server"
	"github.com/pricedesk/supmap/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
		seed.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
