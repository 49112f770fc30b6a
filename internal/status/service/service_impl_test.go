package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	mappingdomain "github.com/pricedesk/supmap/internal/mapping/domain"
	mappingrepo "github.com/pricedesk/supmap/internal/mapping/repository"
	mappingservice "github.com/pricedesk/supmap/internal/mapping/service"
	moderationrepo "github.com/pricedesk/supmap/internal/moderation/repository"
	pricelistdomain "github.com/pricedesk/supmap/internal/pricelist/domain"
	pricelistrepo "github.com/pricedesk/supmap/internal/pricelist/repository"
	"github.com/pricedesk/supmap/internal/status/domain"
	supplierdomain "github.com/pricedesk/supmap/internal/supplier/domain"
	supplierrepo "github.com/pricedesk/supmap/internal/supplier/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type fixture struct {
	svc       *Service
	mappings  mappingdomain.Service
	db        *gorm.DB
	node      *snowflake.Node
	suppliers supplierdomain.Repository
	groups    pricelistdomain.Repository
}

func newFixture(t *testing.T, name string) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS suppliers (
			id BIGINT PRIMARY KEY,
			supplier TEXT NOT NULL,
			inn TEXT NOT NULL,
			kpp TEXT, country TEXT, city TEXT, address TEXT, url TEXT, branch TEXT,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS supplier_groups (
			id BIGINT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			packet_id TEXT NOT NULL,
			inn_norm TEXT,
			std_supplier_raw TEXT NOT NULL,
			items_count BIGINT NOT NULL DEFAULT 0,
			inn_invalid BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS supplier_mappings (
			id BIGINT PRIMARY KEY,
			group_id BIGINT NOT NULL,
			canonical_supplier_id BIGINT NOT NULL,
			owner_id TEXT NOT NULL,
			packet_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			approved_at TIMESTAMP,
			approved_by TEXT,
			rejected_at TIMESTAMP,
			rejected_by TEXT,
			reject_reason TEXT,
			std_supplier_raw TEXT NOT NULL DEFAULT '',
			inn_norm TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS moderation_events (
			id BIGINT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			packet_id TEXT NOT NULL,
			supplier_group_id BIGINT NOT NULL,
			mapping_id BIGINT,
			decision TEXT NOT NULL,
			decided_at TIMESTAMP NOT NULL,
			decided_by TEXT NOT NULL,
			reject_reason_code TEXT,
			reject_reason_label TEXT,
			reject_comment_internal TEXT
		)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	log := zaptest.NewLogger(t)
	groups := pricelistrepo.Provide()
	mappings := mappingrepo.Provide()
	suppliers := supplierrepo.Provide()
	ledger := moderationrepo.Provide()

	svc := &Service{
		db:        db,
		log:       log,
		groups:    groups,
		mappings:  mappings,
		ledger:    ledger,
		suppliers: suppliers,
	}

	mappingSvc := mappingservice.New(mappingservice.Params{
		DB:        db,
		Log:       log,
		GenID:     node,
		Repo:      mappings,
		Groups:    groups,
		Suppliers: suppliers,
		Ledger:    ledger,
	})

	return &fixture{
		svc:       svc,
		mappings:  mappingSvc,
		db:        db,
		node:      node,
		suppliers: suppliers,
		groups:    groups,
	}
}

func (f *fixture) seedSupplier(t *testing.T, name, inn string) snowflake.ID {
	t.Helper()
	supplier := supplierdomain.Supplier{
		ID:        f.node.Generate(),
		Name:      name,
		INN:       inn,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.suppliers.Insert(context.Background(), f.db, &supplier))
	return supplier.ID
}

func (f *fixture) seedGroup(t *testing.T, ownerID, packetID, innNorm, name string) snowflake.ID {
	t.Helper()
	now := time.Now().UTC()
	group := pricelistdomain.SupplierGroup{
		ID:             f.node.Generate(),
		OwnerID:        ownerID,
		PacketID:       packetID,
		StdSupplierRaw: name,
		ItemsCount:     3,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if innNorm != "" {
		group.INNNorm = &innNorm
	}
	require.NoError(t, f.groups.InsertGroup(context.Background(), f.db, &group))
	return group.ID
}

func TestListGroupsUnmapped(t *testing.T) {
	f := newFixture(t, "status_unmapped")

	f.seedGroup(t, "owner-1", "packet-1", "7701234567", "Росско филиал")

	groups, err := f.svc.ListGroups(context.Background(), "owner-1", "packet-1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, domain.StatusUnmapped, groups[0].Status)
	assert.Nil(t, groups[0].LatestStatus)
	assert.Nil(t, groups[0].CanonicalSupplier)
}

func TestListGroupsScoped(t *testing.T) {
	f := newFixture(t, "status_scoped")

	f.seedGroup(t, "owner-1", "packet-1", "7701234567", "Росско филиал")
	f.seedGroup(t, "owner-2", "packet-2", "7807654321", "Берг")

	groups, err := f.svc.ListGroups(context.Background(), "owner-1", "packet-1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Росско филиал", groups[0].StdSupplierRaw)
}

func TestListGroupsPending(t *testing.T) {
	f := newFixture(t, "status_pending")
	ctx := context.Background()

	supplierID := f.seedSupplier(t, "Росско", "7701234567")
	groupID := f.seedGroup(t, "owner-1", "packet-1", "7701234567", "Росско филиал")

	_, err := f.mappings.Propose(ctx, mappingdomain.ProposeRequest{
		Scope:      mappingdomain.Scope{OwnerID: "owner-1", PacketID: "packet-1"},
		GroupID:    groupID.String(),
		SupplierID: supplierID.String(),
	})
	require.NoError(t, err)

	groups, err := f.svc.ListGroups(ctx, "owner-1", "packet-1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, string(mappingdomain.StatusPending), groups[0].Status)
	require.NotNil(t, groups[0].CanonicalSupplier)
	assert.Equal(t, "Росско", *groups[0].CanonicalSupplier)
}

func TestListGroupsRejectedCarriesLedgerLabel(t *testing.T) {
	f := newFixture(t, "status_rejected")
	ctx := context.Background()

	supplierID := f.seedSupplier(t, "Росско", "7701234567")
	groupID := f.seedGroup(t, "owner-1", "packet-1", "7701234567", "Росско филиал")

	resp, err := f.mappings.Propose(ctx, mappingdomain.ProposeRequest{
		Scope:      mappingdomain.Scope{OwnerID: "owner-1", PacketID: "packet-1"},
		GroupID:    groupID.String(),
		SupplierID: supplierID.String(),
	})
	require.NoError(t, err)

	_, err = f.mappings.Reject(ctx, mappingdomain.RejectRequest{
		MappingID:  resp.MappingID,
		Actor:      "admin",
		ReasonCode: "WRONG_INN",
	})
	require.NoError(t, err)

	groups, err := f.svc.ListGroups(ctx, "owner-1", "packet-1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, string(mappingdomain.StatusRejected), groups[0].Status)
	require.NotNil(t, groups[0].RejectReasonLabel)
	assert.Equal(t, "ИНН указан неверно", *groups[0].RejectReasonLabel)
	require.NotNil(t, groups[0].LatestDecisionAt)
}

func TestListGroupsLatestMappingWins(t *testing.T) {
	f := newFixture(t, "status_latest")
	ctx := context.Background()

	rossko := f.seedSupplier(t, "Росско", "7701234567")
	berg := f.seedSupplier(t, "Берг", "7807654321")
	groupID := f.seedGroup(t, "owner-1", "packet-1", "7701234567", "Росско филиал")

	first, err := f.mappings.Propose(ctx, mappingdomain.ProposeRequest{
		Scope:      mappingdomain.Scope{OwnerID: "owner-1", PacketID: "packet-1"},
		GroupID:    groupID.String(),
		SupplierID: rossko.String(),
	})
	require.NoError(t, err)
	_, err = f.mappings.Reject(ctx, mappingdomain.RejectRequest{
		MappingID:  first.MappingID,
		Actor:      "admin",
		ReasonCode: "WRONG_SUPPLIER",
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = f.mappings.Propose(ctx, mappingdomain.ProposeRequest{
		Scope:      mappingdomain.Scope{OwnerID: "owner-1", PacketID: "packet-1"},
		GroupID:    groupID.String(),
		SupplierID: berg.String(),
	})
	require.NoError(t, err)

	groups, err := f.svc.ListGroups(ctx, "owner-1", "packet-1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, string(mappingdomain.StatusPending), groups[0].Status)
	require.NotNil(t, groups[0].CanonicalSupplier)
	assert.Equal(t, "Берг", *groups[0].CanonicalSupplier)
	// The rejected label belongs to the superseded attempt and must not
	// surface while the new proposal is pending.
	assert.Nil(t, groups[0].RejectReasonLabel)
}
