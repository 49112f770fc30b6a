package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/pricedesk/supmap/internal/pricelist/domain"
	"github.com/pricedesk/supmap/internal/pricelist/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, name string) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps concurrent sqlite writers from tripping
	// over table locks.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db.Exec(`CREATE TABLE IF NOT EXISTS supplier_groups (
		id BIGINT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		packet_id TEXT NOT NULL,
		inn_norm TEXT,
		std_supplier_raw TEXT NOT NULL,
		items_count BIGINT NOT NULL DEFAULT 0,
		inn_invalid BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_supplier_groups_key
		ON supplier_groups (owner_id, packet_id, COALESCE(inn_norm, ''), std_supplier_raw)`)
	db.Exec(`CREATE TABLE IF NOT EXISTS price_items (
		id BIGINT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		packet_id TEXT NOT NULL,
		inn TEXT NOT NULL DEFAULT '',
		inn_norm TEXT,
		inn_invalid BOOLEAN NOT NULL DEFAULT FALSE,
		std_supplier TEXT NOT NULL,
		item_id TEXT,
		group_id BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := &Service{
		db:    db,
		log:   zaptest.NewLogger(t),
		genID: node,
		repo:  repository.Provide(),
	}
	return svc, db
}

func rows(ownerID, packetID, inn, stdSupplier string, count int) []domain.ImportRow {
	out := make([]domain.ImportRow, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, domain.ImportRow{
			OwnerID:     ownerID,
			PacketID:    packetID,
			INN:         inn,
			StdSupplier: stdSupplier,
		})
	}
	return out
}

func TestImportBatchGroupsByKey(t *testing.T) {
	svc, db := newTestService(t, "import_groups")
	ctx := context.Background()

	resp, err := svc.ImportBatch(ctx, rows("owner-1", "packet-1", "7701234567", "Росско филиал", 100))
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Imported)

	groups, err := svc.repo.ListGroupsByScope(ctx, db, "owner-1", "packet-1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(100), groups[0].ItemsCount)
	require.NotNil(t, groups[0].INNNorm)
	assert.Equal(t, "7701234567", *groups[0].INNNorm)
	assert.False(t, groups[0].INNInvalid)

	var itemCount int64
	db.Raw(`SELECT COUNT(*) FROM price_items WHERE group_id = ?`, groups[0].ID).Scan(&itemCount)
	assert.Equal(t, int64(100), itemCount)
}

func TestImportBatchSeparatesKeys(t *testing.T) {
	svc, db := newTestService(t, "import_keys")
	ctx := context.Background()

	batch := append(
		rows("owner-1", "packet-1", "7701234567", "Росско", 3),
		rows("owner-1", "packet-1", "7807654321", "Берг", 2)...,
	)
	// Same name, different formatting of the same INN still lands in the
	// first group.
	batch = append(batch, domain.ImportRow{
		OwnerID:     "owner-1",
		PacketID:    "packet-1",
		INN:         "77-01/234567",
		StdSupplier: "Росско",
	})

	resp, err := svc.ImportBatch(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Imported)

	groups, err := svc.repo.ListGroupsByScope(ctx, db, "owner-1", "packet-1")
	require.NoError(t, err)
	require.Len(t, groups, 2)

	counts := map[string]int64{}
	for _, g := range groups {
		counts[g.StdSupplierRaw] = g.ItemsCount
	}
	assert.Equal(t, int64(4), counts["Росско"])
	assert.Equal(t, int64(2), counts["Берг"])
}

func TestImportBatchInvalidINN(t *testing.T) {
	svc, db := newTestService(t, "import_invalid")
	ctx := context.Background()

	_, err := svc.ImportBatch(ctx, []domain.ImportRow{
		{OwnerID: "owner-1", PacketID: "packet-1", INN: "12345", StdSupplier: "Кривой ИНН"},
		{OwnerID: "owner-1", PacketID: "packet-1", INN: "", StdSupplier: "Без ИНН"},
	})
	require.NoError(t, err)

	groups, err := svc.repo.ListGroupsByScope(ctx, db, "owner-1", "packet-1")
	require.NoError(t, err)
	require.Len(t, groups, 2)

	for _, g := range groups {
		switch g.StdSupplierRaw {
		case "Кривой ИНН":
			require.NotNil(t, g.INNNorm)
			assert.Equal(t, "12345", *g.INNNorm)
			assert.True(t, g.INNInvalid)
		case "Без ИНН":
			assert.Nil(t, g.INNNorm)
			assert.True(t, g.INNInvalid)
		default:
			t.Fatalf("unexpected group %q", g.StdSupplierRaw)
		}
	}
}

func TestImportBatchNilINNDistinctFromEmpty(t *testing.T) {
	svc, db := newTestService(t, "import_nil_key")
	ctx := context.Background()

	// Both rows normalize to a missing INN and must share one group.
	_, err := svc.ImportBatch(ctx, []domain.ImportRow{
		{OwnerID: "owner-1", PacketID: "packet-1", INN: "", StdSupplier: "Поставщик"},
		{OwnerID: "owner-1", PacketID: "packet-1", INN: "---", StdSupplier: "Поставщик"},
	})
	require.NoError(t, err)

	groups, err := svc.repo.ListGroupsByScope(ctx, db, "owner-1", "packet-1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(2), groups[0].ItemsCount)
}

func TestImportBatchValidation(t *testing.T) {
	svc, db := newTestService(t, "import_validation")
	ctx := context.Background()

	resp, err := svc.ImportBatch(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Imported)

	resp, err = svc.ImportBatch(ctx, []domain.ImportRow{
		{OwnerID: "", PacketID: "packet-1", StdSupplier: "Росско"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRow)
	assert.Equal(t, 0, resp.Imported)

	resp, err = svc.ImportBatch(ctx, []domain.ImportRow{
		{OwnerID: "owner-1", PacketID: "packet-1", StdSupplier: "   "},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRow)
	assert.Equal(t, 0, resp.Imported)

	// A bad row mid-batch stops the batch but the rows before it stay
	// committed and counted.
	resp, err = svc.ImportBatch(ctx, []domain.ImportRow{
		{OwnerID: "owner-1", PacketID: "packet-1", INN: "7701234567", StdSupplier: "Росско"},
		{OwnerID: "owner-1", PacketID: "packet-1", StdSupplier: ""},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRow)
	assert.Equal(t, 1, resp.Imported)

	var itemCount int64
	db.Raw(`SELECT COUNT(*) FROM price_items`).Scan(&itemCount)
	assert.Equal(t, int64(1), itemCount)
}

// insertFaultRepo fails item inserts after a fixed number of rows.
type insertFaultRepo struct {
	domain.Repository
	inserts   int
	failAfter int
}

func (r *insertFaultRepo) InsertItem(ctx context.Context, db *gorm.DB, item *domain.PriceItem) error {
	if r.inserts >= r.failAfter {
		return errors.New("storage offline")
	}
	r.inserts++
	return r.Repository.InsertItem(ctx, db, item)
}

func TestImportBatchStorageFaultReportsCommittedRows(t *testing.T) {
	svc, db := newTestService(t, "import_fault")
	ctx := context.Background()

	svc.repo = &insertFaultRepo{Repository: svc.repo, failAfter: 2}

	resp, err := svc.ImportBatch(ctx, rows("owner-1", "packet-1", "7701234567", "Росско", 5))
	require.Error(t, err)
	assert.Equal(t, 2, resp.Imported)

	var itemCount int64
	db.Raw(`SELECT COUNT(*) FROM price_items`).Scan(&itemCount)
	assert.Equal(t, int64(2), itemCount)
}

func TestImportBatchConcurrentSameKey(t *testing.T) {
	svc, db := newTestService(t, "import_concurrent")
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = svc.ImportBatch(ctx, rows("owner-1", "packet-1", "7701234567", "Росско", 5))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	groups, err := svc.repo.ListGroupsByScope(ctx, db, "owner-1", "packet-1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(20), groups[0].ItemsCount)
}
