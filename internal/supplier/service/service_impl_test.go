package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	mappingrepo "github.com/pricedesk/supmap/internal/mapping/repository"
	"github.com/pricedesk/supmap/internal/supplier/domain"
	"github.com/pricedesk/supmap/internal/supplier/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, name string) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	db.Exec(`CREATE TABLE IF NOT EXISTS suppliers (
		id BIGINT PRIMARY KEY,
		supplier TEXT NOT NULL,
		inn TEXT NOT NULL UNIQUE,
		kpp TEXT, country TEXT, city TEXT, address TEXT, url TEXT, branch TEXT,
		created_at TIMESTAMP NOT NULL
	)`)
	db.Exec(`CREATE TABLE IF NOT EXISTS supplier_mappings (
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
	)`)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := &Service{
		db:       db,
		log:      zaptest.NewLogger(t),
		genID:    node,
		repo:     repository.Provide(),
		mappings: mappingrepo.Provide(),
	}
	return svc, db
}

func TestCreateNormalizesINN(t *testing.T) {
	svc, _ := newTestService(t, "supplier_create")
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateSupplierRequest{
		Name: "Росско",
		INN:  "77-01/234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "7701234567", created.INN)

	got, err := svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Росско", got.Name)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t, "supplier_validation")
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateSupplierRequest{Name: "  ", INN: "7701234567"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateSupplierRequest{Name: "Росско", INN: "12345"})
	assert.ErrorIs(t, err, domain.ErrInvalidINN)

	_, err = svc.Create(ctx, domain.CreateSupplierRequest{Name: "Росско", INN: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidINN)
}

func TestCreateDuplicateINN(t *testing.T) {
	svc, _ := newTestService(t, "supplier_duplicate")
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateSupplierRequest{Name: "Росско", INN: "7701234567"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateSupplierRequest{Name: "Росско 2", INN: "7701234567"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSearchMatchesNameAndINN(t *testing.T) {
	svc, _ := newTestService(t, "supplier_search")
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateSupplierRequest{Name: "Росско", INN: "7701234567"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateSupplierRequest{Name: "Берг", INN: "7807654321"})
	require.NoError(t, err)

	all, err := svc.Search(ctx, domain.SearchSuppliersRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byINN, err := svc.Search(ctx, domain.SearchSuppliersRequest{Query: "7807"})
	require.NoError(t, err)
	require.Len(t, byINN, 1)
	assert.Equal(t, "Берг", byINN[0].Name)
}

func TestUpdatePartial(t *testing.T) {
	svc, _ := newTestService(t, "supplier_update")
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateSupplierRequest{Name: "Росско", INN: "7701234567"})
	require.NoError(t, err)

	city := "Москва"
	updated, err := svc.Update(ctx, domain.UpdateSupplierRequest{
		ID:   created.ID.String(),
		City: &city,
	})
	require.NoError(t, err)
	assert.Equal(t, "Росско", updated.Name)
	require.NotNil(t, updated.City)
	assert.Equal(t, "Москва", *updated.City)

	_, err = svc.Update(ctx, domain.UpdateSupplierRequest{ID: "999999"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteBlockedWhileReferenced(t *testing.T) {
	svc, db := newTestService(t, "supplier_delete")
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateSupplierRequest{Name: "Росско", INN: "7701234567"})
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, db.Exec(
		`INSERT INTO supplier_mappings (id, group_id, canonical_supplier_id, owner_id, packet_id, status, created_at, updated_at, std_supplier_raw)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		svc.genID.Generate(), svc.genID.Generate(), created.ID, "owner-1", "packet-1", "PENDING", now, now, "Росско",
	).Error)

	err = svc.Delete(ctx, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrInUse)

	require.NoError(t, db.Exec(`DELETE FROM supplier_mappings`).Error)
	require.NoError(t, svc.Delete(ctx, created.ID.String()))

	_, err = svc.GetByID(ctx, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
