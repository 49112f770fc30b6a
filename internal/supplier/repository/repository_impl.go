package repository

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pricedesk/supmap/internal/supplier/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, supplier *domain.Supplier) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO suppliers (id, supplier, inn, kpp, country, city, address, url, branch, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		supplier.ID,
		supplier.Name,
		supplier.INN,
		supplier.KPP,
		supplier.Country,
		supplier.City,
		supplier.Address,
		supplier.URL,
		supplier.Branch,
		supplier.CreatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, supplier *domain.Supplier) error {
	return db.WithContext(ctx).Exec(
		`UPDATE suppliers
		 SET supplier = ?, inn = ?, kpp = ?, country = ?, city = ?, address = ?, url = ?, branch = ?
		 WHERE id = ?`,
		supplier.Name,
		supplier.INN,
		supplier.KPP,
		supplier.Country,
		supplier.City,
		supplier.Address,
		supplier.URL,
		supplier.Branch,
		supplier.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM suppliers WHERE id = ?`, id).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := db.WithContext(ctx).Raw(
		`SELECT id, supplier, inn, kpp, country, city, address, url, branch, created_at
		 FROM suppliers WHERE id = ?`,
		id,
	).Scan(&supplier).Error
	if err != nil {
		return nil, err
	}
	if supplier.ID == 0 {
		return nil, nil
	}
	return &supplier, nil
}

func (r *repo) FindByINN(ctx context.Context, db *gorm.DB, inn string) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := db.WithContext(ctx).Raw(
		`SELECT id, supplier, inn, kpp, country, city, address, url, branch, created_at
		 FROM suppliers WHERE inn = ?`,
		inn,
	).Scan(&supplier).Error
	if err != nil {
		return nil, err
	}
	if supplier.ID == 0 {
		return nil, nil
	}
	return &supplier, nil
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, query string) ([]*domain.Supplier, error) {
	var suppliers []*domain.Supplier
	stmt := db.WithContext(ctx).Model(&domain.Supplier{})
	if needle := strings.TrimSpace(query); needle != "" {
		pattern := "%" + strings.ToLower(needle) + "%"
		stmt = stmt.Where("LOWER(supplier) LIKE ? OR LOWER(inn) LIKE ?", pattern, pattern)
	}
	if err := stmt.Order("supplier asc").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}
