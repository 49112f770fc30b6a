package domain

import (
	"context"
	"errors"
)

type CreateSupplierRequest struct {
	Name    string
	INN     string
	KPP     *string
	Country *string
	City    *string
	Address *string
	URL     *string
	Branch  *string
}

// UpdateSupplierRequest carries a partial update; nil fields are left
// untouched.
type UpdateSupplierRequest struct {
	ID      string
	Name    *string
	INN     *string
	KPP     *string
	Country *string
	City    *string
	Address *string
	URL     *string
	Branch  *string
}

type SearchSuppliersRequest struct {
	Query string
}

type Service interface {
	Create(ctx context.Context, req CreateSupplierRequest) (Supplier, error)
	Update(ctx context.Context, req UpdateSupplierRequest) (Supplier, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Supplier, error)
	Search(ctx context.Context, req SearchSuppliersRequest) ([]Supplier, error)
}

var (
	ErrInvalidID   = errors.New("invalid_supplier_id")
	ErrInvalidName = errors.New("invalid_supplier_name")
	ErrInvalidINN  = errors.New("invalid_inn")
	ErrDuplicate   = errors.New("duplicate_supplier")
	ErrNotFound    = errors.New("supplier_not_found")
	ErrInUse       = errors.New("supplier_in_use")
)
