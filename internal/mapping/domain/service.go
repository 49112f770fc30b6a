package domain

import (
	"context"
	"errors"
	"time"
)

// Scope restricts seller operations to one (owner, packet) submission
// context.
type Scope struct {
	OwnerID  string
	PacketID string
}

type ProposeRequest struct {
	Scope      Scope
	GroupID    string
	SupplierID string
}

type ProposeResponse struct {
	MappingID string `json:"mapping_id"`
	Status    Status `json:"status"`
}

type ApproveRequest struct {
	MappingID string
	Actor     string
}

type RejectRequest struct {
	MappingID       string
	Actor           string
	ReasonCode      string
	InternalComment *string
}

type DecisionResponse struct {
	Status      Status `json:"status"`
	ReasonLabel string `json:"reason_label,omitempty"`
}

type ListApprovedRequest struct {
	From     *time.Time
	To       *time.Time
	OwnerID  string
	PacketID string
}

type Service interface {
	Propose(ctx context.Context, req ProposeRequest) (ProposeResponse, error)
	ListPending(ctx context.Context) ([]PendingMapping, error)
	Approve(ctx context.Context, req ApproveRequest) (DecisionResponse, error)
	Reject(ctx context.Context, req RejectRequest) (DecisionResponse, error)
	ListApproved(ctx context.Context, req ListApprovedRequest) ([]ApprovedMapping, error)
}

var (
	ErrInvalidID        = errors.New("invalid_mapping_id")
	ErrNotFound         = errors.New("mapping_not_found")
	ErrGroupNotFound    = errors.New("group_not_found")
	ErrSupplierNotFound = errors.New("mapping_supplier_not_found")
	ErrNotPending       = errors.New("mapping_not_pending")
	ErrReasonRequired   = errors.New("reject_reason_required")
	ErrInvalidActor     = errors.New("invalid_actor")
)
