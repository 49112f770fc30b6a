package domain

import (
	"context"
	"errors"

	"gorm.io/datatypes"
)

type CreateRequest struct {
	OwnerID  string
	PacketID string
	GroupID  string
	Comment  string
	Metadata datatypes.JSONMap
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*SellerIssue, error)
	List(ctx context.Context) ([]SellerIssue, error)
}

var (
	ErrGroupNotFound   = errors.New("issue_group_not_found")
	ErrCommentRequired = errors.New("issue_comment_required")
)
