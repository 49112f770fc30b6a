package domain

import "context"

type Service interface {
	// ListGroups resolves the status of every group in the scope.
	ListGroups(ctx context.Context, ownerID, packetID string) ([]GroupStatus, error)
}
