package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// GroupStatus is the seller-facing projection of a supplier group and
// the outcome of its latest mapping attempt. A group with no mappings
// reports UNMAPPED.
type GroupStatus struct {
	ID                  snowflake.ID  `json:"id"`
	OwnerID             string        `json:"owner_id"`
	PacketID            string        `json:"packet_id"`
	INNNorm             *string       `json:"inn_norm,omitempty"`
	INNInvalid          bool          `json:"inn_invalid"`
	StdSupplierRaw      string        `json:"std_supplier_raw"`
	ItemsCount          int64         `json:"items_count"`
	Status              string        `json:"status"`
	CanonicalSupplier   *string       `json:"canonical_supplier,omitempty"`
	CanonicalSupplierID *snowflake.ID `json:"canonical_supplier_id,omitempty"`
	LatestStatus        *string       `json:"latest_status,omitempty"`
	LatestDecisionAt    *time.Time    `json:"latest_decision_at,omitempty"`
	RejectReasonLabel   *string       `json:"reject_reason_label,omitempty"`
}

const StatusUnmapped = "UNMAPPED"
