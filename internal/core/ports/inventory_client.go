package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/workorder"
)

// ReasonProduction is the stock adjustment reason code reported for
// production output.
const ReasonProduction = "PRODUCTION"

// StockCredit describes a single stock adjustment pushed to the inventory
// system when a work order completes: the produced quantity is credited to
// the downstream supermarket location.
type StockCredit struct {
	// DestinationLocationID is the downstream supermarket location receiving the output.
	DestinationLocationID string

	// ItemKind classifies the credited item (MODULE or PART).
	ItemKind workorder.ItemKind

	// ItemID identifies the credited item.
	ItemID string

	// Delta is the credited quantity (positive).
	Delta int

	// ReasonCode names the adjustment reason, ReasonProduction for completions.
	ReasonCode string

	// Note carries the originating order number for traceability.
	Note string
}

// InventoryClient pushes stock adjustments to the remote inventory system.
// The call is synchronous with no retry; a failure aborts the enclosing
// completion so the status change is never persisted without its credit.
type InventoryClient interface {
	CreditStock(ctx context.Context, credit StockCredit) error
}
