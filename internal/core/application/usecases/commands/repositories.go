// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"shopfloor/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides access to the work order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// ControlOrderRepoFactory provides access to the control order repository within a transaction.
	ControlOrderRepoFactory interface {
		ControlOrderRepository() ports.ControlOrderRepository
	}

	// AuditEventRepoFactory provides access to the audit event repository within a transaction.
	AuditEventRepoFactory interface {
		AuditEventRepository() ports.AuditEventRepository
	}

	// WorkOrderUoW manages transactions for lifecycle operations that only
	// touch a single work order aggregate.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates new work order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// AggregationUoW manages transactions for the completion aggregator,
	// which reads child work orders and writes the parent control order
	// within one transaction boundary.
	AggregationUoW interface {
		TxManager
		WorkOrderRepoFactory
		ControlOrderRepoFactory
	}

	// AggregationUoWFactory creates new aggregation unit of work instances.
	AggregationUoWFactory interface {
		Create() AggregationUoW
	}

	// AuditUoW manages transactions for audit event recording.
	AuditUoW interface {
		TxManager
		AuditEventRepoFactory
	}

	// AuditUoWFactory creates new audit unit of work instances.
	AuditUoWFactory interface {
		Create() AuditUoW
	}
)
