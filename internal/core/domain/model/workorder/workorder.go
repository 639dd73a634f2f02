package workorder

import (
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
	// created through the NewWorkOrder or RestoreWorkOrder factory methods.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder")
)

// WorkOrder represents a single workstation order in the production pipeline.
// It is the aggregate root that manages the order lifecycle from planning
// through production to completion.
//
// WorkOrder follows these invariants:
//   - Must have a valid unique identifier and a valid parent control order
//   - Order number is assigned at creation and never changes
//   - Quantity must be positive (greater than 0)
//   - actualStart is set exactly once, on first entry into InProgress;
//     halt/resume cycles never reset it
//   - actualFinish is set iff the order is Completed
//   - supplyOrderID is populated only while WaitingForParts
//   - Status transitions follow the rules enforced by Status
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type WorkOrder struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable order number, immutable once assigned
	orderNumber string

	// workstationID identifies the workstation running this order
	workstationID string

	// controlOrderID references the parent control order
	controlOrderID kernel.UUID

	// orderType identifies the workstation order variant
	orderType OrderType

	// status represents the current state in the order lifecycle
	status Status

	// itemID identifies the produced output item
	itemID string

	// itemName is the display name of the produced output item
	itemName string

	// quantity is the produced amount (must be positive)
	quantity int

	// plannedStart is the planned production start time, if scheduled
	plannedStart *time.Time

	// actualStart is set on first entry into InProgress
	actualStart *time.Time

	// actualFinish is set on completion
	actualFinish *time.Time

	// supplyOrderID links the supply order this order waits on, if any
	supplyOrderID *int64

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewWorkOrder creates a new WorkOrder in Pending status. This is how
// upstream planning registers an order at a workstation; all business
// invariants are validated here.
func NewWorkOrder(
	id kernel.UUID,
	orderType OrderType,
	orderNumber string,
	workstationID string,
	controlOrderID kernel.UUID,
	itemID string,
	itemName string,
	quantity int,
	plannedStart *time.Time,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		status:        Pending,
		itemName:      itemName,
		plannedStart:  plannedStart,
		isConstructed: true,
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setOrderType(orderType),
		wo.setOrderNumber(orderNumber),
		wo.setWorkstationID(workstationID),
		wo.setControlOrderID(controlOrderID),
		wo.setItemID(itemID),
		wo.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return wo, nil
}

// RestoreWorkOrder reconstructs a WorkOrder from persistence, including its
// current status and timestamps. Field validation is re-applied so corrupt
// rows cannot produce an invalid aggregate.
func RestoreWorkOrder(
	id kernel.UUID,
	orderType OrderType,
	orderNumber string,
	workstationID string,
	controlOrderID kernel.UUID,
	itemID string,
	itemName string,
	quantity int,
	status Status,
	plannedStart *time.Time,
	actualStart *time.Time,
	actualFinish *time.Time,
	supplyOrderID *int64,
) (*WorkOrder, error) {
	wo, err := NewWorkOrder(id, orderType, orderNumber, workstationID, controlOrderID, itemID, itemName, quantity, plannedStart)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	wo.status = status
	wo.actualStart = actualStart
	wo.actualFinish = actualFinish
	wo.supplyOrderID = supplyOrderID
	return wo, nil
}

// Validate ensures the WorkOrder instance was properly constructed through
// one of the factory methods.
func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two work orders by their unique identifiers.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID {
	return w.id
}

// OrderNumber returns the immutable human-readable order number.
func (w *WorkOrder) OrderNumber() string {
	return w.orderNumber
}

// WorkstationID returns the identifier of the workstation running this order.
func (w *WorkOrder) WorkstationID() string {
	return w.workstationID
}

// ControlOrderID returns the identifier of the parent control order.
func (w *WorkOrder) ControlOrderID() kernel.UUID {
	return w.controlOrderID
}

// OrderType returns the workstation order variant.
func (w *WorkOrder) OrderType() OrderType {
	return w.orderType
}

// Status returns the current status of the order.
func (w *WorkOrder) Status() Status {
	return w.status
}

// ItemID returns the identifier of the produced output item.
func (w *WorkOrder) ItemID() string {
	return w.itemID
}

// ItemName returns the display name of the produced output item.
func (w *WorkOrder) ItemName() string {
	return w.itemName
}

// Quantity returns the produced amount.
func (w *WorkOrder) Quantity() int {
	return w.quantity
}

// PlannedStart returns the planned production start time, if scheduled.
func (w *WorkOrder) PlannedStart() *time.Time {
	return w.plannedStart
}

// ActualStart returns the time production first entered InProgress.
// Returns nil if the order has never been started.
func (w *WorkOrder) ActualStart() *time.Time {
	return w.actualStart
}

// ActualFinish returns the completion time.
// Returns nil unless the order is Completed.
func (w *WorkOrder) ActualFinish() *time.Time {
	return w.actualFinish
}

// SupplyOrderID returns the linked supply order id.
// Returns nil unless the order is WaitingForParts.
func (w *WorkOrder) SupplyOrderID() *int64 {
	return w.supplyOrderID
}

// Start moves the order into production.
//
// Business rules:
//   - The order must be Pending or WaitingForParts
//   - actualStart is recorded only on the first start; re-entering
//     InProgress later (via Resume) never resets it
//   - Leaving WaitingForParts clears the supply order link
func (w *WorkOrder) Start() error {
	newStatus, err := w.status.Start()
	if err != nil {
		return err
	}

	w.status = newStatus
	if w.actualStart == nil {
		now := time.Now().UTC()
		w.actualStart = &now
	}
	w.supplyOrderID = nil
	return nil
}

// Complete marks the order as finished and records the finish time.
//
// Business rules:
//   - The order must be InProgress
//   - Completed is a terminal state
//
// Crediting the produced output to inventory is the caller's obligation and
// must happen before the completed state is persisted.
func (w *WorkOrder) Complete() error {
	newStatus, err := w.status.Complete()
	if err != nil {
		return err
	}

	w.status = newStatus
	now := time.Now().UTC()
	w.actualFinish = &now
	return nil
}

// Halt interrupts production. The order must be InProgress.
func (w *WorkOrder) Halt() error {
	newStatus, err := w.status.Halt()
	if err != nil {
		return err
	}

	w.status = newStatus
	return nil
}

// Resume continues production after a halt. The order must be Halted.
// The actual start time recorded on the first start is left untouched.
func (w *WorkOrder) Resume() error {
	newStatus, err := w.status.Resume()
	if err != nil {
		return err
	}

	w.status = newStatus
	return nil
}

// MarkWaitingForParts parks the order until the given supply order delivers
// the missing input parts. The path carries no status precondition and is
// callable from any state, Completed included.
func (w *WorkOrder) MarkWaitingForParts(supplyOrderID int64) error {
	if supplyOrderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("supplyOrderId",
			fmt.Errorf("%d is not greater than 0", supplyOrderID))
	}

	w.status = w.status.MarkWaitingForParts()
	w.supplyOrderID = &supplyOrderID
	return nil
}

func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkOrder) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	w.orderType = orderType
	return nil
}

func (w *WorkOrder) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	w.orderNumber = orderNumber
	return nil
}

func (w *WorkOrder) setWorkstationID(workstationID string) error {
	if workstationID == "" {
		return errs.NewValueIsRequiredError("workstationId")
	}
	w.workstationID = workstationID
	return nil
}

func (w *WorkOrder) setControlOrderID(controlOrderID kernel.UUID) error {
	if err := controlOrderID.Validate(); err != nil {
		return err
	}
	w.controlOrderID = controlOrderID
	return nil
}

func (w *WorkOrder) setItemID(itemID string) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("itemId")
	}
	w.itemID = itemID
	return nil
}

func (w *WorkOrder) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	w.quantity = quantity
	return nil
}
