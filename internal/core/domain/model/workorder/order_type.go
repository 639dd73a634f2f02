package workorder

import (
	"shopfloor/internal/pkg/errs"
)

// ItemKind classifies the produced output for the inventory service.
type ItemKind string

const (
	// ItemKindModule marks output of gear assembly workstations.
	ItemKindModule ItemKind = "MODULE"

	// ItemKindPart marks output of part pre-production workstations.
	ItemKindPart ItemKind = "PART"
)

// OrderType identifies the workstation order variant an order belongs to.
// The lifecycle engine is generic over this type: one logical engine
// instance manages all orders of a given type, and completion aggregation
// is scoped per type independently.
type OrderType int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown OrderType = iota

	// TypeGearAssembly is a gear assembly workstation order producing modules.
	TypeGearAssembly

	// TypePartPreProduction is a part pre-production workstation order
	// producing parts.
	TypePartPreProduction
)

func getOrderTypeSlugs() map[OrderType]string {
	return map[OrderType]string{
		TypeGearAssembly:      "gear-assembly",
		TypePartPreProduction: "part-pre-production",
	}
}

// ParseOrderType resolves an order type from its URL slug
// ("gear-assembly" or "part-pre-production").
func ParseOrderType(slug string) (OrderType, error) {
	for t, s := range getOrderTypeSlugs() {
		if s == slug {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidError("orderType")
}

// Validate checks if the OrderType value is valid.
func (t OrderType) Validate() error {
	if _, ok := getOrderTypeSlugs()[t]; !ok {
		return errs.NewValueIsInvalidError("orderType")
	}
	return nil
}

// String returns the human-readable name of the order type.
func (t OrderType) String() string {
	switch t {
	case TypeGearAssembly:
		return "GearAssembly"
	case TypePartPreProduction:
		return "PartPreProduction"
	default:
		return "Unknown"
	}
}

// Slug returns the URL form of the order type.
func (t OrderType) Slug() string {
	if s, ok := getOrderTypeSlugs()[t]; ok {
		return s
	}
	return "unknown"
}

// ItemKind returns the inventory classification of this order type's output.
func (t OrderType) ItemKind() ItemKind {
	if t == TypePartPreProduction {
		return ItemKindPart
	}
	return ItemKindModule
}
