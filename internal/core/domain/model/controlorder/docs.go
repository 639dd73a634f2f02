// Package controlorder provides the ControlOrder aggregate: the parent unit
// of work spanning one or more workstation orders. A control order is
// considered done once every child workstation order has completed; the
// completion aggregator performs that transition exactly once.
package controlorder
