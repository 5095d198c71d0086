// ABOUTME: Procurement plan types: quantity assignments and priority modes
// ABOUTME: Shared between the optimizer, analyzer, and CLI layers

package models

import (
	"fmt"
	"sort"
)

// PriorityMode selects the optimization objective for plan selection
type PriorityMode string

const (
	PriorityCost       PriorityMode = "cost"
	PriorityEfficiency PriorityMode = "efficiency"
	PriorityBalanced   PriorityMode = "balanced"
)

// ParsePriorityMode converts a user-supplied string into a PriorityMode.
// The empty string selects the balanced default.
func ParsePriorityMode(s string) (PriorityMode, error) {
	switch PriorityMode(s) {
	case PriorityCost, PriorityEfficiency, PriorityBalanced:
		return PriorityMode(s), nil
	case "":
		return PriorityBalanced, nil
	default:
		return "", fmt.Errorf("unknown priority mode %q (want cost, efficiency, or balanced)", s)
	}
}

// QuantityAssignment maps equipment item keys to procurement quantities
type QuantityAssignment map[string]int

// Keys returns the assignment's item keys in sorted order
func (a QuantityAssignment) Keys() []string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// TotalUnits returns the total number of units across all items
func (a QuantityAssignment) TotalUnits() int {
	total := 0
	for _, qty := range a {
		total += qty
	}
	return total
}

// Clone returns an independent copy of the assignment
func (a QuantityAssignment) Clone() QuantityAssignment {
	out := make(QuantityAssignment, len(a))
	for key, qty := range a {
		out[key] = qty
	}
	return out
}
