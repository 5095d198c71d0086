// ABOUTME: Immutable keyed catalog of procurable equipment items
// ABOUTME: Validates items on construction and enumerates in sorted key order

package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rescueops/sar-equipment-planner/models"
)

// ErrUnknownItem is returned when a lookup references a key the catalog
// does not contain. Callers test for it with errors.Is.
var ErrUnknownItem = errors.New("unknown equipment item")

// keyPattern matches valid equipment keys (lowercase snake_case)
var keyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// sanitizeForLog removes control characters from strings to prevent log
// injection when including catalog-file input in error messages
func sanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}

// Catalog is an immutable collection of equipment items keyed by item key.
// Safe for concurrent use after construction.
type Catalog struct {
	items map[string]models.EquipmentItem
	keys  []string
}

// New builds a catalog from the given items. Every item is validated and
// keys must be unique and in lowercase snake_case format.
func New(items ...models.EquipmentItem) (*Catalog, error) {
	c := &Catalog{items: make(map[string]models.EquipmentItem, len(items))}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if !keyPattern.MatchString(item.Key) {
			return nil, fmt.Errorf("invalid equipment key format: %s", sanitizeForLog(item.Key))
		}
		if _, exists := c.items[item.Key]; exists {
			return nil, fmt.Errorf("duplicate equipment key %q", item.Key)
		}
		c.items[item.Key] = item
		c.keys = append(c.keys, item.Key)
	}
	sort.Strings(c.keys)
	return c, nil
}

// Item returns the item stored under key, or a wrapped ErrUnknownItem
func (c *Catalog) Item(key string) (models.EquipmentItem, error) {
	item, ok := c.items[key]
	if !ok {
		return models.EquipmentItem{}, fmt.Errorf("%w: %q", ErrUnknownItem, sanitizeForLog(key))
	}
	return item, nil
}

// Keys returns all item keys in sorted order. The returned slice is a copy.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Items returns all items in sorted key order
func (c *Catalog) Items() []models.EquipmentItem {
	items := make([]models.EquipmentItem, 0, len(c.keys))
	for _, key := range c.keys {
		items = append(items, c.items[key])
	}
	return items
}

// Group returns the items belonging to the given group, in sorted key order
func (c *Catalog) Group(g models.EquipmentGroup) []models.EquipmentItem {
	var items []models.EquipmentItem
	for _, key := range c.keys {
		if c.items[key].Group == g {
			items = append(items, c.items[key])
		}
	}
	return items
}

// Len returns the number of items in the catalog
func (c *Catalog) Len() int {
	return len(c.keys)
}
