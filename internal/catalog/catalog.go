package catalog

import (
	"strconv"
	"strings"

	"github.com/joyjoykids/feedback-backend/internal/domain"
)

// Catalog is the static per-lesson table of activities. Immutable after
// construction; safe for concurrent readers.
type Catalog struct {
	byID  map[int]domain.ActivityDefinition
	order []int
}

// Empty returns a catalog for which every lookup reports absent.
// Used when the requested month/lesson resource cannot be located.
func Empty() *Catalog {
	return &Catalog{byID: map[int]domain.ActivityDefinition{}}
}

func New(defs []domain.ActivityDefinition) *Catalog {
	c := &Catalog{byID: make(map[int]domain.ActivityDefinition, len(defs))}
	for _, d := range defs {
		if d.ID <= 0 {
			continue
		}
		if _, dup := c.byID[d.ID]; dup {
			continue
		}
		c.byID[d.ID] = d
		c.order = append(c.order, d.ID)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.byID)
}

// Order returns activity ids in file-declared order, for deterministic
// downstream text layout.
func (c *Catalog) Order() []int {
	out := make([]int, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Lookup(id int) (domain.ActivityDefinition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// LookupOptionLabel resolves a raw selection value to an option label.
// Numeric values match on level; anything else matches a label verbatim.
func (c *Catalog) LookupOptionLabel(id int, rawValue string) (string, bool) {
	def, ok := c.byID[id]
	if !ok {
		return "", false
	}
	rawValue = strings.TrimSpace(rawValue)
	if rawValue == "" {
		return "", false
	}
	if lvl, err := strconv.Atoi(rawValue); err == nil {
		for _, opt := range def.Options {
			if opt.Level == lvl && opt.Label != "" {
				return opt.Label, true
			}
		}
		return "", false
	}
	for _, opt := range def.Options {
		if opt.Label == rawValue {
			return opt.Label, true
		}
	}
	return "", false
}
