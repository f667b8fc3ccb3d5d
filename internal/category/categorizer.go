package category

import (
	"fmt"
	"strings"

	"github.com/finsight-dev/finsight/internal/model"
)

// Categorizer assigns category labels to transaction descriptions using the
// store's keyword mapping.
type Categorizer struct {
	store *Store
}

// NewCategorizer creates a Categorizer over a store.
func NewCategorizer(store *Store) *Categorizer {
	return &Categorizer{store: store}
}

// Categorize returns the label for a transaction description. Categories are
// scanned in store insertion order, skipping the reserved fallback, and the
// first category with a keyword contained in the lowercased description
// wins. No match returns the fallback label. Same description plus same
// store state always yields the same label.
func (c *Categorizer) Categorize(details string) string {
	details = strings.ToLower(details)
	for _, name := range c.store.order {
		if name == model.Uncategorized {
			continue
		}
		for _, keyword := range c.store.keywords[name] {
			if strings.Contains(details, keyword) {
				return name
			}
		}
	}
	return model.Uncategorized
}

// Apply labels every transaction in place.
func (c *Categorizer) Apply(txns []model.Transaction) {
	for i := range txns {
		txns[i].Category = c.Categorize(txns[i].Details)
	}
}

// Learn records a manual re-label: the transaction's description, trimmed
// and lowercased, becomes a new keyword of the chosen category and is
// flushed immediately. A description the category already knows is a no-op.
func (c *Categorizer) Learn(categoryName, details string) error {
	if !c.store.Exists(categoryName) {
		return fmt.Errorf("unknown category %q", categoryName)
	}

	keyword := Normalize(details)
	if keyword == "" {
		return fmt.Errorf("description is empty")
	}
	for _, existing := range c.store.keywords[categoryName] {
		if existing == keyword {
			return nil
		}
	}
	return c.store.AddKeyword(categoryName, keyword)
}
