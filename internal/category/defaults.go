package category

import "github.com/finsight-dev/finsight/internal/model"

// DefaultCategories returns the built-in category mapping used when no
// persisted document exists or the existing one cannot be read.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Shopping", Keywords: []string{"amazon", "store", "retail"}},
		{Name: "Transportation", Keywords: []string{"uber", "taxi", "fuel", "gas"}},
		{Name: "Food & Dining", Keywords: []string{"grocery", "restaurant", "cafe"}},
		{Name: "Entertainment", Keywords: []string{"netflix", "movie", "concert"}},
		{Name: "Utilities", Keywords: []string{"electric", "water", "internet", "phone"}},
		{Name: model.Uncategorized},
	}
}
