package ranking

import "sort"

// Rankable is implemented by entity summaries the engine can order.
type Rankable interface {
	// GetRankID returns the entity identifier used as the final tie-break.
	GetRankID() uint
	// GetTier returns the coarse priority tier; higher tiers dominate score.
	GetTier() int
	// GetScore returns the composite score for the entity kind.
	GetScore() float64
	// GetSortValue resolves a named metric or timestamp criterion.
	GetSortValue(field string) float64
}

// SortItems orders items in place according to the resolved spec. Criteria
// are evaluated left to right; the first unequal criterion decides.
func SortItems[T Rankable](items []T, spec Spec) {
	sort.SliceStable(items, func(i, j int) bool {
		for _, c := range spec {
			vi := criterionValue(items[i], c.Field)
			vj := criterionValue(items[j], c.Field)
			if vi == vj {
				continue
			}
			if c.Direction == Descending {
				return vi > vj
			}
			return vi < vj
		}
		return false
	})
}

func criterionValue[T Rankable](item T, field string) float64 {
	switch field {
	case FieldTier:
		return float64(item.GetTier())
	case FieldScore:
		return item.GetScore()
	case FieldID:
		return float64(item.GetRankID())
	default:
		return item.GetSortValue(field)
	}
}
