package catalog

import "github.com/fortune-auction/gateway/internal/model"

// Aggregate merges the three subtype collections into the single display
// sequence: silver first, then gold, then gold-diamond, order within each
// source preserved. Subtype tags are stamped here so nothing downstream has
// to re-derive them from the id fields.
func Aggregate(silver, gold, goldDiamond []model.JewelryItem) []model.JewelryItem {
	merged := make([]model.JewelryItem, 0, len(silver)+len(gold)+len(goldDiamond))
	merged = append(merged, silver...)
	merged = append(merged, gold...)
	merged = append(merged, goldDiamond...)
	for i := range merged {
		merged[i].TagSubtype()
	}
	return merged
}
