package tables

import (
	"github.com/foliohq/folio/model"
	"github.com/foliohq/folio/source"
)

// Reconcile returns the text blocks that do not overlap any detected table
// region, preventing duplicate content between the table and prose views.
// A block is excluded on its first intersecting table.
func Reconcile(blocks []source.TextBlock, regions []model.TableRegion) []source.TextBlock {
	if len(regions) == 0 {
		return blocks
	}

	kept := make([]source.TextBlock, 0, len(blocks))
	for _, block := range blocks {
		if !overlapsAny(block.BBox, regions) {
			kept = append(kept, block)
		}
	}
	return kept
}

func overlapsAny(bbox model.Rect, regions []model.TableRegion) bool {
	for _, region := range regions {
		if bbox.Intersects(region.BBox) {
			return true
		}
	}
	return false
}
