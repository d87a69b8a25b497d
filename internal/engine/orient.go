package engine

import "github.com/piwi3910/BoxStack/internal/model"

// ExpandOrientations turns each box into its three placements, one per
// choice of vertical dimension, with the footprint normalized to
// Width <= Depth. The result is the fixed candidate pool consumed by both
// the seeder and the annealer.
func ExpandOrientations(boxes []model.Box) []model.Orientation {
	pool := make([]model.Orientation, 0, 3*len(boxes))
	for i, b := range boxes {
		x, y, z := b.DimA, b.DimB, b.DimC
		pool = append(pool,
			model.Orientation{Width: min(x, y), Depth: max(x, y), Height: z, SourceBox: i},
			model.Orientation{Width: min(x, z), Depth: max(x, z), Height: y, SourceBox: i},
			model.Orientation{Width: min(y, z), Depth: max(y, z), Height: x, SourceBox: i},
		)
	}
	return pool
}
