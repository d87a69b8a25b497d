package model

import "github.com/google/uuid"

// Box represents one physical box from the input list. Dimensions are
// positive integers; Index is the box's position in the original input and
// is what the single-use rule is keyed on.
type Box struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	DimA  int    `json:"dim_a"`
	DimB  int    `json:"dim_b"`
	DimC  int    `json:"dim_c"`
	Index int    `json:"index"`
}

func NewBox(label string, a, b, c int) Box {
	return Box{
		ID:    uuid.New().String()[:8],
		Label: label,
		DimA:  a,
		DimB:  b,
		DimC:  c,
	}
}

// Orientation is one of the three ways a box can be placed, fixing which
// original dimension points up. Invariant: Width <= Depth.
type Orientation struct {
	Width     int `json:"width"`
	Depth     int `json:"depth"`
	Height    int `json:"height"`
	SourceBox int `json:"source_box"`
}

// FitsInside reports whether o's footprint is strictly smaller than below's
// in both dimensions. Flush edges do not count.
func (o Orientation) FitsInside(below Orientation) bool {
	return o.Width < below.Width && o.Depth < below.Depth
}

// FootprintArea returns Width * Depth.
func (o Orientation) FootprintArea() int {
	return o.Width * o.Depth
}
