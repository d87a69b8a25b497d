package model

// Stack is an ordered sequence of orientations, stored bottom-to-top.
// A valid stack uses each source box at most once and every entry fits
// strictly inside the entry below it.
type Stack []Orientation

// Height returns the sum of entry heights.
func (s Stack) Height() int {
	total := 0
	for _, o := range s {
		total += o.Height
	}
	return total
}

// Clone returns an independent copy. Moves in the engine operate on clones
// so that the current and best stacks never alias.
func (s Stack) Clone() Stack {
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// ContainsBox reports whether any entry comes from the given source box.
func (s Stack) ContainsBox(sourceBox int) bool {
	for _, o := range s {
		if o.SourceBox == sourceBox {
			return true
		}
	}
	return false
}

// IsValid checks both stack invariants: single use of each source box and
// strict footprint containment between every adjacent pair.
func (s Stack) IsValid() bool {
	seen := make(map[int]bool, len(s))
	for i, o := range s {
		if seen[o.SourceBox] {
			return false
		}
		seen[o.SourceBox] = true
		if i > 0 && !o.FitsInside(s[i-1]) {
			return false
		}
	}
	return true
}

// Level is one row of the result listing, ordered top-to-bottom.
// CumulativeHeight is measured from the top of the stack down to the bottom
// face of this entry, matching the output convention of the result sink.
type Level struct {
	Width            int `json:"width"`
	Depth            int `json:"depth"`
	Height           int `json:"height"`
	CumulativeHeight int `json:"cumulative_height"`
}

// Levels returns the stack as top-to-bottom levels with running cumulative
// heights from the top.
func (s Stack) Levels() []Level {
	levels := make([]Level, 0, len(s))
	cum := 0
	for i := len(s) - 1; i >= 0; i-- {
		o := s[i]
		cum += o.Height
		levels = append(levels, Level{
			Width:            o.Width,
			Depth:            o.Depth,
			Height:           o.Height,
			CumulativeHeight: cum,
		})
	}
	return levels
}
