package nnueacc

// Accumulator holds one network's first-layer activations, per perspective:
// a dense int16 vector of the network's half-dimension width and a PSQT
// int32 vector of PSQTBuckets entries. Computed[p] is false until the
// vectors for perspective p have actually been produced by a kernel; per
// the data model's Open Question, callers must never read Dense[p]/PSQT[p]
// while Computed[p] is false — their contents are whatever was left by a
// prior occupant of this slot.
type Accumulator struct {
	Dense    [2][]int16
	PSQT     [2][]int32
	Computed [2]bool
}

// NewAccumulator allocates an Accumulator sized for halfDimensions. Called
// once per stack slot at construction; never on the search hot path.
func NewAccumulator(halfDimensions int) *Accumulator {
	return &Accumulator{
		Dense: [2][]int16{
			make([]int16, halfDimensions),
			make([]int16, halfDimensions),
		},
		PSQT: [2][]int32{
			make([]int32, PSQTBuckets),
			make([]int32, PSQTBuckets),
		},
	}
}

// reset clears both perspectives' Computed flags without touching vector
// contents, matching the data model's AccumulatorState.reset: the vectors
// are left as whatever they held before, and must not be read until
// Computed is re-established by a kernel.
func (a *Accumulator) reset() {
	a.Computed[0] = false
	a.Computed[1] = false
}

// AccumulatorState is one ply's record: the big and small accumulators plus
// the DirtyPiece that produced this ply from its predecessor on the search
// path. The root ply (index 0) carries a zero-value DirtyPiece; it is never
// read since evaluate never requires_refresh-checks index 0's own delta.
type AccumulatorState struct {
	Big   Accumulator
	Small Accumulator
	Dirty DirtyPiece
}

// newAccumulatorState allocates a state sized for the two network widths.
func newAccumulatorState(bigDims, smallDims int) *AccumulatorState {
	return &AccumulatorState{
		Big:   *NewAccumulator(bigDims),
		Small: *NewAccumulator(smallDims),
	}
}

// reset records dp as this ply's delta and marks both accumulators
// uncomputed for both perspectives. Vector contents are left untouched.
func (s *AccumulatorState) reset(dp DirtyPiece) {
	s.Dirty = dp
	s.Big.reset()
	s.Small.reset()
}
