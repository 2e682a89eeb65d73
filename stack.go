package nnueacc

import (
	"fmt"

	"github.com/hailam/nnueacc/features"
)

// AccumulatorStack owns the per-ply AccumulatorState sequence along the
// current search path: index 0 is the root, [1, currentIdx) are the moves
// made since. States are reused in place; Reset/Push/Pop never allocate.
type AccumulatorStack struct {
	states     []AccumulatorState
	currentIdx int
}

// NewAccumulatorStack allocates a stack of capacity states (sized by the
// caller to the maximum search depth plus quiescence margin), for networks
// with half-dimensions bigDims and smallDims. Push keeps one slot spare, so
// the stack holds the root plus at most capacity-2 pushed plies.
func NewAccumulatorStack(capacity, bigDims, smallDims int) (*AccumulatorStack, error) {
	if capacity < 2 {
		return nil, fmt.Errorf("nnueacc: NewAccumulatorStack: capacity must be at least 2, got %d", capacity)
	}
	if bigDims <= 0 || smallDims <= 0 {
		return nil, fmt.Errorf("nnueacc: NewAccumulatorStack: dimensions must be positive, got big=%d small=%d", bigDims, smallDims)
	}
	s := &AccumulatorStack{states: make([]AccumulatorState, capacity)}
	for i := range s.states {
		s.states[i] = *newAccumulatorState(bigDims, smallDims)
	}
	return s, nil
}

// Reset re-roots the stack at rootPos: currentIdx becomes 1, and states[0]
// is refreshed from scratch for both networks and both perspectives.
func (s *AccumulatorStack) Reset(rootPos Position, nets Networks, bigCache, smallCache *Cache) {
	s.currentIdx = 1
	root := &s.states[0]
	root.Dirty = DirtyPiece{}
	for p := White; p <= Black; p++ {
		refresh(nets.Big.Transformer, rootPos, p, &root.Big, bigCache)
		refresh(nets.Small.Transformer, rootPos, p, &root.Small, smallCache)
	}
}

// Push records dp as the delta for a new ply and advances currentIdx. The
// new state's accumulators are left uncomputed; Evaluate fills them lazily.
func (s *AccumulatorStack) Push(dp DirtyPiece) {
	if s.currentIdx+1 >= len(s.states) {
		panic("nnueacc: AccumulatorStack.Push: capacity exceeded")
	}
	s.states[s.currentIdx].reset(dp)
	s.currentIdx++
}

// Pop undoes the most recent Push.
func (s *AccumulatorStack) Pop() {
	if s.currentIdx <= 1 {
		panic("nnueacc: AccumulatorStack.Pop: already at root")
	}
	s.currentIdx--
}

// Current returns the index of the latest pushed state (currentIdx - 1),
// the ply Evaluate computes into.
func (s *AccumulatorStack) Current() int {
	return s.currentIdx - 1
}

// State returns the AccumulatorState at ply i, for read-only inspection
// once Evaluate has made the relevant perspective Computed.
func (s *AccumulatorStack) State(i int) *AccumulatorState {
	return &s.states[i]
}

// findLastUsableAccumulator walks backward from current-1 to 0 looking for
// either an already-computed state for perspective p, or a state whose
// own delta forced a refresh (a king move) — the nearest point before
// which forward-propagation can't reach past. Falls back to 0.
func (s *AccumulatorStack) findLastUsableAccumulator(p Perspective, selectAcc func(*AccumulatorState) *Accumulator) int {
	for i := s.currentIdx - 1; i > 0; i-- {
		if selectAcc(&s.states[i]).Computed[p] {
			return i
		}
		if features.RequiresRefresh(&s.states[i].Dirty, p) {
			return i
		}
	}
	return 0
}

// Evaluate ensures states[currentIdx-1]'s accumulator for the given network
// is Computed for both perspectives, using the fewest kernel calls: forward
// incremental propagation from the nearest usable ancestor when one is
// computed, otherwise a single refresh at the latest ply followed by
// backward incremental propagation to fill in whatever the search will
// revisit on the way back up.
//
// ft/cache/selectAcc select which network (big or small) is being
// evaluated; selectAcc must return the same network's Accumulator for
// every state passed to it.
func (s *AccumulatorStack) Evaluate(pos Position, ft *FeatureTransformer, ksq [2]Square, cache *Cache, selectAcc func(*AccumulatorState) *Accumulator) {
	latest := s.currentIdx - 1
	for p := White; p <= Black; p++ {
		k := s.findLastUsableAccumulator(p, selectAcc)

		if selectAcc(&s.states[k]).Computed[p] {
			for i := k + 1; i <= latest; i++ {
				updateIncremental(ft, ksq[p], p, selectAcc(&s.states[i]), selectAcc(&s.states[i-1]), s.states[i].Dirty, forward)
			}
			continue
		}

		refresh(ft, pos, p, selectAcc(&s.states[latest]), cache)
		for i := latest - 1; i >= k; i-- {
			updateIncremental(ft, ksq[p], p, selectAcc(&s.states[i]), selectAcc(&s.states[i+1]), s.states[i+1].Dirty, backward)
		}
	}
}

// EvaluateBig evaluates the big network, the common case for callers that
// don't need per-network control over cache selection.
func (s *AccumulatorStack) EvaluateBig(pos Position, nets Networks, cache *Cache) {
	ksq := [2]Square{pos.KingSquare(White), pos.KingSquare(Black)}
	s.Evaluate(pos, nets.Big.Transformer, ksq, cache, func(st *AccumulatorState) *Accumulator { return &st.Big })
}

// EvaluateSmall evaluates the small network.
func (s *AccumulatorStack) EvaluateSmall(pos Position, nets Networks, cache *Cache) {
	ksq := [2]Square{pos.KingSquare(White), pos.KingSquare(Black)}
	s.Evaluate(pos, nets.Small.Transformer, ksq, cache, func(st *AccumulatorState) *Accumulator { return &st.Small })
}
