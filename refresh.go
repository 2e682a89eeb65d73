package nnueacc

import (
	"math/bits"

	"github.com/hailam/nnueacc/features"
)

// refresh rebuilds acc's perspective-p vectors from cache's entry for
// (ksq, perspective), applying the bitboard delta between the entry's
// stored placement and pos's actual placement, then updates the entry in
// place so it reflects pos going forward.
//
// Ported from Stockfish's update_accumulator_refresh_cache: the 12
// (color, type) pairs are walked individually rather than diffing one
// combined occupancy bitboard, because the feature index depends on piece
// type, not just "something changed here".
func refresh(ft *FeatureTransformer, pos Position, perspective Perspective, acc *Accumulator, cache *Cache) {
	ksq := pos.KingSquare(perspective)
	entry := cache.Entry(ksq, perspective)

	var removedIdx, addedIdx features.IndexList
	for c := White; c <= Black; c++ {
		for _, pt := range pieceTypes {
			cachedBB := entry.ByColorBB[c] & entry.ByTypeBB[pt-Pawn]
			currentBB := pos.Pieces(c, pt)

			toRemove := uint64(cachedBB) &^ uint64(currentBB)
			toAdd := uint64(currentBB) &^ uint64(cachedBB)

			pc := features.MakePiece(c, pt)
			for toRemove != 0 {
				sq := Square(bits.TrailingZeros64(toRemove))
				toRemove &= toRemove - 1
				removedIdx.Push(features.MakeIndex(perspective, sq, pc, ksq))
			}
			for toAdd != 0 {
				sq := Square(bits.TrailingZeros64(toAdd))
				toAdd &= toAdd - 1
				addedIdx.Push(features.MakeIndex(perspective, sq, pc, ksq))
			}
		}
	}

	applyIndexDelta(ft, entry.DenseAcc, entry.PSQTAcc, removedIdx, addedIdx)

	copy(acc.Dense[perspective], entry.DenseAcc)
	copy(acc.PSQT[perspective], entry.PSQTAcc)
	acc.Computed[perspective] = true

	for c := White; c <= Black; c++ {
		entry.ByColorBB[c] = pos.PiecesColor(c)
	}
	for _, pt := range pieceTypes {
		entry.ByTypeBB[pt-Pawn] = pos.PiecesType(pt)
	}
}

// applyIndexDelta updates dense/psqt in place by adding every column named
// in added and subtracting every column named in removed. It fuses one
// add+sub pair per iteration while both lists have entries left, then
// applies any remaining indices (from whichever list ran longer) one at a
// time. The arithmetic result is identical to applying each index
// one-by-one; this only changes how many lanes are touched per pass.
func applyIndexDelta(ft *FeatureTransformer, dense []int16, psqt []int32, removed, added features.IndexList) {
	ri, ai := 0, 0
	rn, an := removed.Len(), added.Len()

	for ri < rn && ai < an {
		a, r := ft.Column(added.At(ai)), ft.Column(removed.At(ri))
		pa, pr := ft.PSQTColumn(added.At(ai)), ft.PSQTColumn(removed.At(ri))
		fusedAddSubInt16(dense, dense, a, r)
		fusedAddSubInt32(psqt, psqt, pa, pr)
		ri++
		ai++
	}
	for ; ri < rn; ri++ {
		subInt16(dense, ft.Column(removed.At(ri)))
		subInt32(psqt, ft.PSQTColumn(removed.At(ri)))
	}
	for ; ai < an; ai++ {
		addInt16(dense, ft.Column(added.At(ai)))
		addInt32(psqt, ft.PSQTColumn(added.At(ai)))
	}
}
