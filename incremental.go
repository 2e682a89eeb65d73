package nnueacc

import "github.com/hailam/nnueacc/features"

// direction selects which side of a DirtyPiece's (from, to) pairs is read
// as "removed" and which as "added" by updateIncremental. It is a runtime
// parameter, checked once before the fused passes, so the inner loops
// themselves carry no branch on it.
type direction int8

const (
	forward direction = iota
	backward
)

// updateIncremental applies one ply's delta to target's perspective-p
// vectors, reading source's perspective-p vectors as the base. dp is the
// DirtyPiece to convert into removed/added indices: the target ply's own
// delta when dir is forward, or the later ply's delta (with removed/added
// swapped) when dir is backward. Precondition: source.Computed[p] is true
// and target.Computed[p] is false; postcondition: target.Computed[p] is true.
//
// Ported from Stockfish's update_accumulator_incremental via
// append_changed_indices: dispatches on the sizes of the removed/added
// index lists (each 1 or 2) to one of four fused passes, never spilling
// an intermediate result before the lane's final value is known.
func updateIncremental(ft *FeatureTransformer, ksq Square, perspective Perspective, target, source *Accumulator, dp DirtyPiece, dir direction) {
	var removedIdx, addedIdx features.IndexList
	features.AppendChangedIndices(perspective, ksq, &dp, &removedIdx, &addedIdx)
	if dir == backward {
		removedIdx, addedIdx = addedIdx, removedIdx
	}

	dstDense, srcDense := target.Dense[perspective], source.Dense[perspective]
	dstPSQT, srcPSQT := target.PSQT[perspective], source.PSQT[perspective]

	switch {
	case addedIdx.Len() == 1 && removedIdx.Len() == 1:
		a, r := ft.Column(addedIdx.At(0)), ft.Column(removedIdx.At(0))
		pa, pr := ft.PSQTColumn(addedIdx.At(0)), ft.PSQTColumn(removedIdx.At(0))
		fusedAddSubInt16(dstDense, srcDense, a, r)
		fusedAddSubInt32(dstPSQT, srcPSQT, pa, pr)

	case addedIdx.Len() == 1 && removedIdx.Len() == 2:
		a := ft.Column(addedIdx.At(0))
		r1, r2 := ft.Column(removedIdx.At(0)), ft.Column(removedIdx.At(1))
		pa := ft.PSQTColumn(addedIdx.At(0))
		pr1, pr2 := ft.PSQTColumn(removedIdx.At(0)), ft.PSQTColumn(removedIdx.At(1))
		fusedAddSubSubInt16(dstDense, srcDense, a, r1, r2)
		fusedAddSubSubInt32(dstPSQT, srcPSQT, pa, pr1, pr2)

	case addedIdx.Len() == 2 && removedIdx.Len() == 1:
		a1, a2 := ft.Column(addedIdx.At(0)), ft.Column(addedIdx.At(1))
		r := ft.Column(removedIdx.At(0))
		pa1, pa2 := ft.PSQTColumn(addedIdx.At(0)), ft.PSQTColumn(addedIdx.At(1))
		pr := ft.PSQTColumn(removedIdx.At(0))
		fusedAddAddSubInt16(dstDense, srcDense, a1, a2, r)
		fusedAddAddSubInt32(dstPSQT, srcPSQT, pa1, pa2, pr)

	case addedIdx.Len() == 2 && removedIdx.Len() == 2:
		a1, a2 := ft.Column(addedIdx.At(0)), ft.Column(addedIdx.At(1))
		r1, r2 := ft.Column(removedIdx.At(0)), ft.Column(removedIdx.At(1))
		pa1, pa2 := ft.PSQTColumn(addedIdx.At(0)), ft.PSQTColumn(addedIdx.At(1))
		pr1, pr2 := ft.PSQTColumn(removedIdx.At(0)), ft.PSQTColumn(removedIdx.At(1))
		fusedAddAddSubSubInt16(dstDense, srcDense, a1, a2, r1, r2)
		fusedAddAddSubSubInt32(dstPSQT, srcPSQT, pa1, pa2, pr1, pr2)

	default:
		panic("nnueacc: updateIncremental: unsupported added/removed sizes")
	}

	target.Computed[perspective] = true
}
