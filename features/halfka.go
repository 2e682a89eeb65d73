// Ported from Stockfish src/nnue/features/half_ka_v2_hm.{h,cpp}, by way of
// github.com/hailam/chessplay/sfnnue/features/half_ka_v2_hm.go.
//
// HalfKAv2_hm: each feature is (perspective, own king square, piece,
// piece square). Positions are mirrored horizontally so the king's own
// square is always expressed in the e..h files ("hm" = horizontally
// mirrored), halving the number of king buckets needed.

package features

import "math/bits"

const squareNB = 64

// Piece-square base offsets, one slot per (color, non-king piece type)
// plus one shared slot for either king (halved again by the mirror).
const (
	psWPawn   = 0
	psBPawn   = 1 * squareNB
	psWKnight = 2 * squareNB
	psBKnight = 3 * squareNB
	psWBishop = 4 * squareNB
	psBBishop = 5 * squareNB
	psWRook   = 6 * squareNB
	psBRook   = 7 * squareNB
	psWQueen  = 8 * squareNB
	psBQueen  = 9 * squareNB
	psKing    = 10 * squareNB
	psNB      = 11 * squareNB
)

// HashValue identifies this feature set in a network file header.
const HashValue uint32 = 0x7f234cb8

// Name is the feature set's canonical name, as embedded by trainers.
const Name = "HalfKAv2_hm(Friend)"

// Dimensions is the total number of features: one king bucket per half of
// the board (32, after mirroring) times the 11 piece-square slots.
const Dimensions = squareNB * psNB / 2 // 22528

// MaxActiveDimensions bounds the number of simultaneously active features
// per perspective (32 pieces on the board, at most).
const MaxActiveDimensions = 32

// pieceSquareIndex maps a packed Piece to its piece-square base offset, one
// table per perspective (white sees its own pieces as "friend"; black's
// table swaps friend/foe so the same feature space is reused).
var pieceSquareIndex = [2][16]int{
	{ // White perspective
		-1, psWPawn, psWKnight, psWBishop, psWRook, psWQueen, psKing, -1,
		-1, psBPawn, psBKnight, psBBishop, psBRook, psBQueen, psKing, -1,
	},
	{ // Black perspective
		-1, psBPawn, psBKnight, psBBishop, psBRook, psBQueen, psKing, -1,
		-1, psWPawn, psWKnight, psWBishop, psWRook, psWQueen, psKing, -1,
	},
}

// kingBucket maps a king square to its bucket index, pre-multiplied by psNB.
// Symmetric about the center so mirroring the board mirrors the bucket too.
var kingBucket = [squareNB]int{
	28 * psNB, 29 * psNB, 30 * psNB, 31 * psNB, 31 * psNB, 30 * psNB, 29 * psNB, 28 * psNB,
	24 * psNB, 25 * psNB, 26 * psNB, 27 * psNB, 27 * psNB, 26 * psNB, 25 * psNB, 24 * psNB,
	20 * psNB, 21 * psNB, 22 * psNB, 23 * psNB, 23 * psNB, 22 * psNB, 21 * psNB, 20 * psNB,
	16 * psNB, 17 * psNB, 18 * psNB, 19 * psNB, 19 * psNB, 18 * psNB, 17 * psNB, 16 * psNB,
	12 * psNB, 13 * psNB, 14 * psNB, 15 * psNB, 15 * psNB, 14 * psNB, 13 * psNB, 12 * psNB,
	8 * psNB, 9 * psNB, 10 * psNB, 11 * psNB, 11 * psNB, 10 * psNB, 9 * psNB, 8 * psNB,
	4 * psNB, 5 * psNB, 6 * psNB, 7 * psNB, 7 * psNB, 6 * psNB, 5 * psNB, 4 * psNB,
	0 * psNB, 1 * psNB, 2 * psNB, 3 * psNB, 3 * psNB, 2 * psNB, 1 * psNB, 0 * psNB,
}

// sqA1/sqH1 select which half of the horizontal mirror a king square falls
// on: files a-d flip (mirror to h-e), files e-h don't.
const (
	sqA1 = Square(0)
	sqH1 = Square(7)
)

var orientation = buildOrientationTable()

func buildOrientationTable() [squareNB]Square {
	var t [squareNB]Square
	for sq := 0; sq < squareNB; sq++ {
		if sq&7 < 4 {
			t[sq] = sqH1
		} else {
			t[sq] = sqA1
		}
	}
	return t
}

// MakeIndex computes the feature index for a piece on sq, viewed from
// perspective, given the perspective's own king on ksq. Total and
// deterministic on its valid domain: pc must not be NoPiece.
func MakeIndex(perspective Perspective, sq Square, pc Piece, ksq Square) int {
	flip := Square(56 * int8(perspective))
	orientedSq := int(sq ^ orientation[ksq] ^ flip)
	return orientedSq + pieceSquareIndex[perspective][pc] + kingBucket[int(ksq^flip)]
}

// RequiresRefresh reports whether dp moves, removes, or adds the
// perspective's own king — the one change that invalidates the entire
// index space for that perspective, since every feature for it is keyed by
// king square.
func RequiresRefresh(dp *DirtyPiece, perspective Perspective) bool {
	return dp.MovesKing(perspective)
}

// IndexList is a fixed-capacity list of feature indices, sized for the
// largest set append_changed_indices or AppendActiveIndices can produce.
type IndexList struct {
	values [MaxActiveDimensions]int
	n      int
}

// Push appends idx. Panics if the list is full — a caller bug, since the
// fused-lane contract guarantees at most two entries per incremental call.
func (l *IndexList) Push(idx int) {
	if l.n >= len(l.values) {
		panic("features: IndexList overflow")
	}
	l.values[l.n] = idx
	l.n++
}

// Len returns the number of indices currently held.
func (l *IndexList) Len() int { return l.n }

// At returns the i'th index.
func (l *IndexList) At(i int) int { return l.values[i] }

// Slice returns the held indices as a plain slice, valid until the next
// mutation of l.
func (l *IndexList) Slice() []int { return l.values[:l.n] }

// Clear empties the list for reuse.
func (l *IndexList) Clear() { l.n = 0 }

// AppendChangedIndices converts dp into the removed/added feature indices
// it produces for perspective, given the perspective's own king on ksq.
// Ported from half_ka_v2_hm.cpp's append_changed_indices and generalized
// from Stockfish's fixed from/to/RemoveSq/AddSq fields to DirtyPiece's
// array of up to three (piece, from, to) triples: each triple with a valid
// From contributes a removed index, each with a valid To contributes an
// added index — a relocation (both valid) contributes one of each.
//
// Contract: len(added) and len(removed) are each in {1, 2}; callers rely on
// this to size the incremental kernel's fused dispatch (incremental.go).
func AppendChangedIndices(perspective Perspective, ksq Square, dp *DirtyPiece, removed, added *IndexList) {
	for i := 0; i < dp.Count; i++ {
		d := dp.Deltas[i]
		if d.From != NoSquare {
			removed.Push(MakeIndex(perspective, d.From, d.Piece, ksq))
		}
		if d.To != NoSquare {
			added.Push(MakeIndex(perspective, d.To, d.Piece, ksq))
		}
	}
}

// AppendActiveIndices enumerates every feature active in a position from
// perspective, for a from-scratch accumulator computation. pieceOn looks up
// the occupant of a square known (from occupied) to hold one.
func AppendActiveIndices(perspective Perspective, ksq Square, occupied Bitboard, pieceOn func(Square) Piece, active *IndexList) {
	bb := uint64(occupied)
	for bb != 0 {
		sq := Square(bits.TrailingZeros64(bb))
		bb &= bb - 1
		pc := pieceOn(sq)
		if pc != NoPiece {
			active.Push(MakeIndex(perspective, sq, pc, ksq))
		}
	}
}
