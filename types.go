// Package nnueacc maintains NNUE feature-transformer accumulators along a
// search tree path: lazy bidirectional incremental updates, a per-king-square
// refresh cache, and the fused add/subtract kernels that drive both.
//
// Move generation, board representation, search, network-weight loading, and
// the dense layers downstream of the feature transformer are not part of
// this package; they are represented only by the Position interface and the
// Network/Networks types in position.go.
package nnueacc

import "github.com/hailam/nnueacc/features"

// Perspective, Square, Piece, PieceType, Bitboard and DirtyPiece are defined
// in the features package (the one part of this module with no internal
// dependencies) and re-exported here so callers never need to import it
// directly.
type (
	Perspective = features.Perspective
	Square      = features.Square
	PieceType   = features.PieceType
	Piece       = features.Piece
	Bitboard    = features.Bitboard
	PieceDelta  = features.PieceDelta
	DirtyPiece  = features.DirtyPiece
)

const (
	White = features.White
	Black = features.Black

	NoSquare    = features.NoSquare
	NoPiece     = features.NoPiece
	NoPieceType = features.NoPieceType

	Pawn   = features.Pawn
	Knight = features.Knight
	Bishop = features.Bishop
	Rook   = features.Rook
	Queen  = features.Queen
	King   = features.King
)

// PSQTBuckets is the number of PSQT output buckets carried alongside every
// accumulator, independent of network size.
const PSQTBuckets = 8

// Dimensions is the HalfKAv2_hm feature space size this package indexes
// into by default.
const Dimensions = features.Dimensions

// MakePiece packs a color and type into a Piece.
func MakePiece(c Perspective, pt PieceType) Piece { return features.MakePiece(c, pt) }

// MakeIndex computes the feature index for a piece on sq, viewed from
// perspective, given the perspective's own king on ksq.
func MakeIndex(perspective Perspective, sq Square, pc Piece, ksq Square) int {
	return features.MakeIndex(perspective, sq, pc, ksq)
}
