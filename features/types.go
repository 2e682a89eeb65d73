// Package features implements feature indexing for a HalfKAv2_hm-style NNUE
// feature set: mapping (perspective, king square, piece, square) to a
// feature index, classifying moves as refresh-requiring or incremental, and
// enumerating the added/removed indices of an incremental move.
//
// It is the leaf component of github.com/hailam/nnueacc and depends on
// nothing else in the module; the fundamental domain types (Perspective,
// Square, Piece, DirtyPiece, ...) live here and are re-exported by the
// parent package so callers normally never import this package directly.
package features

// Perspective is the side an accumulator is computed from. In this domain
// it is one of the two colors; SELF/OPP from the abstract data model are
// just White/Black depending on which side is asking.
type Perspective int8

const (
	White Perspective = 0
	Black Perspective = 1
)

// Other returns the opposing perspective.
func (p Perspective) Other() Perspective {
	return 1 - p
}

func (p Perspective) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

// Square identifies a board cell in [0, 63]. NoSquare marks an absent
// endpoint of a DirtyPiece triple (a pure addition or pure removal).
type Square int8

const NoSquare Square = 64

// PieceType is the kind of a piece, independent of color.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece packs a color and a piece type into Stockfish's conventional
// encoding: color*8 + type, with 0 reserved for "no piece". This matches
// Stockfish's PieceSquareIndex table layout.
type Piece int8

const NoPiece Piece = 0

// MakePiece packs a color and type into a Piece.
func MakePiece(c Perspective, pt PieceType) Piece {
	return Piece(int8(c)*8 + int8(pt))
}

// Color returns the owning color of p. Undefined for NoPiece.
func (p Piece) Color() Perspective {
	return Perspective(p >> 3)
}

// Type returns the piece type of p. Undefined for NoPiece.
func (p Piece) Type() PieceType {
	return PieceType(p & 7)
}

// Bitboard is a 64-bit set of squares.
type Bitboard uint64

// PieceDelta is one (piece, from, to) triple of a move's delta. from ==
// NoSquare encodes an addition (the piece appears at to); to == NoSquare
// encodes a removal (the piece disappears from from); both set encodes a
// relocation (quiet move, or one half of castling).
type PieceDelta struct {
	Piece Piece
	From  Square
	To    Square
}

// DirtyPiece is the compact per-ply record of which pieces moved, appeared,
// or disappeared going from the predecessor position to this one. Modeled
// after Stockfish's DirtyPiece{Piece piece[3]; Square from[3], to[3]; int
// dirty_num;}: quiet moves use one triple, captures and promotions two,
// castling two (king and rook), and promotion-captures three.
type DirtyPiece struct {
	Deltas [3]PieceDelta
	Count  int
}

// Add appends a triple to the dirty set. Panics if more than three triples
// are recorded — no legal chess move produces more.
func (dp *DirtyPiece) Add(piece Piece, from, to Square) {
	if dp.Count >= len(dp.Deltas) {
		panic("features: DirtyPiece overflow: more than three piece deltas")
	}
	dp.Deltas[dp.Count] = PieceDelta{Piece: piece, From: from, To: to}
	dp.Count++
}

// Moves a piece from one square to another without changing its identity.
func (dp *DirtyPiece) Move(piece Piece, from, to Square) {
	dp.Add(piece, from, to)
}

// Removes a piece (e.g. a captured piece) from a square.
func (dp *DirtyPiece) Remove(piece Piece, from Square) {
	dp.Add(piece, from, NoSquare)
}

// Appears adds a piece (e.g. a promoted piece) onto a square.
func (dp *DirtyPiece) Appears(piece Piece, to Square) {
	dp.Add(piece, NoSquare, to)
}

// MovesKing reports whether this delta relocates, removes, or adds a king
// of the given perspective — the only condition under which a full refresh
// is required (RequiresRefresh).
func (dp *DirtyPiece) MovesKing(perspective Perspective) bool {
	for i := 0; i < dp.Count; i++ {
		d := dp.Deltas[i]
		if d.Piece.Type() == King && d.Piece.Color() == perspective {
			return true
		}
	}
	return false
}
