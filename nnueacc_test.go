package nnueacc

// fakePosition is a minimal in-memory board used only by this package's
// tests: a flat array of 64 squares plus incremental bitboard bookkeeping,
// built directly from piece placements rather than from any real move
// generator (board representation is out of scope for this module).
type fakePosition struct {
	pieceOn   [64]Piece
	byColor   [2]Bitboard
	byType    [7]Bitboard // indexed by PieceType, NoPieceType unused
	kingSq    [2]Square
}

func newFakePosition() *fakePosition {
	p := &fakePosition{}
	p.kingSq[White] = NoSquare
	p.kingSq[Black] = NoSquare
	return p
}

func (p *fakePosition) place(sq Square, pc Piece) {
	p.pieceOn[sq] = pc
	p.byColor[pc.Color()] |= 1 << uint(sq)
	p.byType[pc.Type()] |= 1 << uint(sq)
	if pc.Type() == King {
		p.kingSq[pc.Color()] = sq
	}
}

func (p *fakePosition) remove(sq Square) {
	pc := p.pieceOn[sq]
	if pc == NoPiece {
		return
	}
	p.byColor[pc.Color()] &^= 1 << uint(sq)
	p.byType[pc.Type()] &^= 1 << uint(sq)
	p.pieceOn[sq] = NoPiece
}

// move relocates the piece on from to to (to must be empty or the capture
// has already been removed by the caller), returning the DirtyPiece for it.
func (p *fakePosition) move(from, to Square) DirtyPiece {
	pc := p.pieceOn[from]
	p.remove(from)
	p.place(to, pc)
	var dp DirtyPiece
	dp.Move(pc, from, to)
	return dp
}

func (p *fakePosition) KingSquare(perspective Perspective) Square { return p.kingSq[perspective] }

func (p *fakePosition) Pieces(color Perspective, pt PieceType) Bitboard {
	return p.byColor[color] & p.byType[pt]
}

func (p *fakePosition) PiecesColor(color Perspective) Bitboard { return p.byColor[color] }

func (p *fakePosition) PiecesType(pt PieceType) Bitboard { return p.byType[pt] }

// startingFour sets up a minimal four-piece position (the two kings and a
// rook each) used across tests needing a small but non-trivial board.
func startingFour() *fakePosition {
	p := newFakePosition()
	p.place(0, MakePiece(White, Rook))
	p.place(4, MakePiece(White, King))
	p.place(60, MakePiece(Black, King))
	p.place(63, MakePiece(Black, Rook))
	return p
}

// testTransformer builds a deterministic, non-random FeatureTransformer of
// the given width so incremental and refresh paths can be compared
// byte-exactly without depending on any real network file.
func testTransformer(halfDims int) *FeatureTransformer {
	numFeatures := Dimensions
	weights := make([]int16, halfDims*numFeatures)
	for f := 0; f < numFeatures; f++ {
		for k := 0; k < halfDims; k++ {
			weights[f*halfDims+k] = int16((f*31+k*7)%101 - 50)
		}
	}
	psqt := make([]int32, numFeatures*PSQTBuckets)
	for f := 0; f < numFeatures; f++ {
		for b := 0; b < PSQTBuckets; b++ {
			psqt[f*PSQTBuckets+b] = int32((f*13+b*5)%61 - 30)
		}
	}
	ft, err := NewFeatureTransformer(halfDims, numFeatures, weights, psqt)
	if err != nil {
		panic(err)
	}
	return ft
}
