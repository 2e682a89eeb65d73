package nnueacc

import "testing"

// fromScratch computes the exact transform of pos from perspective p by
// summing every active feature's weight column, independent of any cache
// or kernel — the reference used to check refresh correctness.
func fromScratch(ft *FeatureTransformer, pos *fakePosition, p Perspective) ([]int16, []int32) {
	ksq := pos.KingSquare(p)
	dense := make([]int16, ft.HalfDimensions())
	psqt := make([]int32, PSQTBuckets)
	for sq := Square(0); sq < 64; sq++ {
		pc := pos.pieceOn[sq]
		if pc == NoPiece {
			continue
		}
		idx := MakeIndex(p, sq, pc, ksq)
		col := ft.Column(idx)
		pcol := ft.PSQTColumn(idx)
		for i := range dense {
			dense[i] += col[i]
		}
		for b := range psqt {
			psqt[b] += pcol[b]
		}
	}
	return dense, psqt
}

func TestRefreshCorrectness(t *testing.T) {
	ft := testTransformer(16)
	cache, err := NewCache(16)
	if err != nil {
		t.Fatal(err)
	}
	pos := startingFour()

	acc := NewAccumulator(16)
	refresh(ft, pos, White, acc, cache)
	refresh(ft, pos, Black, acc, cache)

	wantDenseW, wantPSQTW := fromScratch(ft, pos, White)
	wantDenseB, wantPSQTB := fromScratch(ft, pos, Black)

	if !int16SliceEqual(acc.Dense[White], wantDenseW) {
		t.Error("refresh(White) dense vector mismatch against from-scratch sum")
	}
	if !int32SliceEqual(acc.PSQT[White], wantPSQTW) {
		t.Error("refresh(White) PSQT vector mismatch against from-scratch sum")
	}
	if !int16SliceEqual(acc.Dense[Black], wantDenseB) {
		t.Error("refresh(Black) dense vector mismatch against from-scratch sum")
	}
	if !int32SliceEqual(acc.PSQT[Black], wantPSQTB) {
		t.Error("refresh(Black) PSQT vector mismatch against from-scratch sum")
	}
	if !acc.Computed[White] || !acc.Computed[Black] {
		t.Error("refresh must set Computed true for the perspective it refreshed")
	}
}

func TestCacheConsistencyAfterRefresh(t *testing.T) {
	ft := testTransformer(16)
	cache, err := NewCache(16)
	if err != nil {
		t.Fatal(err)
	}
	pos := startingFour()
	acc := NewAccumulator(16)

	refresh(ft, pos, White, acc, cache)

	ksq := pos.KingSquare(White)
	entry := cache.Entry(ksq, White)
	for c := White; c <= Black; c++ {
		if entry.ByColorBB[c] != pos.PiecesColor(c) {
			t.Errorf("entry.ByColorBB[%v] stale after refresh", c)
		}
	}
	wantDense, wantPSQT := fromScratch(ft, pos, White)
	if !int16SliceEqual(entry.DenseAcc, wantDense) {
		t.Error("cache entry snapshot does not match the refreshed position")
	}
	if !int32SliceEqual(entry.PSQTAcc, wantPSQT) {
		t.Error("cache entry PSQT snapshot does not match the refreshed position")
	}
}

func int16SliceEqual(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func int32SliceEqual(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
