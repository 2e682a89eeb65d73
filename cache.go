package nnueacc

import "fmt"

// CacheEntry is a snapshot taken the last time an accumulator was refreshed
// for a particular (king square, perspective): the full accumulator plus
// the piece-placement bitboards that produced it. byColorBB/byTypeBB let
// the refresh kernel recover, per (color, type) pair, exactly which squares
// changed since the snapshot was taken, without re-deriving it from the
// dense vector.
type CacheEntry struct {
	DenseAcc  []int16
	PSQTAcc   []int32
	ByColorBB [2]Bitboard
	ByTypeBB  [6]Bitboard
}

// Cache is a dense table of CacheEntry, indexed by (king square,
// perspective). It never shrinks; refresh overwrites entries in place. The
// caller owns one Cache per network size (big, small) and passes it by
// reference into reset/evaluate.
type Cache struct {
	entries [64][2]CacheEntry
}

// NewCache allocates a Cache for a transformer of the given half-dimension
// width. Every entry starts as the empty board: zero snapshot, zero
// bitboards, so the first refresh against any real position computes its
// delta against "no pieces anywhere".
func NewCache(halfDimensions int) (*Cache, error) {
	if halfDimensions <= 0 {
		return nil, fmt.Errorf("nnueacc: NewCache: halfDimensions must be positive, got %d", halfDimensions)
	}
	c := &Cache{}
	for sq := 0; sq < 64; sq++ {
		for p := 0; p < 2; p++ {
			c.entries[sq][p].DenseAcc = make([]int16, halfDimensions)
			c.entries[sq][p].PSQTAcc = make([]int32, PSQTBuckets)
		}
	}
	return c, nil
}

// Entry returns the cache slot for (ksq, perspective).
func (c *Cache) Entry(ksq Square, perspective Perspective) *CacheEntry {
	return &c.entries[ksq][perspective]
}
