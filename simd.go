package nnueacc

// Vector facade: {add, sub} over int16/int32 lanes, fused so each lane of
// dst is read once, combined with up to two added and two subtracted
// operands, and written once. One target instruction set, one
// implementation; a build carrying an actual SIMD intrinsic package would
// replace these bodies behind the same signatures, not change the call
// sites in incremental.go/refresh.go.
//
// Every function panics on a length mismatch rather than silently
// truncating — these are hot-path preconditions, not recoverable errors.

func addInt16(dst, src []int16) {
	if len(dst) != len(src) {
		panic("nnueacc: addInt16: length mismatch")
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

func subInt16(dst, src []int16) {
	if len(dst) != len(src) {
		panic("nnueacc: subInt16: length mismatch")
	}
	for i := range dst {
		dst[i] -= src[i]
	}
}

func addInt32(dst, src []int32) {
	if len(dst) != len(src) {
		panic("nnueacc: addInt32: length mismatch")
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

func subInt32(dst, src []int32) {
	if len(dst) != len(src) {
		panic("nnueacc: subInt32: length mismatch")
	}
	for i := range dst {
		dst[i] -= src[i]
	}
}

// fusedAddSubInt16 computes dst[i] = src[i] + a[i] - r[i] in one pass,
// the "quiet move" fused lane: one add, one subtract, no intermediate
// spill to dst before the full expression is known.
func fusedAddSubInt16(dst, src, a, r []int16) {
	n := len(dst)
	if len(src) != n || len(a) != n || len(r) != n {
		panic("nnueacc: fusedAddSubInt16: length mismatch")
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] + a[i] - r[i]
	}
}

// fusedAddSubSubInt16 computes dst[i] = src[i] + a[i] - r1[i] - r2[i], the
// "capture" fused lane (one square gains a piece, two pieces vacate their
// squares: the mover's origin and the captured piece's square).
func fusedAddSubSubInt16(dst, src, a, r1, r2 []int16) {
	n := len(dst)
	if len(src) != n || len(a) != n || len(r1) != n || len(r2) != n {
		panic("nnueacc: fusedAddSubSubInt16: length mismatch")
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] + a[i] - r1[i] - r2[i]
	}
}

// fusedAddAddSubInt16 computes dst[i] = src[i] + a1[i] + a2[i] - r[i], the
// mirror of fusedAddSubSubInt16 (two arrivals, one departure).
func fusedAddAddSubInt16(dst, src, a1, a2, r []int16) {
	n := len(dst)
	if len(src) != n || len(a1) != n || len(a2) != n || len(r) != n {
		panic("nnueacc: fusedAddAddSubInt16: length mismatch")
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] + a1[i] + a2[i] - r[i]
	}
}

// fusedAddAddSubSubInt16 computes dst[i] = src[i] + a1[i] + a2[i] - r1[i] -
// r2[i], the four-lane castling fusion: two pieces arrive, two depart, in
// one pass.
func fusedAddAddSubSubInt16(dst, src, a1, a2, r1, r2 []int16) {
	n := len(dst)
	if len(src) != n || len(a1) != n || len(a2) != n || len(r1) != n || len(r2) != n {
		panic("nnueacc: fusedAddAddSubSubInt16: length mismatch")
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] + a1[i] + a2[i] - r1[i] - r2[i]
	}
}

// The int32 PSQT lane is always at most 2 adds and 2 subs (PSQTBuckets is
// small enough that fusing buys nothing over the dense lane's sequence, but
// the same single-pass contract applies).

func fusedAddSubInt32(dst, src, a, r []int32) {
	n := len(dst)
	if len(src) != n || len(a) != n || len(r) != n {
		panic("nnueacc: fusedAddSubInt32: length mismatch")
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] + a[i] - r[i]
	}
}

func fusedAddSubSubInt32(dst, src, a, r1, r2 []int32) {
	n := len(dst)
	if len(src) != n || len(a) != n || len(r1) != n || len(r2) != n {
		panic("nnueacc: fusedAddSubSubInt32: length mismatch")
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] + a[i] - r1[i] - r2[i]
	}
}

func fusedAddAddSubInt32(dst, src, a1, a2, r []int32) {
	n := len(dst)
	if len(src) != n || len(a1) != n || len(a2) != n || len(r) != n {
		panic("nnueacc: fusedAddAddSubInt32: length mismatch")
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] + a1[i] + a2[i] - r[i]
	}
}

func fusedAddAddSubSubInt32(dst, src, a1, a2, r1, r2 []int32) {
	n := len(dst)
	if len(src) != n || len(a1) != n || len(a2) != n || len(r1) != n || len(r2) != n {
		panic("nnueacc: fusedAddAddSubSubInt32: length mismatch")
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] + a1[i] + a2[i] - r1[i] - r2[i]
	}
}
