package nnueacc

import "testing"

func TestNewFeatureTransformerValidatesLengths(t *testing.T) {
	_, err := NewFeatureTransformer(16, Dimensions, make([]int16, 1), make([]int32, Dimensions*PSQTBuckets))
	if err == nil {
		t.Fatal("expected error for mis-sized weights slice")
	}

	_, err = NewFeatureTransformer(16, Dimensions, make([]int16, 16*Dimensions), make([]int32, 1))
	if err == nil {
		t.Fatal("expected error for mis-sized psqtWeights slice")
	}
}

func TestFeatureTransformerColumnSlices(t *testing.T) {
	ft := testTransformer(8)

	c0 := ft.Column(0)
	c1 := ft.Column(1)
	if len(c0) != 8 || len(c1) != 8 {
		t.Fatalf("Column length = %d, %d, want 8, 8", len(c0), len(c1))
	}
	if &c0[0] == &c1[0] {
		t.Fatal("distinct feature columns must not alias")
	}

	p0 := ft.PSQTColumn(0)
	if len(p0) != PSQTBuckets {
		t.Fatalf("PSQTColumn length = %d, want %d", len(p0), PSQTBuckets)
	}
}
