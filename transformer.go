package nnueacc

import "fmt"

// FeatureTransformer is a read-only view over one network's first-layer
// weights: a column of HalfDimensions int16 values per feature for the dense
// accumulator, and a column of PSQTBuckets int32 values per feature for the
// PSQT accumulator. Loading these from a network file is out of scope here;
// callers construct a FeatureTransformer over weights they already hold.
type FeatureTransformer struct {
	halfDimensions int
	numFeatures    int

	// Weights is laid out row-major by feature index: Weights[f*halfDimensions : (f+1)*halfDimensions].
	Weights []int16

	// PSQTWeights is laid out the same way, PSQTBuckets per feature.
	PSQTWeights []int32
}

// NewFeatureTransformer builds a view over weights/psqtWeights, which the
// caller owns and must not mutate afterward. halfDimensions is the
// accumulator width for this network (Dbig or Dsmall); numFeatures is the
// feature set's dimension (features.Dimensions for HalfKAv2_hm).
func NewFeatureTransformer(halfDimensions, numFeatures int, weights []int16, psqtWeights []int32) (*FeatureTransformer, error) {
	if halfDimensions <= 0 {
		return nil, fmt.Errorf("nnueacc: NewFeatureTransformer: halfDimensions must be positive, got %d", halfDimensions)
	}
	if numFeatures <= 0 {
		return nil, fmt.Errorf("nnueacc: NewFeatureTransformer: numFeatures must be positive, got %d", numFeatures)
	}
	if len(weights) != halfDimensions*numFeatures {
		return nil, fmt.Errorf("nnueacc: NewFeatureTransformer: weights has %d elements, want %d", len(weights), halfDimensions*numFeatures)
	}
	if len(psqtWeights) != numFeatures*PSQTBuckets {
		return nil, fmt.Errorf("nnueacc: NewFeatureTransformer: psqtWeights has %d elements, want %d", len(psqtWeights), numFeatures*PSQTBuckets)
	}
	return &FeatureTransformer{
		halfDimensions: halfDimensions,
		numFeatures:    numFeatures,
		Weights:        weights,
		PSQTWeights:    psqtWeights,
	}, nil
}

// HalfDimensions is the accumulator width this transformer produces.
func (ft *FeatureTransformer) HalfDimensions() int { return ft.halfDimensions }

// NumFeatures is the size of the feature space this transformer is indexed over.
func (ft *FeatureTransformer) NumFeatures() int { return ft.numFeatures }

// Column returns the dense weight column for feature idx, a slice of length
// HalfDimensions into the transformer's backing storage. idx must be in
// [0, NumFeatures).
func (ft *FeatureTransformer) Column(idx int) []int16 {
	off := idx * ft.halfDimensions
	return ft.Weights[off : off+ft.halfDimensions]
}

// PSQTColumn returns the PSQT weight column for feature idx, a slice of
// length PSQTBuckets into the transformer's backing storage.
func (ft *FeatureTransformer) PSQTColumn(idx int) []int32 {
	off := idx * PSQTBuckets
	return ft.PSQTWeights[off : off+PSQTBuckets]
}
