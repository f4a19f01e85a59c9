package engine

// Weights collects the scoring tunables in one place. The values are
// hand-tuned for behavior parity with the production system; preserve them
// rather than re-deriving "better" ones.
type Weights struct {
	// Keyword and Semantic weight the two evidence terms of the hybrid
	// score. Keyword evidence weighs more because it is precise when
	// present; the semantic term supplies recall when lexical evidence is
	// absent.
	Keyword  float64
	Semantic float64

	// NoiseFloor excludes hybrid results whose combined score carries no
	// real evidence.
	NoiseFloor float64

	// ResumeThreshold and ShortQueryThreshold gate the strict-semantic
	// mode used for free-text input: resume-length text dilutes keyword
	// overlap, so matching filters purely on cosine similarity.
	ResumeThreshold     float64
	ShortQueryThreshold float64

	// ResumeLengthChars is the input length above which the resume-length
	// threshold applies instead of the short-query one.
	ResumeLengthChars int
}

// DefaultWeights returns the production scoring tunables.
func DefaultWeights() Weights {
	return Weights{
		Keyword:             0.6,
		Semantic:            0.4,
		NoiseFloor:          0.1,
		ResumeThreshold:     0.2,
		ShortQueryThreshold: 0.25,
		ResumeLengthChars:   200,
	}
}
