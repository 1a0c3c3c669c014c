package intent

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyCorpus    = errors.New("intent: corpus is empty")
	ErrDuplicateLabel = errors.New("intent: duplicate label")
	ErrNoExamples     = errors.New("intent: intent has no examples")
	ErrInvalidScale   = errors.New("intent: softmax scale must be positive")
)

// Model is a TF-IDF nearest-example classifier over unigram and bigram features.
// A label's score is its best cosine similarity to the utterance; confidence is the
// softmax of those scores. Model is immutable after Train.
type Model struct {
	labels   []Label
	idf      map[string]float64
	oovIDF   float64
	examples []example
	scale    float64
}

type example struct {
	class int
	vec   map[string]float64
}

// Option configures Train.
type Option func(*Model)

// WithSoftmaxScale sets the softmax sharpness. Larger values push confidence toward 0 or 1.
func WithSoftmaxScale(scale float64) Option {
	return func(m *Model) {
		m.scale = scale
	}
}

var _ Classifier = (*Model)(nil)

// Train fits a Model on corpus. Label order in corpus decides ties.
func Train(corpus []Intent, opts ...Option) (*Model, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	m := &Model{scale: DefaultSoftmaxScale}
	for _, opt := range opts {
		opt(m)
	}
	if m.scale <= 0 || math.IsNaN(m.scale) {
		return nil, ErrInvalidScale
	}

	seen := make(map[Label]bool, len(corpus))
	var docs []map[string]float64
	var classes []int
	for i, in := range corpus {
		if seen[in.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLabel, in.Name)
		}
		seen[in.Name] = true
		if len(in.Examples) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoExamples, in.Name)
		}
		m.labels = append(m.labels, in.Name)
		for _, ex := range in.Examples {
			docs = append(docs, features(ex))
			classes = append(classes, i)
		}
	}

	df := make(map[string]int)
	for _, d := range docs {
		for f := range d {
			df[f]++
		}
	}

	n := float64(len(docs))
	m.idf = make(map[string]float64, len(df))
	for f, c := range df {
		m.idf[f] = smoothIDF(n, float64(c))
	}
	m.oovIDF = smoothIDF(n, 0)

	m.examples = make([]example, len(docs))
	for i, d := range docs {
		m.examples[i] = example{class: classes[i], vec: m.vectorize(d)}
	}

	return m, nil
}

// Predict returns the most probable label. Empty or unknown input yields a uniform
// distribution and the first label of the corpus.
func (m *Model) Predict(text string) Result {
	q := m.vectorize(features(text))

	scores := make([]float64, len(m.labels))
	for _, ex := range m.examples {
		if s := cosine(q, ex.vec); s > scores[ex.class] {
			scores[ex.class] = s
		}
	}

	probs := softmax(scores, m.scale)
	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}

	return Result{Label: m.labels[best], Confidence: probs[best]}
}

// Labels returns the trained labels in corpus order.
func (m *Model) Labels() []Label {
	return append([]Label(nil), m.labels...)
}

// vectorize weights counts by idf and L2-normalizes.
func (m *Model) vectorize(counts map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(counts))
	var norm float64
	for f, c := range counts {
		w, ok := m.idf[f]
		if !ok {
			w = m.oovIDF
		}
		v := c * w
		vec[f] = v
		norm += v * v
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for f := range vec {
		vec[f] /= norm
	}
	return vec
}

func smoothIDF(n, df float64) float64 {
	return math.Log((1+n)/(1+df)) + 1
}

// cosine of two unit vectors.
func cosine(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for f, v := range a {
		dot += v * b[f]
	}
	return dot
}

func softmax(scores []float64, scale float64) []float64 {
	maxScore := math.Inf(-1)
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(scale * (s - maxScore))
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
