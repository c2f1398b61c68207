// Package rank scores query vectors against passage vectors and returns the
// best matches per query.
package rank

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Method selects how two vectors are compared.
type Method string

// Supported methods.
const (
	Cosine    Method = "cosine"
	Euclidean Method = "euclidean"
	Manhattan Method = "manhattan"
	Dot       Method = "dot"
)

// Methods lists every supported method.
var Methods = []Method{Cosine, Euclidean, Manhattan, Dot}

// ParseMethod accepts a method name in any case.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Methods {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown method %q", s)
}

// ScoreName is the field name a score is reported under.
func (m Method) ScoreName() string {
	switch m {
	case Cosine:
		return "cosine_similarity"
	case Euclidean:
		return "euclidean_distance"
	case Manhattan:
		return "manhattan_distance"
	case Dot:
		return "dot_product"
	}
	return "score"
}

// HigherIsBetter reports whether larger scores rank first.
func (m Method) HigherIsBetter() bool {
	return m == Cosine || m == Dot
}

// Score compares a and b.
func (m Method) Score(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d != %d", len(a), len(b))
	}
	switch m {
	case Cosine:
		return cosine(a, b), nil
	case Euclidean:
		var sum float64
		for i := range a {
			d := a[i] - b[i]
			sum += d * d
		}
		return math.Sqrt(sum), nil
	case Manhattan:
		var sum float64
		for i := range a {
			sum += math.Abs(a[i] - b[i])
		}
		return sum, nil
	case Dot:
		return dot(a, b), nil
	}
	return 0, fmt.Errorf("unknown method %q", string(m))
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// cosine treats a zero vector as orthogonal to everything.
func cosine(a, b []float64) float64 {
	na, nb := math.Sqrt(dot(a, a)), math.Sqrt(dot(b, b))
	if na == 0 || nb == 0 {
		return 0
	}
	return dot(a, b) / (na * nb)
}

// Match is one ranked passage: its index in the passage list and its score.
type Match struct {
	Index int
	Score float64
}

// TopMatches ranks passages for every query and keeps the best top of each.
// Equal scores keep passage order. A top below one yields empty rankings.
func TopMatches(queries, passages [][]float64, top int, m Method) ([][]Match, error) {
	if _, err := ParseMethod(string(m)); err != nil {
		return nil, err
	}
	results := make([][]Match, len(queries))
	for qi, q := range queries {
		matches := make([]Match, len(passages))
		for pi, p := range passages {
			score, err := m.Score(q, p)
			if err != nil {
				return nil, fmt.Errorf("query %d, passage %d: %w", qi, pi, err)
			}
			matches[pi] = Match{Index: pi, Score: score}
		}
		sort.SliceStable(matches, func(i, j int) bool {
			if m.HigherIsBetter() {
				return matches[i].Score > matches[j].Score
			}
			return matches[i].Score < matches[j].Score
		})
		results[qi] = matches[:min(max(top, 0), len(matches))]
	}
	return results, nil
}
