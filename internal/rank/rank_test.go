package rank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	for _, in := range []string{"cosine", "Euclidean", " MANHATTAN ", "dot"} {
		_, err := ParseMethod(in)
		require.NoError(t, err, in)
	}
	_, err := ParseMethod("jaccard")
	require.ErrorContains(t, err, "unknown method")
}

func TestScore(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}
	tests := []struct {
		method Method
		want   float64
	}{
		{Cosine, 25 / (math.Sqrt(14) * math.Sqrt(61))},
		{Euclidean, 5},
		{Manhattan, 7},
		{Dot, 25},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			got, err := tt.method.Score(a, b)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestScoreRejectsLengthMismatch(t *testing.T) {
	_, err := Cosine.Score([]float64{1}, []float64{1, 2})
	require.ErrorContains(t, err, "length mismatch")
}

func TestCosineZeroVector(t *testing.T) {
	got, err := Cosine.Score([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestScoreNames(t *testing.T) {
	require.Equal(t, "cosine_similarity", Cosine.ScoreName())
	require.Equal(t, "euclidean_distance", Euclidean.ScoreName())
	require.Equal(t, "manhattan_distance", Manhattan.ScoreName())
	require.Equal(t, "dot_product", Dot.ScoreName())
}

func indexes(ms []Match) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = m.Index
	}
	return out
}

func TestTopMatchesOrdering(t *testing.T) {
	passages := [][]float64{
		{1, 0},
		{0, 1},
		{3, 3},
		{-1, 0},
	}
	queries := [][]float64{{1, 0.1}}

	tests := []struct {
		method Method
		want   []int
	}{
		// Similarities rank high first, distances low first.
		{Cosine, []int{0, 2, 1, 3}},
		{Dot, []int{2, 0, 1, 3}},
		{Euclidean, []int{0, 1, 3, 2}},
		{Manhattan, []int{0, 1, 3, 2}},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			got, err := TopMatches(queries, passages, 10, tt.method)
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.Equal(t, tt.want, indexes(got[0]))
		})
	}
}

func TestTopMatchesLimitAndTies(t *testing.T) {
	passages := [][]float64{{1, 1}, {2, 2}, {1, 1}}
	got, err := TopMatches([][]float64{{1, 1}, {0, 1}}, passages, 2, Euclidean)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, []int{0, 2}, indexes(got[0]))
	require.Len(t, got[1], 2)

	none, err := TopMatches([][]float64{{1, 1}}, passages, 0, Cosine)
	require.NoError(t, err)
	require.Empty(t, none[0])
}

func TestTopMatchesErrors(t *testing.T) {
	_, err := TopMatches([][]float64{{1}}, [][]float64{{1}}, 1, Method("nope"))
	require.ErrorContains(t, err, "unknown method")

	_, err = TopMatches([][]float64{{1}}, [][]float64{{1, 2}}, 1, Dot)
	require.ErrorContains(t, err, "passage 0")
}
