package passages

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/andyrewlee/gridpad/internal/logging"
	"github.com/andyrewlee/gridpad/internal/rank"
	"github.com/andyrewlee/gridpad/internal/selection"
)

// Prefixes some embedding models expect on queries and stored passages.
const (
	queryPrefix   = "query: "
	passagePrefix = "passage: "
)

// ErrNoPassages is returned by Query on an empty database.
var ErrNoPassages = errors.New("no passages in database")

// Embedder produces a vector for text under a model.
type Embedder interface {
	Embed(ctx context.Context, text, model string) ([]float64, error)
}

// Add stores text and embeds it under model. The passage stays stored when
// embedding fails; its id is returned with the error.
func (s *Store) Add(ctx context.Context, emb Embedder, text, model string) (int64, error) {
	id, err := s.Insert(ctx, text)
	if err != nil {
		return 0, err
	}
	vec, err := emb.Embed(ctx, text, model)
	if err != nil {
		return id, fmt.Errorf("embed passage %d: %w", id, err)
	}
	if err := s.SaveEmbedding(ctx, id, model, vec); err != nil {
		return id, err
	}
	return id, nil
}

// Match is one ranked passage.
type Match struct {
	Passage
	Score  float64
	Method rank.Method
}

// MarshalJSON writes the score under the method's field name, e.g.
// {"id":1,"text":"...","cosine_similarity":0.9}.
func (m Match) MarshalJSON() ([]byte, error) {
	text, err := selection.Encode(m.Text, "")
	if err != nil {
		return nil, err
	}
	score, err := selection.Encode(m.Score, "")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"id":%d,"text":%s,"%s":%s}`, m.ID, text, m.Method.ScoreName(), score)
	return buf.Bytes(), nil
}

// Result holds the matches for one query.
type Result struct {
	Query   string  `json:"query"`
	Matches []Match `json:"matches"`
}

// Query ranks every stored passage against each query and returns the best
// top per query. Passages without an embedding for model are embedded first
// and the vector is saved.
func (s *Store) Query(ctx context.Context, emb Embedder, queries []string, model string, top int, method rank.Method) ([]Result, error) {
	passages, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(passages) == 0 {
		return nil, ErrNoPassages
	}

	pvecs := make([][]float64, len(passages))
	for i, p := range passages {
		vec, ok, err := s.Embedding(ctx, p.ID, model)
		if err != nil {
			return nil, err
		}
		if !ok {
			logging.Debug("Embedding passage %d for model %s", p.ID, model)
			if vec, err = emb.Embed(ctx, passagePrefix+p.Text, model); err != nil {
				return nil, fmt.Errorf("embed passage %d: %w", p.ID, err)
			}
			if err := s.SaveEmbedding(ctx, p.ID, model, vec); err != nil {
				return nil, err
			}
		}
		pvecs[i] = vec
	}

	qvecs := make([][]float64, len(queries))
	for i, q := range queries {
		if qvecs[i], err = emb.Embed(ctx, queryPrefix+q, model); err != nil {
			return nil, fmt.Errorf("embed query %q: %w", q, err)
		}
	}

	ranked, err := rank.TopMatches(qvecs, pvecs, top, method)
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(queries))
	for qi, q := range queries {
		matches := make([]Match, len(ranked[qi]))
		for i, m := range ranked[qi] {
			matches[i] = Match{Passage: passages[m.Index], Score: m.Score, Method: method}
		}
		results[qi] = Result{Query: q, Matches: matches}
	}
	return results, nil
}
