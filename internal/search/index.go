package search

import (
	"math"
)

// Vector is a sparse term-weight mapping. Terms absent from the map weigh
// zero.
type Vector map[string]float64

// Index holds the TF-IDF statistics for one corpus snapshot. It is rebuilt
// from the full document set on every search; nothing is cached across
// calls.
type Index struct {
	IDF     map[string]float64
	Vectors []Vector
}

// BuildIndex computes smoothed IDF stats and one TF-IDF vector per
// document. Vectors are index-aligned with the docs slice.
func BuildIndex(docs []string) *Index {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenized[i] = tokens

		seenInDoc := make(map[string]bool)
		for _, token := range tokens {
			if !seenInDoc[token] {
				seenInDoc[token] = true
				df[token]++
			}
		}
	}

	docCount := float64(len(docs))
	if docCount == 0 {
		docCount = 1
	}

	// idf = ln((N + 1) / (df + 1)) + 1
	// Smoothed so it stays strictly positive even for a term present in
	// every document.
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((docCount+1)/(float64(count)+1)) + 1
	}

	idx := &Index{
		IDF:     idf,
		Vectors: make([]Vector, len(docs)),
	}
	for i, tokens := range tokenized {
		idx.Vectors[i] = idx.vectorizeTokens(tokens)
	}
	return idx
}

// Vectorize turns text into a TF-IDF vector against this index's corpus
// stats. Terms the corpus has never seen get idf 0 and drop out of the
// vector.
func (idx *Index) Vectorize(text string) Vector {
	return idx.vectorizeTokens(Tokenize(text))
}

func (idx *Index) vectorizeTokens(tokens []string) Vector {
	vector := make(Vector)
	if len(tokens) == 0 {
		return vector
	}

	counts := make(map[string]float64)
	for _, token := range tokens {
		counts[token]++
	}

	total := float64(len(tokens))
	for term, count := range counts {
		if weight := (count / total) * idx.IDF[term]; weight > 0 {
			vector[term] = weight
		}
	}
	return vector
}
