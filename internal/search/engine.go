package search

import (
	"math"
	"sort"
)

// Hit pairs the position of a document in the indexed corpus with its
// cosine similarity to the query.
type Hit struct {
	Index int
	Score float64
}

// Search ranks every indexed document against the query and returns the
// topK best hits. Ties keep the original document order.
func (idx *Index) Search(query string, topK int) []Hit {
	if topK < 0 {
		topK = 0
	}

	queryVector := idx.Vectorize(query)

	hits := make([]Hit, len(idx.Vectors))
	for i, docVector := range idx.Vectors {
		hits[i] = Hit{Index: i, Score: Cosine(queryVector, docVector)}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if topK < len(hits) {
		hits = hits[:topK]
	}
	return hits
}

// Cosine calculates the cosine similarity between two sparse vectors,
// treating missing terms as zero. Either vector having zero norm yields 0.
func Cosine(a, b Vector) float64 {
	var dotProduct, normA, normB float64
	for term, wa := range a {
		dotProduct += wa * b[term]
		normA += wa * wa
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
