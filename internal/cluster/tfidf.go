package cluster

import (
	"math"
	"sort"
)

// vectorSpace holds the L2-normalized tf-idf vector of every document over a
// shared vocabulary.
type vectorSpace struct {
	vocab   []string
	vectors [][]float64
}

// buildVectors weights feature counts with smoothed idf,
// idf = ln((1+n)/(1+df)) + 1, and normalizes each row to unit length.
// The vocabulary is capped to the maxFeatures most frequent features.
func buildVectors(docs [][]string, maxFeatures int) vectorSpace {
	n := len(docs)
	corpusFreq := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, f := range doc {
			corpusFreq[f]++
			if !seen[f] {
				seen[f] = true
				docFreq[f]++
			}
		}
	}

	vocab := make([]string, 0, len(corpusFreq))
	for f := range corpusFreq {
		vocab = append(vocab, f)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if corpusFreq[vocab[i]] != corpusFreq[vocab[j]] {
			return corpusFreq[vocab[i]] > corpusFreq[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if maxFeatures > 0 && len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	idf := make([]float64, len(vocab))
	for i, f := range vocab {
		index[f] = i
		idf[i] = math.Log(float64(1+n)/float64(1+docFreq[f])) + 1
	}

	vectors := make([][]float64, n)
	for d, doc := range docs {
		vec := make([]float64, len(vocab))
		for _, f := range doc {
			if i, ok := index[f]; ok {
				vec[i]++
			}
		}
		for i := range vec {
			vec[i] *= idf[i]
		}
		vectors[d] = normalize(vec)
	}
	return vectorSpace{vocab: vocab, vectors: vectors}
}

func normalize(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
	return v
}

func sqDistance(a, b []float64) float64 {
	var d float64
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}
	return d
}
