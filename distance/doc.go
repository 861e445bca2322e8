// Package distance provides vector similarity math and exact top-k queries
// over trained word embeddings.
package distance
