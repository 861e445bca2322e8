// Package artifact reads and writes the pipeline's persisted files.
//
// All three artifacts are plain text, one record per line, space-separated:
//
//   - vocabulary: "<word> <count>" in finalized order
//   - co-occurrence: "<i> <j> <weight>" with 6-decimal weights
//   - vectors: a "<vocab_size> <dim>" header, then "<word> <v_0> ... <v_{D-1}>"
//     with 6-decimal components
//
// The formats are an external contract; byte layout is fixed here and must
// not change.
package artifact
