// Package corpus provides streaming access to line-oriented text corpora.
//
// Corpora are read in fixed-size byte chunks (1 MiB by default). A partial
// line spanning a chunk boundary is buffered and prepended to the next chunk,
// so callers always observe complete lines regardless of the underlying read
// size. Tokenization splits lines on single space bytes and discards empty
// tokens; no case-folding or punctuation handling is applied.
//
// Compressed corpora are supported transparently by filename extension:
// gzip (.gz), zstandard (.zst) and lz4 (.lz4).
package corpus
