// Package testutil provides testing utilities for Glovego.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random number generator and
// helpers for generating synthetic corpora with realistic word
// frequency distributions.
//
// # Synthetic Corpora
//
//	rng := testutil.NewRNG(seed)
//	corpus := rng.ZipfCorpus(1000, 50, 10, 1.1)
//
// Word frequencies in natural language follow a power law, so Zipfian
// sampling produces corpora that exercise min-count filtering and
// frequency-ordered vocabularies the way real text does.
package testutil
