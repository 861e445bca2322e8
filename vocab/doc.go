// Package vocab builds frequency-sorted vocabularies from text corpora.
//
// A Vocabulary is populated by repeated Observe calls, then finalized exactly
// once: words below the minimum count are dropped and the survivors are
// sorted by count descending with ties broken by ascending word order. A
// word's position in that order is its permanent index.
package vocab
