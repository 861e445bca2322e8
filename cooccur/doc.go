// Package cooccur accumulates weighted word co-occurrence records over
// sliding context windows.
//
// Records are append-only and never coalesced: the same index pair may occur
// many times, each with its own distance weight 1/d. In symmetric mode every
// ordered neighbor pair additionally appends its mirror, so an unordered pair
// observed from both window sides contributes four records in total. This
// duplication is part of the on-disk contract and is preserved verbatim.
package cooccur
