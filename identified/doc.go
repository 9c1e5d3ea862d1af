// Package identified provides an ordered collection indexed by stable
// element identity rather than by position.
//
// State that is mutated by asynchronous operations cannot safely hold
// positional indices: a captured index goes stale the moment another
// mutation inserts, removes, or reorders elements. Map keeps an explicit
// order alongside an id-keyed index, so every operation addresses elements
// by an identifier that survives structural changes. Positional events
// (a deletion at row N, say) are translated to identifiers at the point of
// capture via IDAt or DeleteOffsets, never carried across an asynchronous
// boundary as raw offsets.
//
// Map assumes a single writer at a time. Callers that mutate from multiple
// goroutines must serialize writes through an owning context (a mutex or a
// single update loop); the store package in this repository is one such
// owner.
package identified
