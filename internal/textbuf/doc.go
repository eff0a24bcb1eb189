// Package textbuf implements the editor's text storage: a flat,
// fixed-capacity, contiguous sequence of code points addressed by offset.
//
// Insert and delete shift the trailing region, an O(n) cost in the distance
// from the end of the buffer. Line lookups are forward linear scans counting
// newlines. Both are deliberate simplifications; the buffer targets
// interactive documents, not bulk processing.
//
// The buffer has exactly one writer (the editor kernel). Readers access it
// through the View interface, which exposes no mutating methods.
package textbuf
