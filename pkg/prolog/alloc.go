package prolog

// IDAllocator hands out monotonically increasing 64-bit variable
// identifiers (C2). Keys are polymorphic by design: during parsing the
// key is a variable's textual name (a string), so repeated occurrences
// of "X" within one clause share an id; during freshening the key is an
// old id (a uint64), so every occurrence of a source variable in one
// clause activation collapses onto a single fresh id.
//
// Once Alloc has returned an id, the counter never falls below it again
// — this is what makes per-clause variable spaces disjoint (invariant
// I1) and guarantees cross-clause freshness (property P2).
type IDAllocator struct {
	counter uint64
	cache   map[interface{}]uint64
}

// NewIDAllocator returns an allocator with a zeroed counter and an empty
// cache.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{cache: make(map[interface{}]uint64)}
}

// NewIDAllocatorFrom returns an allocator whose first Alloc call returns
// start. Used to seed a per-clause-activation freshening generation
// (§4.3) bounded above every id used so far, without disturbing the
// allocator it was seeded from.
func NewIDAllocatorFrom(start uint64) *IDAllocator {
	return &IDAllocator{counter: start - 1, cache: make(map[interface{}]uint64)}
}

// Alloc returns the id already mapped to key, or advances the counter
// and maps key to the new value.
func (a *IDAllocator) Alloc(key interface{}) uint64 {
	if id, ok := a.cache[key]; ok {
		return id
	}
	a.counter++
	a.cache[key] = a.counter
	return a.counter
}

// NewClause clears the key cache but keeps the counter, so ids assigned
// within the next clause start a fresh namespace (I1) while remaining
// strictly greater than every id used so far (P2).
func (a *IDAllocator) NewClause() {
	a.cache = make(map[interface{}]uint64)
}

// PeekNext returns counter+1 without advancing it. Used to seed a
// per-activation freshening allocator bounded above every id used so
// far (§4.3).
func (a *IDAllocator) PeekNext() uint64 {
	return a.counter + 1
}
