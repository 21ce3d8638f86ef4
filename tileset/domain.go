package tileset

import "math/bits"

// wordBits is the width of one Domain storage word.
const wordBits = 64

// Domain is a set of tile indices over a catalog of fixed size, backed by a
// bitset. The zero value is an empty domain over an empty catalog; build
// real domains with FullDomain or EmptyDomain. Mutating methods use pointer
// receivers; each Cell owns its Domain exclusively.
type Domain struct {
	words []uint64
	size  int
}

// EmptyDomain returns a domain over a catalog of size n with no members.
// Complexity: O(n/64).
func EmptyDomain(n int) Domain {
	if n < 0 {
		n = 0
	}
	return Domain{
		words: make([]uint64, (n+wordBits-1)/wordBits),
		size:  n,
	}
}

// FullDomain returns a domain over a catalog of size n with every member set.
// Complexity: O(n/64).
func FullDomain(n int) Domain {
	d := EmptyDomain(n)
	d.Fill()
	return d
}

// Fill resets the domain to the full catalog.
// Complexity: O(n/64).
func (d *Domain) Fill() {
	for i := range d.words {
		d.words[i] = ^uint64(0)
	}
	// Mask unused high bits of the last word.
	if rem := d.size % wordBits; rem != 0 && len(d.words) > 0 {
		d.words[len(d.words)-1] = (uint64(1) << rem) - 1
	}
}

// Size returns the catalog size the domain ranges over.
// Complexity: O(1).
func (d Domain) Size() int {
	return d.size
}

// Has reports whether tile index i is a member.
// Complexity: O(1).
func (d Domain) Has(i int) bool {
	if i < 0 || i >= d.size {
		return false
	}
	return d.words[i/wordBits]&(uint64(1)<<(i%wordBits)) != 0
}

// Add inserts tile index i. Out-of-range indices are ignored.
// Complexity: O(1).
func (d *Domain) Add(i int) {
	if i < 0 || i >= d.size {
		return
	}
	d.words[i/wordBits] |= uint64(1) << (i % wordBits)
}

// Count returns the number of members (the cell's "entropy").
// Complexity: O(n/64).
func (d Domain) Count() int {
	total := 0
	for _, w := range d.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// IsFull reports whether every catalog tile is a member.
// Complexity: O(n/64).
func (d Domain) IsFull() bool {
	return d.Count() == d.size
}

// Single returns the sole member index when the domain has exactly one
// member, and whether it does.
// Complexity: O(n/64).
func (d Domain) Single() (int, bool) {
	if d.Count() != 1 {
		return 0, false
	}
	for wi, w := range d.words {
		if w != 0 {
			return wi*wordBits + bits.TrailingZeros64(w), true
		}
	}
	return 0, false // unreachable
}

// IntersectWith replaces d with d ∩ o and reports whether d changed.
// Both domains must range over the same catalog size.
// Complexity: O(n/64).
func (d *Domain) IntersectWith(o Domain) bool {
	changed := false
	for i := range d.words {
		next := d.words[i] & o.words[i]
		if next != d.words[i] {
			changed = true
			d.words[i] = next
		}
	}
	return changed
}

// UnionWith replaces d with d ∪ o.
// Both domains must range over the same catalog size.
// Complexity: O(n/64).
func (d *Domain) UnionWith(o Domain) {
	for i := range d.words {
		d.words[i] |= o.words[i]
	}
}

// Clone returns an independent copy of d.
// Complexity: O(n/64).
func (d Domain) Clone() Domain {
	out := Domain{
		words: make([]uint64, len(d.words)),
		size:  d.size,
	}
	copy(out.words, d.words)
	return out
}

// Indices returns the member tile indices in ascending order.
// Complexity: O(n).
func (d Domain) Indices() []int {
	out := make([]int, 0, d.Count())
	for wi, w := range d.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*wordBits+b)
			w &^= uint64(1) << b
		}
	}
	return out
}
