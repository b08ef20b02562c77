// Package interval implements the canonical interval-set representation
// used throughout the unicode-set engine: sorted, disjoint, coalesced
// sequences of inclusive codepoint ranges over [0, MaxCodepoint].
package interval

import "sort"

// MaxCodepoint is the highest Unicode scalar value the engine operates on.
const MaxCodepoint = 0x10FFFF

// Interval is an inclusive codepoint range [Lo, Hi].
type Interval struct {
	Lo, Hi rune
}

// Set is a canonical interval set: sorted by Lo, disjoint, and coalesced
// (Hi_i+1 < Lo_i+1 for every adjacent pair). The zero value is the empty set.
type Set []Interval

// Of builds a canonical Set from arbitrary (possibly unsorted, overlapping,
// touching) intervals.
func Of(ranges ...Interval) Set {
	s := append(Set(nil), ranges...)
	return s.normalize()
}

// Single returns the canonical set containing exactly one codepoint.
func Single(c rune) Set {
	return Set{{Lo: c, Hi: c}}
}

// Contains reports whether c is a member of s, via binary search on
// interval starts per §4.F.1.
func (s Set) Contains(c rune) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i].Lo > c }) - 1
	return i >= 0 && c <= s[i].Hi
}

// Len returns the number of intervals (not codepoints) in s.
func (s Set) Len() int { return len(s) }

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool { return len(s) == 0 }

// Count returns the total number of codepoints represented by s.
func (s Set) Count() int64 {
	var n int64
	for _, iv := range s {
		n += int64(iv.Hi-iv.Lo) + 1
	}
	return n
}

// Equal reports whether s and other contain exactly the same codepoints.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// normalize sorts, merges overlapping/touching intervals and drops empties,
// re-establishing the canonicalization invariant required after every
// algebra operation (§4.E). Grounded on the sort-then-sweep shape of
// CharSet.canonicalize in the polyverse-binexp charclass example.
func (s Set) normalize() Set {
	filtered := s[:0]
	for _, iv := range s {
		if iv.Lo <= iv.Hi {
			filtered = append(filtered, iv)
		}
	}
	s = filtered
	if len(s) < 2 {
		return s
	}

	sort.Slice(s, func(i, j int) bool { return s[i].Lo < s[j].Lo })

	out := s[:1]
	for _, next := range s[1:] {
		last := &out[len(out)-1]
		if next.Lo <= last.Hi+1 {
			if next.Hi > last.Hi {
				last.Hi = next.Hi
			}
			continue
		}
		out = append(out, next)
	}
	return out
}
