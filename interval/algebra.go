package interval

// Union returns the canonical union of a and b (§4.E). The two inputs are
// merge-sorted by Lo and swept, extending the current interval whenever the
// next one starts at or before current.Hi+1.
func Union(a, b Set) Set {
	out := make(Set, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Lo <= b[j].Lo {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out.normalize()
}

// Intersect returns the canonical intersection of a and b: a two-pointer
// walk emitting [max(lo), min(hi)] for every overlapping pair (§4.E).
func Intersect(a, b Set) Set {
	var out Set
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := max(a[i].Lo, b[j].Lo)
		hi := min(a[i].Hi, b[j].Hi)
		if lo <= hi {
			out = append(out, Interval{Lo: lo, Hi: hi})
		}
		if a[i].Hi < b[j].Hi {
			i++
		} else {
			j++
		}
	}
	return out.normalize()
}

// Difference returns a minus b: the portions of every interval in a not
// covered by any interval in b, in order (§4.E).
func Difference(a, b Set) Set {
	var out Set
	j := 0
	for _, iv := range a {
		lo := iv.Lo
		for j < len(b) && b[j].Hi < lo {
			j++
		}
		k := j
		for k < len(b) && b[k].Lo <= iv.Hi {
			if b[k].Lo > lo {
				out = append(out, Interval{Lo: lo, Hi: b[k].Lo - 1})
			}
			if b[k].Hi+1 > lo {
				lo = b[k].Hi + 1
			}
			k++
		}
		if lo <= iv.Hi {
			out = append(out, Interval{Lo: lo, Hi: iv.Hi})
		}
	}
	return out.normalize()
}

// Complement returns the complement of s relative to [0, MaxCodepoint],
// emitting the gaps between (and around) s's intervals (§4.E).
func Complement(s Set) Set {
	var out Set
	next := rune(0)
	for _, iv := range s {
		if iv.Lo > next {
			out = append(out, Interval{Lo: next, Hi: iv.Lo - 1})
		}
		if iv.Hi+1 > next {
			next = iv.Hi + 1
		}
	}
	if next <= MaxCodepoint {
		out = append(out, Interval{Lo: next, Hi: MaxCodepoint})
	}
	return out
}
