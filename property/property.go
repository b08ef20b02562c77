// Package property is the Unicode property resolver (component A):
// canonicalizes (type, value) pairs and returns the matching interval set,
// backed by the Go standard library's unicode package tables.
package property

import (
	"strconv"

	"github.com/fireproofsocks/unicode-set/interval"
	"github.com/fireproofsocks/unicode-set/seterr"
)

// CategoryOrScript is the sentinel property type used when a pattern omits
// the type, e.g. [:Lu:], [:arabic:], \p{Letter} (§3, §4.A).
const CategoryOrScript = ""

// knownTypes maps a canonicalized property-name alias to its canonical
// type key, per §4.A's "property name -> canonical name" alias step.
var knownTypes = map[string]string{
	"generalcategory": "gc",
	"gc":              "gc",
	"category":        "gc",
	"script":          "sc",
	"sc":              "sc",
	"block":           "blk",
	"blk":             "blk",
	"canonicalcombiningclass": "ccc",
	"combiningclass":          "ccc",
	"ccc":                     "ccc",
}

// Resolve implements the property-resolver contract from §4.A. typ and
// value may contain whitespace, underscores, hyphens or mixed case; typ may
// be CategoryOrScript.
func Resolve(typ, value string, negated bool) (interval.Set, *seterr.Error) {
	s, err := resolve(typ, value)
	if err != nil {
		return nil, err
	}
	if negated {
		return interval.Complement(s), nil
	}
	return s, nil
}

func resolve(typ, value string) (interval.Set, *seterr.Error) {
	canonValue := canonicalize(value)

	if typ == CategoryOrScript {
		return resolveCategoryOrScriptOrBoolean(canonValue)
	}

	canonType, ok := knownTypes[canonicalize(typ)]
	if !ok {
		return nil, seterr.Unpositioned(seterr.UnknownProperty, "unknown property type %q", typ)
	}

	switch canonType {
	case "gc":
		if s, ok := generalCategory(canonValue); ok {
			return s, nil
		}
		return nil, seterr.Unpositioned(seterr.UnknownPropertyValue, "unknown General_Category value %q", value)
	case "sc":
		if s, ok := script(canonValue); ok {
			return s, nil
		}
		return nil, seterr.Unpositioned(seterr.UnknownPropertyValue, "unknown Script value %q", value)
	case "blk":
		if s, ok := block(canonValue); ok {
			return s, nil
		}
		return nil, seterr.Unpositioned(seterr.UnknownPropertyValue, "unknown Block value %q", value)
	case "ccc":
		n, convErr := strconv.Atoi(canonValue)
		if convErr != nil {
			return nil, seterr.Unpositioned(seterr.UnknownPropertyValue, "Canonical_Combining_Class value %q is not numeric", value)
		}
		if s, ok := combiningClass(n); ok {
			return s, nil
		}
		return nil, seterr.Unpositioned(seterr.UnknownPropertyValue, "unsupported Canonical_Combining_Class %d", n)
	}

	return nil, seterr.Unpositioned(seterr.UnknownProperty, "unknown property type %q", typ)
}
