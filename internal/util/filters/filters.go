package filters

import (
	"sort"
	"strings"
)

// Term is a single normalized filter term.
type Term struct {
	Key   string
	Value string
}

// Sorted returns the filter terms in deterministic key order. Cloud APIs
// treat filter order as irrelevant, but deterministic output keeps
// requests and logs reproducible.
func Sorted(f map[string]string) []Term {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	terms := make([]Term, 0, len(keys))
	for _, k := range keys {
		terms = append(terms, Term{Key: k, Value: f[k]})
	}
	return terms
}

// Selector renders the filter map as a Hetzner Cloud label selector,
// e.g. "env=production,team=infra". An empty map selects everything.
func Selector(f map[string]string) string {
	terms := Sorted(f)
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		parts = append(parts, t.Key+"="+t.Value)
	}
	return strings.Join(parts, ",")
}

// TagTerms returns the filter terms in EC2 form, with each key prefixed
// by "tag:" so DescribeInstances matches on instance tags.
func TagTerms(f map[string]string) []Term {
	terms := Sorted(f)
	for i := range terms {
		terms[i].Key = "tag:" + terms[i].Key
	}
	return terms
}
