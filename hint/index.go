package hint

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Index is a prefix trie over a candidate list. It returns the same results as
// Filter, in candidate order and with duplicates kept, without scanning every
// candidate.
type Index struct {
	trie *patricia.Trie
	size int
}

var _ Matcher = (*Index)(nil)

// NewIndex builds an index over candidates. The slice is not retained.
func NewIndex(candidates []string) *Index {
	trie := patricia.NewTrie()
	for i, c := range candidates {
		if c == "" {
			// Never completes a non-empty token.
			continue
		}
		key := patricia.Prefix(c)
		if item := trie.Get(key); item != nil {
			positions := item.([]int)
			trie.Set(key, append(positions, i))
			continue
		}
		trie.Insert(key, []int{i})
	}
	return &Index{trie: trie, size: len(candidates)}
}

// Len returns the number of indexed candidates, duplicates included.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return x.size
}

func (x *Index) Match(token string) []string {
	if x == nil || x.trie == nil || token == "" {
		return nil
	}

	type hit struct {
		pos  int
		word string
	}
	var hits []hit
	// VisitSubtree only fails with errors returned by the visitor, and this
	// visitor never returns one.
	_ = x.trie.VisitSubtree(patricia.Prefix(token), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		for _, pos := range item.([]int) {
			hits = append(hits, hit{pos: pos, word: word})
		}
		return nil
	})
	if len(hits) == 0 {
		return nil
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.word
	}
	return out
}
