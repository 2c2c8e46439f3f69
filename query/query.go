// Package query manages the persistence and retrieval of selector history and suggestions.
package query

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/where"
	"golang.org/x/exp/slices"
)

type selectorRecord struct {
	Rank     int    `json:"rank"`
	Selector string `json:"selector"`
}

var cacher = gache.New[map[string]*selectorRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*selectorRecord)

// Remember records a resolved selector in the persistent history or increments its popularity rank.
func Remember(selector string, weight int) error {
	selector = sanitize(selector)
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*selectorRecord)
	}

	if record, ok := cached[selector]; ok {
		record.Rank += weight
	} else {
		cached[selector] = &selectorRecord{Rank: weight, Selector: selector}
	}

	return cacher.Set(cached)
}

// Suggest returns the most relevant historical selector for a partial input.
func Suggest(partial string) mo.Option[string] {
	suggestions := SuggestMany(partial)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns historical selectors matching the partial input, sorted by popularity rank.
// Matching is case-insensitive even though the stored selectors keep
// their original casing, since widget identifiers are camelCase.
func SuggestMany(partial string) []string {
	if !viper.GetBool(key.ResolveShowSuggestions) {
		return []string{}
	}

	partial = sanitize(partial)
	var records []*selectorRecord

	if prev, ok := suggestionCache[partial]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.MatchFold(partial, record.Selector) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *selectorRecord) int {
			return b.Rank - a.Rank // Descending rank
		})

		suggestionCache[partial] = records
	}

	return lo.Map(records, func(r *selectorRecord, _ int) string {
		return r.Selector
	})
}

// selectors are case-sensitive, only surrounding whitespace is stripped
func sanitize(selector string) string {
	return strings.TrimSpace(selector)
}
