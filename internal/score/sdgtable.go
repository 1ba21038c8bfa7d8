package score

import (
	"strings"

	"github.com/greenlens/greenlens/internal/refdata"
)

// sdgTable is an ordered scan over the SDG target entries. A claim phrase
// matches an entry when any keyword contains the phrase or the phrase
// contains the keyword (case-insensitive); the first entry in table order
// wins, so entry order is part of the scoring contract.
type sdgTable struct {
	entries []refdata.SDGEntry
}

func newSDGTable(entries []refdata.SDGEntry) *sdgTable {
	return &sdgTable{entries: entries}
}

// match returns the first matching entry for a claim phrase, or nil
func (t *sdgTable) match(phrase string) *refdata.SDGEntry {
	phraseLower := strings.ToLower(phrase)
	for i := range t.entries {
		entry := &t.entries[i]
		for _, keyword := range entry.Keywords {
			keywordLower := strings.ToLower(keyword)
			if strings.Contains(phraseLower, keywordLower) || strings.Contains(keywordLower, phraseLower) {
				return entry
			}
		}
	}
	return nil
}
