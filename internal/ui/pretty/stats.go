package pretty

import (
	"fmt"

	"github.com/yaklabco/mdpipe/pkg/cache"
)

// FormatCacheStats formats cache statistics as a single line.
// Example: "cache: ast 3/5 hits (2 entries), html 1/5 hits (4 entries), 0 evictions".
func (s *Styles) FormatCacheStats(stats cache.Stats) string {
	astLookups := stats.ASTHits + stats.ASTMisses
	htmlLookups := stats.HTMLHits + stats.HTMLMisses

	if astLookups == 0 && htmlLookups == 0 {
		return s.Dim.Render("cache: no lookups") + "\n"
	}

	return s.SummaryTitle.Render("cache:") + " " +
		s.SummaryValue.Render(fmt.Sprintf("ast %d/%d hits (%d entries)", stats.ASTHits, astLookups, stats.ASTLen)) + ", " +
		s.SummaryValue.Render(fmt.Sprintf("html %d/%d hits (%d entries)", stats.HTMLHits, htmlLookups, stats.HTMLLen)) + ", " +
		s.Dim.Render(fmt.Sprintf("%d evictions", stats.Evictions)) + "\n"
}
