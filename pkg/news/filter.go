package news

import (
	"strings"
	"time"
)

// DefaultWindowDays is the app-wide recency window. Individual sources may
// request narrower windows from their providers (Google News uses 7 days,
// the IR search 30), so the window stays a per-filter parameter.
const DefaultWindowDays = 30

// deniedBrands are always excluded, regardless of recency or source. The
// "zack" variant catches truncated headline forms.
var deniedBrands = []string{"zacks", "zack"}

// IsRecent reports whether t falls within the lookback window. A zero time
// passes: providers with unreliable date fields must not lose articles over
// it. The comparison fails open for future-dated articles too.
func IsRecent(t time.Time, windowDays int) bool {
	if t.IsZero() {
		return true
	}
	days := int(time.Since(t).Hours() / 24)
	return days <= windowDays
}

// Filter is the quality gate every source applies before admitting a
// record. The summarizer runs the brand check a second time over its own
// inputs, since syndicated content can carry a denied brand past a clean
// source.
type Filter struct {
	Deny       []string
	WindowDays int
}

// NewFilter returns a filter with the standard denylist and the given
// recency window. A non-positive window falls back to the default.
func NewFilter(windowDays int) *Filter {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Filter{Deny: deniedBrands, WindowDays: windowDays}
}

// IsValid rejects articles whose title, publisher or source carries a
// denylisted brand, and articles that are definitely stale.
func (f *Filter) IsValid(a Article) bool {
	title := strings.ToLower(a.Title)
	for _, word := range f.Deny {
		if strings.Contains(title, word) {
			return false
		}
	}

	publisher := strings.ToLower(a.Publisher)
	source := strings.ToLower(a.Source)
	for _, word := range f.Deny {
		if strings.Contains(publisher, word) || strings.Contains(source, word) {
			return false
		}
	}

	return IsRecent(a.Published, f.WindowDays)
}

// Denied reports whether any of the given strings carries a denylisted
// brand. Used by the summarizer for its second-pass content check.
func Denied(fields ...string) bool {
	for _, s := range fields {
		s = strings.ToLower(s)
		for _, word := range deniedBrands {
			if strings.Contains(s, word) {
				return true
			}
		}
	}
	return false
}
