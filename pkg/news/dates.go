package news

import (
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Normalize converts a provider date string into a time.Time. Plain numbers
// are treated as Unix epochs. Anything else goes through a permissive
// natural-language parse that handles both absolute dates ("Nov 23, 2025")
// and relative phrases ("1 hour ago"). Returns the zero time when nothing
// parses; callers treat that as "unknown, keep the article".
func Normalize(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	if sec, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return NormalizeEpoch(sec)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return NormalizeEpoch(int64(f))
	}

	cfg := &dateparser.Configuration{CurrentTime: time.Now()}
	dt, err := dateparser.Parse(cfg, raw)
	if err != nil {
		return time.Time{}
	}
	return dt.Time
}

// NormalizeEpoch converts a Unix timestamp in seconds. No locale ambiguity
// here, so no parser involved.
func NormalizeEpoch(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}
