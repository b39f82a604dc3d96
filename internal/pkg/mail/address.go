package mail

import (
	"strings"

	"github.com/samber/lo"
)

// DefaultFrom is the sender used when none is configured.
const DefaultFrom = "no-reply@example.com"

// ResolveFrom returns configured unchanged unless it is empty, in which case
// DefaultFrom is returned.
func ResolveFrom(configured string) string {
	if configured == "" {
		return DefaultFrom
	}
	return configured
}

// ParseAddressList splits a comma-delimited address list.
//
// Each segment is trimmed and empty segments are dropped, so stray, doubled,
// leading or trailing commas are harmless. Order is preserved. The result is
// never nil.
func ParseAddressList(raw string) []string {
	return lo.Compact(lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}
