// Package ids derives the sequential record identifiers used across the
// member, payment, and attendance files (M001, P002, A003, ...).
package ids

import (
	"fmt"
	"strconv"
	"strings"
)

// NextID returns prefix plus the next zero-padded sequence number, scanning
// existing for the highest numeric suffix behind the same prefix. Ids that do
// not parse are ignored rather than treated as errors: legacy files contain
// hand-edited lines. Padding is three digits; once the sequence passes 999
// the id simply grows wider.
func NextID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		suffix, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}
