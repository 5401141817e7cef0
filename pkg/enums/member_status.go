package enums

import (
	"fmt"
	"strings"
)

// MemberStatus captures the lifecycle of a gym membership.
//
// The legacy data files carry statuses in whatever case the operator typed,
// so comparisons are case-insensitive while the canonical values stay
// lowercase.
type MemberStatus string

const (
	MemberStatusPending MemberStatus = "pending"
	MemberStatusActive  MemberStatus = "active"
	MemberStatusExpired MemberStatus = "expired"
)

var validMemberStatuses = []MemberStatus{
	MemberStatusPending,
	MemberStatusActive,
	MemberStatusExpired,
}

// String implements fmt.Stringer.
func (m MemberStatus) String() string {
	return string(m)
}

// IsValid reports whether the value matches a known MemberStatus.
func (m MemberStatus) IsValid() bool {
	for _, candidate := range validMemberStatuses {
		if m.Is(candidate) {
			return true
		}
	}
	return false
}

// Is reports whether the value matches the given status, ignoring case.
func (m MemberStatus) Is(other MemberStatus) bool {
	return strings.EqualFold(string(m), string(other))
}

// ParseMemberStatus converts raw input into a canonical MemberStatus.
func ParseMemberStatus(value string) (MemberStatus, error) {
	for _, candidate := range validMemberStatuses {
		if strings.EqualFold(string(candidate), value) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid member status %q", value)
}
