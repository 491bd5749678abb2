// Package types provides the core data structures for the followdiff library.
package types

import (
	"fmt"
	"sort"
)

// DefaultProfileURLFormat is the template used to derive a profile URL from
// a normalized username.
const DefaultProfileURLFormat = "https://www.instagram.com/%s/"

// Conventional file names of an Instagram data export and of the report.
const (
	FollowingFileName = "following.html"
	FollowersFileName = "followers_1.html"
	ReportFileName    = "unfollowers.html"
)

// UsernameMap maps a normalized username to its profile URL.
// Keys are unique and compared case-sensitively.
type UsernameMap map[string]string

// ProfileURL builds the profile URL for a username using the default format.
func ProfileURL(username string) string {
	return fmt.Sprintf(DefaultProfileURLFormat, username)
}

// Usernames returns the keys of the map in ascending order.
func (m UsernameMap) Usernames() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether username is present.
func (m UsernameMap) Has(username string) bool {
	_, ok := m[username]
	return ok
}

// Role identifies which side of the comparison an export belongs to.
type Role string

const (
	RoleUnknown   Role = ""
	RoleFollowing Role = "following"
	RoleFollowers Role = "followers"
)

// FileName returns the conventional export file name for the role.
func (r Role) FileName() string {
	switch r {
	case RoleFollowing:
		return FollowingFileName
	case RoleFollowers:
		return FollowersFileName
	default:
		return ""
	}
}

// String returns a string representation of the role
func (r Role) String() string {
	if r == RoleUnknown {
		return "unknown"
	}
	return string(r)
}
