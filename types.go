package followdiff

import (
	"github.com/mrjoshuak/followdiff/types"
)

// UsernameMap maps a normalized username to its profile URL.
type UsernameMap = types.UsernameMap

// Role identifies which export, following or followers, a value came from.
type Role = types.Role

// Export roles.
const (
	RoleFollowing = types.RoleFollowing
	RoleFollowers = types.RoleFollowers
)

// File names used by an Instagram export and by the report.
const (
	FollowingFileName = types.FollowingFileName
	FollowersFileName = types.FollowersFileName
	ReportFileName    = types.ReportFileName
)

// ExtractionOptions configures username extraction.
type ExtractionOptions = types.ExtractionOptions

// DefaultOptions returns the default extraction options.
func DefaultOptions() ExtractionOptions {
	return types.DefaultOptions()
}

// Error is the error type returned by the library.
type Error = types.Error

// Re-export common errors.
var (
	ErrParse       = types.ErrParse
	ErrEmptyResult = types.ErrEmptyResult
	ErrIO          = types.ErrIO
)

// IsParseError reports whether the input could not be interpreted as markup.
func IsParseError(err error) bool { return types.IsParseError(err) }

// IsEmptyResultError reports whether no usernames were found.
func IsEmptyResultError(err error) bool { return types.IsEmptyResultError(err) }

// IsIOError reports whether the input could not be read.
func IsIOError(err error) bool { return types.IsIOError(err) }

// RoleOf returns the export role recorded on err.
func RoleOf(err error) Role { return types.RoleOf(err) }

// BuildInfo contains version and build information.
type BuildInfo = types.BuildInfo

// GetBuildInfo returns the current version information.
func GetBuildInfo() BuildInfo {
	return types.GetBuildInfo()
}

// Version is the current version of the followdiff library.
var Version = types.Version

// Name is the name of the followdiff library.
var Name = types.Name
