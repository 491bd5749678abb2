/*
Package followdiff finds the accounts you follow on Instagram that don't
follow you back, working only from the HTML files of an Instagram data
export. No network access or login is involved.

Export markup has no stable schema, so usernames are extracted by a cascade
of heuristics tried in a fixed order (structural, tabular, selector-pattern
and free-text) until one of them finds something.

Basic Usage:

    import "github.com/mrjoshuak/followdiff"

    ext := followdiff.New()

    following, err := ext.Extract(followingHTML)
    if err != nil {
        // Handle error
    }
    followers, err := ext.Extract(followersHTML)
    if err != nil {
        // Handle error
    }

    unfollowers := followdiff.Diff(following, followers)
    page, err := followdiff.Render(unfollowers)

Comparing two exports in one call:

    result, err := ext.Compare(ctx, followingFile, followersFile)
    if followdiff.IsEmptyResultError(err) {
        fmt.Println("nothing found in", followdiff.RoleOf(err).FileName())
    }

Features:

- Tolerates malformed and partial markup
- Deterministic output for identical input
- Typed errors that tell a bad file from an empty one and name the export at fault
- A self-contained report with a built-in search box
*/
package followdiff
