package followdiff

// Diff returns the entries of following whose username is absent from
// followers, with URLs taken from following. An empty result means every
// followed account follows back. Neither input is modified.
func Diff(following, followers UsernameMap) UsernameMap {
	out := make(UsernameMap)
	for name, url := range following {
		if !followers.Has(name) {
			out[name] = url
		}
	}
	return out
}
