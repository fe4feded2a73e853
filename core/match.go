package core

// matchOption finds the option claiming the given token. Keyword options are
// scanned in declaration order first so a positional slot can never absorb a
// declared identifier; only when none of them match are positional options
// scanned, again in declaration order, the first unfilled slot winning.
// Returns nil when no option claims the token.
//
// Duplicate identifiers across keyword options are not rejected; the first
// declared option wins.
func matchOption(token string, opts []Option) Option {
	for _, opt := range opts {
		if opt.Kind() == KindKeyword && opt.Matches(token) {
			return opt
		}
	}
	for _, opt := range opts {
		if opt.Kind() == KindPositional && opt.Matches(token) {
			return opt
		}
	}
	return nil
}
