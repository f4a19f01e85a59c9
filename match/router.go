package match

// Mode identifies which matching strategy applies to a query.
type Mode int

const (
	// ModeName routes the query to name/email ranking only. Name-shaped
	// queries are never diluted with keyword or semantic search; an identity
	// lookup must not surface high-embedding-similarity noise.
	ModeName Mode = iota + 1

	// ModeSearch routes the query to hybrid keyword+semantic ranking.
	ModeSearch
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeName:
		return "name"
	case ModeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Route decides the matching mode for a query. Name detection takes strict
// precedence; everything else goes to hybrid search, which combines lexical
// and semantic signals because short keyword queries underperform
// semantically and long free-text queries underperform lexically.
func Route(query string) Mode {
	if LooksLikeName(query) {
		return ModeName
	}
	return ModeSearch
}
