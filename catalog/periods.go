package catalog

// periodTokens translates the friendly granularity names to the short
// tokens the usage and ad intelligence endpoints take.
var periodTokens = map[string]string{
	"daily":   "day",
	"weekly":  "week",
	"monthly": "month",
}

// Period maps a granularity to its API token. Values outside the three
// known granularities fall back to the given default token.
func Period(granularity, fallback string) string {
	if p, ok := periodTokens[granularity]; ok {
		return p
	}
	return fallback
}
