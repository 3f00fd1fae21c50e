// catalog/networks.go
// -------------------
// Ad network vocabularies and name normalization for the ad intelligence
// endpoints. The upstream API is case-sensitive about network names and
// each endpoint family accepts a slightly different set, so callers get
// friendly-name resolution here instead of opaque 422s from the API.
package catalog

import "strings"

// AnalysisNetworks is the set accepted by the network_analysis and
// creatives endpoints. Facebook is absent: those endpoints reject it.
var AnalysisNetworks = map[string]bool{
	"Adcolony":   true,
	"Admob":      true,
	"Applovin":   true,
	"Chartboost": true,
	"Instagram":  true,
	"Mopub":      true,
	"Pinterest":  true,
	"Snapchat":   true,
	"Supersonic": true,
	"Tapjoy":     true,
	"TikTok":     true,
	"Unity":      true,
	"Vungle":     true,
	"Youtube":    true,
}

// TopAppsNetworks is the wider set the top_apps search accepts. It adds
// Apple Search Ads on top of the analysis set.
var TopAppsNetworks = map[string]bool{
	"Adcolony":         true,
	"Admob":            true,
	"Apple Search Ads": true,
	"Applovin":         true,
	"Chartboost":       true,
	"Instagram":        true,
	"Mopub":            true,
	"Pinterest":        true,
	"Snapchat":         true,
	"Supersonic":       true,
	"Tapjoy":           true,
	"TikTok":           true,
	"Unity":            true,
	"Vungle":           true,
	"Youtube":          true,
}

// networkAliases maps lowercased spellings to the canonical names the API
// expects. "google" resolves to Youtube, its reporting surface.
var networkAliases = map[string]string{
	"adcolony":         "Adcolony",
	"admob":            "Admob",
	"apple search ads": "Apple Search Ads",
	"applovin":         "Applovin",
	"chartboost":       "Chartboost",
	"google":           "Youtube",
	"instagram":        "Instagram",
	"mopub":            "Mopub",
	"pinterest":        "Pinterest",
	"snapchat":         "Snapchat",
	"supersonic":       "Supersonic",
	"tapjoy":           "Tapjoy",
	"tiktok":           "TikTok",
	"unity":            "Unity",
	"vungle":           "Vungle",
	"youtube":          "Youtube",
}

// resolveNetwork finds the canonical form of name within valid: exact
// match first, then the alias table.
func resolveNetwork(name string, valid map[string]bool) (string, bool) {
	if valid[name] {
		return name, true
	}
	if canonical, ok := networkAliases[strings.ToLower(name)]; ok && valid[canonical] {
		return canonical, true
	}
	return "", false
}

// NormalizeNetworks canonicalizes a comma-separated network list against
// valid. Facebook entries are dropped since no list endpoint accepts
// them; names that resolve to nothing pass through unchanged and the API
// gets the final say.
func NormalizeNetworks(csv string, valid map[string]bool) string {
	if csv == "" {
		return ""
	}
	var out []string
	for _, raw := range strings.Split(csv, ",") {
		name := strings.TrimSpace(raw)
		if canonical, ok := resolveNetwork(name, valid); ok {
			out = append(out, canonical)
			continue
		}
		if strings.EqualFold(name, "facebook") {
			continue
		}
		out = append(out, name)
	}
	return strings.Join(out, ",")
}

// NormalizeNetwork canonicalizes a single network name for the top-apps
// search. Facebook maps to Instagram, the closest surface that endpoint
// serves; unresolved names pass through unchanged.
func NormalizeNetwork(name string, valid map[string]bool) string {
	if canonical, ok := resolveNetwork(name, valid); ok {
		return canonical
	}
	if strings.EqualFold(name, "facebook") {
		return "Instagram"
	}
	return name
}
