package catalog

// ChartTypes maps ranking chart identifiers to descriptions. The two
// "ipadad" ids are spelled exactly as the upstream ranking service
// accepts them.
var ChartTypes = map[string]string{
	"topfreeapplications":           "Top Free Apps",
	"toppaidapplications":           "Top Paid Apps",
	"topgrossingapplications":       "Top Grossing Apps",
	"topfreeipadapplications":       "Top Free iPad Apps (iOS only)",
	"toppaidipadadapplications":     "Top Paid iPad Apps (iOS only)",
	"topgrossingipadadapplications": "Top Grossing iPad Apps (iOS only)",
}
