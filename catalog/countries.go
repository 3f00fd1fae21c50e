package catalog

// CountryNames maps the commonly-filtered ISO country codes to display
// names. The API accepts many more; this is the lookup the country-code
// helper tool serves.
var CountryNames = map[string]string{
	"US": "United States",
	"GB": "United Kingdom",
	"DE": "Germany",
	"FR": "France",
	"JP": "Japan",
	"CN": "China",
	"KR": "South Korea",
	"CA": "Canada",
	"AU": "Australia",
	"BR": "Brazil",
	"IN": "India",
	"RU": "Russia",
	"ES": "Spain",
	"IT": "Italy",
	"NL": "Netherlands",
	"SE": "Sweden",
	"MX": "Mexico",
}
