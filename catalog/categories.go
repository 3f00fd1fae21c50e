package catalog

// IOSCategories maps App Store numeric category ids to names. Unified
// endpoints take the iOS ids too.
var IOSCategories = map[string]string{
	"6001": "Productivity",
	"6002": "Utilities",
	"6003": "Health & Fitness",
	"6004": "Photo & Video",
	"6005": "Social Networking",
	"6006": "Medical",
	"6007": "Music",
	"6008": "Navigation",
	"6009": "Reference",
	"6010": "News",
	"6011": "Weather",
	"6012": "Lifestyle",
	"6014": "Games",
	"6015": "Finance",
	"6016": "Travel",
	"6017": "Sports",
	"6018": "Business",
	"6020": "Entertainment",
	"6021": "Education",
	"6022": "Catalogs",
	"6023": "Food & Drink",
	"6024": "Shopping",
}

// AndroidCategories maps Google Play category slugs to names.
var AndroidCategories = map[string]string{
	"business":      "Business",
	"education":     "Education",
	"entertainment": "Entertainment",
	"finance":       "Finance",
	"food":          "Food & Drink",
	"games":         "Games",
	"health":        "Health & Fitness",
	"lifestyle":     "Lifestyle",
	"maps":          "Maps & Navigation",
	"music":         "Music & Audio",
	"news":          "News & Magazines",
	"photography":   "Photography",
	"productivity":  "Productivity",
	"shopping":      "Shopping",
	"social":        "Social",
	"sports":        "Sports",
	"travel":        "Travel & Local",
	"utilities":     "Tools",
	"weather":       "Weather",
}

// Categories returns the category table for os, which must already be
// validated as ios or android.
func Categories(os string) map[string]string {
	if os == "android" {
		return AndroidCategories
	}
	return IOSCategories
}
