package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	assert.Len(t, IOSCategories, 22)
	assert.Len(t, AndroidCategories, 19)
	assert.Equal(t, "Social Networking", IOSCategories["6005"])
	assert.Equal(t, "Tools", AndroidCategories["utilities"])

	assert.Equal(t, IOSCategories, Categories("ios"))
	assert.Equal(t, AndroidCategories, Categories("android"))
}

func TestChartTypes(t *testing.T) {
	assert.Len(t, ChartTypes, 6)
	// The doubled "ad" in the iPad paid and grossing ids is what the
	// ranking service accepts; it must never be corrected here.
	assert.Contains(t, ChartTypes, "toppaidipadadapplications")
	assert.Contains(t, ChartTypes, "topgrossingipadadapplications")
	assert.Contains(t, ChartTypes, "topfreeipadapplications")
}

func TestCountryNames(t *testing.T) {
	assert.Len(t, CountryNames, 17)
	assert.Equal(t, "United States", CountryNames["US"])
	assert.Equal(t, "South Korea", CountryNames["KR"])
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, "day", Period("daily", "day"))
	assert.Equal(t, "week", Period("weekly", "day"))
	assert.Equal(t, "month", Period("monthly", "day"))
	assert.Equal(t, "day", Period("hourly", "day"), "unknown granularity falls back")
	assert.Equal(t, "month", Period("", "month"))
}
