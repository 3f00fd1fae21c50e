package tools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	towerbridge "github.com/openappintel/tower-bridge"
)

func TestGetCreativesNormalizesNetworks(t *testing.T) {
	r, transport := newTestRegistry(t)

	env, err := execTool(t, r, "get_creatives", map[string]any{
		"os":         "ios",
		"app_ids":    "835599320",
		"start_date": "2024-01-01",
		"countries":  "US",
		"networks":   "google,Facebook,TikTok",
		"ad_types":   "video",
	})
	require.NoError(t, err)
	assert.Equal(t, "ios", env["platform"])

	req := transport.LastRequest()
	assert.Equal(t, "/v1/ios/ad_intel/creatives", req.Endpoint)
	assert.Equal(t, "Youtube,TikTok", req.Query["networks"])
	assert.Equal(t, "test-token", req.Query["auth_token"])
	assert.NotContains(t, req.Query, "end_date")
}

func TestGetImpressionsPeriodMapping(t *testing.T) {
	tests := []struct {
		granularity string
		period      string
	}{
		{"daily", "day"},
		{"weekly", "week"},
		{"monthly", "month"},
		{"", "day"},
		{"hourly", "day"},
	}
	for _, tt := range tests {
		t.Run("granularity "+tt.granularity, func(t *testing.T) {
			r, transport := newTestRegistry(t)
			args := map[string]any{
				"os":         "unified",
				"app_ids":    "55c5027502ac64f9c0001f96",
				"start_date": "2024-01-01",
				"end_date":   "2024-01-31",
				"countries":  "US",
				"networks":   "Instagram",
			}
			if tt.granularity != "" {
				args["date_granularity"] = tt.granularity
			}
			_, err := execTool(t, r, "get_impressions", args)
			require.NoError(t, err)

			req := transport.LastRequest()
			assert.Equal(t, "/v1/unified/ad_intel/network_analysis", req.Endpoint)
			assert.Equal(t, tt.period, req.Query["period"])
		})
	}
}

func TestImpressionsRankUsesFixedPeriod(t *testing.T) {
	r, transport := newTestRegistry(t)

	_, err := execTool(t, r, "impressions_rank", map[string]any{
		"os":         "ios",
		"app_ids":    "284882215",
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
		"countries":  "US",
	})
	require.NoError(t, err)

	req := transport.LastRequest()
	assert.Equal(t, "/v1/ios/ad_intel/network_analysis/rank", req.Endpoint)
	assert.Equal(t, "day", req.Query["period"])
	assert.NotContains(t, req.Query, "networks")

	// Rank accepts raw network names, no canonicalization.
	_, err = execTool(t, r, "impressions_rank", map[string]any{
		"os":         "ios",
		"app_ids":    "284882215",
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
		"countries":  "US",
		"networks":   "facebook,google",
	})
	require.NoError(t, err)
	assert.Equal(t, "facebook,google", transport.LastRequest().Query["networks"])
}

func TestRetentionAndDemographicsDefaults(t *testing.T) {
	for _, name := range []string{"app_analysis_retention", "app_analysis_demographics"} {
		t.Run(name, func(t *testing.T) {
			r, transport := newTestRegistry(t)

			_, err := execTool(t, r, name, map[string]any{
				"os":               "ios",
				"app_ids":          "284882215",
				"date_granularity": "all_time",
				"start_date":       "2024-01-01",
			})
			require.NoError(t, err)
			req := transport.LastRequest()
			assert.Equal(t, "all_time", req.Query["date_granularity"])
			assert.Equal(t, "2024-01-31", req.Query["end_date"])
			assert.NotContains(t, req.Query, "country")

			_, err = execTool(t, r, name, map[string]any{
				"os":               "android",
				"app_ids":          "com.spotify.music",
				"date_granularity": "monthly",
				"start_date":       "2024-01-01",
				"end_date":         "2024-06-30",
				"country":          "GB",
			})
			require.NoError(t, err)
			req = transport.LastRequest()
			assert.Equal(t, "2024-06-30", req.Query["end_date"])
			assert.Equal(t, "GB", req.Query["country"])
		})
	}
}

func TestSalesReportEstimatesShareEndpoint(t *testing.T) {
	for _, name := range []string{"get_download_estimates", "get_revenue_estimates"} {
		t.Run(name, func(t *testing.T) {
			r, transport := newTestRegistry(t)

			_, err := execTool(t, r, name, map[string]any{
				"os":         "android",
				"app_ids":    "com.spotify.music",
				"start_date": "2024-01-01",
				"end_date":   "2024-01-31",
			})
			require.NoError(t, err)

			req := transport.LastRequest()
			assert.Equal(t, "/v1/android/sales_report_estimates", req.Endpoint)
			assert.Equal(t, "daily", req.Query["date_granularity"])
			assert.Equal(t, "DM_2025_Q2", req.Query["data_model"])
			assert.NotContains(t, req.Query, "countries")

			_, err = execTool(t, r, name, map[string]any{
				"os":         "ios",
				"app_ids":    "284882215",
				"start_date": "2024-01-01",
				"end_date":   "2024-01-31",
				"countries":  "US,GB",
			})
			require.NoError(t, err)
			assert.Equal(t, "US,GB", transport.LastRequest().Query["countries"])
		})
	}
}

func TestGetAppMetadataParams(t *testing.T) {
	r, transport := newTestRegistry(t)

	_, err := execTool(t, r, "get_app_metadata", map[string]any{
		"os":      "ios",
		"app_ids": "284882215",
	})
	require.NoError(t, err)
	req := transport.LastRequest()
	assert.Equal(t, "/v1/ios/apps", req.Endpoint)
	assert.Equal(t, "US", req.Query["country"])
	assert.Equal(t, "false", req.Query["include_sdk_data"])

	_, err = execTool(t, r, "get_app_metadata", map[string]any{
		"os":               "android",
		"app_ids":          "com.spotify.music",
		"country":          "DE",
		"include_sdk_data": true,
	})
	require.NoError(t, err)
	req = transport.LastRequest()
	assert.Equal(t, "DE", req.Query["country"])
	assert.Equal(t, "true", req.Query["include_sdk_data"])
}

func TestGetUsageActiveUsersDefaults(t *testing.T) {
	r, transport := newTestRegistry(t)

	_, err := execTool(t, r, "get_usage_active_users", map[string]any{
		"os":         "ios",
		"app_ids":    "284882215",
		"start_date": "2024-01-01",
		"end_date":   "2024-03-31",
	})
	require.NoError(t, err)

	req := transport.LastRequest()
	assert.Equal(t, "/v1/ios/usage/active_users", req.Endpoint)
	assert.Equal(t, "US", req.Query["countries"])
	assert.Equal(t, "month", req.Query["time_period"])
	assert.Equal(t, "DM_2025_Q2", req.Query["data_model"])

	_, err = execTool(t, r, "get_usage_active_users", map[string]any{
		"os":          "ios",
		"app_ids":     "284882215",
		"start_date":  "2024-01-01",
		"end_date":    "2024-03-31",
		"time_period": "daily",
	})
	require.NoError(t, err)
	assert.Equal(t, "day", transport.LastRequest().Query["time_period"])
}

func TestCompactSalesReportOptionalIDs(t *testing.T) {
	r, transport := newTestRegistry(t)

	_, err := execTool(t, r, "compact_sales_report_estimates", map[string]any{
		"os":         "ios",
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
		"app_ids":    "284882215,835599320",
		"categories": "6005",
	})
	require.NoError(t, err)

	req := transport.LastRequest()
	assert.Equal(t, "/v1/ios/compact_sales_report_estimates", req.Endpoint)
	assert.Equal(t, "284882215,835599320", req.Query["app_ids"])
	assert.Equal(t, "6005", req.Query["categories"])
	assert.NotContains(t, req.Query, "publisher_ids")
	assert.NotContains(t, req.Query, "unified_app_ids")
}

func TestAppUpdateTimelineDefaults(t *testing.T) {
	r, transport := newTestRegistry(t)

	_, err := execTool(t, r, "app_update_timeline", map[string]any{
		"os":     "ios",
		"app_id": "284882215",
	})
	require.NoError(t, err)

	req := transport.LastRequest()
	assert.Equal(t, "/v1/ios/app_update/get_app_update_history", req.Endpoint)
	assert.Equal(t, "US", req.Query["country"])
	assert.Equal(t, "10", req.Query["date_limit"])
}

func TestAppAnalysisValidation(t *testing.T) {
	r, transport := newTestRegistry(t)

	t.Run("store tools reject unified", func(t *testing.T) {
		_, err := execTool(t, r, "top_in_app_purchases", map[string]any{
			"os":      "unified",
			"app_ids": "284882215",
		})
		require.Error(t, err)
		var verr *towerbridge.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, err.Error(), "invalid os parameter")
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		_, err := execTool(t, r, "get_impressions", map[string]any{
			"os":         "ios",
			"app_ids":    "284882215",
			"start_date": "2024/01/01",
			"end_date":   "2024-01-31",
			"countries":  "US",
			"networks":   "Instagram",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date format")
	})

	t.Run("missing required argument", func(t *testing.T) {
		_, err := execTool(t, r, "get_creatives", map[string]any{
			"os":         "ios",
			"start_date": "2024-01-01",
			"countries":  "US",
			"networks":   "Instagram",
			"ad_types":   "video",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `parameter "app_ids" is required`)
	})

	// Nothing above should have reached the wire.
	assert.Equal(t, 0, transport.Calls())
}
