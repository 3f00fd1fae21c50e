package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	towerbridge "github.com/openappintel/tower-bridge"
	"github.com/openappintel/tower-bridge/catalog"
)

// marketAnalysisTools covers the Market Analysis API: top charts,
// trending apps and publishers, store summaries, and the ad
// intelligence top lists.
func (r *Registry) marketAnalysisTools() []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "get_top_and_trending",
				Description: "Get top apps by download and revenue estimates with growth metrics.",
				InputSchema: schema(map[string]any{
					"os":                      enumProp("Operating system", "ios", "android", "unified"),
					"comparison_attribute":    enumProp("Growth metric", "absolute", "delta", "transformed_delta"),
					"time_range":              enumProp("Aggregation range", "day", "week", "month", "quarter", "year"),
					"measure":                 enumProp("units for downloads, revenue for revenue", "units", "revenue"),
					"category":                categoryProp("Category ID, integer for iOS, slug for Android"),
					"date":                    stringProp("Start date, YYYY-MM-DD, auto-adjusts to the beginning of time_range"),
					"regions":                 stringProp("Comma-separated region codes"),
					"device_type":             stringProp("iphone, ipad, or total for iOS; blank for Android; total for unified"),
					"end_date":                stringProp("Optional end date for aggregating multiple periods"),
					"limit":                   intProp("Max apps per call, defaults to 25, max 2000"),
					"offset":                  intProp("Number of apps to offset results by"),
					"custom_fields_filter_id": stringProp("Optional custom fields filter ID"),
					"custom_tags_mode":        enumProp("Defaults to include_unified_apps", "include_unified_apps", "exclude_unified_apps"),
					"data_model":              enumProp("Estimate data model, defaults to DM_2025_Q2", "DM_2025_Q2", "DM_2025_Q1"),
				}, "os", "comparison_attribute", "time_range", "measure", "category", "date", "regions"),
			},
			Group: GroupMarketAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"custom_tags_mode": readStringDefault(args, "custom_tags_mode", "include_unified_apps"),
					"data_model":       readStringDefault(args, "data_model", "DM_2025_Q2"),
				}
				params.SetInt("limit", readIntDefault(args, "limit", 25))
				for _, key := range []string{"comparison_attribute", "time_range", "measure", "category", "regions"} {
					v, err := readString(args, key, true)
					if err != nil {
						return nil, err
					}
					params.Set(key, v)
				}
				date, err := requireDate(args, "date")
				if err != nil {
					return nil, err
				}
				params.Set("date", date)
				endDate, ok, err := optionalDate(args, "end_date")
				if err != nil {
					return nil, err
				}
				if ok {
					params.Set("end_date", endDate)
				}
				for _, key := range []string{"device_type", "custom_fields_filter_id"} {
					if v, ok := stringArg(args, key); ok {
						params.Set(key, v)
					}
				}
				if offset, ok := intArg(args, "offset"); ok {
					params.SetInt("offset", offset)
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/sales_report_estimates_comparison_attributes", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_top_publishers",
				Description: "Get top publishers by download and revenue estimates with growth metrics.",
				InputSchema: schema(map[string]any{
					"os":                   enumProp("Operating system", "ios", "android", "unified"),
					"comparison_attribute": enumProp("Growth metric", "absolute", "delta", "transformed_delta"),
					"time_range":           enumProp("Aggregation range", "day", "week", "month", "quarter", "year"),
					"measure":              enumProp("units for downloads, revenue for revenue", "units", "revenue"),
					"category":             categoryProp("Category ID, integer for iOS, slug for Android"),
					"date":                 stringProp("Start date, YYYY-MM-DD, auto-adjusts to the beginning of time_range"),
					"country":              stringProp("Optional country or region code"),
					"device_type":          stringProp("iphone, ipad, or total for iOS; blank for Android; total for unified"),
					"end_date":             stringProp("Optional end date for aggregating multiple periods"),
					"limit":                intProp("Max publishers per call, defaults to 25"),
					"offset":               intProp("Number of publishers to offset results by"),
				}, "os", "comparison_attribute", "time_range", "measure", "category", "date"),
			},
			Group: GroupMarketAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{}
				params.SetInt("limit", readIntDefault(args, "limit", 25))
				for _, key := range []string{"comparison_attribute", "time_range", "measure", "category"} {
					v, err := readString(args, key, true)
					if err != nil {
						return nil, err
					}
					params.Set(key, v)
				}
				date, err := requireDate(args, "date")
				if err != nil {
					return nil, err
				}
				params.Set("date", date)
				endDate, ok, err := optionalDate(args, "end_date")
				if err != nil {
					return nil, err
				}
				if ok {
					params.Set("end_date", endDate)
				}
				for _, key := range []string{"country", "device_type"} {
					if v, ok := stringArg(args, key); ok {
						params.Set(key, v)
					}
				}
				if offset, ok := intArg(args, "offset"); ok {
					params.SetInt("offset", offset)
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/top_and_trending/publishers", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_store_summary",
				Description: "Get app store summary statistics by category and country.",
				InputSchema: schema(map[string]any{
					"os":               enumProp("Operating system", "ios", "android"),
					"categories":       stringProp("Comma-separated category IDs"),
					"start_date":       stringProp("Start date, YYYY-MM-DD"),
					"end_date":         stringProp("End date, YYYY-MM-DD"),
					"date_granularity": enumProp("Aggregation granularity, defaults to daily", "daily", "weekly", "monthly", "quarterly"),
					"countries":        stringProp("Comma-separated country codes, defaults to US"),
				}, "os", "categories", "start_date", "end_date"),
			},
			Group: GroupMarketAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				categories, err := readString(args, "categories", true)
				if err != nil {
					return nil, err
				}
				startDate, err := requireDate(args, "start_date")
				if err != nil {
					return nil, err
				}
				endDate, err := requireDate(args, "end_date")
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"categories":       categories,
					"start_date":       startDate,
					"end_date":         endDate,
					"date_granularity": readStringDefault(args, "date_granularity", "daily"),
					"countries":        readStringDefault(args, "countries", "US"),
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/store_summary", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "usage_top_apps",
				Description: "Get top apps by active users (DAU, WAU, MAU) with growth metrics.",
				InputSchema: schema(map[string]any{
					"os":                      enumProp("Operating system", "ios", "android", "unified"),
					"comparison_attribute":    enumProp("Growth metric", "absolute", "delta", "transformed_delta"),
					"time_range":              enumProp("Aggregation range, week not available for MAU", "week", "month", "quarter"),
					"measure":                 enumProp("Active user window", "DAU", "WAU", "MAU"),
					"date":                    stringProp("Start date, YYYY-MM-DD, must match the beginning of the range"),
					"regions":                 stringProp("Comma-separated region codes"),
					"category":                categoryProp("Category ID, defaults to 0 for all categories"),
					"device_type":             stringProp("iphone, ipad, or total for iOS; blank for Android; total for unified"),
					"limit":                   intProp("Max apps per call, defaults to 25"),
					"offset":                  intProp("Number of apps to offset results by"),
					"custom_fields_filter_id": stringProp("Optional custom fields filter ID"),
					"data_model":              enumProp("Estimate data model, defaults to DM_2025_Q2", "DM_2025_Q2", "DM_2025_Q1"),
				}, "os", "comparison_attribute", "time_range", "measure", "date", "regions"),
			},
			Group: GroupMarketAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"category":   readStringDefault(args, "category", "0"),
					"data_model": readStringDefault(args, "data_model", "DM_2025_Q2"),
				}
				params.SetInt("limit", readIntDefault(args, "limit", 25))
				for _, key := range []string{"comparison_attribute", "time_range", "measure", "regions"} {
					v, err := readString(args, key, true)
					if err != nil {
						return nil, err
					}
					params.Set(key, v)
				}
				date, err := requireDate(args, "date")
				if err != nil {
					return nil, err
				}
				params.Set("date", date)
				for _, key := range []string{"device_type", "custom_fields_filter_id"} {
					if v, ok := stringArg(args, key); ok {
						params.Set(key, v)
					}
				}
				if offset, ok := intArg(args, "offset"); ok {
					params.SetInt("offset", offset)
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/top_and_trending/active_users", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_category_rankings",
				Description: "Get the top ranking apps of a particular category and chart type.",
				InputSchema: schema(map[string]any{
					"os":         enumProp("Operating system", "ios", "android"),
					"category":   categoryProp("Category ID, integer for iOS, slug for Android"),
					"chart_type": stringProp("Chart type, e.g. topfreeapplications"),
					"country":    stringProp("Country code"),
					"date":       stringProp("Date, YYYY-MM-DD"),
				}, "os", "category", "chart_type", "country", "date"),
			},
			Group: GroupMarketAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{}
				for _, key := range []string{"category", "chart_type", "country"} {
					v, err := readString(args, key, true)
					if err != nil {
						return nil, err
					}
					params.Set(key, v)
				}
				date, err := requireDate(args, "date")
				if err != nil {
					return nil, err
				}
				params.Set("date", date)
				return r.call(ctx, fmt.Sprintf("/v1/%s/ranking", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "top_apps",
				Description: "Fetch current and prior Share of Voice for the top advertisers or publishers over a period.",
				InputSchema: schema(map[string]any{
					"os":                      enumProp("Operating system", "ios", "android", "unified"),
					"role":                    enumProp("Which side of the ad market", "advertisers", "publishers"),
					"date":                    stringProp("Start date for impression data, YYYY-MM-DD"),
					"period":                  enumProp("Time period", "week", "month", "quarter"),
					"category":                categoryProp("Category ID, use iOS categories for unified"),
					"country":                 stringProp("Country code"),
					"network":                 stringProp("Network name, e.g. Admob, All Networks"),
					"custom_fields_filter_id": stringProp("Optional custom fields filter ID"),
					"limit":                   intProp("Max apps returned: 25, 100, or 250, defaults to 25"),
					"page":                    intProp("Page number, defaults to 1"),
				}, "os", "role", "date", "period", "category", "country", "network"),
			},
			Group: GroupMarketAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{}
				params.SetInt("limit", readIntDefault(args, "limit", 25))
				params.SetInt("page", readIntDefault(args, "page", 1))
				for _, key := range []string{"role", "period", "category", "country", "network"} {
					v, err := readString(args, key, true)
					if err != nil {
						return nil, err
					}
					params.Set(key, v)
				}
				date, err := requireDate(args, "date")
				if err != nil {
					return nil, err
				}
				params.Set("date", date)
				if v, ok := stringArg(args, "custom_fields_filter_id"); ok {
					params.Set("custom_fields_filter_id", v)
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/ad_intel/top_apps", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "top_apps_search",
				Description: "Fetch the rank of a top advertiser or publisher among apps matching the filters. Network names are case sensitive; Facebook is mapped to Instagram.",
				InputSchema: schema(map[string]any{
					"os":       enumProp("Operating system", "ios", "android", "unified"),
					"app_id":   stringProp("App to search for"),
					"role":     enumProp("Which side of the ad market", "advertisers", "publishers"),
					"date":     stringProp("Date to search, YYYY-MM-DD"),
					"period":   enumProp("Time period", "week", "month", "quarter"),
					"category": categoryProp("Category to search, use iOS categories for unified"),
					"country":  stringProp("Country code"),
					"network":  stringProp("Network name, e.g. Admob, Instagram"),
				}, "os", "app_id", "role", "date", "period", "category", "country", "network"),
			},
			Group: GroupMarketAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{}
				for _, key := range []string{"app_id", "role", "period", "category", "country"} {
					v, err := readString(args, key, true)
					if err != nil {
						return nil, err
					}
					params.Set(key, v)
				}
				date, err := requireDate(args, "date")
				if err != nil {
					return nil, err
				}
				params.Set("date", date)
				network, err := readString(args, "network", true)
				if err != nil {
					return nil, err
				}
				params.Set("network", catalog.NormalizeNetwork(network, catalog.TopAppsNetworks))
				return r.call(ctx, fmt.Sprintf("/v1/%s/ad_intel/top_apps/search", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "top_creatives",
				Description: "Fetch the top advertising creatives over a given time period.",
				InputSchema: schema(map[string]any{
					"os":                enumProp("Operating system", "ios", "android", "unified"),
					"date":              stringProp("Start date for creatives data, YYYY-MM-DD"),
					"period":            enumProp("Time period", "week", "month", "quarter"),
					"category":          categoryProp("Category ID, use iOS categories for unified"),
					"country":           stringProp("Country code"),
					"network":           stringProp("Network name, e.g. Youtube, Admob"),
					"ad_types":          stringProp("Comma-separated ad types, e.g. video,image,playable"),
					"limit":             intProp("Max creatives returned: 25, 100, or 250, defaults to 25"),
					"page":              intProp("Page number, defaults to 1"),
					"placements":        stringProp("Optional comma-separated ad placements"),
					"video_durations":   stringProp("Optional comma-separated video duration ranges"),
					"aspect_ratios":     stringProp("Optional comma-separated aspect ratios"),
					"banner_dimensions": stringProp("Optional comma-separated banner dimensions"),
					"new_creative":      boolProp("Return only new creatives, defaults to false"),
				}, "os", "date", "period", "category", "country", "network", "ad_types"),
			},
			Group: GroupMarketAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{}
				params.SetInt("limit", readIntDefault(args, "limit", 25))
				params.SetInt("page", readIntDefault(args, "page", 1))
				params.SetBool("new_creative", readBool(args, "new_creative", false))
				for _, key := range []string{"period", "category", "country", "network", "ad_types"} {
					v, err := readString(args, key, true)
					if err != nil {
						return nil, err
					}
					params.Set(key, v)
				}
				date, err := requireDate(args, "date")
				if err != nil {
					return nil, err
				}
				params.Set("date", date)
				for _, key := range []string{"placements", "video_durations", "aspect_ratios", "banner_dimensions"} {
					if v, ok := stringArg(args, key); ok {
						params.Set(key, v)
					}
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/ad_intel/creatives/top", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "games_breakdown",
				Description: "Retrieve aggregated download and revenue estimates of game categories by country and date. Revenue is in cents.",
				InputSchema: schema(map[string]any{
					"os":               enumProp("Operating system", "ios", "android"),
					"categories":       stringProp("Comma-separated game category IDs"),
					"start_date":       stringProp("Start date, YYYY-MM-DD, data before 2016-01-01 not supported"),
					"end_date":         stringProp("End date, YYYY-MM-DD"),
					"date_granularity": enumProp("Aggregation granularity, defaults to daily", "daily", "weekly", "monthly", "quarterly"),
					"countries":        stringProp("Optional comma-separated country codes, WW for worldwide"),
				}, "os", "categories", "start_date", "end_date"),
			},
			Group: GroupMarketAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				categories, err := readString(args, "categories", true)
				if err != nil {
					return nil, err
				}
				startDate, err := requireDate(args, "start_date")
				if err != nil {
					return nil, err
				}
				endDate, err := requireDate(args, "end_date")
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"categories":       categories,
					"start_date":       startDate,
					"end_date":         endDate,
					"date_granularity": readStringDefault(args, "date_granularity", "daily"),
				}
				if countries, ok := stringArg(args, "countries"); ok {
					params.Set("countries", countries)
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/games_breakdown", os), params, platformMeta(os))
			},
		},
	}
}
