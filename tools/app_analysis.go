package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	towerbridge "github.com/openappintel/tower-bridge"
	"github.com/openappintel/tower-bridge/catalog"
)

// appAnalysisTools covers the App Analysis API: metadata, store
// estimates, ad intelligence, and usage intelligence endpoints.
func (r *Registry) appAnalysisTools() []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "top_in_app_purchases",
				Description: "Retrieve top in-app purchases for the requested app IDs.",
				InputSchema: schema(map[string]any{
					"os":      enumProp("Operating system", "ios", "android"),
					"app_ids": stringProp("Comma-separated app IDs, max 100 per call"),
					"country": stringProp("Country code, defaults to US"),
				}, "os", "app_ids"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				appIDs, err := readString(args, "app_ids", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"app_ids": appIDs,
					"country": readStringDefault(args, "country", "US"),
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/apps/top_in_app_purchases", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_creatives",
				Description: "Fetch advertising creatives for apps with Share of Voice and publisher data. Facebook is not supported as a network.",
				InputSchema: schema(map[string]any{
					"os":         enumProp("Operating system", "ios", "android", "unified"),
					"app_ids":    stringProp("Comma-separated app IDs to return creatives for"),
					"start_date": stringProp("Start date, YYYY-MM-DD"),
					"countries":  stringProp("Comma-separated country codes"),
					"networks":   stringProp("Comma-separated ad networks, e.g. Instagram,Admob,Unity"),
					"ad_types":   stringProp("Comma-separated ad types, e.g. video,image,playable"),
					"end_date":   stringProp("Optional end date, YYYY-MM-DD"),
				}, "os", "app_ids", "start_date", "countries", "networks", "ad_types"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				appIDs, err := readString(args, "app_ids", true)
				if err != nil {
					return nil, err
				}
				startDate, err := requireDate(args, "start_date")
				if err != nil {
					return nil, err
				}
				countries, err := readString(args, "countries", true)
				if err != nil {
					return nil, err
				}
				networks, err := readString(args, "networks", true)
				if err != nil {
					return nil, err
				}
				adTypes, err := readString(args, "ad_types", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"app_ids":    appIDs,
					"start_date": startDate,
					"countries":  countries,
					"networks":   catalog.NormalizeNetworks(networks, catalog.AnalysisNetworks),
					"ad_types":   adTypes,
				}
				endDate, ok, err := optionalDate(args, "end_date")
				if err != nil {
					return nil, err
				}
				if ok {
					params.Set("end_date", endDate)
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/ad_intel/creatives", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_impressions",
				Description: "Get advertising impressions data for apps across ad networks. Facebook is not supported as a network.",
				InputSchema: schema(map[string]any{
					"os":               enumProp("Operating system", "ios", "android", "unified"),
					"app_ids":          stringProp("Comma-separated app IDs, max 5 per call"),
					"start_date":       stringProp("Start date, YYYY-MM-DD, minimum 2018-01-01"),
					"end_date":         stringProp("End date, YYYY-MM-DD"),
					"countries":        stringProp("Comma-separated country codes"),
					"networks":         stringProp("Comma-separated ad networks"),
					"date_granularity": enumProp("Aggregation granularity, defaults to daily", "daily", "weekly", "monthly"),
				}, "os", "app_ids", "start_date", "end_date", "countries", "networks"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				appIDs, err := readString(args, "app_ids", true)
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
				countries, err := readString(args, "countries", true)
				if err != nil {
					return nil, err
				}
				networks, err := readString(args, "networks", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"app_ids":    appIDs,
					"start_date": startDate,
					"end_date":   endDate,
					"period":     catalog.Period(readStringDefault(args, "date_granularity", "daily"), "day"),
					"countries":  countries,
					"networks":   catalog.NormalizeNetworks(networks, catalog.AnalysisNetworks),
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/ad_intel/network_analysis", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_usage_active_users",
				Description: "Get usage intelligence active user estimates by country and period.",
				InputSchema: schema(map[string]any{
					"os":               enumProp("Operating system", "ios", "android", "unified"),
					"app_ids":          stringProp("Comma-separated app IDs, max 500 per call"),
					"start_date":       stringProp("Start date, YYYY-MM-DD"),
					"end_date":         stringProp("End date, YYYY-MM-DD"),
					"countries":        stringProp("Comma-separated country codes, defaults to US, WW for worldwide"),
					"date_granularity": enumProp("Aggregation granularity, defaults to monthly", "daily", "weekly", "monthly"),
					"data_model":       enumProp("Estimate data model, defaults to DM_2025_Q2", "DM_2025_Q2", "DM_2025_Q1"),
				}, "os", "app_ids", "start_date", "end_date"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				appIDs, err := readString(args, "app_ids", true)
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
					"app_ids":     appIDs,
					"start_date":  startDate,
					"end_date":    endDate,
					"countries":   readStringDefault(args, "countries", "US"),
					"time_period": catalog.Period(readStringDefault(args, "date_granularity", "monthly"), "month"),
					"data_model":  readStringDefault(args, "data_model", "DM_2025_Q2"),
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/usage/active_users", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_category_history",
				Description: "Get category ranking history for apps.",
				InputSchema: schema(map[string]any{
					"os":         enumProp("Operating system", "ios", "android"),
					"app_ids":    stringProp("Comma-separated app IDs"),
					"categories": stringProp("Comma-separated category IDs"),
					"start_date": stringProp("Start date, YYYY-MM-DD"),
					"end_date":   stringProp("End date, YYYY-MM-DD"),
					"countries":  stringProp("Comma-separated country codes, defaults to US"),
				}, "os", "app_ids", "categories", "start_date", "end_date"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				appIDs, err := readString(args, "app_ids", true)
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
					"app_ids":    appIDs,
					"categories": categories,
					"start_date": startDate,
					"end_date":   endDate,
					"countries":  readStringDefault(args, "countries", "US"),
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/category/category_history", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "compact_sales_report_estimates",
				Description: "Get download and revenue estimates in compact format. Revenue is in cents.",
				InputSchema: schema(map[string]any{
					"os":                    enumProp("Operating system", "ios", "android"),
					"start_date":            stringProp("Start date, YYYY-MM-DD"),
					"end_date":              stringProp("End date, YYYY-MM-DD"),
					"app_ids":               stringProp("Comma-separated app IDs"),
					"publisher_ids":         stringProp("Comma-separated publisher IDs"),
					"unified_app_ids":       stringProp("Comma-separated unified app IDs"),
					"unified_publisher_ids": stringProp("Comma-separated unified publisher IDs"),
					"categories":            stringProp("Comma-separated category IDs"),
					"countries":             stringProp("Comma-separated country codes, defaults to US"),
					"date_granularity":      enumProp("Aggregation granularity, defaults to daily", "daily", "weekly", "monthly", "quarterly"),
					"data_model":            enumProp("Estimate data model, defaults to DM_2025_Q2", "DM_2025_Q2", "DM_2025_Q1"),
				}, "os", "start_date", "end_date"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
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
					"start_date":       startDate,
					"end_date":         endDate,
					"countries":        readStringDefault(args, "countries", "US"),
					"date_granularity": readStringDefault(args, "date_granularity", "daily"),
					"data_model":       readStringDefault(args, "data_model", "DM_2025_Q2"),
				}
				for _, key := range []string{"app_ids", "publisher_ids", "unified_app_ids", "unified_publisher_ids", "categories"} {
					if v, ok := stringArg(args, key); ok {
						params.Set(key, v)
					}
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/compact_sales_report_estimates", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "category_ranking_summary",
				Description: "Get today's category ranking summary for a particular app.",
				InputSchema: schema(map[string]any{
					"os":      enumProp("Operating system", "ios", "android"),
					"app_id":  stringProp("Single app ID"),
					"country": stringProp("Country code"),
				}, "os", "app_id", "country"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				appID, err := readString(args, "app_id", true)
				if err != nil {
					return nil, err
				}
				country, err := readString(args, "country", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"app_id":  appID,
					"country": country,
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/category/category_ranking_summary", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "impressions_rank",
				Description: "Get advertising impressions rank data for apps. Supports a broader network list than get_impressions, including Facebook.",
				InputSchema: schema(map[string]any{
					"os":         enumProp("Operating system", "ios", "android", "unified"),
					"app_ids":    stringProp("Comma-separated app IDs"),
					"start_date": stringProp("Start date, YYYY-MM-DD"),
					"end_date":   stringProp("End date, YYYY-MM-DD"),
					"countries":  stringProp("Comma-separated country codes"),
					"networks":   stringProp("Optional comma-separated ad networks"),
				}, "os", "app_ids", "start_date", "end_date", "countries"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				appIDs, err := readString(args, "app_ids", true)
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
				countries, err := readString(args, "countries", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"app_ids":    appIDs,
					"start_date": startDate,
					"end_date":   endDate,
					"countries":  countries,
					"period":     "day",
				}
				if networks, ok := stringArg(args, "networks"); ok {
					params.Set("networks", networks)
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/ad_intel/network_analysis/rank", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "app_analysis_retention",
				Description: "Get retention analysis data for apps, day 1 through day 90 plus baseline.",
				InputSchema: schema(map[string]any{
					"os":               enumProp("Operating system", "ios", "android", "unified"),
					"app_ids":          stringProp("Comma-separated app IDs"),
					"date_granularity": stringProp("Aggregation granularity, e.g. all_time, monthly"),
					"start_date":       stringProp("Start date, YYYY-MM-DD"),
					"end_date":         stringProp("Optional end date, YYYY-MM-DD, defaults to 2024-01-31"),
					"country":          stringProp("Optional country code"),
				}, "os", "app_ids", "date_granularity", "start_date"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				appIDs, err := readString(args, "app_ids", true)
				if err != nil {
					return nil, err
				}
				granularity, err := readString(args, "date_granularity", true)
				if err != nil {
					return nil, err
				}
				startDate, err := requireDate(args, "start_date")
				if err != nil {
					return nil, err
				}
				endDate, ok, err := optionalDate(args, "end_date")
				if err != nil {
					return nil, err
				}
				if !ok {
					endDate = "2024-01-31"
				}
				params := towerbridge.Params{
					"app_ids":          appIDs,
					"date_granularity": granularity,
					"start_date":       startDate,
					"end_date":         endDate,
				}
				if country, ok := stringArg(args, "country"); ok {
					params.Set("country", country)
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/usage/retention", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "downloads_by_sources",
				Description: "Get app downloads split by organic, paid, and browser sources. Takes unified app IDs regardless of the os filter.",
				InputSchema: schema(map[string]any{
					"os":               enumProp("Operating system", "ios", "android", "unified"),
					"app_ids":          stringProp("Comma-separated unified app IDs"),
					"countries":        stringProp("Comma-separated country codes"),
					"start_date":       stringProp("Start date, YYYY-MM-DD"),
					"end_date":         stringProp("End date, YYYY-MM-DD"),
					"date_granularity": enumProp("Aggregation granularity, defaults to monthly", "daily", "weekly", "monthly", "quarterly"),
				}, "os", "app_ids", "countries", "start_date", "end_date"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				appIDs, err := readString(args, "app_ids", true)
				if err != nil {
					return nil, err
				}
				countries, err := readString(args, "countries", true)
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
					"app_ids":          appIDs,
					"countries":        countries,
					"start_date":       startDate,
					"end_date":         endDate,
					"date_granularity": readStringDefault(args, "date_granularity", "monthly"),
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/downloads_by_sources", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "app_analysis_demographics",
				Description: "Get demographic analysis data for apps, broken down by gender and age range.",
				InputSchema: schema(map[string]any{
					"os":               enumProp("Operating system", "ios", "android", "unified"),
					"app_ids":          stringProp("Comma-separated app IDs"),
					"date_granularity": stringProp("Aggregation granularity, e.g. all_time, monthly"),
					"start_date":       stringProp("Start date, YYYY-MM-DD"),
					"end_date":         stringProp("Optional end date, YYYY-MM-DD, defaults to 2024-01-31"),
					"country":          stringProp("Optional country code"),
				}, "os", "app_ids", "date_granularity", "start_date"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requirePlatform(args)
				if err != nil {
					return nil, err
				}
				appIDs, err := readString(args, "app_ids", true)
				if err != nil {
					return nil, err
				}
				granularity, err := readString(args, "date_granularity", true)
				if err != nil {
					return nil, err
				}
				startDate, err := requireDate(args, "start_date")
				if err != nil {
					return nil, err
				}
				endDate, ok, err := optionalDate(args, "end_date")
				if err != nil {
					return nil, err
				}
				if !ok {
					endDate = "2024-01-31"
				}
				params := towerbridge.Params{
					"app_ids":          appIDs,
					"date_granularity": granularity,
					"start_date":       startDate,
					"end_date":         endDate,
				}
				if country, ok := stringArg(args, "country"); ok {
					params.Set("country", country)
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/usage/demographics", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "app_update_timeline",
				Description: "Get the update history timeline for a particular app.",
				InputSchema: schema(map[string]any{
					"os":         enumProp("Operating system", "ios", "android"),
					"app_id":     stringProp("Single app ID"),
					"country":    stringProp("Country code, defaults to US"),
					"date_limit": stringProp("Number of updates to retrieve, defaults to 10"),
				}, "os", "app_id"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				appID, err := readString(args, "app_id", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"app_id":     appID,
					"country":    readStringDefault(args, "country", "US"),
					"date_limit": readStringDefault(args, "date_limit", "10"),
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/app_update/get_app_update_history", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "version_history",
				Description: "Get the version history for a particular app.",
				InputSchema: schema(map[string]any{
					"os":      enumProp("Operating system", "ios", "android"),
					"app_id":  stringProp("Single app ID"),
					"country": stringProp("Country code, defaults to US"),
				}, "os", "app_id"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				appID, err := readString(args, "app_id", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"app_id":  appID,
					"country": readStringDefault(args, "country", "US"),
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/apps/version_history", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_app_metadata",
				Description: "Get app metadata: name, publisher, categories, description, screenshots, ratings, and optionally SDK insights.",
				InputSchema: schema(map[string]any{
					"os":               enumProp("Operating system", "ios", "android"),
					"app_ids":          stringProp("Comma-separated app IDs, max 100 per call"),
					"country":          stringProp("Country code for localized data, defaults to US"),
					"include_sdk_data": boolProp("Include SDK insights data, requires subscription"),
				}, "os", "app_ids"),
			},
			Group: GroupAppAnalysis,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				appIDs, err := readString(args, "app_ids", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"app_ids": appIDs,
					"country": readStringDefault(args, "country", "US"),
				}
				params.SetBool("include_sdk_data", readBool(args, "include_sdk_data", false))
				return r.call(ctx, fmt.Sprintf("/v1/%s/apps", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_download_estimates",
				Description: "Fetch download estimates for apps by country and date.",
				InputSchema: schema(map[string]any{
					"os":               enumProp("Operating system", "ios", "android", "unified"),
					"app_ids":          stringProp("Comma-separated app IDs"),
					"start_date":       stringProp("Start date, YYYY-MM-DD"),
					"end_date":         stringProp("End date, YYYY-MM-DD"),
					"countries":        stringProp("Optional comma-separated country codes"),
					"date_granularity": enumProp("Aggregation granularity, defaults to daily", "daily", "weekly", "monthly", "quarterly"),
					"data_model":       enumProp("Estimate data model, defaults to DM_2025_Q2", "DM_2025_Q2", "DM_2025_Q1"),
				}, "os", "app_ids", "start_date", "end_date"),
			},
			Group:   GroupAppAnalysis,
			Execute: r.salesReportEstimates,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_revenue_estimates",
				Description: "Fetch revenue estimates for apps by country and date. Revenue is in cents.",
				InputSchema: schema(map[string]any{
					"os":               enumProp("Operating system", "ios", "android", "unified"),
					"app_ids":          stringProp("Comma-separated app IDs"),
					"start_date":       stringProp("Start date, YYYY-MM-DD"),
					"end_date":         stringProp("End date, YYYY-MM-DD"),
					"countries":        stringProp("Optional comma-separated country codes"),
					"date_granularity": enumProp("Aggregation granularity, defaults to daily", "daily", "weekly", "monthly", "quarterly"),
					"data_model":       enumProp("Estimate data model, defaults to DM_2025_Q2", "DM_2025_Q2", "DM_2025_Q1"),
				}, "os", "app_ids", "start_date", "end_date"),
			},
			Group:   GroupAppAnalysis,
			Execute: r.salesReportEstimates,
		},
	}
}

// salesReportEstimates backs both estimate tools. The endpoint reports
// downloads and revenue together; the split into two tools mirrors the
// upstream documentation.
func (r *Registry) salesReportEstimates(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
	os, err := requirePlatform(args)
	if err != nil {
		return nil, err
	}
	appIDs, err := readString(args, "app_ids", true)
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
		"app_ids":          appIDs,
		"start_date":       startDate,
		"end_date":         endDate,
		"date_granularity": readStringDefault(args, "date_granularity", "daily"),
		"data_model":       readStringDefault(args, "data_model", "DM_2025_Q2"),
	}
	if countries, ok := stringArg(args, "countries"); ok {
		params.Set("countries", countries)
	}
	return r.call(ctx, fmt.Sprintf("/v1/%s/sales_report_estimates", os), params, platformMeta(os))
}
