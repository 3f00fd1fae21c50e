package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	towerbridge "github.com/openappintel/tower-bridge"
)

// yourMetricsTools covers the Connected Apps API. These endpoints only
// return data for apps the token owner has connected through iTunes
// Connect or Google Play.
func (r *Registry) yourMetricsTools() []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "analytics_metrics",
				Description: "Get the detailed App Store analytics report for your connected apps: impressions, store views, in-app purchases, sessions, and active devices.",
				InputSchema: schema(map[string]any{
					"app_ids":    stringProp("Comma-separated app IDs of apps you manage"),
					"countries":  stringProp("Comma-separated iTunes country codes"),
					"start_date": stringProp("Start date, YYYY-MM-DD"),
					"end_date":   stringProp("End date, YYYY-MM-DD"),
				}, "app_ids", "countries", "start_date", "end_date"),
			},
			Group: GroupYourMetrics,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				params, err := connectedAppsParams(args)
				if err != nil {
					return nil, err
				}
				return r.call(ctx, "/v1/ios/sales_reports/analytics_metrics", params, nil)
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "sources_metrics",
				Description: "Get App Store metrics by traffic source type for your connected apps.",
				InputSchema: schema(map[string]any{
					"app_ids":    stringProp("Comma-separated app IDs of apps you manage"),
					"countries":  stringProp("Comma-separated iTunes country codes"),
					"start_date": stringProp("Start date, YYYY-MM-DD"),
					"end_date":   stringProp("End date, YYYY-MM-DD"),
					"limit":      intProp("Optional max reports to retrieve, max 6000"),
					"offset":     intProp("Optional offset for pagination"),
				}, "app_ids", "countries", "start_date", "end_date"),
			},
			Group: GroupYourMetrics,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				params, err := connectedAppsParams(args)
				if err != nil {
					return nil, err
				}
				for _, key := range []string{"limit", "offset"} {
					if n, ok := intArg(args, key); ok {
						params.SetInt(key, n)
					}
				}
				return r.call(ctx, "/v1/ios/sales_reports/sources_metrics", params, nil)
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "sales_reports",
				Description: "Get the downloads and revenue sales report for your connected apps. Revenue is net and in cents.",
				InputSchema: schema(map[string]any{
					"os":               enumProp("Operating system", "ios", "android"),
					"app_ids":          stringProp("Comma-separated app IDs of apps you manage"),
					"countries":        stringProp("Comma-separated country codes, WW for worldwide"),
					"date_granularity": enumProp("Aggregation granularity", "daily", "weekly", "monthly", "quarterly"),
					"start_date":       stringProp("Start date, YYYY-MM-DD"),
					"end_date":         stringProp("End date, YYYY-MM-DD"),
				}, "os", "app_ids", "countries", "date_granularity", "start_date", "end_date"),
			},
			Group: GroupYourMetrics,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				params, err := connectedAppsParams(args)
				if err != nil {
					return nil, err
				}
				granularity, err := readString(args, "date_granularity", true)
				if err != nil {
					return nil, err
				}
				params.Set("date_granularity", granularity)
				return r.call(ctx, fmt.Sprintf("/v1/%s/sales_reports", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "unified_sales_reports",
				Description: "Get the unified downloads and revenue sales report for your connected apps, grouped by unified app. Revenue is net and in cents.",
				InputSchema: schema(map[string]any{
					"start_date":       stringProp("Start date, YYYY-MM-DD"),
					"end_date":         stringProp("End date, YYYY-MM-DD"),
					"date_granularity": enumProp("Aggregation granularity", "daily", "weekly", "monthly", "quarterly"),
					"unified_app_ids":  stringProp("Comma-separated unified app IDs you manage"),
					"itunes_app_ids":   stringProp("Comma-separated iTunes app IDs you manage"),
					"android_app_ids":  stringProp("Comma-separated Android app IDs you manage"),
					"countries":        stringProp("Optional comma-separated country codes, WW for all"),
				}, "start_date", "end_date", "date_granularity"),
			},
			Group: GroupYourMetrics,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				granularity, err := readString(args, "date_granularity", true)
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
					"date_granularity": granularity,
					"start_date":       startDate,
					"end_date":         endDate,
				}
				idLists := 0
				for _, key := range []string{"unified_app_ids", "itunes_app_ids", "android_app_ids"} {
					if v, ok := stringArg(args, key); ok {
						params.Set(key, v)
						idLists++
					}
				}
				if idLists == 0 {
					return nil, errors.New("at least one of unified_app_ids, itunes_app_ids, or android_app_ids is required")
				}
				if countries, ok := stringArg(args, "countries"); ok {
					params.Set("countries", countries)
				}
				return r.call(ctx, "/v1/unified/sales_reports", params, nil)
			},
		},
	}
}

// connectedAppsParams assembles the argument block shared by every
// connected-apps report.
func connectedAppsParams(args map[string]any) (towerbridge.Params, error) {
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
	return towerbridge.Params{
		"app_ids":    appIDs,
		"countries":  countries,
		"start_date": startDate,
		"end_date":   endDate,
	}, nil
}
