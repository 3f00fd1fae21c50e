package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const docsMarkdown = `# Sensor Tower MCP Server

## Available tools

### App Analysis (16 tools)
- **get_app_metadata**: app name, publisher, categories, description, screenshots, ratings
- **get_download_estimates**: download estimates by country and date
- **get_revenue_estimates**: revenue estimates and trends
- **top_in_app_purchases**: top in-app purchases for apps
- **compact_sales_report_estimates**: sales estimates in compact format
- **category_ranking_summary**: today's category ranking summary for an app
- **get_creatives**: advertising creatives with Share of Voice data
- **get_impressions**: advertising impressions data
- **impressions_rank**: advertising impressions rank data
- **get_usage_active_users**: usage intelligence active user estimates
- **get_category_history**: category ranking history for apps
- **app_analysis_retention**: retention analysis for apps
- **downloads_by_sources**: downloads by organic, paid, and browser sources
- **app_analysis_demographics**: demographic analysis for apps
- **app_update_timeline**: app update history timeline
- **version_history**: app version history

### Store Marketing (6 tools)
- **get_featured_today_stories**: App Store Today tab story metadata
- **get_featured_apps**: apps featured on the App Store's Apps and Games pages
- **get_featured_creatives**: featured creatives and their store placements over time
- **get_keywords**: keyword rankings for apps
- **get_reviews**: app reviews and ratings data
- **research_keyword**: keyword traffic data and ranking difficulty

### Market Analysis (9 tools)
- **get_top_and_trending**: top apps by downloads or revenue with growth metrics
- **get_top_publishers**: top publishers with growth metrics
- **get_store_summary**: store summary statistics
- **usage_top_apps**: top apps by active users (DAU, WAU, MAU)
- **get_category_rankings**: top ranked apps by category and chart type
- **top_apps**: Share of Voice for top advertisers or publishers
- **top_apps_search**: rank of an advertiser or publisher within the top lists
- **top_creatives**: top advertising creatives over a period
- **games_breakdown**: game category estimates by country and date

### Search Discovery (4 tools)
- **search_entities**: search apps and publishers by name or description
- **get_publisher_apps**: all apps for a specific publisher
- **get_unified_publisher_apps**: unified publisher with all associated apps
- **get_app_ids_by_category**: app IDs by category and date range

### Your Metrics (4 tools, connected apps only)
- **analytics_metrics**: App Store analytics for your connected apps
- **sources_metrics**: traffic source metrics for your connected apps
- **sales_reports**: downloads and revenue reports for your connected apps
- **unified_sales_reports**: unified cross-platform sales reports

### Utilities (4 tools)
- **get_country_codes**: available country codes
- **get_category_ids**: category IDs for iOS and Android
- **get_chart_types**: ranking chart types
- **health_check**: service status for monitoring

## Authentication

Set the SENSOR_TOWER_API_TOKEN environment variable with your API token.
Tokens are issued at https://app.sensortower.com/users/edit/api-settings.

## Common parameters

- **os**: "ios", "android", or "unified"; entity search also accepts "both_stores"
- **country/regions**: country codes like "US", "GB", "JP", or comma-separated lists
- **app_ids**: comma-separated app IDs; iOS uses numbers, Android uses package names
- **category**: category ID; integer for iOS (6005), slug for Android ("business")
- **chart_type**: "topfreeapplications", "toppaidapplications", "topgrossingapplications"
- **comparison_attribute**: "absolute", "delta", or "transformed_delta"
- **time_range**: "day", "week", "month", "quarter", or "year"
- **measure**: "units", "revenue", "DAU", "WAU", or "MAU" depending on the endpoint
- **device_type**: "iphone", "ipad", or "total" for iOS; leave blank for Android
- **dates**: YYYY-MM-DD
- **data_model**: "DM_2025_Q2" (current) or "DM_2025_Q1" (legacy)
`

const examplesMarkdown = `# Usage examples

## App research

Search for apps, then pull details and market position:

    search_entities(os="unified", entity_type="app", term="fitness tracker", limit=20)
    get_app_metadata(os="ios", app_ids="284882215,1262148500", country="US")
    get_category_rankings(os="ios", category="6023", chart_type="topfreeapplications", country="US", date="2024-01-15")

## Competitor analysis

    get_download_estimates(os="android", app_ids="com.facebook.katana,com.instagram.android", countries="US,GB,DE", start_date="2024-01-01", end_date="2024-01-31")
    get_revenue_estimates(os="ios", app_ids="284882215", countries="US,JP,GB", start_date="2023-12-01", end_date="2023-12-31")

## Market discovery

    get_app_ids_by_category(os="android", category="games", start_date="2024-01-01", limit=100)
    get_featured_apps(category="6014", country="US", start_date="2024-01-10", end_date="2024-01-15")

## Your own apps

    analytics_metrics(app_ids="1234567890", countries="US,CA,GB", start_date="2024-01-01", end_date="2024-01-31")

## Tips

- get_country_codes, get_category_ids, and get_chart_types list the accepted filter values.
- Dates are YYYY-MM-DD.
- iOS app IDs are numeric; Android app IDs are package names.
`

// addDocResources registers the two static markdown resources.
func addDocResources(server *mcp.Server) {
	for _, res := range []struct {
		uri, name, desc, text string
	}{
		{"sensor-tower://docs", "api_documentation", "Documentation for the available API tools.", docsMarkdown},
		{"sensor-tower://examples", "usage_examples", "Practical usage examples for common scenarios.", examplesMarkdown},
	} {
		text := res.text
		uri := res.uri
		server.AddResource(&mcp.Resource{
			URI:         uri,
			Name:        res.name,
			Description: res.desc,
			MIMEType:    "text/markdown",
		}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{
					{URI: uri, MIMEType: "text/markdown", Text: text},
				},
			}, nil
		})
	}
}

// addGuidancePrompts registers the reusable analysis prompts. Each one
// steers an MCP client through a multi-tool workflow; none of them call
// the API themselves.
func addGuidancePrompts(server *mcp.Server) {
	server.AddPrompt(&mcp.Prompt{
		Name:        "creatives_investigation",
		Description: "Fetch and summarize ad creatives: Share of Voice, formats, themes.",
		Arguments: []*mcp.PromptArgument{
			{Name: "os", Description: "ios, android, or unified", Required: true},
			{Name: "app_ids", Description: "Comma-separated app IDs", Required: true},
			{Name: "start_date", Description: "Start date, YYYY-MM-DD", Required: true},
			{Name: "countries", Description: "Comma-separated country codes", Required: true},
			{Name: "networks", Description: "Comma-separated ad networks", Required: true},
			{Name: "ad_types", Description: "Comma-separated ad types", Required: true},
			{Name: "end_date", Description: "Optional end date, YYYY-MM-DD"},
		},
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		parts := map[string]string{}
		for key, value := range promptArgs(req) {
			if value != "" {
				parts[key] = value
			}
		}
		rendered, err := json.Marshal(parts)
		if err != nil {
			return nil, err
		}
		text := "Use the MCP tool get_creatives with the provided arguments. " +
			"Summarize: top networks, SOV distribution, dominant creative formats, " +
			"common themes and messages, and notable outliers.\n\nArgs: " + string(rendered)
		return &mcp.GetPromptResult{
			Description: "Creatives investigation guidance",
			Messages:    []*mcp.PromptMessage{userMessage(text)},
		}, nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "competitor_snapshot",
		Description: "Search a target, pull metadata, rankings, and creatives, then summarize its position.",
		Arguments: []*mcp.PromptArgument{
			{Name: "os", Description: "ios, android, or unified", Required: true},
			{Name: "term", Description: "Search term for the target app", Required: true},
			{Name: "country", Description: "Country code, defaults to US"},
			{Name: "chart_type", Description: "Chart type, defaults to topfreeapplications"},
			{Name: "date", Description: "Optional date, YYYY-MM-DD"},
		},
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := promptArgs(req)
		return &mcp.GetPromptResult{
			Description: "Competitor snapshot guidance",
			Messages: []*mcp.PromptMessage{
				userMessage(fmt.Sprintf("Search apps matching %q on %s. Prefer top results with significant presence.",
					args["term"], args["os"])),
				userMessage("For 1-3 top matches: fetch app metadata, category rankings, and top creatives."),
				userMessage("Summarize competitor position: downloads and revenue trend if available, ranking momentum, " +
					"creative mix and themes, and risks and opportunities. Include a short recommended next action."),
			},
		}, nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "usage_insights",
		Description: "Pull active users and highlight month-over-month deltas and anomalies.",
		Arguments: []*mcp.PromptArgument{
			{Name: "os", Description: "ios, android, or unified", Required: true},
			{Name: "app_ids", Description: "Comma-separated app IDs", Required: true},
			{Name: "start_date", Description: "Start date, YYYY-MM-DD", Required: true},
			{Name: "end_date", Description: "End date, YYYY-MM-DD", Required: true},
			{Name: "countries", Description: "Comma-separated country codes, defaults to US"},
			{Name: "date_granularity", Description: "daily, weekly, or monthly, defaults to monthly"},
			{Name: "data_model", Description: "DM_2025_Q2 or DM_2025_Q1"},
		},
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: "Usage insights guidance",
			Messages: []*mcp.PromptMessage{
				userMessage("Call get_usage_active_users with the provided args. Then compute month-over-month deltas, " +
					"flag anomalies such as sudden spikes or drops, and provide a 3-bullet executive summary."),
			},
		}, nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "keyword_research",
		Description: "Run research_keyword and suggest target terms with rationale.",
		Arguments: []*mcp.PromptArgument{
			{Name: "os", Description: "ios or android", Required: true},
			{Name: "term", Description: "Keyword term to research", Required: true},
			{Name: "country", Description: "Country code", Required: true},
			{Name: "app_id", Description: "Optional app ID for ranking prediction"},
			{Name: "page", Description: "Optional page offset"},
		},
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: "Keyword research guidance",
			Messages: []*mcp.PromptMessage{
				userMessage("Use research_keyword with the args to fetch related terms and difficulty. " +
					"Recommend 5-10 target keywords with a short rationale each, weighing traffic against difficulty and relevance."),
			},
		}, nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "prospect_research",
		Description: "Pre-sales: compile a one-pager from the key market signals.",
		Arguments: []*mcp.PromptArgument{
			{Name: "os", Description: "ios, android, or unified", Required: true},
			{Name: "term", Description: "Search term for the prospect", Required: true},
			{Name: "countries", Description: "Comma-separated country codes, defaults to US"},
			{Name: "start_date", Description: "Optional start date, YYYY-MM-DD"},
			{Name: "end_date", Description: "Optional end date, YYYY-MM-DD"},
		},
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: "Prospect research guidance",
			Messages: []*mcp.PromptMessage{
				userMessage("1) Identify targets: search_entities(term, os). Pick 1-3 with meaningful scale."),
				userMessage("2) Market position: get_top_and_trending and get_top_publishers, plus get_category_rankings for trend and momentum."),
				userMessage("3) Paid UA: get_impressions and impressions_rank for network mix and seasonality, get_creatives for formats and themes."),
				userMessage("4) Scale: get_download_estimates and get_revenue_estimates for geo mix and seasonality."),
				userMessage("5) Engagement: get_usage_active_users, plus retention if needed, for month-over-month deltas and anomalies."),
				userMessage("6) Organic and ASO: get_keywords, get_reviews, and the featured stories and apps tools for strengths and risks."),
				userMessage("Output: a one-pager with bullets covering channels, creative notes, momentum, risks, and measurement angles."),
			},
		}, nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "channel_gap_analysis",
		Description: "Find network and creative gaps to target.",
		Arguments: []*mcp.PromptArgument{
			{Name: "os", Description: "ios, android, or unified", Required: true},
			{Name: "app_ids", Description: "Comma-separated app IDs", Required: true},
			{Name: "start_date", Description: "Start date, YYYY-MM-DD", Required: true},
			{Name: "end_date", Description: "End date, YYYY-MM-DD", Required: true},
			{Name: "countries", Description: "Comma-separated country codes, defaults to US"},
		},
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: "Channel gap analysis guidance",
			Messages: []*mcp.PromptMessage{
				userMessage("1) Pull get_impressions for the period to quantify network shares and volatility. " +
					"2) Pull get_creatives to assess diversity and velocity by network and format. " +
					"3) Compare against category peers via get_top_and_trending and top_creatives. " +
					"Output: the network and format gaps found, and 3 experiment ideas with expected lift and a clear measurement tie-in."),
			},
		}, nil
	})
}

func promptArgs(req *mcp.GetPromptRequest) map[string]string {
	if req == nil || req.Params == nil {
		return map[string]string{}
	}
	return req.Params.Arguments
}

func userMessage(text string) *mcp.PromptMessage {
	return &mcp.PromptMessage{Role: "user", Content: &mcp.TextContent{Text: text}}
}
