package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	towerbridge "github.com/openappintel/tower-bridge"
	"github.com/openappintel/tower-bridge/catalog"
)

// utilityTools answer from embedded catalog data and never touch the
// network, so they work before a token is configured.
func (r *Registry) utilityTools() []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "get_country_codes",
				Title:       "Get Country Codes",
				Description: "Get available country codes for the upstream APIs.",
				InputSchema: schema(map[string]any{}),
			},
			Group: GroupUtilities,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				return towerbridge.Envelope{"countries": catalog.CountryNames}, nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_category_ids",
				Title:       "Get Category IDs",
				Description: "Get available category identifiers for the App Store and Google Play.",
				InputSchema: schema(map[string]any{
					"os": enumProp("Operating system to filter categories", "ios", "android"),
				}, "os"),
			},
			Group: GroupUtilities,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				return towerbridge.Envelope{"categories": catalog.Categories(os)}, nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_chart_types",
				Title:       "Get Chart Types",
				Description: "List available ranking chart identifiers.",
				InputSchema: schema(map[string]any{}),
			},
			Group: GroupUtilities,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				return towerbridge.Envelope{"chart_types": catalog.ChartTypes}, nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "health_check",
				Title:       "Health Check",
				Description: "Lightweight status endpoint for monitoring and orchestration.",
				InputSchema: schema(map[string]any{}),
			},
			Group: GroupUtilities,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				return towerbridge.Envelope{
					"status":          "healthy",
					"service":         "Sensor Tower MCP Server",
					"api_base_url":    r.client.BaseURL(),
					"tools_available": r.Len(),
				}, nil
			},
		},
	}
}
