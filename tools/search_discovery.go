package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	towerbridge "github.com/openappintel/tower-bridge"
)

// searchDiscoveryTools covers entity search and publisher traversal.
// The search endpoints return bare lists, so these tools attach their
// query context as envelope metadata.
func (r *Registry) searchDiscoveryTools() []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "search_entities",
				Description: "Search for apps and publishers by name, description, or other metadata.",
				InputSchema: schema(map[string]any{
					"os":          enumProp("Platform", "ios", "android", "both_stores", "unified"),
					"entity_type": enumProp("What to search for", "app", "publisher"),
					"term":        stringProp("Search term, min 2 non-Latin or 3 Latin characters"),
					"limit":       intProp("Max results per call, defaults to 100, max 250"),
				}, "os", "entity_type", "term"),
			},
			Group: GroupSearchDiscovery,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireSearchPlatform(args)
				if err != nil {
					return nil, err
				}
				entityType, err := readString(args, "entity_type", true)
				if err != nil {
					return nil, err
				}
				term, err := readString(args, "term", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"entity_type": entityType,
					"term":        term,
				}
				params.SetInt("limit", readIntDefault(args, "limit", 100))
				meta := map[string]any{
					"query_term":  term,
					"entity_type": entityType,
					"platform":    os,
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/search_entities", os), params, meta)
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_publisher_apps",
				Description: "Retrieve the collection of apps for the specified publisher.",
				InputSchema: schema(map[string]any{
					"os":            enumProp("Operating system", "ios", "android"),
					"publisher_id":  stringProp("Publisher ID"),
					"limit":         intProp("Max apps returned, defaults to 20"),
					"offset":        intProp("Number of apps to skip for pagination, defaults to 0"),
					"include_count": boolProp("Include total count in the response, defaults to false"),
				}, "os", "publisher_id"),
			},
			Group: GroupSearchDiscovery,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				publisherID, err := readString(args, "publisher_id", true)
				if err != nil {
					return nil, err
				}
				limit := readIntDefault(args, "limit", 20)
				offset, _ := intArg(args, "offset")
				params := towerbridge.Params{"publisher_id": publisherID}
				params.SetInt("limit", limit)
				params.SetInt("offset", offset)
				params.SetBool("include_count", readBool(args, "include_count", false))
				meta := map[string]any{
					"publisher_id": publisherID,
					"limit":        limit,
					"offset":       offset,
					"platform":     os,
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/publisher/publisher_apps", os), params, meta)
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_unified_publisher_apps",
				Description: "Retrieve a unified publisher with its unified apps and the platform-specific apps behind them.",
				InputSchema: schema(map[string]any{
					"unified_id": stringProp("Unified publisher ID"),
				}, "unified_id"),
			},
			Group: GroupSearchDiscovery,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				unifiedID, err := readString(args, "unified_id", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{"unified_id": unifiedID}
				return r.call(ctx, "/v1/unified/publishers/apps", params, nil)
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_app_ids_by_category",
				Description: "Retrieve app IDs released or updated after a given date in a particular category.",
				InputSchema: schema(map[string]any{
					"os":           enumProp("Operating system", "ios", "android"),
					"category":     categoryProp("Category ID, integer for iOS, slug for Android"),
					"start_date":   stringProp("Optional minimum release date, YYYY-MM-DD"),
					"updated_date": stringProp("Optional minimum updated date, YYYY-MM-DD"),
					"offset":       intProp("Optional number of app IDs to skip"),
					"limit":        intProp("Max app IDs returned, defaults to 1000, max 10000"),
				}, "os", "category"),
			},
			Group: GroupSearchDiscovery,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				category, err := readString(args, "category", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{"category": category}
				params.SetInt("limit", readIntDefault(args, "limit", 1000))
				if err := appendOptionalDates(params, args, "start_date", "updated_date"); err != nil {
					return nil, err
				}
				if offset, ok := intArg(args, "offset"); ok {
					params.SetInt("offset", offset)
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/apps/app_ids", os), params, platformMeta(os))
			},
		},
	}
}
