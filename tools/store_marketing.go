package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	towerbridge "github.com/openappintel/tower-bridge"
)

// storeMarketingTools covers the Store Marketing API: featuring,
// keywords, and reviews. The featured today and featured apps endpoints
// exist for the App Store only, so those tools take no os argument.
func (r *Registry) storeMarketingTools() []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "get_featured_today_stories",
				Description: "Retrieve featured Today story metadata from the App Store.",
				InputSchema: schema(map[string]any{
					"country":    stringProp("Country code, defaults to US"),
					"start_date": stringProp("Optional start date, YYYY-MM-DD"),
					"end_date":   stringProp("Optional end date, YYYY-MM-DD"),
				}),
			},
			Group: GroupStoreMarketing,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				params := towerbridge.Params{
					"country": readStringDefault(args, "country", "US"),
				}
				if err := appendOptionalDates(params, args, "start_date", "end_date"); err != nil {
					return nil, err
				}
				return r.call(ctx, "/v1/ios/featured/today/stories", params, nil)
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_featured_apps",
				Description: "Retrieve apps featured on the App Store's Apps and Games pages.",
				InputSchema: schema(map[string]any{
					"category":   categoryProp("Category ID"),
					"country":    stringProp("Country code, defaults to US"),
					"start_date": stringProp("Optional start date, YYYY-MM-DD"),
					"end_date":   stringProp("Optional end date, YYYY-MM-DD"),
				}, "category"),
			},
			Group: GroupStoreMarketing,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				category, err := readString(args, "category", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"category": category,
					"country":  readStringDefault(args, "country", "US"),
				}
				if err := appendOptionalDates(params, args, "start_date", "end_date"); err != nil {
					return nil, err
				}
				return r.call(ctx, "/v1/ios/featured/apps", params, nil)
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_featured_creatives",
				Description: "Retrieve featured creatives and their store placements for an app over time.",
				InputSchema: schema(map[string]any{
					"os":         enumProp("Operating system", "ios", "android"),
					"app_id":     stringProp("Single app ID"),
					"countries":  stringProp("Optional comma-separated country codes"),
					"types":      stringProp("Optional comma-separated creative types"),
					"start_date": stringProp("Optional start date, YYYY-MM-DD"),
					"end_date":   stringProp("Optional end date, YYYY-MM-DD"),
				}, "os", "app_id"),
			},
			Group: GroupStoreMarketing,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				appID, err := readString(args, "app_id", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{"app_id": appID}
				for _, key := range []string{"countries", "types"} {
					if v, ok := stringArg(args, key); ok {
						params.Set(key, v)
					}
				}
				if err := appendOptionalDates(params, args, "start_date", "end_date"); err != nil {
					return nil, err
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/featured/creatives", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_keywords",
				Description: "Get current keyword rankings for an app.",
				InputSchema: schema(map[string]any{
					"os":      enumProp("Operating system", "ios", "android"),
					"app_id":  stringProp("Single app ID"),
					"country": stringProp("Country code, defaults to US"),
				}, "os", "app_id"),
			},
			Group: GroupStoreMarketing,
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
				return r.call(ctx, fmt.Sprintf("/v1/%s/keywords/get_current_keywords", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "get_reviews",
				Description: "Get app reviews and ratings data, filterable by rating, content, and reviewer.",
				InputSchema: schema(map[string]any{
					"os":            enumProp("Operating system", "ios", "android"),
					"app_id":        stringProp("Single app ID"),
					"country":       stringProp("Country code"),
					"start_date":    stringProp("Optional start date, YYYY-MM-DD"),
					"end_date":      stringProp("Optional end date, YYYY-MM-DD"),
					"rating_filter": stringProp("Optional rating filter: positive, negative, or 1-5"),
					"search_term":   stringProp("Optional filter on review content"),
					"username":      stringProp("Optional filter on reviewer username"),
					"limit":         intProp("Optional reviews per call, max 200"),
					"page":          intProp("Optional page offset"),
				}, "os", "app_id", "country"),
			},
			Group: GroupStoreMarketing,
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
				if err := appendOptionalDates(params, args, "start_date", "end_date"); err != nil {
					return nil, err
				}
				for _, key := range []string{"rating_filter", "search_term", "username"} {
					if v, ok := stringArg(args, key); ok {
						params.Set(key, v)
					}
				}
				for _, key := range []string{"limit", "page"} {
					if n, ok := intArg(args, key); ok {
						params.SetInt(key, n)
					}
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/review/get_reviews", os), params, platformMeta(os))
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "research_keyword",
				Description: "Retrieve keyword intelligence: related terms, traffic data, and ranking difficulty.",
				InputSchema: schema(map[string]any{
					"os":      enumProp("Operating system", "ios", "android"),
					"term":    stringProp("Keyword term to research"),
					"country": stringProp("Country code"),
					"app_id":  intProp("Optional app ID for ranking prediction, iOS only"),
					"page":    intProp("Optional page, offsets top ranking apps by 25"),
				}, "os", "term", "country"),
			},
			Group: GroupStoreMarketing,
			Execute: func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error) {
				os, err := requireStorePlatform(args)
				if err != nil {
					return nil, err
				}
				term, err := readString(args, "term", true)
				if err != nil {
					return nil, err
				}
				country, err := readString(args, "country", true)
				if err != nil {
					return nil, err
				}
				params := towerbridge.Params{
					"term":    term,
					"country": country,
				}
				for _, key := range []string{"app_id", "page"} {
					if n, ok := intArg(args, key); ok {
						params.SetInt(key, n)
					}
				}
				return r.call(ctx, fmt.Sprintf("/v1/%s/keywords/research_keyword", os), params, platformMeta(os))
			},
		},
	}
}

// appendOptionalDates validates and appends the named date arguments
// when present.
func appendOptionalDates(params towerbridge.Params, args map[string]any, keys ...string) error {
	for _, key := range keys {
		v, ok, err := optionalDate(args, key)
		if err != nil {
			return err
		}
		if ok {
			params.Set(key, v)
		}
	}
	return nil
}
