// Package tools exposes the upstream analytics API as an MCP tool set.
// Each tool pairs a JSON-schema input contract with a handler that
// validates arguments, performs the API call through the SDK client, and
// returns the normalized envelope. Argument and upstream failures come
// back to the MCP client as error results, never as protocol errors.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	towerbridge "github.com/openappintel/tower-bridge"
)

// Handler executes one tool call with decoded arguments.
type Handler func(ctx context.Context, args map[string]any) (towerbridge.Envelope, error)

// Tool wraps an MCP tool definition with its execution logic and group.
type Tool struct {
	mcp.Tool
	Group   string
	Execute Handler
}

// Tool groups, matching the upstream API documentation sections.
const (
	GroupAppAnalysis     = "App Analysis"
	GroupStoreMarketing  = "Store Marketing"
	GroupMarketAnalysis  = "Market Analysis"
	GroupSearchDiscovery = "Search Discovery"
	GroupYourMetrics     = "Your Metrics"
	GroupUtilities       = "Utilities"
)

// Registry is the full tool set bound to one SDK client.
type Registry struct {
	client *towerbridge.Client
	tools  []*Tool
	byName map[string]*Tool
}

// NewRegistry builds the complete tool set against client.
func NewRegistry(client *towerbridge.Client) (*Registry, error) {
	if client == nil {
		return nil, errors.New("tools: client is required")
	}
	r := &Registry{client: client, byName: make(map[string]*Tool)}
	for _, group := range [][]*Tool{
		r.appAnalysisTools(),
		r.storeMarketingTools(),
		r.marketAnalysisTools(),
		r.searchDiscoveryTools(),
		r.yourMetricsTools(),
		r.utilityTools(),
	} {
		for _, t := range group {
			if _, dup := r.byName[t.Name]; dup {
				return nil, fmt.Errorf("tools: duplicate tool name %q", t.Name)
			}
			r.tools = append(r.tools, t)
			r.byName[t.Name] = t
		}
	}
	return r, nil
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []*Tool {
	out := make([]*Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Len reports the number of registered tools.
func (r *Registry) Len() int { return len(r.tools) }

// Lookup returns the tool with the given name, or nil.
func (r *Registry) Lookup(name string) *Tool { return r.byName[name] }

// call performs one upstream request and folds the decoded payload into
// the canonical envelope. meta supplies envelope defaults only; keys the
// API returned always win.
func (r *Registry) call(ctx context.Context, endpoint string, params towerbridge.Params, meta map[string]any) (towerbridge.Envelope, error) {
	payload, err := r.client.Do(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	return towerbridge.Normalize(payload, meta), nil
}

// mcpHandler adapts a tool to the MCP handler contract. Failures become
// IsError results so MCP clients see the message instead of a transport
// fault.
func mcpHandler(t *Tool) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := decodeArgs(req)
		if err != nil {
			return errorResult(err), nil
		}
		env, err := t.Execute(ctx, args)
		if err != nil {
			return errorResult(err), nil
		}
		return successResult(env)
	}
}

// decodeArgs re-decodes the request arguments through JSON so they land
// as plain maps, slices, and scalars regardless of how the transport
// represented them.
func decodeArgs(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil || req.Params.Arguments == nil {
		return map[string]any{}, nil
	}
	raw, err := json.Marshal(req.Params.Arguments)
	if err != nil {
		return nil, fmt.Errorf("tools: encode arguments: %w", err)
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("tools: decode arguments: %w", err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

func successResult(env towerbridge.Envelope) (*mcp.CallToolResult, error) {
	text, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("tools: encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(text)}},
		StructuredContent: env,
	}, nil
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}

// requirePlatform validates the os argument against the default
// platform set and returns its canonical form.
func requirePlatform(args map[string]any) (string, error) {
	os, err := readString(args, "os", true)
	if err != nil {
		return "", err
	}
	return towerbridge.ValidatePlatform(os)
}

// requireStorePlatform is requirePlatform for endpoints that address a
// concrete store and reject the unified view.
func requireStorePlatform(args map[string]any) (string, error) {
	os, err := readString(args, "os", true)
	if err != nil {
		return "", err
	}
	return towerbridge.ValidateEnum("os", os, towerbridge.StorePlatforms)
}

// requireSearchPlatform admits the wider search set, including
// both_stores.
func requireSearchPlatform(args map[string]any) (string, error) {
	os, err := readString(args, "os", true)
	if err != nil {
		return "", err
	}
	return towerbridge.ValidateEnum("os", os, towerbridge.SearchPlatforms)
}

// requireDate reads a mandatory date argument in strict YYYY-MM-DD form.
func requireDate(args map[string]any, key string) (string, error) {
	v, err := readString(args, key, true)
	if err != nil {
		return "", err
	}
	return towerbridge.ValidateDate(v)
}

// optionalDate reads a date argument that may be absent. A present but
// malformed value is still an error; silently dropping it would change
// the query the caller asked for.
func optionalDate(args map[string]any, key string) (string, bool, error) {
	v, ok := stringArg(args, key)
	if !ok {
		return "", false, nil
	}
	v, err := towerbridge.ValidateDate(v)
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// platformMeta is the default envelope metadata for platform-scoped
// tools.
func platformMeta(os string) map[string]any {
	return map[string]any{"platform": os}
}
