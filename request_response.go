package towerbridge

import "strconv"

// Params holds the query parameters for one API call. Keys are unique and
// insertion order is irrelevant; values are already rendered to strings.
type Params map[string]string

func (p Params) Set(key, value string) { p[key] = value }

func (p Params) SetInt(key string, value int) { p[key] = strconv.Itoa(value) }

func (p Params) SetBool(key string, value bool) { p[key] = strconv.FormatBool(value) }

// clone copies p so the executor can attach the credential without
// mutating the caller's map.
func (p Params) clone() Params {
	out := make(Params, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// APIRequest is one fully-built GET against the upstream API. It is
// constructed once per call, reused across that call's retry attempts, and
// never cached beyond it.
type APIRequest struct {
	Endpoint string
	Query    Params
}

// APIResponse is the raw outcome of one HTTP exchange. Header keys are
// lowercased. Status classification is the executor's job, not the
// transport's.
type APIResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}
