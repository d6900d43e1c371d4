package tools

import (
	"sort"
	"sync"

	"github.com/taskfleet/maestro/pkg/config"
)

// Tool categories.
const (
	CategoryBrowser       = "browser"
	CategoryShell         = "shell"
	CategoryFile          = "file"
	CategorySearch        = "search"
	CategoryDocument      = "document"
	CategoryImage         = "image"
	CategoryCommunication = "communication"
	CategoryDeployment    = "deployment"
)

// Definition is a static catalog entry. The catalog is canonical: it drives
// validation, timeouts, cost estimation, and rate limiting.
type Definition struct {
	Name        string
	Category    string
	Description string

	// Parameters is a JSON-schema fragment describing the tool input.
	Parameters map[string]any

	// RequiredCapabilities a phase must carry to use the tool.
	RequiredCapabilities []string

	TimeoutMS   int
	CostCredits int
	RateLimit   config.RateLimitSpec
	Idempotent  bool
	Disabled    bool
}

// Fallbacks for catalog entries that omit a value.
const (
	defaultTimeoutMS  = 30_000
	defaultConcurrent = 4
)

// Catalog is the read-mostly tool definition table, built at startup from the
// builtin definitions plus maestro.yaml overrides.
type Catalog struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewCatalog builds the catalog and applies per-tool overrides.
func NewCatalog(overrides map[string]*config.ToolOverride) *Catalog {
	defs := make(map[string]*Definition, len(builtinDefinitions))
	for _, d := range builtinDefinitions {
		def := d // copy
		if def.TimeoutMS <= 0 {
			def.TimeoutMS = defaultTimeoutMS
		}
		if def.RateLimit.Concurrent <= 0 {
			def.RateLimit.Concurrent = defaultConcurrent
		}
		defs[def.Name] = &def
	}

	for name, ov := range overrides {
		def, ok := defs[name]
		if !ok {
			continue
		}
		if ov.TimeoutMS > 0 {
			def.TimeoutMS = ov.TimeoutMS
		}
		if ov.CostCredits > 0 {
			def.CostCredits = ov.CostCredits
		}
		if ov.RateLimit != nil {
			def.RateLimit = *ov.RateLimit
			if def.RateLimit.Concurrent <= 0 {
				def.RateLimit.Concurrent = defaultConcurrent
			}
		}
		def.Disabled = ov.Disabled
	}

	return &Catalog{defs: defs}
}

// Get returns the definition for a tool name.
func (c *Catalog) Get(name string) (*Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.defs[name]
	return d, ok
}

// Names returns all catalog tool names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.defs))
	for name := range c.defs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// EstimateCost sums catalog costs for the named tools. Unknown names count
// zero; validation happens elsewhere.
func (c *Catalog) EstimateCost(names []string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, name := range names {
		if d, ok := c.defs[name]; ok {
			total += d.CostCredits
		}
	}
	return total
}

// builtinDefinitions is the canonical twenty-tool catalog.
var builtinDefinitions = []Definition{
	// browser
	{
		Name: "browser_navigate", Category: CategoryBrowser,
		Description:          "Load a URL and return the rendered page text",
		Parameters:           map[string]any{"url": map[string]any{"type": "string", "required": true}},
		RequiredCapabilities: []string{"web_browsing"},
		TimeoutMS:            60_000, CostCredits: 1,
		RateLimit: config.RateLimitSpec{PerMinute: 30, PerHour: 600, Concurrent: 4},
	},
	{
		Name: "browser_extract", Category: CategoryBrowser,
		Description:          "Extract structured data from the current page with a CSS selector",
		Parameters:           map[string]any{"url": map[string]any{"type": "string", "required": true}, "selector": map[string]any{"type": "string"}},
		RequiredCapabilities: []string{"web_browsing"},
		TimeoutMS:            60_000, CostCredits: 1, Idempotent: true,
		RateLimit: config.RateLimitSpec{PerMinute: 30, PerHour: 600, Concurrent: 4},
	},
	{
		Name: "browser_screenshot", Category: CategoryBrowser,
		Description:          "Capture a screenshot of a URL",
		Parameters:           map[string]any{"url": map[string]any{"type": "string", "required": true}},
		RequiredCapabilities: []string{"web_browsing"},
		TimeoutMS:            60_000, CostCredits: 2,
		RateLimit: config.RateLimitSpec{PerMinute: 15, PerHour: 300, Concurrent: 2},
	},

	// shell
	{
		Name: "shell_exec", Category: CategoryShell,
		Description:          "Run a single command in the sandbox",
		Parameters:           map[string]any{"command": map[string]any{"type": "string", "required": true}},
		RequiredCapabilities: []string{"code_execution"},
		TimeoutMS:            120_000, CostCredits: 2,
		RateLimit: config.RateLimitSpec{PerMinute: 20, PerHour: 400, Concurrent: 2},
	},
	{
		Name: "shell_script", Category: CategoryShell,
		Description:          "Run a multi-line script in the sandbox",
		Parameters:           map[string]any{"script": map[string]any{"type": "string", "required": true}, "interpreter": map[string]any{"type": "string"}},
		RequiredCapabilities: []string{"code_execution"},
		TimeoutMS:            300_000, CostCredits: 3,
		RateLimit: config.RateLimitSpec{PerMinute: 10, PerHour: 200, Concurrent: 2},
	},

	// file
	{
		Name: "file_read", Category: CategoryFile,
		Description:          "Read a file from run workspace storage",
		Parameters:           map[string]any{"path": map[string]any{"type": "string", "required": true}},
		RequiredCapabilities: []string{"file_operations"},
		TimeoutMS:            15_000, Idempotent: true,
		RateLimit: config.RateLimitSpec{PerMinute: 60, PerHour: 2000, Concurrent: 8},
	},
	{
		Name: "file_write", Category: CategoryFile,
		Description:          "Write a file into run workspace storage",
		Parameters:           map[string]any{"path": map[string]any{"type": "string", "required": true}, "content": map[string]any{"type": "string", "required": true}},
		RequiredCapabilities: []string{"file_operations"},
		TimeoutMS:            15_000, CostCredits: 1,
		RateLimit: config.RateLimitSpec{PerMinute: 60, PerHour: 2000, Concurrent: 8},
	},
	{
		Name: "file_list", Category: CategoryFile,
		Description:          "List files under a workspace prefix",
		Parameters:           map[string]any{"prefix": map[string]any{"type": "string"}},
		RequiredCapabilities: []string{"file_operations"},
		TimeoutMS:            15_000, Idempotent: true,
		RateLimit: config.RateLimitSpec{PerMinute: 60, PerHour: 2000, Concurrent: 8},
	},

	// search
	{
		Name: "web_search", Category: CategorySearch,
		Description:          "Query a web search index and return ranked results",
		Parameters:           map[string]any{"query": map[string]any{"type": "string", "required": true}, "max_results": map[string]any{"type": "integer"}},
		RequiredCapabilities: []string{"web_search"},
		TimeoutMS:            30_000, CostCredits: 1, Idempotent: true,
		RateLimit: config.RateLimitSpec{PerMinute: 30, PerHour: 500, Concurrent: 4},
	},
	{
		Name: "news_search", Category: CategorySearch,
		Description:          "Query recent news articles",
		Parameters:           map[string]any{"query": map[string]any{"type": "string", "required": true}},
		RequiredCapabilities: []string{"web_search"},
		TimeoutMS:            30_000, CostCredits: 1, Idempotent: true,
		RateLimit: config.RateLimitSpec{PerMinute: 30, PerHour: 500, Concurrent: 4},
	},

	// document
	{
		Name: "document_generate", Category: CategoryDocument,
		Description:          "Generate a formatted document from content sections",
		Parameters:           map[string]any{"title": map[string]any{"type": "string", "required": true}, "sections": map[string]any{"type": "array", "required": true}},
		RequiredCapabilities: []string{"document_generation"},
		TimeoutMS:            60_000, CostCredits: 3,
		RateLimit: config.RateLimitSpec{PerMinute: 10, PerHour: 100, Concurrent: 2},
	},
	{
		Name: "pdf_export", Category: CategoryDocument,
		Description:          "Render a document artifact to PDF",
		Parameters:           map[string]any{"artifact_id": map[string]any{"type": "string", "required": true}},
		RequiredCapabilities: []string{"document_generation"},
		TimeoutMS:            60_000, CostCredits: 2,
		RateLimit: config.RateLimitSpec{PerMinute: 10, PerHour: 100, Concurrent: 2},
	},
	{
		Name: "spreadsheet_generate", Category: CategoryDocument,
		Description:          "Generate a spreadsheet from tabular data",
		Parameters:           map[string]any{"title": map[string]any{"type": "string", "required": true}, "rows": map[string]any{"type": "array", "required": true}},
		RequiredCapabilities: []string{"document_generation"},
		TimeoutMS:            60_000, CostCredits: 3,
		RateLimit: config.RateLimitSpec{PerMinute: 10, PerHour: 100, Concurrent: 2},
	},

	// image
	{
		Name: "image_generate", Category: CategoryImage,
		Description:          "Generate an image from a text prompt",
		Parameters:           map[string]any{"prompt": map[string]any{"type": "string", "required": true}, "size": map[string]any{"type": "string"}},
		RequiredCapabilities: []string{"image_generation"},
		TimeoutMS:            120_000, CostCredits: 5,
		RateLimit: config.RateLimitSpec{PerMinute: 5, PerHour: 50, Concurrent: 1},
	},
	{
		Name: "image_analyze", Category: CategoryImage,
		Description:          "Describe or classify an image artifact",
		Parameters:           map[string]any{"artifact_id": map[string]any{"type": "string", "required": true}},
		RequiredCapabilities: []string{"image_generation"},
		TimeoutMS:            60_000, CostCredits: 2, Idempotent: true,
		RateLimit: config.RateLimitSpec{PerMinute: 10, PerHour: 100, Concurrent: 2},
	},

	// communication
	{
		Name: "send_email", Category: CategoryCommunication,
		Description: "Send an email on the user's behalf",
		Parameters:  map[string]any{"to": map[string]any{"type": "string", "required": true}, "subject": map[string]any{"type": "string", "required": true}, "body": map[string]any{"type": "string", "required": true}},
		TimeoutMS:   30_000, CostCredits: 1,
		RateLimit: config.RateLimitSpec{PerMinute: 5, PerHour: 50, Concurrent: 1},
	},
	{
		Name: "send_slack", Category: CategoryCommunication,
		Description: "Post a message to a connected Slack channel",
		Parameters:  map[string]any{"channel": map[string]any{"type": "string", "required": true}, "text": map[string]any{"type": "string", "required": true}},
		TimeoutMS:   30_000, CostCredits: 1,
		RateLimit: config.RateLimitSpec{PerMinute: 10, PerHour: 100, Concurrent: 2},
	},
	{
		Name: "send_webhook", Category: CategoryCommunication,
		Description: "POST a JSON payload to a configured webhook",
		Parameters:  map[string]any{"url": map[string]any{"type": "string", "required": true}, "payload": map[string]any{"type": "object", "required": true}},
		TimeoutMS:   30_000, CostCredits: 1,
		RateLimit: config.RateLimitSpec{PerMinute: 20, PerHour: 200, Concurrent: 4},
	},

	// deployment
	{
		Name: "deploy_preview", Category: CategoryDeployment,
		Description:          "Deploy run artifacts to a preview environment",
		Parameters:           map[string]any{"artifact_ids": map[string]any{"type": "array", "required": true}},
		RequiredCapabilities: []string{"code_execution"},
		TimeoutMS:            300_000, CostCredits: 5,
		RateLimit: config.RateLimitSpec{PerMinute: 2, PerHour: 20, Concurrent: 1},
	},
	{
		Name: "deploy_publish", Category: CategoryDeployment,
		Description:          "Promote a preview deployment to its public URL",
		Parameters:           map[string]any{"deployment_id": map[string]any{"type": "string", "required": true}},
		RequiredCapabilities: []string{"code_execution"},
		TimeoutMS:            300_000, CostCredits: 5,
		RateLimit: config.RateLimitSpec{PerMinute: 2, PerHour: 20, Concurrent: 1},
	},
}
