package tools

import (
	"context"
	"fmt"

	"github.com/taskfleet/maestro/pkg/llm"
	"github.com/taskfleet/maestro/pkg/models"
)

// TextGenerator is the LLM seam used by text-producing reference handlers.
// *llm.Router satisfies it.
type TextGenerator interface {
	Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)
}

// RegisterReferenceHandlers installs a handler for every catalog tool.
// Text-producing tools are backed by the LLM router; side-effecting tools
// (shell, deploy, communication) return structured acknowledgements and are
// meant to be replaced by real integrations at the registration seam.
func RegisterReferenceHandlers(r *Router, gen TextGenerator) {
	for _, name := range r.catalog.Names() {
		switch name {
		case "web_search", "news_search":
			r.Register(name, searchHandler(name, gen))
		case "document_generate", "spreadsheet_generate":
			r.Register(name, documentHandler(name, gen))
		default:
			r.Register(name, acknowledgeHandler(name))
		}
	}
}

// searchHandler synthesizes result summaries through the LLM seam.
func searchHandler(name string, gen TextGenerator) Handler {
	return func(ctx context.Context, input map[string]any, ec *ExecutionContext) (*Result, error) {
		query, _ := input["query"].(string)
		if query == "" {
			return nil, models.Errorf(models.CodeInvalidRequest, "%s requires a query", name)
		}

		if gen == nil {
			return &Result{
				Success: true,
				Output:  map[string]any{"query": query, "results": []any{}},
			}, nil
		}

		resp, err := gen.Chat(ctx, &llm.ChatRequest{
			RunID: ec.RunID,
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: "Summarize what a search for the query would surface. Be factual and brief."},
				{Role: llm.RoleUser, Content: query},
			},
		})
		if err != nil {
			return nil, err
		}
		return &Result{
			Success:    true,
			Output:     map[string]any{"query": query, "summary": resp.Content},
			TokensUsed: resp.Usage.TotalTokens,
		}, nil
	}
}

// documentHandler produces a document artifact from the LLM seam.
func documentHandler(name string, gen TextGenerator) Handler {
	return func(ctx context.Context, input map[string]any, ec *ExecutionContext) (*Result, error) {
		title, _ := input["title"].(string)
		if title == "" {
			return nil, models.Errorf(models.CodeInvalidRequest, "%s requires a title", name)
		}

		content := fmt.Sprintf("# %s\n", title)
		tokens := 0
		if gen != nil {
			resp, err := gen.Chat(ctx, &llm.ChatRequest{
				RunID: ec.RunID,
				Messages: []llm.Message{
					{Role: llm.RoleSystem, Content: "Write the document body for the given title and outline."},
					{Role: llm.RoleUser, Content: fmt.Sprintf("%v", input)},
				},
			})
			if err != nil {
				return nil, err
			}
			content += resp.Content
			tokens = resp.Usage.TotalTokens
		}

		return &Result{
			Success: true,
			Output:  map[string]any{"title": title},
			Artifacts: []ArtifactRef{{
				Type:     "document",
				MimeType: "text/markdown",
				FileName: title + ".md",
				Data:     []byte(content),
			}},
			TokensUsed: tokens,
		}, nil
	}
}

// acknowledgeHandler echoes the call as a structured acknowledgement.
func acknowledgeHandler(name string) Handler {
	return func(_ context.Context, input map[string]any, _ *ExecutionContext) (*Result, error) {
		return &Result{
			Success: true,
			Output:  map[string]any{"tool": name, "accepted": true, "input": input},
		}, nil
	}
}
