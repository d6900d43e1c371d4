package models

import (
	"encoding/json"
	"fmt"
)

// ActionKind identifies the decision the LLM made for one loop iteration.
type ActionKind string

// The five action kinds the decision loop understands.
const (
	ActionTool          ActionKind = "tool"
	ActionMessage       ActionKind = "message"
	ActionPhaseComplete ActionKind = "phase_complete"
	ActionTaskComplete  ActionKind = "task_complete"
	ActionRequestInput  ActionKind = "request_input"
)

// AgentAction is the parsed decision for one supervisor iteration.
// Exactly one kind is set; the kind determines which fields are meaningful.
type AgentAction struct {
	Kind      ActionKind     `json:"kind"`
	ToolName  string         `json:"tool_name,omitempty"`
	ToolInput map[string]any `json:"tool_input,omitempty"`
	Reasoning string         `json:"reasoning,omitempty"`
	Content   string         `json:"content,omitempty"`
	Message   string         `json:"message,omitempty"`
	Question  string         `json:"question,omitempty"`
}

// ParseAgentAction extracts the first balanced JSON object from raw LLM text
// and validates it as an AgentAction.
func ParseAgentAction(text string) (*AgentAction, error) {
	obj, err := FirstJSONObject(text)
	if err != nil {
		return nil, err
	}

	var action AgentAction
	if err := json.Unmarshal([]byte(obj), &action); err != nil {
		return nil, fmt.Errorf("action is not valid JSON: %w", err)
	}
	if err := action.Validate(); err != nil {
		return nil, err
	}
	return &action, nil
}

// Validate checks that the action has a known kind and its required fields.
func (a *AgentAction) Validate() error {
	switch a.Kind {
	case ActionTool:
		if a.ToolName == "" {
			return fmt.Errorf("tool action missing tool_name")
		}
	case ActionMessage:
		if a.Content == "" {
			return fmt.Errorf("message action missing content")
		}
	case ActionPhaseComplete, ActionTaskComplete:
		// No required fields.
	case ActionRequestInput:
		if a.Question == "" {
			return fmt.Errorf("request_input action missing question")
		}
	default:
		return fmt.Errorf("unknown action kind %q", a.Kind)
	}
	return nil
}

// FirstJSONObject returns the first balanced top-level JSON object in text.
// LLMs frequently wrap JSON in prose or markdown fences; everything outside
// the first {...} with balanced braces is ignored. Braces inside JSON strings
// do not count toward balance.
func FirstJSONObject(text string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if start == -1 {
			if r == '{' {
				start = i
				depth = 1
			}
			continue
		}
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], nil
				}
			}
		}
	}

	if start == -1 {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return "", fmt.Errorf("unbalanced JSON object in response")
}
