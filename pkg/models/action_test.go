package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstJSONObject(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"kind":"task_complete"}`,
			want: `{"kind":"task_complete"}`,
		},
		{
			name: "markdown fence",
			in:   "```json\n{\"kind\":\"tool\",\"tool_name\":\"web_search\"}\n```",
			want: `{"kind":"tool","tool_name":"web_search"}`,
		},
		{
			name: "leading prose",
			in:   `Sure, here is the action: {"kind":"message","content":"hi"} — hope that helps.`,
			want: `{"kind":"message","content":"hi"}`,
		},
		{
			name: "nested objects",
			in:   `{"a":{"b":{"c":1}},"d":2}`,
			want: `{"a":{"b":{"c":1}},"d":2}`,
		},
		{
			name: "braces inside strings do not count",
			in:   `{"content":"use {curly} braces freely}"}`,
			want: `{"content":"use {curly} braces freely}"}`,
		},
		{
			name: "escaped quotes inside strings",
			in:   `{"content":"say \"}\" out loud"}`,
			want: `{"content":"say \"}\" out loud"}`,
		},
		{
			name: "escaped backslash at end of string",
			in:   `{"path":"C:\\"}`,
			want: `{"path":"C:\\"}`,
		},
		{
			name: "only the first object is returned",
			in:   `{"a":1} {"b":2}`,
			want: `{"a":1}`,
		},
		{
			name:    "no object at all",
			in:      "I will think about this and get back to you.",
			wantErr: true,
		},
		{
			name:    "unbalanced object",
			in:      `{"a":{"b":1}`,
			wantErr: true,
		},
		{
			name:    "open brace inside unterminated string",
			in:      `{"content":"never closed`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FirstJSONObject(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseAgentAction_ProseWrapped(t *testing.T) {
	raw := "Let me search for that.\n```json\n" +
		`{"kind": "tool", "tool_name": "web_search", "tool_input": {"query": "golang"}, "reasoning": "need sources"}` +
		"\n```"

	a, err := ParseAgentAction(raw)
	require.NoError(t, err)
	assert.Equal(t, ActionTool, a.Kind)
	assert.Equal(t, "web_search", a.ToolName)
	assert.Equal(t, "golang", a.ToolInput["query"])
	assert.Equal(t, "need sources", a.Reasoning)
}

func TestParseAgentAction_Invalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"tool without tool_name", `{"kind":"tool"}`},
		{"message without content", `{"kind":"message"}`},
		{"request_input without question", `{"kind":"request_input"}`},
		{"unknown kind", `{"kind":"interpretive_dance"}`},
		{"empty kind", `{"tool_name":"web_search"}`},
		{"not json", "definitely not an action"},
		{"malformed json", `{"kind": tool}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAgentAction(tc.in)
			require.Error(t, err)
		})
	}
}
