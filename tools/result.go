package tools

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Content is one part of a tool result. Only text parts exist today; the
// Type discriminator keeps the wire shape honest.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Result is the composite payload a tool call produces: ordered content
// parts, an optional structured object and an error flag. It is both the
// MCP wire shape and the unit stored in the cache.
type Result struct {
	Content           []Content      `json:"content"`
	StructuredContent map[string]any `json:"structuredContent,omitempty"`
	IsError           bool           `json:"isError,omitempty"`
}

// TextResult wraps a plain string as a successful result.
func TextResult(text string) *Result {
	return &Result{Content: []Content{{Type: "text", Text: text}}}
}

// ErrorResult wraps a message as an error-flagged result.
func ErrorResult(msg string) *Result {
	return &Result{
		Content: []Content{{Type: "text", Text: msg}},
		IsError: true,
	}
}

// UnmarshalJSON rejects documents without a content field, so cache files of
// the wrong shape read back as corrupt instead of decoding into an empty
// result.
func (r *Result) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if _, ok := fields["content"]; !ok {
		return errors.New("tool result has no content field")
	}
	type plain Result
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Result(p)
	return nil
}

// structuredObject renders v as a generic JSON object for use as structured
// content.
func structuredObject(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode structured content: %w", err)
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("structured content is not an object: %w", err)
	}
	return obj, nil
}
