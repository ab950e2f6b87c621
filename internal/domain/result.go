package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Result is the decoded response body of a single remote command invocation.
// The document is passed through as the API returned it; no schema is
// enforced.
type Result struct {
	Account string
	Command string
	Doc     map[string]any
}

// FileStem is the base name persisted results are written under.
func (r Result) FileStem() string {
	return fmt.Sprintf("%s_%s", r.Account, r.Command)
}

// Text renders the document as deterministic key/value lines: top-level keys
// sorted, nested objects indented, list elements dash-prefixed.
func (r Result) Text() string {
	var b strings.Builder
	writeValue(&b, r.Doc, "")
	return b.String()
}

// JSON renders the document as indented JSON.
func (r Result) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r.Doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result document: %w", err)
	}
	return append(data, '\n'), nil
}

func writeValue(b *strings.Builder, value any, indent string) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			switch child := v[key].(type) {
			case map[string]any, []any:
				fmt.Fprintf(b, "%s%s:\n", indent, key)
				writeValue(b, child, indent+"  ")
			default:
				fmt.Fprintf(b, "%s%s: %s\n", indent, key, scalarString(child))
			}
		}
	case []any:
		for _, element := range v {
			switch child := element.(type) {
			case map[string]any, []any:
				fmt.Fprintf(b, "%s-\n", indent)
				writeValue(b, child, indent+"  ")
			default:
				fmt.Fprintf(b, "%s- %s\n", indent, scalarString(child))
			}
		}
	default:
		fmt.Fprintf(b, "%s%s\n", indent, scalarString(v))
	}
}

func scalarString(value any) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprintf("%v", value)
}
