package result

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/instagram-query-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// ShowHeader prefixes the document with an "account · command" title.
	ShowHeader bool
}

// HelpEntry is one row of the command table printed by help/list.
type HelpEntry struct {
	Name    string
	Aliases []string
	Summary string
	Remote  bool
}

func renderView(res domain.Result, opts RenderOptions, s styles) string {
	lines := make([]string, 0, 8)

	if opts.ShowHeader {
		lines = append(lines,
			s.title.Render(fmt.Sprintf("%s · %s", res.Account, res.Command)),
		)
	}

	if len(res.Doc) == 0 {
		lines = append(lines, s.empty.Render("(empty response)"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, renderDoc(res.Doc, "", s)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDoc(doc map[string]any, indent string, s styles) []string {
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		label := s.key.Render(key + ":")

		switch value := doc[key].(type) {
		case map[string]any:
			lines = append(lines, indent+label)
			lines = append(lines, renderDoc(value, indent+"  ", s)...)
		case []any:
			lines = append(lines, indent+label)
			lines = append(lines, renderList(value, indent+"  ", s)...)
		default:
			lines = append(lines, indent+label+" "+s.value.Render(scalar(value)))
		}
	}

	return lines
}

func renderList(values []any, indent string, s styles) []string {
	if len(values) == 0 {
		return []string{indent + s.empty.Render("(none)")}
	}

	lines := make([]string, 0, len(values))
	for _, value := range values {
		switch element := value.(type) {
		case map[string]any:
			lines = append(lines, indent+s.bullet.Render("-")+" "+s.value.Render(inlineEntry(element)))
		default:
			lines = append(lines, indent+s.bullet.Render("-")+" "+s.value.Render(scalar(element)))
		}
	}

	return lines
}

// inlineEntry flattens one list element to "key=value key=value" so edge
// listings (followers, media) stay one line per item.
func inlineEntry(entry map[string]any) string {
	keys := make([]string, 0, len(entry))
	for key := range entry {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, scalar(entry[key])))
	}

	return strings.Join(pairs, "  ")
}

func scalar(value any) string {
	if value == nil {
		return "null"
	}

	return fmt.Sprintf("%v", value)
}

// RenderHelp prints the enumerated command table plus the persistence toggle
// tokens the dispatch loop intercepts.
func RenderHelp(entries []HelpEntry) string {
	s := newStyles()

	type helpRow struct {
		name    string
		alias   string
		summary string
	}

	nameWidth := 0
	rows := make([]helpRow, 0, len(entries))
	for _, entry := range entries {
		row := helpRow{name: entry.Name, summary: entry.Summary}
		if len(entry.Aliases) > 0 {
			row.alias = " (" + strings.Join(entry.Aliases, ", ") + ")"
		}
		if entry.Remote {
			row.name += " *"
		}
		if width := len(row.name) + len(row.alias); width > nameWidth {
			nameWidth = width
		}
		rows = append(rows, row)
	}

	lines := []string{s.title.Render("Commands")}
	for _, row := range rows {
		pad := strings.Repeat(" ", nameWidth-len(row.name)-len(row.alias))
		lines = append(lines, "  "+s.command.Render(row.name)+s.alias.Render(row.alias)+pad+"  "+s.summary.Render(row.summary))
	}

	lines = append(lines,
		"",
		s.header.Render("Output toggles"),
		"  "+s.command.Render("FILE=y | FILE=n")+"  "+s.summary.Render("save results as {account}_{command}.txt"),
		"  "+s.command.Render("JSON=y | JSON=n")+"  "+s.summary.Render("save results as {account}_{command}.json"),
		s.footnote.Render("* issues one API request; toggles apply to every following one"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
