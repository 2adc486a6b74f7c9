package render

import (
	"fmt"
	"strings"

	"codeberg.org/antivibe/antivibe/internal/hints"
	"github.com/charmbracelet/glamour"
)

// renders the response as markdown, omitting resources when there are none
func Markdown(resp hints.Response) string {
	var b strings.Builder

	b.WriteString("# Antivibe.ai Hint\n\n")
	b.WriteString("## Hint\n\n")
	b.WriteString(resp.Hint)
	b.WriteString("\n\n")

	b.WriteString("## Questions to Consider\n\n")
	for _, q := range resp.Questions {
		fmt.Fprintf(&b, "- %s\n", q)
	}

	if len(resp.Resources) > 0 {
		b.WriteString("\n## Learning Resources\n\n")
		for _, r := range resp.Resources {
			fmt.Fprintf(&b, "- <%s>\n", r)
		}
	}

	b.WriteString("\n**Next Step:** ")
	b.WriteString(resp.NextStep)
	b.WriteString("\n")

	return b.String()
}

// renders the response for a terminal of the given width. style is a
// glamour standard style name; empty picks one from the terminal.
func Terminal(resp hints.Response, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}

	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(Markdown(resp))
	if err != nil {
		return "", fmt.Errorf("failed to render hint: %w", err)
	}

	return out, nil
}
