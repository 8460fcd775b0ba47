package output

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
)

type markdownFormatter struct{}

// NewMarkdownFormatter creates a formatter that writes a Markdown report.
func NewMarkdownFormatter() Formatter {
	return &markdownFormatter{}
}

// Format writes a species summary followed by one section per record.
func (f *markdownFormatter) Format(ctx context.Context, records []Record, w io.Writer) error {
	var buf bytes.Buffer

	buf.WriteString("# People\n\n")

	// Species summary
	counts := make(map[string]int)
	for _, r := range records {
		counts[SpeciesLabel(r.Entity)]++
	}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	buf.WriteString("## Species\n\n")
	buf.WriteString("| Species | Count |\n")
	buf.WriteString("|---------|-------|\n")
	for _, label := range labels {
		buf.WriteString(fmt.Sprintf("| %s | %d |\n", escapeCell(label), counts[label]))
	}
	buf.WriteString(fmt.Sprintf("| **Total** | %d |\n\n", len(records)))

	buf.WriteString("## Characters\n\n")
	for _, r := range records {
		buf.WriteString(fmt.Sprintf("### %s\n\n", r.Name))
		buf.WriteString(fmt.Sprintf("- **Position:** %d\n", r.Position))
		buf.WriteString(fmt.Sprintf("- **Birth year:** %s\n", r.BirthYear))
		buf.WriteString(fmt.Sprintf("- **Gender:** %s\n", r.Gender))
		buf.WriteString(fmt.Sprintf("- **Height:** %s\n", WithUnit(r.Height, "cm")))
		buf.WriteString(fmt.Sprintf("- **Mass:** %s\n", WithUnit(r.Mass, "kg")))
		buf.WriteString(fmt.Sprintf("- **Species:** %s\n", SpeciesLabel(r.Entity)))
		if r.URL != "" {
			buf.WriteString(fmt.Sprintf("- **Source:** <%s>\n", r.URL))
		}
		buf.WriteString("\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func (f *markdownFormatter) Name() string {
	return "markdown"
}

func (f *markdownFormatter) Description() string {
	return "Markdown report with a species summary"
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
