package markdown

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/foliohq/folio/model"
	"github.com/foliohq/folio/source"
)

// Page renders one page section: the page heading, each table region in
// detection order, then the reconciled prose with one line per retained
// text line. Blank lines from empty blocks are dropped.
func Page(number int, regions []model.TableRegion, prose []source.TextBlock) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n## Page %d\n\n", number)

	for i, region := range regions {
		if len(region.Data) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n### Table %d\n\n", i+1)
		sb.WriteString(region.ToMarkdown())
		sb.WriteString("\n")
	}

	for _, block := range prose {
		for _, line := range block.Lines {
			text := strings.TrimSpace(norm.NFC.String(line.Text))
			if text == "" {
				continue
			}
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// ProseText concatenates the retained text lines of a page into its plain
// prose view, preserving line breaks and trimming the surrounding
// whitespace.
func ProseText(prose []source.TextBlock) string {
	var sb strings.Builder
	for _, block := range prose {
		for _, line := range block.Lines {
			text := norm.NFC.String(line.Text)
			if strings.TrimSpace(text) == "" {
				continue
			}
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}
	return strings.TrimSpace(sb.String())
}
