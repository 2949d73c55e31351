package fitzsource

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/foliohq/folio/model"
	"github.com/foliohq/folio/source"
)

// MuPDF's HTML rendering positions each text line as an absolutely-placed
// <p> whose style carries top/left in points, with one or more <span>
// children carrying the font size. Word rectangles are not emitted
// individually, so word extents are apportioned along the line by rune
// count.

const (
	defaultFontSize = 12.0

	// glyphWidthRatio approximates the advance width of a glyph as a
	// fraction of the font size. MuPDF does not emit per-word extents in
	// its HTML rendering.
	glyphWidthRatio = 0.5

	// lineHeightRatio approximates line height from font size.
	lineHeightRatio = 1.2

	// blockGapRatio is the largest vertical gap, in font sizes, between
	// consecutive lines of the same block.
	blockGapRatio = 1.8
)

// htmlLine is one positioned text line lifted out of the rendering.
type htmlLine struct {
	top      float64
	left     float64
	fontSize float64
	text     string
}

// parsePageHTML converts one page's positioned-HTML rendering into text
// blocks and word tokens with approximated extents.
func parsePageHTML(rendered string) ([]source.TextBlock, []source.Word, error) {
	root, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		return nil, nil, err
	}

	var lines []htmlLine
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			if line, ok := liftLine(n); ok {
				lines = append(lines, line)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	blocks := groupLines(lines)
	return blocks, splitWords(blocks, lines), nil
}

// liftLine reads one <p> element into a positioned line. Lines without
// absolute coordinates or without text are dropped.
func liftLine(p *html.Node) (htmlLine, bool) {
	style := attr(p, "style")
	top, topOK := stylePt(style, "top")
	left, leftOK := stylePt(style, "left")
	if !topOK || !leftOK {
		return htmlLine{}, false
	}

	line := htmlLine{top: top, left: left, fontSize: defaultFontSize}

	var text strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && n.Data == "span" {
			if size, ok := stylePt(attr(n, "style"), "font-size"); ok {
				line.fontSize = size
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(p)

	line.text = text.String()
	if strings.TrimSpace(line.text) == "" {
		return htmlLine{}, false
	}
	return line, true
}

// groupLines folds consecutive lines into blocks. A new block starts when
// the vertical gap to the previous line exceeds the block gap for the
// current font size.
func groupLines(lines []htmlLine) []source.TextBlock {
	var blocks []source.TextBlock

	for i, line := range lines {
		rect := lineRect(line)
		tl := source.TextLine{BBox: rect, Text: line.text}

		startNew := i == 0
		if !startNew {
			prev := lines[i-1]
			if line.top-prev.top > line.fontSize*blockGapRatio {
				startNew = true
			}
		}

		if startNew {
			blocks = append(blocks, source.TextBlock{BBox: rect, Lines: []source.TextLine{tl}})
			continue
		}
		last := &blocks[len(blocks)-1]
		last.Lines = append(last.Lines, tl)
		last.BBox = last.BBox.Union(rect)
	}
	return blocks
}

// splitWords tokenizes every line and apportions the line extent across its
// words by rune count, assigning block/line/word ordinals in reading order.
func splitWords(blocks []source.TextBlock, lines []htmlLine) []source.Word {
	var words []source.Word

	lineIdx := 0
	for blockNo, block := range blocks {
		for lineNo := range block.Lines {
			line := lines[lineIdx]
			lineIdx++

			glyph := line.fontSize * glyphWidthRatio
			x := line.left
			wordNo := 0
			for _, field := range strings.Split(line.text, " ") {
				width := float64(len([]rune(field))) * glyph
				if strings.TrimSpace(field) != "" {
					words = append(words, source.Word{
						Text: field,
						BBox: model.Rect{
							X0: x,
							Y0: line.top,
							X1: x + width,
							Y1: line.top + line.fontSize*lineHeightRatio,
						},
						BlockNo: blockNo,
						LineNo:  lineNo,
						WordNo:  wordNo,
					})
					wordNo++
				}
				x += width + glyph
			}
		}
	}
	return words
}

func lineRect(line htmlLine) model.Rect {
	width := float64(len([]rune(line.text))) * line.fontSize * glyphWidthRatio
	return model.Rect{
		X0: line.left,
		Y0: line.top,
		X1: line.left + width,
		Y1: line.top + line.fontSize*lineHeightRatio,
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// stylePt extracts a point-valued property from an inline style, e.g.
// "top:72pt" yields 72.
func stylePt(style, property string) (float64, bool) {
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSpace(name) != property {
			continue
		}
		value = strings.TrimSpace(value)
		value = strings.TrimSuffix(value, "pt")
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
