package exporter

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reFailure = regexp.MustCompile(`^Error: Failed to translate chunk \d+$`)
)

// writeDocx renders one paragraph per non-empty line under a bold title.
// Failed chunks are kept and highlighted so they are easy to spot.
func (e *implExporter) writeDocx(title, text string, markdown bool, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	e.run(doc.AddParagraph(""), title, e.opts.FontSize+4).Bold(true)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		p := doc.AddParagraph("")
		switch {
		case reFailure.MatchString(trimmed):
			e.run(p, trimmed, e.opts.FontSize).Color("C00000").Bold(true)
		case !markdown:
			e.run(p, trimmed, e.opts.FontSize)
		default:
			e.markdownLine(p, trimmed)
		}
	}

	return doc.SaveTo(path)
}

func (e *implExporter) markdownLine(p *docx.Paragraph, line string) {
	if m := reHeading.FindStringSubmatch(line); m != nil {
		e.run(p, stripInline(m[2]), headingSize(len(m[1]), e.opts.FontSize)).Bold(true)
		return
	}
	if m := reBullet.FindStringSubmatch(line); m != nil {
		line = "• " + m[1]
	}

	parts := reBold.Split(line, -1)
	bold := reBold.FindAllStringSubmatch(line, -1)
	for i, part := range parts {
		if part != "" {
			e.run(p, stripInline(part), e.opts.FontSize)
		}
		if i < len(bold) {
			e.run(p, stripInline(bold[i][1]), e.opts.FontSize).Bold(true)
		}
	}
}

func (e *implExporter) run(p *docx.Paragraph, text string, size uint64) *docx.Run {
	return p.AddText(text).Font(e.opts.Font).Size(size).Color("000000")
}

func headingSize(level int, base uint64) uint64 {
	if level >= 4 {
		return base
	}
	return base + uint64(4-level)*2
}

func stripInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
