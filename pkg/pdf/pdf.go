// Package pdf builds minimal single-font PDF documents from plain text
// lines without an external rendering library. The output is a valid
// PDF 1.4 byte stream with a byte-exact cross-reference table, which is
// what strict readers require.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
)

// Page geometry: A4 in points, fixed 10pt Helvetica with 14pt leading.
const (
	pageWidth  = 595
	pageHeight = 842
	fontSize   = 10
	lineHeight = 14
	topY       = 802
	bottomY    = 48

	// Greedy wrap limit in characters. 10pt Helvetica averages well under
	// 6pt per glyph, so 94 characters stay inside the printable width.
	maxLineChars = 94
)

// linesPerPage is derived from the fixed margins and leading.
const linesPerPage = (topY - bottomY) / lineHeight

// Build renders the given text lines into a complete PDF document.
// Long lines are word-wrapped, overflowing pages are split, and all text
// is reduced to printable ASCII (the built-in Helvetica is not embedded,
// so anything outside 0x20-0x7E is replaced with '?').
func Build(lines []string) []byte {
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped = append(wrapped, wrapLine(sanitize(line), maxLineChars)...)
	}
	if len(wrapped) == 0 {
		wrapped = []string{""}
	}

	pages := chunkLines(wrapped, linesPerPage)

	var buf bytes.Buffer
	offsets := []int{0} // object 0 is the mandatory free entry

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	// Object layout: 1 Catalog, 2 Pages, 3 Font, then a Page/Contents pair
	// per page. The Pages kid list is known up front from the page count.
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), len(pages)))
	writeObj("3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	for i, pageLines := range pages {
		pageID := 4 + 2*i
		contentID := pageID + 1

		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] "+
			"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			pageID, pageWidth, pageHeight, contentID))

		stream := contentStream(pageLines)
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
			contentID, len(stream), stream))
	}

	objCount := len(offsets) // includes the free entry

	xrefOffset := buf.Len()
	buf.WriteString(fmt.Sprintf("xref\n0 %d\n", objCount))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	buf.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		objCount, xrefOffset))

	return buf.Bytes()
}

// contentStream emits one text block starting at the top margin, using T*
// to advance between show-text operators.
func contentStream(lines []string) string {
	var b strings.Builder
	b.WriteString("BT\n")
	b.WriteString(fmt.Sprintf("/F1 %d Tf\n", fontSize))
	b.WriteString(fmt.Sprintf("%d TL\n", lineHeight))
	b.WriteString(fmt.Sprintf("48 %d Td\n", topY))
	for i, line := range lines {
		if i > 0 {
			b.WriteString("T*\n")
		}
		b.WriteString("(" + escape(line) + ") Tj\n")
	}
	b.WriteString("ET\n")
	return b.String()
}

// sanitize reduces text to printable ASCII. The base-14 Helvetica font is
// not embedded, so bytes outside 0x20-0x7E become '?'.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x20 && r <= 0x7e {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// escape quotes parentheses and backslashes per the PDF string syntax.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}

// wrapLine greedily word-wraps a line to at most max characters. A single
// word longer than the limit is hard-split by character count so content is
// never dropped.
func wrapLine(line string, max int) []string {
	if len(line) <= max {
		return []string{line}
	}

	var out []string
	current := ""
	for _, word := range strings.Split(line, " ") {
		for len(word) > max {
			if current != "" {
				out = append(out, current)
				current = ""
			}
			out = append(out, word[:max])
			word = word[max:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= max:
			current += " " + word
		default:
			out = append(out, current)
			current = word
		}
	}
	if current != "" {
		out = append(out, current)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

// chunkLines splits lines into pages of at most perPage lines, always
// yielding at least one page.
func chunkLines(lines []string, perPage int) [][]string {
	var pages [][]string
	for start := 0; start < len(lines); start += perPage {
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}
	if len(pages) == 0 {
		pages = [][]string{{""}}
	}
	return pages
}
