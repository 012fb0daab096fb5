package pdf

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProducesValidStructure(t *testing.T) {
	out := Build([]string{"hello world"})

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-1.4")))
	assert.Contains(t, string(out), "trailer")
	assert.Contains(t, string(out), "(hello world) Tj")
	assert.True(t, bytes.HasSuffix(bytes.TrimRight(out, "\n"), []byte("%%EOF")))
}

func TestXrefOffsetsPointAtObjects(t *testing.T) {
	out := Build([]string{"first", "second"})
	s := string(out)

	xrefIdx := strings.LastIndex(s, "\nxref\n") + 1
	require.Greater(t, xrefIdx, 0)

	// startxref must reference the xref table itself.
	m := regexp.MustCompile(`startxref\n(\d+)\n`).FindStringSubmatch(s)
	require.Len(t, m, 2)
	startxref, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	assert.Equal(t, xrefIdx, startxref)

	// Every in-use entry must point at the matching "N 0 obj" marker.
	entries := regexp.MustCompile(`(?m)^(\d{10}) 00000 n `).FindAllStringSubmatch(s[xrefIdx:], -1)
	require.NotEmpty(t, entries)
	for i, entry := range entries {
		off, err := strconv.Atoi(entry[1])
		require.NoError(t, err)
		marker := fmt.Sprintf("%d 0 obj", i+1)
		assert.True(t, strings.HasPrefix(s[off:], marker), "object %d offset %d", i+1, off)
	}
}

func TestEmptyInputStillRendersOnePage(t *testing.T) {
	out := string(Build(nil))
	assert.Contains(t, out, "/Type /Page ")
	assert.Contains(t, out, "/Count 1")
}

func TestPaginationSplitsLongDocuments(t *testing.T) {
	lines := make([]string, linesPerPage+1)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	out := string(Build(lines))
	assert.Contains(t, out, "/Count 2")
	assert.Equal(t, 2, strings.Count(out, "/Type /Page "))
}

func TestSanitizeReplacesNonASCII(t *testing.T) {
	out := string(Build([]string{"Künstler–Straße"}))
	assert.Contains(t, out, "(K?nstler?Stra?e) Tj")
}

func TestEscapeParensAndBackslash(t *testing.T) {
	out := string(Build([]string{`a(b)c\d`}))
	assert.Contains(t, out, `(a\(b\)c\\d) Tj`)
}

func TestWrapLineNeverDropsContent(t *testing.T) {
	inputs := []string{
		strings.Repeat("word ", 40) + "end",
		strings.Repeat("x", 3*maxLineChars+5),
		"short",
		"",
		strings.Repeat("alpha beta gamma delta ", 20),
	}
	for _, in := range inputs {
		parts := wrapLine(sanitize(in), maxLineChars)
		for _, p := range parts {
			assert.LessOrEqual(t, len(p), maxLineChars)
		}
		// Rejoining at wrap points with spaces and collapsing the hard
		// splits must reconstruct the original words in order.
		rejoined := strings.Join(parts, " ")
		assert.Equal(t, strings.Fields(in), mergeHardSplits(strings.Fields(rejoined), maxLineChars))
	}
}

// mergeHardSplits undoes the character-count splits wrapLine applies to
// words longer than the limit, so wrapped output can be compared against
// the original word sequence.
func mergeHardSplits(words []string, max int) []string {
	out := []string{}
	for _, w := range words {
		if len(out) > 0 && len(out[len(out)-1]) >= max {
			out[len(out)-1] += w
			continue
		}
		out = append(out, w)
	}
	return out
}

func TestLinesPerPageDerivation(t *testing.T) {
	assert.Equal(t, (802-48)/14, linesPerPage)
}
