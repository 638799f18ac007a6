package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cells returns the display width of s in terminal-style cells.
func Cells(s string) int {
	return runewidth.StringWidth(s)
}

// Reveal returns the prefix of s that fits in n cells, for typewriter text.
func Reveal(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= runewidth.StringWidth(s) {
		return s
	}
	return runewidth.Truncate(s, n, "")
}

// Wrap breaks s into lines of at most cols cells, preferring spaces.
// Explicit newlines are kept.
func Wrap(s string, cols int) []string {
	if cols <= 0 {
		cols = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, cols)...)
	}
	return lines
}

func wrapParagraph(p string, cols int) []string {
	words := strings.Fields(p)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur := ""
	for _, w := range words {
		for runewidth.StringWidth(w) > cols {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			head := runewidth.Truncate(w, cols, "")
			if head == "" {
				// a single rune wider than cols
				head = string([]rune(w)[:1])
			}
			lines = append(lines, head)
			w = w[len(head):]
		}
		if w == "" {
			continue
		}
		switch {
		case cur == "":
			cur = w
		case runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) <= cols:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
