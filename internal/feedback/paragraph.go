package feedback

import "strings"

// Paragraphs in merged output always have exactly this many lines.
const paragraphLines = 3

// ShapeParagraph reduces arbitrary model output to exactly three
// non-empty lines. Fewer fragments pad by repeating the last one; extra
// fragments merge into the third line, never truncating real content.
// Returns "" only when no usable fragment exists, which callers treat as
// "fall back for this item".
func ShapeParagraph(s string) string {
	frags := splitFragments(s)
	if len(frags) == 0 {
		return ""
	}
	for len(frags) < paragraphLines {
		frags = append(frags, frags[len(frags)-1])
	}
	if len(frags) > paragraphLines {
		head := frags[:paragraphLines-1]
		tail := strings.Join(frags[paragraphLines-1:], " ")
		frags = append(append([]string(nil), head...), tail)
	}
	return strings.Join(frags, "\n")
}

// FlattenSummary collapses a summary to a single line.
func FlattenSummary(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// splitFragments splits text into sentence-like units: explicit newlines
// first, then sentence-final punctuation followed by whitespace.
func splitFragments(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, splitSentences(line)...)
	}
	return out
}

func splitSentences(line string) []string {
	runes := []rune(strings.TrimSpace(line))
	if len(runes) == 0 {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isSentenceEnd(runes[i]) {
			continue
		}
		// Consume a run of closing punctuation so "...!?" stays together.
		end := i + 1
		for end < len(runes) && isSentenceEnd(runes[end]) {
			end++
		}
		if end < len(runes) && !isSpace(runes[end]) {
			i = end - 1
			continue
		}
		frag := strings.TrimSpace(string(runes[start:end]))
		if frag != "" {
			out = append(out, frag)
		}
		start = end
		i = end - 1
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		out = append(out, rest)
	}
	return out
}

func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。':
		return true
	}
	return false
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}
