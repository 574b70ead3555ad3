package playground

import (
	"regexp"
	"strings"
)

var strayFenceRe = regexp.MustCompile("```(?:proxpl|rust|go)?")

// Clean turns generated text into editor content. When the text contains a
// fenced block, the body of the first block is used; otherwise any stray
// fence markers are removed. The result is trimmed.
func Clean(generated string) string {
	if body, ok := firstFencedBlock(generated); ok {
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(strayFenceRe.ReplaceAllString(generated, ""))
}

func firstFencedBlock(text string) (string, bool) {
	var buf strings.Builder
	inside := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !inside {
			if strings.HasPrefix(trimmed, "```") && !strings.Contains(trimmed[3:], "`") {
				inside = true
			}
			continue
		}
		if trimmed == "```" {
			return buf.String(), true
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)
	}
	return "", false
}
