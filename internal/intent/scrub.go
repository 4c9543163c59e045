package intent

import (
	"regexp"
	"strings"
)

// fenced matches a ``` or ```json fenced block, tag in any case; group 1 is
// its body.
var fenced = regexp.MustCompile("(?s)```(?i:json)?[ \t]*\r?\n?(.*?)\r?\n?```")

// ScrubPayload isolates the JSON object in a model response. The first fenced
// block holding an object wins; otherwise the outermost brace span is used.
// It never decodes.
func ScrubPayload(text string) (string, error) {
	for _, m := range fenced.FindAllStringSubmatch(text, -1) {
		if body := strings.TrimSpace(m[1]); strings.HasPrefix(body, "{") {
			return body, nil
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", ErrNoPayload
	}
	return text[start : end+1], nil
}
