package relevance

import (
	"fmt"
	"strings"
)

const thinkCloseTag = "</think>"

// ParseVerdict extracts the YES/NO verdict from a verifier response. The
// model is instructed to reply with its reasoning inside <think> tags and a
// single YES or NO after the closing tag. Everything after the last
// </think> is taken as the verdict; it must be exactly YES or NO after
// trimming and case folding. Responses that omit the tag or answer with
// anything else are parse errors, and callers treat a parse error as a
// rejection.
func ParseVerdict(response string) (bool, error) {
	idx := strings.LastIndex(response, thinkCloseTag)
	if idx < 0 {
		return false, fmt.Errorf("ParseVerdict: response has no %s marker", thinkCloseTag)
	}

	verdict := strings.ToUpper(strings.TrimSpace(response[idx+len(thinkCloseTag):]))
	switch verdict {
	case "YES":
		return true, nil
	case "NO":
		return false, nil
	default:
		return false, fmt.Errorf("ParseVerdict: unrecognized verdict %q", verdict)
	}
}
