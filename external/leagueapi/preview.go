package leagueapi

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

// buildCurlPreview renders a mutation as a copy-pasteable curl command for logs and spans.
func buildCurlPreview(method, fullURL, body string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart("-X")
	appendPart(method)
	appendPart(shellQuote(fullURL))
	appendPart("-H")
	appendPart(shellQuote("Content-Type: application/json"))
	if body != "" {
		appendPart("-d")
		appendPart(shellQuote(body))
	}

	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}
