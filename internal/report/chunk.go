package report

import "strings"

// MaxChunk is the largest text block the messaging transport will carry.
const MaxChunk = 3900

// ChunkText splits s into pieces of at most limit characters. Splits land
// on line boundaries where a line fits; a single oversized line is split
// at the limit without breaking multi-byte symbols.
func ChunkText(s string, limit int) []string {
	if limit <= 0 {
		limit = MaxChunk
	}
	if len([]rune(s)) <= limit {
		return []string{s}
	}

	var chunks []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, line := range strings.Split(s, "\n") {
		runes := []rune(line)

		// Oversized line: hard-split at the limit, rune-aligned
		for len(runes) > limit {
			flush()
			chunks = append(chunks, string(runes[:limit]))
			runes = runes[limit:]
		}

		need := len(runes)
		if curLen > 0 {
			need++ // the joining newline
		}
		if curLen+need > limit {
			flush()
			need = len(runes)
		}
		if curLen > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(string(runes))
		curLen += need
	}
	flush()

	return chunks
}
