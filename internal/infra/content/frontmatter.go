// Package content loads product and event records from authored content
// sources: a directory of markdown files with YAML front matter, or a
// single static JSON array file per entity type.
package content

import (
	"bytes"
	"strings"
)

var frontMatterDelimiter = []byte("---")

// splitFrontMatter splits a markdown document into its YAML header and
// body. A document without a front-matter block yields an empty header and
// the full input as body, matching how CMS files without metadata behave.
func splitFrontMatter(data []byte) (header, body []byte) {
	trimmed := bytes.TrimLeft(data, "\uFEFF\r\n")
	if !bytes.HasPrefix(trimmed, frontMatterDelimiter) {
		return nil, data
	}

	rest := trimmed[len(frontMatterDelimiter):]
	// The opening delimiter must be alone on its line.
	newline := bytes.IndexByte(rest, '\n')
	if newline == -1 || len(bytes.TrimSpace(rest[:newline])) != 0 {
		return nil, data
	}
	rest = rest[newline+1:]

	end := findClosingDelimiter(rest)
	if end == -1 {
		return nil, data
	}

	header = rest[:end]
	body = rest[end:]
	// Skip the closing delimiter line.
	if newline := bytes.IndexByte(body, '\n'); newline != -1 {
		body = body[newline+1:]
	} else {
		body = nil
	}

	return header, body
}

// findClosingDelimiter returns the offset of the line starting the closing
// "---" delimiter, or -1.
func findClosingDelimiter(data []byte) int {
	offset := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if string(bytes.TrimSpace(line)) == string(frontMatterDelimiter) {
			return offset
		}
		offset += len(line) + 1
	}

	return -1
}

func trimBody(body []byte) string {
	return strings.TrimSpace(string(body))
}
