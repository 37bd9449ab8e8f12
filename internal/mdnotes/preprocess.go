package mdnotes

import "regexp"

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// normalize converts line endings to \n and limits runs of blank lines.
func normalize(src []byte) []byte {
	src = crlfOrCR.ReplaceAll(src, []byte("\n"))
	return multipleBlankLines.ReplaceAll(src, []byte("\n\n"))
}
