// Package mdnotes turns a Markdown file into speaker notes.
//
// The document is split into sections at top-level thematic breaks
// ("---" on its own line, preceded by a blank line). Section i becomes the
// notes of slide i. Inline emphasis maps to italic and bold runs, links are
// underlined, and fenced code blocks are colored with a chroma style.
package mdnotes
