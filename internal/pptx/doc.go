// Package pptx reads and writes the subset of PresentationML needed to build
// picture decks with speaker notes.
//
// A Deck is built in memory and serialized once with Write or Bytes. Every
// slide carries its own size; the package-level slide size (sldSz) is the
// size of the last slide added. Open and Read parse an existing deck and
// expose the speaker notes of each slide as a TextBody.
package pptx
