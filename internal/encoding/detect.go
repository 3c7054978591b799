// Package encoding turns bank CSV exports of unknown charset into UTF-8.
// Exports from Czech, Polish and Hungarian banks commonly arrive as
// Windows-1250 or ISO-8859-2; western ones as Windows-1252.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const peekSize = 4096

// charsets maps chardet results to decoders for the single-byte encodings we
// expect from bank exports.
var charsets = map[string]encoding.Encoding{
	"windows-1250": charmap.Windows1250,
	"ISO-8859-2":   charmap.ISO8859_2,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-1":   charmap.Windows1252,
}

// NewUTF8Reader wraps r so that its content reads as UTF-8. BOMs win, then
// content that already validates as UTF-8 passes through, then chardet picks
// among the known single-byte charsets. When nothing matches, Windows-1250 is
// assumed.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if dec, consumed := bomDecoder(head); dec != nil || consumed > 0 {
		_, _ = br.Discard(consumed)

		if dec == nil {
			return br, nil
		}

		return transform.NewReader(br, dec), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if best, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if best.Charset == "UTF-8" {
			return br, nil
		}

		if enc, ok := charsets[best.Charset]; ok {
			return transform.NewReader(br, enc.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1250.NewDecoder()), nil
}

// bomDecoder inspects a byte-order mark. For UTF-8 it returns a nil decoder
// with the BOM length to discard; for UTF-16 it returns the matching decoder.
func bomDecoder(head []byte) (*encoding.Decoder, int) {
	switch {
	case bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}):
		return nil, 3
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), 0
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), 0
	}

	return nil, 0
}
