package scanner

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffLen is how many bytes are examined to pick a decoder.
// 4 KiB covers the first few lines of any realistic dump file, which is
// enough to tell UTF-8 from Latin-1 with near certainty.
const sniffLen = 4096

// Byte order marks for UTF-16 and UTF-8.
var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// newDecodingReader wraps r in a decoder chosen from the content:
//
//  1. A UTF-16 BOM selects a UTF-16 decoder of the matching endianness.
//  2. Content that looks like valid UTF-8 is passed through a UTF-8 decoder,
//     which replaces any invalid bytes found later with U+FFFD.
//  3. Anything else is decoded as ISO-8859-1, which accepts every byte.
//
// This mirrors the utf-8 / ISO-8859-1 / utf-16 fallback of classic dump
// processing tools, but decides once per file from a prefix instead of
// re-reading the file per encoding, and replaces bad bytes instead of
// failing. The returned reader always yields valid UTF-8.
func newDecodingReader(r io.Reader) io.Reader {
	br := bufio.NewReaderSize(r, sniffLen)
	prefix, _ := br.Peek(sniffLen) //nolint:errcheck // short peek near EOF is expected

	var enc encoding.Encoding
	switch {
	case bytes.HasPrefix(prefix, bomUTF16LE):
		enc = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case bytes.HasPrefix(prefix, bomUTF16BE):
		enc = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case bytes.HasPrefix(prefix, bomUTF8):
		enc = unicode.UTF8BOM
	case isLikelyUTF8(prefix):
		enc = unicode.UTF8
	default:
		enc = charmap.ISO8859_1
	}

	return transform.NewReader(br, enc.NewDecoder())
}

// isLikelyUTF8 reports whether the sniffed prefix is valid UTF-8.
// A multi-byte rune cut off at the end of the prefix is not held against it.
func isLikelyUTF8(prefix []byte) bool {
	// Trim up to utf8.UTFMax-1 trailing continuation bytes of a rune that
	// the prefix boundary may have split.
	end := len(prefix)
	for i := 0; i < utf8.UTFMax-1 && end > 0; i++ {
		if r, _ := utf8.DecodeLastRune(prefix[:end]); r != utf8.RuneError {
			break
		}
		end--
	}
	return utf8.Valid(prefix[:end])
}
