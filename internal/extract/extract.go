// Package extract pulls plain text out of uploaded documents so their words can be counted.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrUnsupported is returned for accepted uploads whose text cannot be extracted.
	ErrUnsupported = errors.New("text extraction not supported")
	// ErrMalformed is returned when the content does not match its extension.
	ErrMalformed = errors.New("malformed document")
)

// DefaultMaxTextBytes bounds the text extracted from a single document.
const DefaultMaxTextBytes = 32 << 20

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var acceptedExtensions = map[string]bool{
	".txt":  true,
	".doc":  true,
	".docx": true,
	".odt":  true,
	".xml":  true,
}

// Extension returns the lower-cased extension of a file name including the dot.
func Extension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// Accepts reports whether the file name carries an extension allowed for upload.
func Accepts(name string) bool {
	return acceptedExtensions[Extension(name)]
}

// Text returns the textual content of a document, bounded by DefaultMaxTextBytes.
func Text(name string, data []byte) (string, error) {
	return TextLimit(name, data, DefaultMaxTextBytes)
}

// TextLimit returns the textual content of a document. Content that is or would
// expand to more than limit bytes is reported as ErrMalformed.
func TextLimit(name string, data []byte, limit int64) (string, error) {
	if limit <= 0 {
		limit = DefaultMaxTextBytes
	}
	switch ext := Extension(name); ext {
	case ".txt":
		if int64(len(data)) > limit {
			return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrMalformed, name, limit)
		}
		text, ok := plainText(data)
		if !ok {
			return "", fmt.Errorf("%w: %s is not plain text", ErrMalformed, name)
		}
		return text, nil
	case ".xml":
		if !isText(data) {
			return "", fmt.Errorf("%w: %s is not xml", ErrMalformed, name)
		}
		return xmlText(newCappedReader(bytes.NewReader(data), limit), "")
	case ".docx":
		return docxText(data, limit)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
}

// plainText accepts UTF-8 text and falls back to Windows-1252, a superset of
// Latin-1, for byte sequences that are not valid UTF-8 but carry no binary controls.
func plainText(data []byte) (string, bool) {
	if utf8.Valid(data) {
		if !isText(data) {
			return "", false
		}
		return string(data), true
	}
	if hasBinaryControls(data) {
		return "", false
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

func hasBinaryControls(data []byte) bool {
	for _, b := range data {
		switch {
		case b == '\t', b == '\n', b == '\r', b == '\f':
		case b < 0x20, b == 0x7f:
			return true
		}
	}
	return false
}

func isText(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

func docxText(data []byte, limit int64) (string, error) {
	m := mimetype.Detect(data)
	if !m.Is(docxMIME) && !m.Is("application/zip") {
		return "", fmt.Errorf("%w: docx content detected as %s", ErrMalformed, m.String())
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		if f.UncompressedSize64 > uint64(limit) {
			return "", fmt.Errorf("%w: document part expands to %d bytes", ErrMalformed, f.UncompressedSize64)
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document part: %w", err)
		}
		defer rc.Close()
		return xmlText(newCappedReader(rc, limit), "t")
	}

	return "", fmt.Errorf("%w: word/document.xml missing", ErrMalformed)
}

// xmlText collects character data. With a non-empty element name only the text inside
// elements with that local name is kept; paragraph ends become line breaks.
func xmlText(r io.Reader, only string) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		sb    strings.Builder
		depth int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if only != "" && t.Name.Local == only {
				depth++
			}
		case xml.EndElement:
			if only != "" && t.Name.Local == only && depth > 0 {
				depth--
			}
			if only != "" && t.Name.Local == "p" {
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if only == "" || depth > 0 {
				sb.Write(t)
				if only == "" {
					sb.WriteByte(' ')
				}
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

var errTextTooLarge = errors.New("extracted text exceeds limit")

// cappedReader fails with errTextTooLarge once more than its limit has been read,
// regardless of what an archive header claims.
type cappedReader struct {
	r    io.Reader
	left int64
}

func newCappedReader(r io.Reader, limit int64) *cappedReader {
	return &cappedReader{r: r, left: limit}
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.left <= 0 {
		var one [1]byte
		n, err := c.r.Read(one[:])
		if n > 0 {
			return 0, errTextTooLarge
		}
		return 0, err
	}
	if int64(len(p)) > c.left {
		p = p[:c.left]
	}
	n, err := c.r.Read(p)
	c.left -= int64(n)
	return n, err
}
