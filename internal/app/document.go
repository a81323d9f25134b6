package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"golang.org/x/text/encoding/unicode"

	"github.com/lg2m/athena/internal/engine/rope"
)

// Document is the file behind the buffer. It remembers the encoding it
// was loaded with so saves round-trip byte-for-byte for unchanged text.
type Document struct {
	// Path is the file path; empty for a scratch buffer.
	Path string

	// Name is the display name.
	Name string

	// Text is the decoded content.
	Text string

	// Language is the detected language name, by extension.
	Language string

	encoding utfbom.Encoding
}

// NewScratch creates an unnamed, empty document.
func NewScratch() *Document {
	return &Document{Name: "[scratch]", encoding: utfbom.Unknown}
}

// LoadDocument reads and decodes a file. A missing file yields an empty
// document bound to the path, so the first save creates it.
func LoadDocument(path string) (*Document, error) {
	doc := &Document{
		Path:     path,
		Name:     filepath.Base(path),
		Language: detectLanguage(path),
		encoding: utfbom.Unknown,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return nil, fmt.Errorf("app: reading %s: %w", path, err)
	}

	sr, enc := utfbom.Skip(bytes.NewReader(raw))
	data, err := io.ReadAll(sr)
	if err != nil {
		return nil, fmt.Errorf("app: reading %s: %w", path, err)
	}

	text, err := decode(data, enc)
	if err != nil {
		return nil, fmt.Errorf("app: decoding %s: %w", path, err)
	}

	doc.Text = text
	doc.encoding = enc
	return doc, nil
}

// Save encodes the buffer in the document's original encoding and
// writes it to the document path.
func (d *Document) Save(buf rope.Rope) error {
	if d.Path == "" {
		return errors.New("app: scratch buffer has no path")
	}
	data, err := encode(buf.String(), d.encoding)
	if err != nil {
		return fmt.Errorf("app: encoding %s: %w", d.Path, err)
	}
	if err := os.WriteFile(d.Path, data, 0o644); err != nil {
		return fmt.Errorf("app: writing %s: %w", d.Path, err)
	}
	return nil
}

// EncodingName returns the label shown in the status line.
func (d *Document) EncodingName() string {
	switch d.encoding {
	case utfbom.UTF8:
		return "utf-8 bom"
	case utfbom.UTF16BigEndian:
		return "utf-16be"
	case utfbom.UTF16LittleEndian:
		return "utf-16le"
	default:
		return "utf-8"
	}
}

// decode converts BOM-stripped file bytes to a UTF-8 string.
func decode(data []byte, enc utfbom.Encoding) (string, error) {
	switch enc {
	case utfbom.UTF16BigEndian, utfbom.UTF16LittleEndian:
		endianness := unicode.BigEndian
		if enc == utfbom.UTF16LittleEndian {
			endianness = unicode.LittleEndian
		}
		decoded, err := unicode.UTF16(endianness, unicode.IgnoreBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	case utfbom.UTF32BigEndian, utfbom.UTF32LittleEndian:
		return "", errors.New("utf-32 files are not supported")
	default:
		if !utf8.Valid(data) {
			return "", errors.New("file is not valid utf-8")
		}
		return string(data), nil
	}
}

// encode converts editor text back to file bytes, restoring the BOM
// the file arrived with.
func encode(text string, enc utfbom.Encoding) ([]byte, error) {
	switch enc {
	case utfbom.UTF16BigEndian, utfbom.UTF16LittleEndian:
		endianness := unicode.BigEndian
		bom := []byte{0xFE, 0xFF}
		if enc == utfbom.UTF16LittleEndian {
			endianness = unicode.LittleEndian
			bom = []byte{0xFF, 0xFE}
		}
		encoded, err := unicode.UTF16(endianness, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, err
		}
		return append(bom, encoded...), nil
	case utfbom.UTF8:
		return append([]byte{0xEF, 0xBB, 0xBF}, text...), nil
	default:
		return []byte(text), nil
	}
}

// detectLanguage maps a file extension to a language name.
func detectLanguage(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return "go"
	case ".rs":
		return "rust"
	case ".md":
		return "markdown"
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	case ".txt", "":
		return "text"
	default:
		return "text"
	}
}
