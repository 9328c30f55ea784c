package table

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// DecodeError indicates that no candidate encoding produced clean text.
type DecodeError struct {
	Path  string
	Tried []string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not decode input with tried encodings %s", strings.Join(e.Tried, ", "))
	}
	return fmt.Sprintf("could not decode %s with tried encodings %s", e.Path, strings.Join(e.Tried, ", "))
}

// decodeAttempts is the ordered encoding fallback chain. Order sheets come out
// of Google Sheets as UTF-8 (sometimes with a BOM), but master exports edited
// in Excel on Windows show up as cp1252, and older exports as plain latin-1.
var decodeAttempts = []struct {
	name   string
	decode func([]byte) (string, error)
}{
	{"utf-8", decodeUTF8},
	{"windows-1252", charmapDecoder(charmap.Windows1252)},
	{"latin-1", charmapDecoder(charmap.ISO8859_1)},
}

// Decode converts raw file bytes to text, stripping any UTF-8 BOM and trying
// each candidate encoding in order. An attempt is rejected if it errors or if
// the decoded text carries replacement-rune or NUL corruption. The name of the
// encoding that succeeded is returned alongside the text.
func Decode(data []byte) (string, string, error) {
	data = bytes.TrimPrefix(data, bomUTF8)

	var tried []string
	for _, att := range decodeAttempts {
		tried = append(tried, att.name)
		text, err := att.decode(data)
		if err != nil || corrupted(text) {
			continue
		}
		return text, att.name, nil
	}
	return "", "", &DecodeError{Tried: tried}
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("invalid UTF-8")
	}
	return string(data), nil
}

func charmapDecoder(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}
}

// corrupted reports whether decoded text shows signs of a wrong encoding
// (replacement runes from undefined byte positions) or of a binary input.
func corrupted(text string) bool {
	return strings.ContainsRune(text, utf8.RuneError) || strings.ContainsRune(text, 0)
}
