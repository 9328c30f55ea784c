package table

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeUTF8(t *testing.T) {
	text, enc, err := Decode([]byte("Customer,Parent SKU\nAcme Co,TSHIRT1\n"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if enc != "utf-8" {
		t.Fatalf("expected utf-8, got %s", enc)
	}
	if !strings.HasPrefix(text, "Customer") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestDecodeStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Customer\n")...)
	text, _, err := Decode(data)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if text != "Customer\n" {
		t.Fatalf("BOM not stripped: %q", text)
	}
}

func TestDecodeWindows1252(t *testing.T) {
	// 0x93/0x94 are curly quotes in cp1252 and invalid UTF-8.
	data := []byte{'n', 'o', 't', 'e', ' ', 0x93, 'h', 'i', 0x94}
	text, enc, err := Decode(data)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if enc != "windows-1252" {
		t.Fatalf("expected windows-1252, got %s", enc)
	}
	if !strings.Contains(text, "“hi”") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestDecodeLatin1Fallback(t *testing.T) {
	// 0x81 is undefined in cp1252 (decodes to U+FFFD) but maps in latin-1.
	data := []byte{'x', 0x81, 'y'}
	_, enc, err := Decode(data)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if enc != "latin-1" {
		t.Fatalf("expected latin-1, got %s", enc)
	}
}

func TestDecodeBinaryFails(t *testing.T) {
	data := []byte{'a', 0x00, 'b', 0x00}
	_, _, err := Decode(data)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if len(de.Tried) != 3 {
		t.Fatalf("expected 3 tried encodings, got %v", de.Tried)
	}
}
