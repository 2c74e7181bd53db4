package utils

import (
	"bytes"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestGenerateQRCode(t *testing.T) {
	out, err := GenerateQRCode("BKG-a1b2c3d4", 256)
	if err != nil {
		t.Fatalf("GenerateQRCode() error = %v", err)
	}
	if len(out) == 0 {
		t.Fatal("GenerateQRCode() returned no bytes")
	}
	if !bytes.HasPrefix(out, pngMagic) {
		t.Error("GenerateQRCode() output is not a PNG")
	}
}

func TestGenerateQRCodeEmptyContent(t *testing.T) {
	if _, err := GenerateQRCode("", 256); err == nil {
		t.Error("GenerateQRCode() accepted empty content")
	}
}
