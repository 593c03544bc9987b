package models_test

import (
	"testing"

	"github.com/mmdatafocus/warehouse_backend/models"
)

func TestCursorRoundTrip(t *testing.T) {
	encoded := models.EncodeCursor("RO-2026-0001")
	decoded, err := models.DecodeCursor(&encoded)
	if err != nil {
		t.Fatalf("DecodeCursor: %v", err)
	}
	if decoded != "RO-2026-0001" {
		t.Fatalf("decoded %q, want %q", decoded, "RO-2026-0001")
	}
}

func TestDecodeCursorNilAndGarbage(t *testing.T) {
	decoded, err := models.DecodeCursor(nil)
	if err != nil || decoded != "" {
		t.Fatalf("nil cursor should decode to empty string, got %q err=%v", decoded, err)
	}

	garbage := "not base64!!!"
	if _, err := models.DecodeCursor(&garbage); err == nil {
		t.Fatal("garbage cursor must return an error")
	}
}

func TestCompositeCursorRoundTrip(t *testing.T) {
	encoded := models.EncodeCompositeCursor("2026-08-30T00:00:00Z", 42)
	value, id := models.DecodeCompositeCursor(&encoded)
	if value != "2026-08-30T00:00:00Z" || id != 42 {
		t.Fatalf("decoded (%q, %d), want (%q, 42)", value, id, "2026-08-30T00:00:00Z")
	}
}

func TestDecodeCompositeCursorMalformed(t *testing.T) {
	// No separator, wrong part count, non-numeric id: all decode to the zero cursor.
	for _, raw := range []string{"plain", "a|b|c", "a|notanumber"} {
		encoded := models.EncodeCursor(raw)
		value, id := models.DecodeCompositeCursor(&encoded)
		if value != "" || id != 0 {
			t.Fatalf("malformed cursor %q decoded to (%q, %d), want zero cursor", raw, value, id)
		}
	}
}
