package buf

import "testing"

func TestEndianReadHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 {
		t.Fatalf("U16LE short should be 0")
	}
	if U32LE(short) != 0 {
		t.Fatalf("U32LE short should be 0")
	}
}

func TestEndianWriteHelpers(t *testing.T) {
	b := make([]byte, 8)

	PutU32LE(b, 0, 0x67452301)
	if got := U32LE(b[0:4]); got != 0x67452301 {
		t.Fatalf("PutU32LE round-trip = 0x%x, want 0x67452301", got)
	}
	if b[0] != 0x01 || b[1] != 0x23 || b[2] != 0x45 || b[3] != 0x67 {
		t.Fatalf("PutU32LE did not write little-endian bytes: %x", b[:4])
	}

	PutU16LE(b, 4, 0xBEEF)
	if got := U16LE(b[4:6]); got != 0xBEEF {
		t.Fatalf("PutU16LE round-trip = 0x%x, want 0xBEEF", got)
	}
	if b[4] != 0xEF || b[5] != 0xBE {
		t.Fatalf("PutU16LE did not write little-endian bytes: %x", b[4:6])
	}
}
