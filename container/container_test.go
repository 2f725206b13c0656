package container

import (
	"bytes"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		Width:         640,
		Height:        480,
		Channels:      3,
		ResidualBytes: 921600,
		RLEBytes:      12345,
		ArithBytes:    6789,
	}
	payload := bytes.Repeat([]byte{0xAB}, int(h.ArithBytes))

	var buf bytes.Buffer
	if err := WriteFile(&buf, h, payload); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	got, gotPayload, err := ReadFile(&buf)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if got != h {
		t.Fatalf("header mismatch: got %+v, want %+v", got, h)
	}
	if !bytes.Equal(gotPayload, payload) {
		t.Fatalf("payload mismatch: got %d bytes, want %d", len(gotPayload), len(payload))
	}
}

func TestReadFileTruncatedHeader(t *testing.T) {
	buf := bytes.NewBuffer([]byte{1, 2, 3})
	if _, _, err := ReadFile(buf); err != ErrTruncatedHeader {
		t.Fatalf("ReadFile error = %v, want ErrTruncatedHeader", err)
	}
}

func TestHeaderLittleEndianLayout(t *testing.T) {
	h := Header{Width: 1, Height: 0, Channels: 0, ResidualBytes: 0, RLEBytes: 0, ArithBytes: 0}
	var buf bytes.Buffer
	if err := WriteFile(&buf, h, nil); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	b := buf.Bytes()
	if b[0] != 1 || b[1] != 0 || b[2] != 0 || b[3] != 0 {
		t.Fatalf("width not written little-endian: %v", b[0:4])
	}
}
