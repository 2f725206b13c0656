// Package container reads and writes the fixed-layout file header that
// wraps the arithmetic-coded payload.
package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// headerSize is the fixed byte length of Header on disk: three u32
// fields plus three u64 fields.
const headerSize = 4 + 4 + 4 + 8 + 8 + 8

// ErrTruncatedHeader is returned when fewer than headerSize bytes are
// available to read a Header.
var ErrTruncatedHeader = errors.New("container: truncated header")

// Header is the fixed-layout file header written ahead of the
// arithmetic-coded payload. All fields are written little-endian
// explicitly, regardless of host byte order, so container files are
// portable between machines.
type Header struct {
	Width         uint32
	Height        uint32
	Channels      uint32
	ResidualBytes uint64
	RLEBytes      uint64
	ArithBytes    uint64
}

// WriteFile writes h followed by payload to w. len(payload) must equal
// h.ArithBytes; callers assemble Header from the actual stage outputs
// before calling this, so this is an invariant, not a runtime check.
func WriteFile(w io.Writer, h Header, payload []byte) error {
	buf := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Width)
	binary.LittleEndian.PutUint32(buf[4:8], h.Height)
	binary.LittleEndian.PutUint32(buf[8:12], h.Channels)
	binary.LittleEndian.PutUint64(buf[12:20], h.ResidualBytes)
	binary.LittleEndian.PutUint64(buf[20:28], h.RLEBytes)
	binary.LittleEndian.PutUint64(buf[28:36], h.ArithBytes)

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("container: write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("container: write payload: %w", err)
	}
	return nil
}

// ReadFile reads a Header and its arithmetic payload from r. The
// returned payload slice has exactly Header.ArithBytes bytes.
func ReadFile(r io.Reader) (Header, []byte, error) {
	var h Header
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return h, nil, ErrTruncatedHeader
		}
		return h, nil, fmt.Errorf("container: read header: %w", err)
	}

	h.Width = binary.LittleEndian.Uint32(buf[0:4])
	h.Height = binary.LittleEndian.Uint32(buf[4:8])
	h.Channels = binary.LittleEndian.Uint32(buf[8:12])
	h.ResidualBytes = binary.LittleEndian.Uint64(buf[12:20])
	h.RLEBytes = binary.LittleEndian.Uint64(buf[20:28])
	h.ArithBytes = binary.LittleEndian.Uint64(buf[28:36])

	payload := make([]byte, h.ArithBytes)
	if _, err := io.ReadFull(r, payload); err != nil {
		return h, nil, fmt.Errorf("container: read payload: %w", err)
	}
	return h, payload, nil
}
