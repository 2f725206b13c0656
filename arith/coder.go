// Package arith implements an adaptive order-0 arithmetic coder: a
// 256-symbol frequency model (model.go) driving a 32-bit-register
// encoder/decoder with E1/E2/E3 renormalization and underflow handling
// (this file).
package arith

import (
	"bytes"
	"io"
)

// 32-bit register bounds used by E1/E2/E3 renormalization.
const (
	top  uint32 = 0xFFFFFFFF
	half uint32 = 0x80000000
	qtr  uint32 = 0x40000000
	tqtr uint32 = 0xC0000000
)

// Encoder is a per-call value object carrying the coder's registers, its
// own Model, and a bit sink. Nothing here is package-level state, so
// concurrent Encoders are naturally independent of each other.
type Encoder struct {
	model     *Model
	bw        *bitWriter
	low, high uint32
	underflow uint32
}

// NewEncoder creates an Encoder writing to w, with a freshly initialized
// model and low=0, high=0xFFFFFFFF.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		model: NewModel(),
		bw:    newBitWriter(w),
		low:   0,
		high:  top,
	}
}

// EncodeSymbol narrows [low, high] to sym's cumulative-frequency
// sub-interval, renormalizes, and updates the model.
func (e *Encoder) EncodeSymbol(sym byte) {
	lo, hi := e.model.CumFreq(sym)
	total := uint64(e.model.Total())
	rng := uint64(e.high-e.low) + 1

	e.high = e.low + uint32(rng*uint64(hi)/total) - 1
	e.low = e.low + uint32(rng*uint64(lo)/total)

	for {
		switch {
		case e.high < half: // E1: interval entirely in lower half
			e.bw.writeBitAndOpposite(0, e.underflow)
			e.underflow = 0
		case e.low >= half: // E2: interval entirely in upper half
			e.bw.writeBitAndOpposite(1, e.underflow)
			e.underflow = 0
			e.low -= half
			e.high -= half
		case e.low >= qtr && e.high < tqtr: // E3: straddles the midpoint
			e.underflow++
			e.low -= qtr
			e.high -= qtr
		default:
			e.model.Update(sym)
			return
		}
		e.low <<= 1
		e.high = (e.high << 1) | 1
	}
}

// Finish flushes the final disambiguating bits so the decoder can
// distinguish the last interval, then pads the bitstream to a whole
// byte.
func (e *Encoder) Finish() error {
	e.underflow++
	if e.low < qtr {
		e.bw.writeBitAndOpposite(0, e.underflow)
	} else {
		e.bw.writeBitAndOpposite(1, e.underflow)
	}
	return e.bw.flush()
}

// Decoder mirrors Encoder: a per-call value object with its own Model,
// bit source, and registers, plus the decode-only code register.
type Decoder struct {
	model           *Model
	br              *bitReader
	low, high, code uint32
}

// NewDecoder creates a Decoder reading from r. It primes code with the
// first 32 bits of the stream (1-padded past EOF) before the first
// DecodeSymbol call, mirroring the encoder's initial register state.
func NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{
		model: NewModel(),
		br:    newBitReader(r),
		low:   0,
		high:  top,
	}
	for i := 0; i < 32; i++ {
		d.code = (d.code << 1) | d.br.readBit()
	}
	return d
}

// DecodeSymbol recovers the next symbol from the stream, renormalizes in
// lockstep with EncodeSymbol, and updates the model identically.
func (d *Decoder) DecodeSymbol() (byte, error) {
	total := uint64(d.model.Total())
	rng := uint64(d.high-d.low) + 1
	target := uint32(((uint64(d.code-d.low)+1)*total - 1) / rng)

	sym, ok := d.model.Find(target)
	if !ok {
		return 0, ErrCorruptStream
	}

	lo, hi := d.model.CumFreq(sym)
	d.high = d.low + uint32(rng*uint64(hi)/total) - 1
	d.low = d.low + uint32(rng*uint64(lo)/total)

	for {
		switch {
		case d.high < half: // E1: nothing to adjust besides the shift
		case d.low >= half: // E2
			d.code -= half
			d.low -= half
			d.high -= half
		case d.low >= qtr && d.high < tqtr: // E3
			d.code -= qtr
			d.low -= qtr
			d.high -= qtr
		default:
			d.model.Update(sym)
			return sym, nil
		}
		d.low <<= 1
		d.high = (d.high << 1) | 1
		d.code = (d.code << 1) | d.br.readBit()
	}
}

// EncodeBytes arithmetic-encodes data in one shot, returning the
// complete terminated bitstream.
func EncodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, b := range data {
		enc.EncodeSymbol(b)
	}
	if err := enc.Finish(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBytes arithmetic-decodes exactly want bytes from data.
func DecodeBytes(data []byte, want int) ([]byte, error) {
	dec := NewDecoder(bytes.NewReader(data))
	out := make([]byte, want)
	for i := 0; i < want; i++ {
		sym, err := dec.DecodeSymbol()
		if err != nil {
			return nil, err
		}
		out[i] = sym
	}
	return out, nil
}
