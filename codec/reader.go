package codec

import (
	"encoding/binary"
	"fmt"
)

// reader is a bounded cursor over a wire buffer. Every take fails with a
// wrapped ErrTruncatedBuffer instead of reading past the end.
type reader struct {
	buf []byte
	off int
}

func newReader(b []byte) *reader {
	return &reader{buf: b}
}

func (r *reader) take(n int) ([]byte, error) {
	if n < 0 || n > len(r.buf)-r.off {
		return nil, fmt.Errorf("%d bytes at offset %d: %w", n, r.off, ErrTruncatedBuffer)
	}
	out := r.buf[r.off : r.off+n]
	r.off += n
	return out, nil
}

func (r *reader) u8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) u32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) u64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *reader) i64() (int64, error) {
	v, err := r.u64()
	return int64(v), err
}

func (r *reader) bytes32() ([32]byte, error) {
	var out [32]byte
	b, err := r.take(32)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func (r *reader) uvarint() (uint64, error) {
	v, n, err := Uvarint(r.buf[r.off:])
	if err != nil {
		return 0, fmt.Errorf("at offset %d: %w", r.off, err)
	}
	r.off += n
	return v, nil
}

// copyBytes takes n bytes as an owned copy; decoders never hand out
// aliases into the input buffer. Zero-length reads come back nil so
// round-tripped values compare equal.
func (r *reader) copyBytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) done() bool {
	return r.off == len(r.buf)
}
