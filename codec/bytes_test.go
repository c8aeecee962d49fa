package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendUvarint_KnownVectors(t *testing.T) {
	cases := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
		{1<<63 - 1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}},
	}
	for _, tc := range cases {
		got := AppendUvarint(nil, tc.v)
		assert.Equal(t, tc.want, got, "value %d", tc.v)

		v, n, err := Uvarint(got)
		require.NoError(t, err, "value %d", tc.v)
		assert.Equal(t, tc.v, v)
		assert.Equal(t, len(got), n)
	}
}

func TestUvarint_Truncated(t *testing.T) {
	for _, buf := range [][]byte{nil, {0x80}, {0xFF, 0xFF}, {0x80, 0x80, 0x80}} {
		_, _, err := Uvarint(buf)
		require.Error(t, err, "buf %x", buf)
		assert.True(t, errors.Is(err, ErrTruncatedBuffer), "buf %x: %v", buf, err)
	}
}

func TestUvarint_TooLong(t *testing.T) {
	buf := make([]byte, 10)
	for i := range buf {
		buf[i] = 0xFF
	}
	_, _, err := Uvarint(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVarintTooLong), "%v", err)
}

func TestUvarint_IgnoresTrailing(t *testing.T) {
	v, n, err := Uvarint([]byte{0x05, 0xAA, 0xBB})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), v)
	assert.Equal(t, 1, n)
}

func FuzzUvarint_RoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(127))
	f.Add(uint64(128))
	f.Add(uint64(300))
	f.Add(uint64(1) << 62)
	f.Add(uint64(1)<<63 - 1)
	f.Fuzz(func(t *testing.T, v uint64) {
		v &= 1<<63 - 1
		buf := AppendUvarint(nil, v)
		if len(buf) > maxVarintLen {
			t.Fatalf("value %d encoded to %d bytes", v, len(buf))
		}
		got, n, err := Uvarint(buf)
		if err != nil {
			t.Fatalf("value %d: %v", v, err)
		}
		if got != v || n != len(buf) {
			t.Fatalf("value %d round-tripped to %d (consumed %d of %d)", v, got, n, len(buf))
		}
		// Minimal length: the last group must be the first that fits.
		if len(buf) > 1 && buf[len(buf)-1] == 0 {
			t.Fatalf("value %d has a redundant trailing group: %x", v, buf)
		}
	})
}
