package rollup

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// reader walks a read-only byte slice, failing with ErrMalformed instead of
// panicking when a field runs past the end.
type reader struct {
	buf    []byte
	offset int
}

func newReader(buf []byte, offset int) *reader {
	return &reader{buf: buf, offset: offset}
}

func (r *reader) remaining() int {
	if r.offset >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.offset
}

// take returns the next n bytes without copying them.
func (r *reader) take(n int, what string) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, fmt.Errorf("%w: reading %s at offset %d needs %d bytes, %d available",
			ErrMalformed, what, r.offset, n, r.remaining())
	}
	b := r.buf[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

func (r *reader) readUint32(what string) (uint32, error) {
	b, err := r.take(uintBytes, what)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// readUint32Slot reads a 32-byte slot holding a right aligned uint32.
func (r *reader) readUint32Slot(what string) (uint32, error) {
	b, err := r.take(SlotBytes, what)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[SlotBytes-uintBytes:]), nil
}

func (r *reader) readHash(what string) (common.Hash, error) {
	b, err := r.take(SlotBytes, what)
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(b), nil
}

func (r *reader) readHashes(n int, what string) ([]common.Hash, error) {
	hashes := make([]common.Hash, n)
	for i := range hashes {
		h, err := r.readHash(fmt.Sprintf("%s[%d]", what, i))
		if err != nil {
			return nil, err
		}
		hashes[i] = h
	}
	return hashes, nil
}

// writer accumulates an output buffer it owns.
type writer struct {
	buf []byte
}

func newWriter(capacity int) *writer {
	return &writer{buf: make([]byte, 0, capacity)}
}

func (w *writer) uint32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

func (w *writer) uint32Slot(v uint32) {
	w.buf = append(w.buf, make([]byte, SlotBytes-uintBytes)...)
	w.uint32(v)
}

func (w *writer) hash(h common.Hash) {
	w.buf = append(w.buf, h[:]...)
}

func (w *writer) hashes(hs []common.Hash) {
	for _, h := range hs {
		w.hash(h)
	}
}

func (w *writer) bytes(b []byte) {
	w.buf = append(w.buf, b...)
}
