package x86

import "io"

// Reader is the byte source contract the decoders consume: a sequential
// cursor producing one byte at a time. The decoders never seek backward,
// all state needed is carried forward explicitly. Any read failure mid
// instruction is reported as exhausted input.
type Reader = io.ByteReader

// BytesReader is a sequential, position tracking reader over an address
// tagged byte slice. It satisfies the Reader contract and fails with
// io.EOF once the slice is exhausted.
type BytesReader struct {
	addr   uint64
	data   []byte
	offset int
}

// NewBytesReader creates a reader over data located at the given address.
func NewBytesReader(addr uint64, data []byte) *BytesReader {
	return &BytesReader{addr: addr, data: data}
}

// ReadByte returns the next byte of the stream.
func (r *BytesReader) ReadByte() (byte, error) {
	if r.offset >= len(r.data) {
		return 0, io.EOF
	}
	b := r.data[r.offset]
	r.offset++
	return b, nil
}

// Address returns the stream address of the next byte to be read.
func (r *BytesReader) Address() uint64 {
	return r.addr + uint64(r.offset)
}

// Offset returns the number of bytes read so far.
func (r *BytesReader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *BytesReader) Remaining() int {
	return len(r.data) - r.offset
}
