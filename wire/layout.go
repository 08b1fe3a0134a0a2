package wire

import "fmt"

// Layout indexes a pre-allocated signature buffer into per-column slots:
//
//	uvarint(cols) | col_0_block | col_1_block | ... | col_{cols-1}_block | cc (32B)
//	col_i_block  := uvarint(rows) | ss[i][0] (32B) | ... | ss[i][rows-1] (32B)
//
// rows is fixed across every column of a single signature, so every
// column's varint width is identical and ColumnOffset is O(1).
type Layout struct {
	buf        []byte
	cols, rows int
	colsPrefix int
	rowsPrefix int
	colSize    int
}

// Size returns the exact buffer length a ring of the given shape needs:
// uvarint_size(cols) + cols*(uvarint_size(rows) + rows*32) + 32.
func Size(cols, rows int) int {
	rowsPrefix := UvarintSize(uint64(rows))
	colSize := rowsPrefix + rows*32
	return UvarintSize(uint64(cols)) + cols*colSize + 32
}

// NewLayout indexes buf for a ring of the given shape and writes the
// leading uvarint(cols) prefix. It fails if buf is not exactly
// Size(cols, rows) bytes — the caller sized the output buffer wrong.
func NewLayout(buf []byte, cols, rows int) (*Layout, error) {
	want := Size(cols, rows)
	if len(buf) != want {
		return nil, fmt.Errorf("wire: buffer is %d bytes, want %d for cols=%d rows=%d", len(buf), want, cols, rows)
	}

	l := &Layout{
		buf:        buf,
		cols:       cols,
		rows:       rows,
		rowsPrefix: UvarintSize(uint64(rows)),
	}
	l.colSize = l.rowsPrefix + rows*32
	l.colsPrefix = PutUvarint(buf, uint64(cols))
	return l, nil
}

// ColumnOffset is buff_offset(i): the byte offset of column i's block,
// measured from the start of the buffer.
func (l *Layout) ColumnOffset(i int) int {
	return l.colsPrefix + i*l.colSize
}

// WriteColumnHeader writes uvarint(rows) at the start of column i's block.
func (l *Layout) WriteColumnHeader(i int) {
	PutUvarint(l.buf[l.ColumnOffset(i):], uint64(l.rows))
}

// WriteResponse writes the 32-byte encoding of ss[i][j] into column i's
// block, immediately after the column's row-count header.
func (l *Layout) WriteResponse(i, j int, enc [32]byte) {
	start := l.ColumnOffset(i) + l.rowsPrefix + j*32
	copy(l.buf[start:start+32], enc[:])
}

// WriteChallenge writes the 32-byte encoding of cc into the trailing 32
// bytes of the buffer.
func (l *Layout) WriteChallenge(enc [32]byte) {
	copy(l.buf[len(l.buf)-32:], enc[:])
}

// ReadResponse reads the 32-byte encoding of ss[i][j] back out of an
// already-populated buffer.
func (l *Layout) ReadResponse(i, j int) [32]byte {
	var out [32]byte
	start := l.ColumnOffset(i) + l.rowsPrefix + j*32
	copy(out[:], l.buf[start:start+32])
	return out
}

// ReadChallenge reads the trailing 32-byte cc field back out of an
// already-populated buffer.
func (l *Layout) ReadChallenge() [32]byte {
	var out [32]byte
	copy(out[:], l.buf[len(l.buf)-32:])
	return out
}

// Cols reports the ring width this layout was constructed for.
func (l *Layout) Cols() int { return l.cols }

// Rows reports the row count this layout was constructed for.
func (l *Layout) Rows() int { return l.rows }

// Close asserts buff_offset(cols)+32 == len(buffer). NewLayout already
// rejects a buffer that is not exactly Size(cols, rows) bytes, so for a
// Layout built by NewLayout this check always holds.
func (l *Layout) Close() error {
	if l.ColumnOffset(l.cols)+32 != len(l.buf) {
		return fmt.Errorf("wire: buff_offset(cols)+32 != len(buffer)")
	}
	return nil
}
