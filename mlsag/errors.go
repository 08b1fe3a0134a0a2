package mlsag

import (
	"fmt"

	"mlsag.dev/core/xed25519"
)

// Kind discriminates the error taxonomy a signing call can fail with.
type Kind int

const (
	// InvalidArgument covers a ring too small, an out-of-range index, a
	// non-rectangular matrix, mismatched secret/output vector sizes, or a
	// wrong output-buffer size.
	InvalidArgument Kind = iota + 1
	// NotImplemented is returned for any non-empty multisig (kLRki) input.
	NotImplemented
	// CryptoFailure wraps an error signaled by a curve primitive, such as
	// decoding a malformed point or scalar.
	CryptoFailure
	// BufferOverflow means the final buff_offset(cols)+32 == len(buffer)
	// check failed after the signature was written.
	BufferOverflow
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case NotImplemented:
		return "NotImplemented"
	case CryptoFailure:
		return "CryptoFailure"
	case BufferOverflow:
		return "BufferOverflow"
	default:
		return "Unknown"
	}
}

// Error is the only error type a signing call returns. There is no retry
// and no partial success: on error the output buffer's contents are
// unspecified.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mlsag: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("mlsag: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func invalidArgument(msg string) *Error {
	return &Error{Kind: InvalidArgument, Msg: msg}
}

func notImplemented(msg string) *Error {
	return &Error{Kind: NotImplemented, Msg: msg}
}

func cryptoFailure(msg string, err error) *Error {
	return &Error{Kind: CryptoFailure, Msg: msg, Err: err}
}

func bufferOverflow(msg string, err error) *Error {
	return &Error{Kind: BufferOverflow, Msg: msg, Err: err}
}

// validate is the precondition gate (§4.3 of the core signing contract):
// cols, then index, then rows, then rectangularity, then secret-vector
// length, then the ds-rows bound, then the multisig rejection. The order
// matches the original Python assertion chain, so the first violated
// precondition is always the one a caller sees.
func validate(M KeyMatrix, xx []*xed25519.Scalar, dsRows, index int, kLRki *MultisigLRKI) error {
	cols := len(M)
	if cols < 2 {
		return invalidArgument(fmt.Sprintf("Cols == %d", cols))
	}
	if index < 0 || index >= cols {
		return invalidArgument("Index out of range")
	}

	rows := M.Rows()
	if rows < 1 {
		return invalidArgument("rows == 0")
	}
	for i, col := range M {
		if len(col) != rows {
			return invalidArgument(fmt.Sprintf("Matrix is not rectangular at column %d", i))
		}
	}

	if len(xx) != rows {
		return invalidArgument("Bad xx size")
	}
	if dsRows < 1 || dsRows > rows {
		return invalidArgument("Bad dsRows size")
	}

	if kLRki != nil {
		return notImplemented("Multisig (kLRki) signing is not implemented")
	}

	return nil
}
