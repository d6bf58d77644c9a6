package batch

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/quotaflow/assign"
)

// ErrBadCount indicates a negative test-case, element or category count.
var ErrBadCount = stderrors.New("batch: count must be non-negative")

// ParseError reports where decoding failed. Case is 1-based; 0 means the header.
type ParseError struct {
	Case  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Case == 0 {
		return fmt.Sprintf("batch: header: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("batch: case %d: %s: %v", e.Case, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

const (
	// maxToken bounds a single token; decimal int64 values fit easily.
	maxToken = 1 << 20
	// maxPrealloc caps capacity reserved from a declared count.
	maxPrealloc = 1 << 12
)

// Reader decodes test cases one at a time.
type Reader struct {
	sc    *bufio.Scanner
	total int
	read  int
	head  bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxToken)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// Count returns the number of test cases declared by the header, reading it
// on first use.
func (r *Reader) Count() (int, error) {
	if r.head {
		return r.total, nil
	}
	t, err := r.readCount(0, "test case count")
	if err != nil {
		return 0, err
	}
	r.total, r.head = t, true

	return t, nil
}

// Next decodes the next test case. It returns io.EOF once all declared cases
// have been read; trailing input is ignored.
func (r *Reader) Next() (assign.Instance, error) {
	total, err := r.Count()
	if err != nil {
		return assign.Instance{}, err
	}
	if r.read == total {
		return assign.Instance{}, io.EOF
	}
	k := r.read + 1

	n, err := r.readCount(k, "n")
	if err != nil {
		return assign.Instance{}, err
	}
	m, err := r.readCount(k, "m")
	if err != nil {
		return assign.Instance{}, err
	}
	values, err := r.readInts(k, "A", n)
	if err != nil {
		return assign.Instance{}, err
	}
	divisors, err := r.readInts(k, "B", m)
	if err != nil {
		return assign.Instance{}, err
	}
	r.read++

	return assign.Instance{Values: values, Divisors: divisors}, nil
}

// readInts reads count values named name[0..count). The declared count is
// untrusted, so the slice grows with the tokens actually present.
func (r *Reader) readInts(k int, name string, count int) ([]int64, error) {
	out := make([]int64, 0, min(count, maxPrealloc))
	for j := 0; j < count; j++ {
		v, err := r.readInt(k, fmt.Sprintf("%s[%d]", name, j))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// readCount reads a non-negative int.
func (r *Reader) readCount(k int, field string) (int, error) {
	v, err := r.readInt(k, field)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, &ParseError{Case: k, Field: field, Err: errors.Wrapf(ErrBadCount, "got %d", v)}
	}

	return int(v), nil
}

// readInt reads one decimal int64 token.
func (r *Reader) readInt(k int, field string) (int64, error) {
	if !r.sc.Scan() {
		err := r.sc.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return 0, &ParseError{Case: k, Field: field, Err: errors.Wrap(err, "scan input")}
	}
	tok := r.sc.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &ParseError{Case: k, Field: field, Err: errors.Wrapf(err, "token %q", tok)}
	}

	return v, nil
}
