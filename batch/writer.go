package batch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"github.com/katalvlaran/quotaflow/assign"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("batch: unknown output format %q", s)
	}
}

// Writer encodes one answer per test case. Output is buffered until Flush.
type Writer interface {
	Write(k int, ans assign.Answer) error
	Flush() error
}

// NewWriter returns a Writer for the given format.
func NewWriter(w io.Writer, f Format) (Writer, error) {
	bw := bufio.NewWriterSize(w, 1<<16)
	switch f {
	case FormatText, "":
		return &textWriter{w: bw}, nil
	case FormatJSON:
		return &jsonWriter{w: bw}, nil
	default:
		return nil, fmt.Errorf("batch: unknown output format %q", string(f))
	}
}

type textWriter struct {
	w   *bufio.Writer
	buf []byte
}

func (t *textWriter) Write(_ int, ans assign.Answer) error {
	t.buf = strconv.AppendInt(t.buf[:0], ans.Cost, 10)
	t.buf = append(t.buf, '\n')
	_, err := t.w.Write(t.buf)

	return errors.Wrap(err, "write answer")
}

func (t *textWriter) Flush() error { return errors.Wrap(t.w.Flush(), "flush output") }

// record is the JSON shape of one answer.
type record struct {
	Case     int   `json:"case"`
	Cost     int64 `json:"cost"`
	Feasible bool  `json:"feasible"`
}

type jsonWriter struct {
	w *bufio.Writer
}

func (j *jsonWriter) Write(k int, ans assign.Answer) error {
	b, err := sonic.Marshal(record{Case: k, Cost: ans.Cost, Feasible: ans.Feasible})
	if err != nil {
		return errors.Wrapf(err, "encode case %d", k)
	}
	b = append(b, '\n')
	_, err = j.w.Write(b)

	return errors.Wrap(err, "write answer")
}

func (j *jsonWriter) Flush() error { return errors.Wrap(j.w.Flush(), "flush output") }
