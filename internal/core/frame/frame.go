// Package frame implements the request framing protocol of the classify service:
// bytes are accumulated from a connection until the terminator token appears,
// then split into directive lines and payload text
package frame

import (
	"bytes"
	stderrs "errors"
	"io"
	"net"
	"os"
	"time"

	perr "langid/internal/platform/errors"
)

const (
	// DefaultTerminator marks "end of request, classify now"
	DefaultTerminator = "<<CLASSIFY>>"
	// DefaultChunkSize is the max number of bytes taken per read
	DefaultChunkSize = 255
)

// Options controls a Framer
type Options struct {
	// Terminator ends the read phase wherever it appears in the accumulated buffer
	Terminator string
	// ChunkSize bounds a single read
	ChunkSize int
	// MaxBytes bounds the accumulated buffer; 0 = unbounded
	MaxBytes int
	// ReadTimeout is refreshed before every read when the source supports deadlines; 0 disables
	ReadTimeout time.Duration
}

// deadliner is the slice of net.Conn the framer needs for read timeouts
type deadliner interface {
	SetReadDeadline(t time.Time) error
}

// Framer accumulates one request per call to Read
// It holds no per-request state and is safe for concurrent use
type Framer struct {
	opts Options
	term []byte
}

// NewFramer builds a Framer, filling zero options with defaults
func NewFramer(opts Options) *Framer {
	if opts.Terminator == "" {
		opts.Terminator = DefaultTerminator
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.MaxBytes < 0 {
		opts.MaxBytes = 0
	}
	return &Framer{opts: opts, term: []byte(opts.Terminator)}
}

// Terminator returns the configured terminator token
func (f *Framer) Terminator() string { return f.opts.Terminator }

// Read pulls chunks from r until the terminator is present in the accumulated
// buffer and returns everything received so far as text (terminator included).
//
// The terminator is searched for in the cumulative buffer, so a token split
// across reads is still found. UTF-8 is validated incrementally: an incomplete
// sequence at the end of a chunk waits for the next read, an invalid one is a
// framing error. A zero-byte read or EOF before the terminator ends the loop
// with ErrorCodeIncompleteFrame.
func (f *Framer) Read(r io.Reader) (string, error) {
	chunk := make([]byte, f.opts.ChunkSize)
	buf := make([]byte, 0, f.opts.ChunkSize)
	checked := 0
	dl, canDeadline := r.(deadliner)

	for {
		if canDeadline && f.opts.ReadTimeout > 0 {
			_ = dl.SetReadDeadline(time.Now().Add(f.opts.ReadTimeout))
		}
		n, err := r.Read(chunk)
		if n > 0 {
			// rescan only the bytes that could complete a token
			from := len(buf) - len(f.term) + 1
			if from < 0 {
				from = 0
			}
			buf = append(buf, chunk[:n]...)

			valid, ok := validPrefix(buf[checked:])
			if !ok {
				return "", perr.Framingf("invalid utf-8 at byte offset %d", checked+valid)
			}
			checked += valid

			if bytes.Contains(buf[from:], f.term) {
				if checked != len(buf) {
					return "", perr.Framingf("truncated utf-8 sequence after terminator")
				}
				return string(buf), nil
			}
			if f.opts.MaxBytes > 0 && len(buf) > f.opts.MaxBytes {
				return "", perr.Newf(perr.ErrorCodeFrameTooLarge, "frame exceeds %d bytes without terminator", f.opts.MaxBytes)
			}
		}

		switch {
		case err == nil && n == 0:
			return "", perr.New(perr.ErrorCodeIncompleteFrame, "empty read before terminator")
		case err == nil:
			continue
		case stderrs.Is(err, io.EOF):
			return "", perr.Wrap(err, perr.ErrorCodeIncompleteFrame, "peer closed before terminator")
		case isTimeout(err):
			return "", perr.Wrap(err, perr.ErrorCodeTimeout, "read deadline exceeded")
		default:
			return "", perr.Wrap(err, perr.ErrorCodeIncompleteFrame, "read failed before terminator")
		}
	}
}

func isTimeout(err error) bool {
	if stderrs.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return stderrs.As(err, &ne) && ne.Timeout()
}
