package main

import (
	"io"
	"net"
	"strings"
	"time"

	"langid/internal/core/frame"
	perr "langid/internal/platform/errors"
)

// Client sends one request per connection
type Client struct {
	Addr       string
	Timeout    time.Duration
	Terminator string
}

// Request is what gets written before the terminator
type Request struct {
	Text       string
	Classifier string
	Hint       string
}

// Encode renders r as the lines the server expects
func (c Client) Encode(r Request) string {
	term := c.Terminator
	if term == "" {
		term = frame.DefaultTerminator
	}
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(r.Text, "\n"))
	b.WriteByte('\n')
	if r.Classifier != "" {
		b.WriteString(frame.KeyClassifier + "=" + r.Classifier + "\n")
	}
	if r.Hint != "" {
		b.WriteString(frame.KeyHint + "=" + r.Hint + "\n")
	}
	b.WriteString(term + "\n")
	return b.String()
}

// Do sends r and returns the server's single response, trailing newline removed
// An empty response means the server dropped the request
func (c Client) Do(r Request) (string, error) {
	conn, err := net.DialTimeout("tcp", c.Addr, c.Timeout)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "dial %s", c.Addr)
	}
	defer func() { _ = conn.Close() }()
	if c.Timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(c.Timeout))
	}

	if _, err := io.WriteString(conn, c.Encode(r)); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "send request")
	}
	out, err := io.ReadAll(conn)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeTimeout, "read response")
	}
	if len(out) == 0 {
		return "", perr.New(perr.ErrorCodeIncompleteFrame, "server closed without a response")
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}
