package main

import (
	"bytes"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langid/internal/core/frame"
	perr "langid/internal/platform/errors"
)

// fakeServer frames each request with the real framer and answers with respond(parsed)
func fakeServer(t *testing.T, respond func(frame.Request) string) (string, func() []frame.Request) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	var (
		mu   sync.Mutex
		seen []frame.Request
	)
	f := frame.NewFramer(frame.Options{ReadTimeout: 2 * time.Second})
	p := frame.NewParser(frame.DefaultTerminator)
	p.Separator = "\n"
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			raw, err := f.Read(conn)
			if err == nil {
				req := p.Parse(raw)
				mu.Lock()
				seen = append(seen, req)
				mu.Unlock()
				_, _ = conn.Write([]byte(respond(req)))
			}
			_ = conn.Close()
		}
	}()
	return ln.Addr().String(), func() []frame.Request {
		mu.Lock()
		defer mu.Unlock()
		return append([]frame.Request(nil), seen...)
	}
}

func TestEncode(t *testing.T) {
	c := Client{}
	assert.Equal(t, "hi\n<<CLASSIFY>>\n", c.Encode(Request{Text: "hi\n"}))
	assert.Equal(t, "Das ist ein Test\nCLASSIFIER=alt\nLANGHINT=de\n<<CLASSIFY>>\n",
		c.Encode(Request{Text: "Das ist ein Test", Classifier: "alt", Hint: "de"}))
	assert.Equal(t, "x\n##\n", Client{Terminator: "##"}.Encode(Request{Text: "x"}))
}

func TestDo(t *testing.T) {
	addr, seen := fakeServer(t, func(r frame.Request) string {
		return "('" + r.Classifier + "', True, ())\n"
	})
	c := Client{Addr: addr, Timeout: 2 * time.Second}

	resp, err := c.Do(Request{Text: "hello", Classifier: "alt", Hint: "de"})
	require.NoError(t, err)
	assert.Equal(t, "('alt', True, ())", resp)
	got := seen()
	require.Len(t, got, 1)
	assert.Equal(t, "de", got[0].Hint)
	assert.True(t, strings.HasPrefix(got[0].Text, "hello"))
}

func TestDoErrors(t *testing.T) {
	addr, _ := fakeServer(t, func(frame.Request) string { return "" })
	_, err := Client{Addr: addr, Timeout: 2 * time.Second}.Do(Request{Text: "x"})
	assert.Equal(t, perr.ErrorCodeIncompleteFrame, perr.CodeOf(err))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	dead := ln.Addr().String()
	require.NoError(t, ln.Close())
	_, err = Client{Addr: dead, Timeout: time.Second}.Do(Request{Text: "x"})
	assert.Equal(t, perr.ErrorCodeUnavailable, perr.CodeOf(err))
}

func TestRepl(t *testing.T) {
	addr, seen := fakeServer(t, func(r frame.Request) string {
		return "(" + r.Classifier + "|" + r.Hint + ")\n"
	})
	var out bytes.Buffer
	in := strings.NewReader("Das ist ein Test\n\nquit\nnever sent\n")

	require.NoError(t, repl(Client{Addr: addr, Timeout: 2 * time.Second}, in, &out, "alt", "de"))

	assert.Equal(t, ">> (|)\nalt: (alt|)\nalt + langhint: (alt|de)\n>> >> ", out.String())
	assert.Len(t, seen(), 3)
}
