package wirex

import (
	"bytes"
	"io"
	"net"
	"time"
)

// scriptConn is an in-memory net.Conn that serves canned response bytes and
// records everything written to it.
type scriptConn struct {
	rdr     *bytes.Reader
	readErr error

	written  bytes.Buffer
	writeErr error

	closed bool
}

func newScriptConn(response string) *scriptConn {
	return &scriptConn{rdr: bytes.NewReader([]byte(response))}
}

func (c *scriptConn) Read(p []byte) (int, error) {
	n, err := c.rdr.Read(p)
	if err == io.EOF && c.readErr != nil {
		return n, c.readErr
	}
	return n, err
}

func (c *scriptConn) Write(p []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	return c.written.Write(p)
}

func (c *scriptConn) Close() error {
	c.closed = true
	return nil
}

func (c *scriptConn) LocalAddr() net.Addr                { return scriptAddr{} }
func (c *scriptConn) RemoteAddr() net.Addr               { return scriptAddr{} }
func (c *scriptConn) SetDeadline(t time.Time) error      { return nil }
func (c *scriptConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *scriptConn) SetWriteDeadline(t time.Time) error { return nil }

type scriptAddr struct{}

func (scriptAddr) Network() string { return "script" }
func (scriptAddr) String() string  { return "script" }

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

// newTestClient wires a client directly to conn, skipping the dial path.
func newTestClient(conn net.Conn) *Client {
	cli := NewClient(&ClientOptions{Address: "test.invalid:80"})
	cli.conn = newConn(conn, 0)
	return cli
}
