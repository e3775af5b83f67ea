package wirex

import (
	"bufio"
	"context"
	"crypto/tls"
	"net"
	"strings"
	"time"
)

// Conn is a single transport connection to an origin: plain TCP for http,
// TLS-wrapped TCP for https with the certificate chain verified against the
// origin host by the platform trust store.
type Conn struct {
	netConn net.Conn
	rdr     *bufio.Reader
	timeout time.Duration
}

type connConfig struct {
	address    string
	useTLS     bool
	serverName string
	timeout    time.Duration
}

func dialConn(ctx context.Context, cfg connConfig) (*Conn, error) {
	dialer := net.Dialer{Timeout: cfg.timeout}
	tcpConn, err := dialer.DialContext(ctx, "tcp", cfg.address)
	if err != nil {
		return nil, connectionError{
			message: "failed to dial " + cfg.address,
			cause:   err,
		}
	}

	// attempt to set no-delay, if it fails, ignore it
	if tc, ok := tcpConn.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}

	var netConn net.Conn = tcpConn
	if cfg.useTLS {
		tlsConn := tls.Client(tcpConn, &tls.Config{
			ServerName: cfg.serverName,
		})

		handshakeCtx := ctx
		if cfg.timeout > 0 {
			var cancel context.CancelFunc
			handshakeCtx, cancel = context.WithTimeout(ctx, cfg.timeout)
			defer cancel()
		}

		if err := tlsConn.HandshakeContext(handshakeCtx); err != nil {
			_ = tcpConn.Close()
			return nil, connectionError{
				message: "tls handshake with " + cfg.address + " failed",
				cause:   err,
			}
		}

		netConn = tlsConn
	}

	return newConn(netConn, cfg.timeout), nil
}

func newConn(netConn net.Conn, timeout time.Duration) *Conn {
	return &Conn{
		netConn: netConn,
		rdr:     bufio.NewReader(netConn),
		timeout: timeout,
	}
}

func (c *Conn) armReadDeadline() {
	if c.timeout > 0 {
		_ = c.netConn.SetReadDeadline(time.Now().Add(c.timeout))
	}
}

// Write sends buf in full.
func (c *Conn) Write(buf []byte) error {
	if c.timeout > 0 {
		_ = c.netConn.SetWriteDeadline(time.Now().Add(c.timeout))
	}

	for len(buf) > 0 {
		n, err := c.netConn.Write(buf)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}

// ReadLine reads one CRLF-terminated line and returns it without the
// terminator.
func (c *Conn) ReadLine() (string, error) {
	c.armReadDeadline()

	line, err := c.rdr.ReadString('\n')
	if err != nil {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (c *Conn) Read(p []byte) (int, error) {
	c.armReadDeadline()
	return c.rdr.Read(p)
}

func (c *Conn) Close() error {
	return c.netConn.Close()
}
