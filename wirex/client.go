package wirex

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Client is a minimal HTTP/1.1 client bound to a single origin. It owns zero
// or one transport connection, dialed lazily on the first send and kept open
// across exchanges for reuse. A broken connection discovered during a send is
// redialed exactly once.
//
// Note that it is not thread-safe; a client is exclusively owned by the fetch
// session that created it.
type Client struct {
	address    string
	useTLS     bool
	serverName string
	timeout    time.Duration
	logger     *zap.Logger
	clientID   string

	conn   *Conn
	dialFn func(ctx context.Context) (*Conn, error)
}

type ClientOptions struct {
	Address    string
	UseTLS     bool
	ServerName string
	Timeout    time.Duration
	Logger     *zap.Logger
}

func NewClient(opts *ClientOptions) *Client {
	if opts == nil {
		opts = &ClientOptions{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		address:    opts.Address,
		useTLS:     opts.UseTLS,
		serverName: opts.ServerName,
		timeout:    timeout,
		logger:     logger,
		clientID:   uuid.NewString(),
	}
	c.dialFn = func(ctx context.Context) (*Conn, error) {
		return dialConn(ctx, connConfig{
			address:    c.address,
			useTLS:     c.useTLS,
			serverName: c.serverName,
			timeout:    c.timeout,
		})
	}

	return c
}

func (c *Client) ensureConnected(ctx context.Context) (*Conn, error) {
	if c.conn != nil {
		return c.conn, nil
	}

	conn, err := c.dialFn(ctx)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("connected",
		zap.String("clientId", c.clientID),
		zap.String("address", c.address),
		zap.Bool("tls", c.useTLS))

	c.conn = conn
	return conn, nil
}

// SendRequest writes one request to the origin, connecting first if needed.
// A write that fails because the peer closed or reset the connection causes
// a single reconnect and rewrite; any further failure is fatal.
func (c *Client) SendRequest(ctx context.Context, req []byte) error {
	conn, err := c.ensureConnected(ctx)
	if err != nil {
		return err
	}

	err = conn.Write(req)
	if err == nil {
		return nil
	}

	if !isBrokenConnError(err) {
		return connectionError{
			message: "failed to write request",
			cause:   err,
		}
	}

	c.logger.Debug("connection broken during send, reconnecting",
		zap.String("clientId", c.clientID),
		zap.String("address", c.address),
		zap.Error(err))
	reconnects.Add(ctx, 1)

	_ = conn.Close()
	c.conn = nil

	conn, err = c.ensureConnected(ctx)
	if err != nil {
		return err
	}

	if err := conn.Write(req); err != nil {
		return connectionError{
			message: "failed to write request after reconnect",
			cause:   err,
		}
	}
	return nil
}

// Close tears down the owned connection, if any. Intended for session
// teardown; the client reconnects lazily if used again.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	return err
}
