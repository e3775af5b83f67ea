package wirex

import (
	"context"
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequestReconnectsOnBrokenConnection(t *testing.T) {
	first := newScriptConn("")
	first.writeErr = syscall.EPIPE
	second := newScriptConn("")

	dials := 0
	cli := NewClient(&ClientOptions{Address: "test.invalid:80"})
	cli.dialFn = func(ctx context.Context) (*Conn, error) {
		dials++
		if dials == 1 {
			return newConn(first, 0), nil
		}
		return newConn(second, 0), nil
	}

	req := BuildRequest("test.invalid", "/", "")
	err := cli.SendRequest(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, dials)
	assert.True(t, first.closed)
	assert.Equal(t, string(req), second.written.String())
}

func TestSendRequestSecondFailureIsFatal(t *testing.T) {
	dials := 0
	cli := NewClient(&ClientOptions{Address: "test.invalid:80"})
	cli.dialFn = func(ctx context.Context) (*Conn, error) {
		dials++
		conn := newScriptConn("")
		conn.writeErr = syscall.ECONNRESET
		return newConn(conn, 0), nil
	}

	err := cli.SendRequest(context.Background(), []byte("GET / HTTP/1.1\r\n\r\n"))
	assert.ErrorIs(t, err, ErrConnection)
	assert.Equal(t, 2, dials)
}

func TestSendRequestOtherWriteErrorIsFatal(t *testing.T) {
	dials := 0
	cli := NewClient(&ClientOptions{Address: "test.invalid:80"})
	cli.dialFn = func(ctx context.Context) (*Conn, error) {
		dials++
		conn := newScriptConn("")
		conn.writeErr = errors.New("some transport error")
		return newConn(conn, 0), nil
	}

	err := cli.SendRequest(context.Background(), []byte("GET / HTTP/1.1\r\n\r\n"))
	assert.ErrorIs(t, err, ErrConnection)
	assert.Equal(t, 1, dials)
}

func TestSendRequestReusesConnection(t *testing.T) {
	conn := newScriptConn("")

	dials := 0
	cli := NewClient(&ClientOptions{Address: "test.invalid:80"})
	cli.dialFn = func(ctx context.Context) (*Conn, error) {
		dials++
		return newConn(conn, 0), nil
	}

	require.NoError(t, cli.SendRequest(context.Background(), []byte("one")))
	require.NoError(t, cli.SendRequest(context.Background(), []byte("two")))

	assert.Equal(t, 1, dials)
	assert.Equal(t, "onetwo", conn.written.String())
}

func TestSendRequestDialFailureIsFatal(t *testing.T) {
	cli := NewClient(&ClientOptions{Address: "test.invalid:80"})
	cli.dialFn = func(ctx context.Context) (*Conn, error) {
		return nil, connectionError{message: "failed to dial"}
	}

	err := cli.SendRequest(context.Background(), []byte("GET / HTTP/1.1\r\n\r\n"))
	assert.ErrorIs(t, err, ErrConnection)
}

func TestClientClose(t *testing.T) {
	conn := newScriptConn("")
	cli := newTestClient(conn)

	require.NoError(t, cli.Close())
	assert.True(t, conn.closed)

	// closing again is a no-op
	require.NoError(t, cli.Close())
}
