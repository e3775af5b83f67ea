package wirex

import (
	"bytes"
	"compress/gzip"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const bodyReadChunkSize = 4096

// ReadBody consumes the body of resp from the connection and returns it as
// text. Framing follows the headers: chunked transfer encoding, else
// Content-Length (0 when absent). Irregularities degrade rather than fail:
// short reads and read timeouts keep the partial body, a bad gzip stream
// yields the raw bytes, and invalid UTF-8 is replaced. Showing something
// beats showing nothing.
func (c *Client) ReadBody(resp *Response) (string, error) {
	if c.conn == nil {
		return "", connectionError{message: "not connected"}
	}

	var body []byte
	if resp.Headers.Get("Transfer-Encoding") == "chunked" {
		c.logger.Debug("chunked transfer encoding detected",
			zap.String("clientId", c.clientID))
		body = c.readChunkedBody()
	} else {
		contentLength := 0
		if v := resp.Headers.Get("Content-Length"); v != "" {
			var err error
			contentLength, err = strconv.Atoi(v)
			if err != nil {
				return "", malformedResponseError{
					message: "bad content-length: " + v,
				}
			}
			if contentLength < 0 {
				c.logger.Warn("negative content-length, treating body as empty",
					zap.String("clientId", c.clientID),
					zap.Int("contentLength", contentLength))
				contentLength = 0
			}
		}
		c.logger.Debug("reading fixed-length body",
			zap.String("clientId", c.clientID),
			zap.Int("contentLength", contentLength))
		body = c.readFixedBody(contentLength)
	}

	if resp.Headers.Get("Content-Encoding") == "gzip" {
		decompressed, err := gunzip(body)
		if err != nil {
			c.logger.Warn("failed to decompress gzip body, returning raw bytes",
				zap.String("clientId", c.clientID),
				zap.Error(err))
		} else {
			body = decompressed
		}
	}

	return decodeLossy(body), nil
}

func (c *Client) readFixedBody(contentLength int) []byte {
	body := make([]byte, 0, contentLength)
	buf := make([]byte, bodyReadChunkSize)

	for len(body) < contentLength {
		want := contentLength - len(body)
		if want > len(buf) {
			want = len(buf)
		}

		n, err := c.conn.Read(buf[:want])
		body = append(body, buf[:n]...)
		if err != nil {
			if isTimeoutError(err) {
				c.logger.Warn("timed out reading response body, keeping partial body",
					zap.String("clientId", c.clientID),
					zap.Int("received", len(body)),
					zap.Int("contentLength", contentLength))
			} else {
				c.logger.Warn("connection closed before full body, keeping partial body",
					zap.String("clientId", c.clientID),
					zap.Int("received", len(body)),
					zap.Int("contentLength", contentLength),
					zap.Error(err))
			}
			break
		}
	}

	return body
}

// readChunkedBody concatenates chunks until the zero-size terminator and its
// trailing empty line. Chunk sizes are not capped. Any irregularity stops the
// loop with whatever was collected.
func (c *Client) readChunkedBody() []byte {
	var body []byte
	for {
		sizeLine, err := c.conn.ReadLine()
		if err != nil {
			c.logger.Warn("failed to read chunk size line, keeping partial body",
				zap.String("clientId", c.clientID),
				zap.Int("received", len(body)),
				zap.Error(err))
			break
		}

		size, err := strconv.ParseInt(strings.TrimSpace(sizeLine), 16, 64)
		if err != nil || size < 0 {
			c.logger.Warn("malformed chunk size line, keeping partial body",
				zap.String("clientId", c.clientID),
				zap.String("line", sizeLine))
			break
		}

		if size == 0 {
			// trailing empty line after the last chunk
			_, _ = c.conn.ReadLine()
			break
		}

		chunk := make([]byte, size)
		n, err := io.ReadFull(c.conn, chunk)
		body = append(body, chunk[:n]...)
		if err != nil {
			c.logger.Warn("truncated chunk, keeping partial body",
				zap.String("clientId", c.clientID),
				zap.Int("received", len(body)),
				zap.Error(err))
			break
		}

		// CRLF terminating this chunk's data
		_, _ = c.conn.ReadLine()
	}

	return body
}

func gunzip(buf []byte) ([]byte, error) {
	rdr, err := gzip.NewReader(bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}

	out, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}

	if err := rdr.Close(); err != nil {
		return nil, err
	}

	return out, nil
}

// decodeLossy converts bytes to a string, replacing each invalid UTF-8 byte
// instead of failing.
func decodeLossy(buf []byte) string {
	if utf8.Valid(buf) {
		return string(buf)
	}

	var text strings.Builder
	text.Grow(len(buf))
	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size == 1 {
			text.WriteRune(utf8.RuneError)
		} else {
			text.Write(buf[:size])
		}
		buf = buf[size:]
	}
	return text.String()
}
