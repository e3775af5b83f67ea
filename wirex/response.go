package wirex

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// HeaderMap holds response headers keyed by lower-cased, trimmed name.
// Duplicate names seen during parsing overwrite, last wins.
type HeaderMap map[string]string

// Get looks up a header value by name, case-insensitively.
func (h HeaderMap) Get(name string) string {
	return h[strings.ToLower(name)]
}

func (h HeaderMap) Has(name string) bool {
	_, ok := h[strings.ToLower(name)]
	return ok
}

// Response is the parsed status line and header block of one exchange. The
// body is read separately via ReadBody.
type Response struct {
	Version     string
	StatusCode  int
	Explanation string
	Headers     HeaderMap
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode <= 399
}

// ReadResponse parses the status line and header block from the connection.
// A status line with fewer than three fields or a non-numeric code is fatal;
// a header line without a `:` is logged and skipped.
func (c *Client) ReadResponse() (*Response, error) {
	if c.conn == nil {
		return nil, connectionError{message: "not connected"}
	}

	statusLine, err := c.conn.ReadLine()
	if err != nil {
		return nil, connectionError{
			message: "failed to read status line",
			cause:   err,
		}
	}

	c.logger.Debug("status line",
		zap.String("clientId", c.clientID),
		zap.String("line", statusLine))

	parts := strings.SplitN(statusLine, " ", 3)
	if len(parts) < 3 {
		return nil, malformedResponseError{
			message: "status line has fewer than 3 fields: " + statusLine,
		}
	}

	statusCode, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, malformedResponseError{
			message: "non-numeric status code: " + parts[1],
		}
	}

	headers := make(HeaderMap)
	for {
		line, err := c.conn.ReadLine()
		if err != nil {
			return nil, connectionError{
				message: "failed to read header line",
				cause:   err,
			}
		}
		if line == "" {
			break
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			c.logger.Warn("skipping malformed header line",
				zap.String("clientId", c.clientID),
				zap.String("line", line))
			continue
		}

		headers[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}

	c.logger.Debug("response headers parsed",
		zap.String("clientId", c.clientID),
		zap.Int("status", statusCode),
		zap.Int("headerCount", len(headers)))

	return &Response{
		Version:     parts[0],
		StatusCode:  statusCode,
		Explanation: parts[2],
		Headers:     headers,
	}, nil
}
