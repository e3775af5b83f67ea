package wirex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRequest(t *testing.T) {
	req := BuildRequest("example.com", "/index.html", "test-agent")

	expected := "GET /index.html HTTP/1.1\r\n" +
		"Host: example.com\r\n" +
		"User-Agent: test-agent\r\n" +
		"Connection: keep-alive\r\n" +
		"Accept-Encoding: gzip\r\n" +
		"\r\n"
	assert.Equal(t, expected, string(req))
}

func TestBuildRequestDefaultUserAgent(t *testing.T) {
	req := BuildRequest("example.com", "/", "")
	assert.Contains(t, string(req), "User-Agent: "+DefaultUserAgent+"\r\n")
}
