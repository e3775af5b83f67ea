package wirex

import "bytes"

const DefaultUserAgent = "minweb-browserx"

// BuildRequest renders the GET request for one exchange. The header order is
// fixed so the wire bytes are deterministic.
func BuildRequest(host, path, userAgent string) []byte {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	var buf bytes.Buffer
	buf.WriteString("GET ")
	buf.WriteString(path)
	buf.WriteString(" HTTP/1.1\r\n")
	buf.WriteString("Host: ")
	buf.WriteString(host)
	buf.WriteString("\r\n")
	buf.WriteString("User-Agent: ")
	buf.WriteString(userAgent)
	buf.WriteString("\r\n")
	buf.WriteString("Connection: keep-alive\r\n")
	buf.WriteString("Accept-Encoding: gzip\r\n")
	buf.WriteString("\r\n")
	return buf.Bytes()
}
