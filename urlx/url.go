package urlx

import (
	"errors"
	"net"
	"strconv"
	"strings"
)

var (
	ErrInvalidURL        = errors.New("invalid url")
	ErrUnsupportedScheme = errors.New("unsupported scheme")
)

// Scheme identifies where a URL's content comes from.
type Scheme string

const (
	SchemeHTTP  = Scheme("http")
	SchemeHTTPS = Scheme("https")
	SchemeFile  = Scheme("file")

	// SchemeData is the inline-data form `data:text/html,<payload>`, where the
	// payload after the comma is the content itself.
	SchemeData = Scheme("data:text/html")
)

// URL is a parsed URL. Values are immutable; redirect resolution produces a
// new value via Resolve rather than mutating an existing one.
type URL struct {
	Scheme Scheme
	Host   string
	Port   int
	Path   string
	Data   string
}

// Parse decomposes a raw URL string. The scheme is split off at `://`, or at
// the first `,` for the inline-data form. Network URLs always end up with a
// `/`-prefixed path, defaulting the port to 80/443 unless the host carries an
// explicit `host:port` suffix.
func Parse(raw string) (URL, error) {
	var scheme, rest string
	if idx := strings.Index(raw, "://"); idx >= 0 {
		scheme = raw[:idx]
		rest = raw[idx+3:]
	} else if idx := strings.IndexByte(raw, ','); idx >= 0 {
		scheme = raw[:idx]
		rest = raw[idx+1:]
	} else {
		return URL{}, ErrInvalidURL
	}

	switch Scheme(scheme) {
	case SchemeHTTP:
		return parseHostPath(SchemeHTTP, 80, rest)
	case SchemeHTTPS:
		return parseHostPath(SchemeHTTPS, 443, rest)
	case SchemeFile:
		return URL{Scheme: SchemeFile, Path: rest}, nil
	case SchemeData:
		return URL{Scheme: SchemeData, Data: rest}, nil
	default:
		return URL{}, ErrUnsupportedScheme
	}
}

func parseHostPath(scheme Scheme, defaultPort int, rest string) (URL, error) {
	if !strings.Contains(rest, "/") {
		rest += "/"
	}

	host, path, _ := strings.Cut(rest, "/")

	u := URL{
		Scheme: scheme,
		Host:   host,
		Port:   defaultPort,
		Path:   "/" + path,
	}

	if hostOnly, portStr, ok := strings.Cut(u.Host, ":"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 {
			return URL{}, ErrInvalidURL
		}
		u.Host = hostOnly
		u.Port = port
	}

	return u, nil
}

// Resolve interprets a Location header value relative to u. A value containing
// `://` is parsed as a full URL; anything else is a path-only redirect that
// keeps the scheme, host and port.
func (u URL) Resolve(location string) (URL, error) {
	if strings.Contains(location, "://") {
		return Parse(location)
	}

	next := u
	next.Path = location
	return next, nil
}

// Address returns the host:port dial address for network schemes.
func (u URL) Address() string {
	return net.JoinHostPort(u.Host, strconv.Itoa(u.Port))
}

// CacheKey identifies this resource in the response cache. The key is the
// exact scheme+host+path concatenation, with no normalization.
func (u URL) CacheKey() string {
	return string(u.Scheme) + u.Host + u.Path
}

func (u URL) String() string {
	switch u.Scheme {
	case SchemeHTTP, SchemeHTTPS:
		hostPort := u.Host
		if (u.Scheme == SchemeHTTP && u.Port != 80) || (u.Scheme == SchemeHTTPS && u.Port != 443) {
			hostPort = u.Address()
		}
		return string(u.Scheme) + "://" + hostPort + u.Path
	case SchemeFile:
		return "file://" + u.Path
	default:
		return string(u.Scheme) + "," + u.Data
	}
}
