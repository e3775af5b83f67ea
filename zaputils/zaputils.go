package zaputils

import (
	"fmt"

	"go.uber.org/zap"
)

func Scheme(key string, val string) zap.Field {
	return zap.String(key, val)
}

func CacheKey(key string, val string) zap.Field {
	return zap.String(key, val)
}

type LoggableResource struct {
	Host string
	Port int
	Path string
}

func (e LoggableResource) String() string {
	if e.Path == "" {
		return fmt.Sprintf("%s:%d", e.Host, e.Port)
	}

	return fmt.Sprintf("%s:%d%s", e.Host, e.Port, e.Path)
}

func Origin(key string, host string, port int) zap.Field {
	return zap.Stringer(key, LoggableResource{
		Host: host,
		Port: port,
	})
}

func Resource(key string, host string, port int, path string) zap.Field {
	return zap.Stringer(key, LoggableResource{
		Host: host,
		Port: port,
		Path: path,
	})
}
