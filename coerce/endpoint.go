package coerce

import (
	"errors"
	"strconv"
	"strings"
)

// EndpointConfiguration describes a remote endpoint to connect to: either a
// TCP host and port, or the path to a UNIX domain socket. Network and String
// return values suitable for net.Dial.
type EndpointConfiguration struct {
	Net  string // "tcp" or "unix"
	Host string // tcp only
	Port int    // tcp only
	Path string // unix only
}

// Network returns "tcp" or "unix".
func (e EndpointConfiguration) Network() string { return e.Net }

func (e EndpointConfiguration) String() string {
	if e.Net == "unix" {
		return e.Path
	}
	return e.Host + ":" + strconv.Itoa(e.Port)
}

// Endpoint parses a remote endpoint. A "host:port" pair yields a TCP
// endpoint; any text containing a slash is interpreted as the path to a
// UNIX domain socket.
func Endpoint(text string) (EndpointConfiguration, error) {
	if text == "" {
		return EndpointConfiguration{}, errors.New("no endpoint specified")
	}

	if strings.ContainsRune(text, '/') {
		return EndpointConfiguration{Net: "unix", Path: text}, nil
	}

	host, portText, ok := strings.Cut(text, ":")
	if !ok {
		return EndpointConfiguration{}, errors.New("no port specified")
	}
	port, err := strconv.Atoi(portText)
	if err != nil {
		return EndpointConfiguration{}, err
	}
	return EndpointConfiguration{Net: "tcp", Host: host, Port: port}, nil
}
