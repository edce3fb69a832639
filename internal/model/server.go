package model

import (
	"context"
	"net"
)

// Server is a network server with a lifecycle.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

// SecurityLayer produces the listener a server accepts connections on,
// with or without TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}
