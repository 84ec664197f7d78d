package unreal

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/unrealmcp/unrealmcp/internal/config"
	"github.com/unrealmcp/unrealmcp/internal/logger"
)

// Connection owns one live socket to the Unreal editor. The editor closes its
// side after every command/response cycle, so a Connection is created fresh
// for each command and torn down unconditionally afterwards - it is never
// reused, pooled, or shared across calls.
type Connection struct {
	cfg       config.ConnectionConfig
	sock      net.Conn
	connected bool
}

// NewConnection creates a disconnected Connection for the given settings
func NewConnection(cfg config.ConnectionConfig) *Connection {
	return &Connection{cfg: cfg}
}

// Connect closes any held socket, then dials the editor and applies socket
// options. It never assumes a previous connection is reusable.
func (c *Connection) Connect(ctx context.Context) error {
	// Close any existing socket first; the peer has already abandoned it
	c.Disconnect()

	logger.Info("Connecting to Unreal at %s...", c.cfg.Addr())

	dialer := net.Dialer{Timeout: c.cfg.TimeoutDuration()}
	sock, err := dialer.DialContext(ctx, "tcp", c.cfg.Addr())
	if err != nil {
		logger.Error("Failed to connect to Unreal: %v", err)
		return fmt.Errorf("%w at %s: %v", ErrConnectFailed, c.cfg.Addr(), err)
	}

	// Small command/response messages must not sit in Nagle's buffer, and
	// keep-alive guards against half-open sockets while the editor works.
	if tc, ok := sock.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
		_ = tc.SetKeepAlive(true)
		_ = tc.SetReadBuffer(c.cfg.BufferSize)
		_ = tc.SetWriteBuffer(c.cfg.BufferSize)
	}

	c.sock = sock
	c.connected = true
	logger.Info("Connected to Unreal Engine")
	return nil
}

// Disconnect closes the socket if present. The handle is always cleared and
// the connected flag reset, whether or not close succeeded.
func (c *Connection) Disconnect() {
	if c.sock != nil {
		_ = c.sock.Close()
	}
	c.sock = nil
	c.connected = false
}

// Connected reports whether a live socket is held
func (c *Connection) Connected() bool {
	return c.connected
}

// Send writes the whole payload to the socket. No delimiter or length prefix
// follows the document; the peer frames by parsing.
func (c *Connection) Send(payload []byte) error {
	if c.sock == nil {
		return ErrNotConnected
	}
	_ = c.sock.SetWriteDeadline(time.Now().Add(c.cfg.TimeoutDuration()))
	for len(payload) > 0 {
		n, err := c.sock.Write(payload)
		if err != nil {
			return fmt.Errorf("failed to send command: %w", err)
		}
		payload = payload[n:]
	}
	return nil
}
