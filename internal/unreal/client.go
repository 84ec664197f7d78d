package unreal

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/unrealmcp/unrealmcp/internal/config"
	"github.com/unrealmcp/unrealmcp/internal/logger"
	"github.com/unrealmcp/unrealmcp/internal/metrics"
)

// Dispatcher is the interface the tool layer talks to. Client implements it;
// tests substitute a stub.
type Dispatcher interface {
	// SendCommand forwards one command to the editor and returns the
	// normalized result. It never returns a Go error: every failure is
	// reported as a canonical {"status":"error","error":...} result.
	SendCommand(ctx context.Context, command string, params map[string]any) map[string]any

	// Ping verifies the editor is reachable without issuing a command
	Ping(ctx context.Context) error
}

// CommandEnvelope is the request document written to the wire
type CommandEnvelope struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params"`
}

// Client is the command dispatcher: the single public entry point of the
// transport core. Each SendCommand call opens its own connection and closes
// it before returning - the editor terminates its side after every exchange,
// so reuse would hand the next command a dead socket.
//
// Calls are expected to be serialized by the caller; the client holds no
// per-command locking. The config mutex only guards hot-reload swaps.
type Client struct {
	mu   sync.RWMutex
	cfg  config.ConnectionConfig
	conn *Connection
}

// NewClient creates a dispatcher for the given connection settings
func NewClient(cfg config.ConnectionConfig) *Client {
	return &Client{
		cfg:  cfg,
		conn: NewConnection(cfg),
	}
}

// SetConfig swaps connection settings, used by config hot reload. Takes
// effect on the next command; an in-flight command finishes on the old
// settings.
func (c *Client) SetConfig(cfg config.ConnectionConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
	c.conn = NewConnection(cfg)
}

// Connected reports whether the client currently holds a live socket. Always
// false between commands.
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn.Connected()
}

// SendCommand implements Dispatcher
func (c *Client) SendCommand(ctx context.Context, command string, params map[string]any) map[string]any {
	c.mu.RLock()
	cfg := c.cfg
	conn := c.conn
	c.mu.RUnlock()

	// Every command starts from a guaranteed-fresh connection; whatever the
	// previous call left behind is unusable.
	conn.Disconnect()

	// The connection must be closed on every exit path - the editor has
	// already closed, or is about to close, its end.
	defer conn.Disconnect()

	if err := c.connectWithRetry(ctx, conn, cfg); err != nil {
		logger.Error("Failed to connect to Unreal Engine for command %q", command)
		return ErrorResult(err.Error())
	}

	if params == nil {
		params = map[string]any{}
	}
	payload, err := json.Marshal(CommandEnvelope{Type: command, Params: params})
	if err != nil {
		return ErrorResult(fmt.Sprintf("failed to encode command %q: %v", command, err))
	}

	logger.Info("Sending command: %s", payload)
	if err := conn.Send(payload); err != nil {
		logger.Error("Error sending command %q: %v", command, err)
		return ErrorResult(err.Error())
	}

	raw, err := conn.ReceiveFullResponse()
	if err != nil {
		logger.Error("Error receiving response for %q: %v", command, err)
		return ErrorResult(err.Error())
	}

	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		logger.Error("Unparseable response for %q: %v", command, err)
		return ErrorResult(fmt.Sprintf("invalid response from Unreal: %v", err))
	}

	resp = Normalize(resp)
	if IsError(resp) {
		logger.Error("Unreal error for %q: %s", command, ErrorText(resp))
	}
	return resp
}

// connectWithRetry dials the editor, honoring max_retries/retry_delay for the
// connect phase only. Send and receive are never retried: each command is
// independent and the caller may simply try again.
func (c *Client) connectWithRetry(ctx context.Context, conn *Connection, cfg config.ConnectionConfig) error {
	attempts := cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			logger.Info("Retrying connection to Unreal (%d/%d)...", i+1, attempts)
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrConnectFailed, ctx.Err())
			case <-time.After(cfg.RetryDelayDuration()):
			}
		}
		if err := conn.Connect(ctx); err != nil {
			metrics.RecordConnectFailure()
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

// Ping dials the editor and immediately closes the connection. Used by the
// readiness endpoint and the check_unreal_connection tool.
func (c *Client) Ping(ctx context.Context) error {
	c.mu.RLock()
	cfg := c.cfg
	c.mu.RUnlock()

	dialer := net.Dialer{Timeout: cfg.TimeoutDuration()}
	sock, err := dialer.DialContext(ctx, "tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("%w at %s: %v", ErrConnectFailed, cfg.Addr(), err)
	}
	_ = sock.Close()
	return nil
}
