// Package testutil provides test doubles for the Unreal editor peer.
package testutil

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"testing"
	"time"
)

// Peer is a fake Unreal editor listening on a loopback port. Each accepted
// connection is handed to the handler in its own goroutine; the handler is
// responsible for closing the connection, mirroring the real editor's
// close-after-every-exchange behavior.
type Peer struct {
	ln      net.Listener
	wg      sync.WaitGroup
	mu      sync.Mutex
	accepts int
}

// StartPeer starts a fake editor on an ephemeral loopback port
func StartPeer(t *testing.T, handler func(conn net.Conn)) *Peer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start fake peer: %v", err)
	}

	p := &Peer{ln: ln}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			p.mu.Lock()
			p.accepts++
			p.mu.Unlock()
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()
				handler(conn)
			}()
		}
	}()

	t.Cleanup(p.Close)
	return p
}

// Addr returns the host:port the fake peer listens on
func (p *Peer) Addr() string {
	return p.ln.Addr().String()
}

// Port returns the listening port
func (p *Peer) Port() int {
	return p.ln.Addr().(*net.TCPAddr).Port
}

// Accepts returns how many connections the peer has accepted
func (p *Peer) Accepts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.accepts
}

// Close stops the listener and waits for handlers to finish
func (p *Peer) Close() {
	_ = p.ln.Close()
	p.wg.Wait()
}

// RespondJSON returns a handler that drains the request and answers with the
// given document, then closes - the editor's normal one-exchange cycle.
func RespondJSON(doc any) func(net.Conn) {
	payload, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return RespondRaw(payload)
}

// RespondRaw returns a handler that drains the request, writes raw bytes, and
// closes
func RespondRaw(payload []byte) func(net.Conn) {
	return func(conn net.Conn) {
		defer func() { _ = conn.Close() }()
		drainRequest(conn)
		_, _ = conn.Write(payload)
	}
}

// RespondFragments returns a handler that writes the response in pieces with
// a pause between each, then closes
func RespondFragments(fragments [][]byte, pause time.Duration) func(net.Conn) {
	return func(conn net.Conn) {
		defer func() { _ = conn.Close() }()
		drainRequest(conn)
		for _, frag := range fragments {
			_, _ = conn.Write(frag)
			time.Sleep(pause)
		}
	}
}

// CloseWithoutData returns a handler that accepts and immediately closes
// without sending anything
func CloseWithoutData() func(net.Conn) {
	return func(conn net.Conn) {
		drainRequest(conn)
		_ = conn.Close()
	}
}

// Hang returns a handler that accepts, drains the request, and then sends
// nothing until the connection is closed from the client side
func Hang() func(net.Conn) {
	return func(conn net.Conn) {
		defer func() { _ = conn.Close() }()
		drainRequest(conn)
		buf := make([]byte, 1)
		_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		_, _ = conn.Read(buf)
	}
}

// drainRequest reads the client's request until the write pauses. The fake
// peer does not parse it; it only needs the bytes off the socket before
// replying.
func drainRequest(conn net.Conn) {
	buf := make([]byte, 4096)
	_ = conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	for {
		n, err := conn.Read(buf)
		if err != nil || n < len(buf) {
			return
		}
	}
}

// DispatchedCall records one SendCommand invocation on a ScriptedDispatcher
type DispatchedCall struct {
	Command string
	Params  map[string]any
}

// ScriptedDispatcher is a canned-response stand-in for the transport client,
// used by tool handler tests.
type ScriptedDispatcher struct {
	mu        sync.Mutex
	Responses map[string]map[string]any
	Default   map[string]any
	PingErr   error
	Calls     []DispatchedCall
}

// SendCommand records the call and returns the scripted response
func (s *ScriptedDispatcher) SendCommand(_ context.Context, command string, params map[string]any) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, DispatchedCall{Command: command, Params: params})
	if resp, ok := s.Responses[command]; ok {
		return resp
	}
	if s.Default != nil {
		return s.Default
	}
	return map[string]any{"success": true}
}

// Ping returns the scripted ping error
func (s *ScriptedDispatcher) Ping(context.Context) error {
	return s.PingErr
}

// LastCall returns the most recent dispatched call, or nil
func (s *ScriptedDispatcher) LastCall() *DispatchedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Calls) == 0 {
		return nil
	}
	return &s.Calls[len(s.Calls)-1]
}
