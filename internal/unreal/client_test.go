package unreal

import (
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/unrealmcp/unrealmcp/internal/config"
	"github.com/unrealmcp/unrealmcp/internal/testutil"
)

func testConfig(port int) config.ConnectionConfig {
	return config.ConnectionConfig{
		Host:       "127.0.0.1",
		Port:       port,
		Timeout:    1,
		BufferSize: 4096,
		MaxRetries: 1,
		RetryDelay: 0.01,
	}
}

// shortenReadTimeout drops the per-read deadline so timeout tests finish fast
func shortenReadTimeout(t *testing.T, d time.Duration) {
	t.Helper()
	old := readTimeout
	readTimeout = d
	t.Cleanup(func() { readTimeout = old })
}

func TestSendCommand_Success(t *testing.T) {
	peer := testutil.StartPeer(t, testutil.RespondJSON(map[string]any{
		"status": "success",
		"result": map[string]any{"actors": []any{}},
	}))

	client := NewClient(testConfig(peer.Port()))
	resp := client.SendCommand(context.Background(), "get_actors_in_level", nil)

	if IsError(resp) {
		t.Fatalf("SendCommand returned error result: %v", resp)
	}
	if resp["status"] != "success" {
		t.Errorf("status = %v, want success", resp["status"])
	}
}

func TestSendCommand_EnvelopeShape(t *testing.T) {
	got := make(chan []byte, 1)
	peer := testutil.StartPeer(t, func(conn net.Conn) {
		defer func() { _ = conn.Close() }()
		buf := make([]byte, 4096)
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		n, _ := conn.Read(buf)
		got <- buf[:n]
		_, _ = conn.Write([]byte(`{"status":"success"}`))
	})

	client := NewClient(testConfig(peer.Port()))
	resp := client.SendCommand(context.Background(), "spawn_actor", map[string]any{"name": "Cube1"})
	if IsError(resp) {
		t.Fatalf("unexpected error result: %v", resp)
	}

	var envelope struct {
		Type   string         `json:"type"`
		Params map[string]any `json:"params"`
	}
	if err := json.Unmarshal(<-got, &envelope); err != nil {
		t.Fatalf("request was not valid JSON: %v", err)
	}
	if envelope.Type != "spawn_actor" {
		t.Errorf("envelope type = %q, want %q", envelope.Type, "spawn_actor")
	}
	if envelope.Params["name"] != "Cube1" {
		t.Errorf("envelope params = %v, want name=Cube1", envelope.Params)
	}
}

func TestSendCommand_NilParamsBecomesEmptyObject(t *testing.T) {
	got := make(chan []byte, 1)
	peer := testutil.StartPeer(t, func(conn net.Conn) {
		defer func() { _ = conn.Close() }()
		buf := make([]byte, 4096)
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		n, _ := conn.Read(buf)
		got <- buf[:n]
		_, _ = conn.Write([]byte(`{"status":"success"}`))
	})

	client := NewClient(testConfig(peer.Port()))
	client.SendCommand(context.Background(), "ping", nil)

	raw := string(<-got)
	if strings.Contains(raw, `"params":null`) {
		t.Errorf("nil params serialized as null: %s", raw)
	}
	if !strings.Contains(raw, `"params":{}`) {
		t.Errorf("expected empty params object, got: %s", raw)
	}
}

func TestSendCommand_FreshConnectionPerCommand(t *testing.T) {
	peer := testutil.StartPeer(t, testutil.RespondJSON(map[string]any{"status": "success"}))

	client := NewClient(testConfig(peer.Port()))
	for i := 0; i < 3; i++ {
		resp := client.SendCommand(context.Background(), "ping", nil)
		if IsError(resp) {
			t.Fatalf("command %d failed: %v", i, resp)
		}
	}

	if got := peer.Accepts(); got != 3 {
		t.Errorf("peer accepted %d connections, want 3 (one per command)", got)
	}
	if client.Connected() {
		t.Error("client still holds a connection between commands")
	}
}

func TestSendCommand_FragmentedResponse(t *testing.T) {
	doc := `{"status":"success","result":{"actors":[{"name":"Floor"},{"name":"Light"}]}}`
	third := len(doc) / 3
	fragments := [][]byte{
		[]byte(doc[:third]),
		[]byte(doc[third : 2*third]),
		[]byte(doc[2*third:]),
	}
	peer := testutil.StartPeer(t, testutil.RespondFragments(fragments, 30*time.Millisecond))

	client := NewClient(testConfig(peer.Port()))
	resp := client.SendCommand(context.Background(), "get_actors_in_level", nil)

	if IsError(resp) {
		t.Fatalf("fragmented response not assembled: %v", resp)
	}
	result, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("missing result in %v", resp)
	}
	actors, ok := result["actors"].([]any)
	if !ok || len(actors) != 2 {
		t.Errorf("actors = %v, want 2 entries", result["actors"])
	}
}

func TestSendCommand_NormalizesErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name     string
		response map[string]any
		wantErr  string
	}{
		{
			name:     "success false with message",
			response: map[string]any{"success": false, "message": "actor not found"},
			wantErr:  "actor not found",
		},
		{
			name:     "status error with message only",
			response: map[string]any{"status": "error", "message": "bad params"},
			wantErr:  "bad params",
		},
		{
			name:     "error preferred over message",
			response: map[string]any{"success": false, "error": "primary", "message": "secondary"},
			wantErr:  "primary",
		},
		{
			name:     "error shape with no text",
			response: map[string]any{"success": false},
			wantErr:  "unknown Unreal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			peer := testutil.StartPeer(t, testutil.RespondJSON(tt.response))
			client := NewClient(testConfig(peer.Port()))

			resp := client.SendCommand(context.Background(), "delete_actor", map[string]any{"name": "X"})

			if !IsError(resp) {
				t.Fatalf("expected error result, got %v", resp)
			}
			if got := ErrorText(resp); got != tt.wantErr {
				t.Errorf("error text = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestSendCommand_SuccessPassesThroughUntouched(t *testing.T) {
	peer := testutil.StartPeer(t, testutil.RespondJSON(map[string]any{
		"status":  "success",
		"message": "spawned",
	}))

	client := NewClient(testConfig(peer.Port()))
	resp := client.SendCommand(context.Background(), "spawn_actor", nil)

	if IsError(resp) {
		t.Fatalf("unexpected error result: %v", resp)
	}
	if resp["message"] != "spawned" {
		t.Errorf("message = %v, want untouched passthrough", resp["message"])
	}
}

func TestSendCommand_ConnectFailureIsErrorResult(t *testing.T) {
	// Grab a port that nothing listens on
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()

	cfg := testConfig(port)
	cfg.MaxRetries = 2
	client := NewClient(cfg)

	resp := client.SendCommand(context.Background(), "ping", nil)

	if !IsError(resp) {
		t.Fatalf("expected error result, got %v", resp)
	}
	if !strings.Contains(ErrorText(resp), "failed to connect") {
		t.Errorf("error text = %q, want connect failure", ErrorText(resp))
	}
}

func TestSendCommand_PeerClosesWithoutData(t *testing.T) {
	peer := testutil.StartPeer(t, testutil.CloseWithoutData())

	client := NewClient(testConfig(peer.Port()))
	resp := client.SendCommand(context.Background(), "ping", nil)

	if !IsError(resp) {
		t.Fatalf("expected error result, got %v", resp)
	}
	if !strings.Contains(ErrorText(resp), "closed before receiving data") {
		t.Errorf("error text = %q, want peer-closed message", ErrorText(resp))
	}
}

func TestSendCommand_ReceiveTimeoutIsErrorResult(t *testing.T) {
	shortenReadTimeout(t, 150*time.Millisecond)
	peer := testutil.StartPeer(t, testutil.Hang())

	client := NewClient(testConfig(peer.Port()))
	resp := client.SendCommand(context.Background(), "ping", nil)

	if !IsError(resp) {
		t.Fatalf("expected error result, got %v", resp)
	}
	if !strings.Contains(ErrorText(resp), "timeout receiving") {
		t.Errorf("error text = %q, want receive timeout", ErrorText(resp))
	}
	if client.Connected() {
		t.Error("connection not torn down after timeout")
	}
}

func TestSendCommand_PeerClosesAfterGarbage(t *testing.T) {
	peer := testutil.StartPeer(t, testutil.RespondRaw([]byte(`{"a":1}{"b":2}`)))

	client := NewClient(testConfig(peer.Port()))
	resp := client.SendCommand(context.Background(), "ping", nil)

	if !IsError(resp) {
		t.Fatalf("expected error result for pipelined documents, got %v", resp)
	}
	if !strings.Contains(ErrorText(resp), "never formed valid JSON") {
		t.Errorf("error text = %q, want protocol error", ErrorText(resp))
	}
}

func TestSendCommand_SlowButCompleteResponseBeforeTimeout(t *testing.T) {
	shortenReadTimeout(t, 200*time.Millisecond)

	// The peer sends a complete document but never closes; the read timeout
	// fires and the already-complete buffer must still be used
	peer := testutil.StartPeer(t, func(conn net.Conn) {
		defer func() { _ = conn.Close() }()
		buf := make([]byte, 4096)
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		_, _ = conn.Read(buf)
		_, _ = conn.Write([]byte(`{"status":"success"}`))
		time.Sleep(600 * time.Millisecond)
	})

	client := NewClient(testConfig(peer.Port()))
	resp := client.SendCommand(context.Background(), "ping", nil)

	if IsError(resp) {
		t.Fatalf("expected success from completed buffer, got %v", resp)
	}
}

func TestSendCommand_RetriesConnectPhase(t *testing.T) {
	// No listener: every dial fails, so the call should take at least the
	// inter-attempt delays
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()

	cfg := testConfig(port)
	cfg.MaxRetries = 3
	cfg.RetryDelay = 0.05
	client := NewClient(cfg)

	start := time.Now()
	resp := client.SendCommand(context.Background(), "ping", nil)
	elapsed := time.Since(start)

	if !IsError(resp) {
		t.Fatalf("expected error result, got %v", resp)
	}
	// Two delays between three attempts
	if elapsed < 100*time.Millisecond {
		t.Errorf("call returned in %v, want at least 100ms of retry delays", elapsed)
	}
}

func TestSendCommand_ContextCancelDuringRetry(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()

	cfg := testConfig(port)
	cfg.MaxRetries = 10
	cfg.RetryDelay = 1
	client := NewClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	resp := client.SendCommand(ctx, "ping", nil)

	if !IsError(resp) {
		t.Fatalf("expected error result, got %v", resp)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("cancellation took %v, retries not interrupted", elapsed)
	}
}

func TestPing(t *testing.T) {
	t.Run("reachable editor", func(t *testing.T) {
		peer := testutil.StartPeer(t, testutil.CloseWithoutData())
		client := NewClient(testConfig(peer.Port()))
		if err := client.Ping(context.Background()); err != nil {
			t.Errorf("Ping() error = %v, want nil", err)
		}
	})

	t.Run("unreachable editor", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatal(err)
		}
		port := ln.Addr().(*net.TCPAddr).Port
		_ = ln.Close()

		client := NewClient(testConfig(port))
		if err := client.Ping(context.Background()); err == nil {
			t.Error("Ping() = nil, want error for closed port")
		}
	})
}

func TestSetConfig_TakesEffectOnNextCommand(t *testing.T) {
	peerA := testutil.StartPeer(t, testutil.RespondJSON(map[string]any{"status": "success", "peer": "a"}))
	peerB := testutil.StartPeer(t, testutil.RespondJSON(map[string]any{"status": "success", "peer": "b"}))

	client := NewClient(testConfig(peerA.Port()))
	resp := client.SendCommand(context.Background(), "ping", nil)
	if resp["peer"] != "a" {
		t.Fatalf("first command answered by %v, want a", resp["peer"])
	}

	client.SetConfig(testConfig(peerB.Port()))
	resp = client.SendCommand(context.Background(), "ping", nil)
	if resp["peer"] != "b" {
		t.Errorf("after SetConfig command answered by %v, want b", resp["peer"])
	}
}
