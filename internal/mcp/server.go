package mcp

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	mcp_sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unrealmcp/unrealmcp/internal/config"
	"github.com/unrealmcp/unrealmcp/internal/history"
	"github.com/unrealmcp/unrealmcp/internal/logger"
	"github.com/unrealmcp/unrealmcp/internal/metrics"
	"github.com/unrealmcp/unrealmcp/internal/unreal"
)

// Version is the server version reported to MCP clients
const Version = "0.1.0"

// generateRequestID creates a unique request identifier
func generateRequestID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// configReloader is implemented by dispatchers whose connection settings can
// be swapped at runtime. The concrete unreal.Client implements it; test stubs
// need not.
type configReloader interface {
	SetConfig(config.ConnectionConfig)
}

// Server wraps the MCP server with the editor dispatcher and its supporting
// stores
type Server struct {
	client    unreal.Dispatcher
	registry  *Registry
	history   *history.Store
	watcher   *config.Watcher
	mcpServer *mcp_sdk.Server
	startedAt time.Time

	// cfgMu guards cfg, which the reload_config tool swaps at runtime
	cfgMu sync.RWMutex
	cfg   *config.LoadedConfig
}

// Config returns the currently loaded configuration
func (s *Server) Config() *config.LoadedConfig {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

// setConfig swaps the loaded configuration and pushes the new connection
// settings into the dispatcher when it supports hot reload
func (s *Server) setConfig(cfg *config.LoadedConfig) {
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()

	if r, ok := s.client.(configReloader); ok {
		r.SetConfig(cfg.Connection)
	}
}

// NewServer creates a new MCP server instance. The history store and watcher
// may be nil; the diagnostics and config tools degrade accordingly.
func NewServer(client unreal.Dispatcher, cfg *config.LoadedConfig, hist *history.Store, watcher *config.Watcher) *Server {
	s := &Server{
		client:    client,
		registry:  NewRegistry(),
		history:   hist,
		cfg:       cfg,
		watcher:   watcher,
		startedAt: time.Now(),
	}

	s.registerAllTools(s.registry)
	return s
}

// GetRegistry returns the tool registry
func (s *Server) GetRegistry() *Registry {
	return s.registry
}

// Close shuts down the server's background resources
func (s *Server) Close() {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.history != nil {
		_ = s.history.Close()
	}
}

// dispatch forwards one command to the editor, recording metrics and history
// around the call. Like the underlying dispatcher it never returns a Go
// error: failures come back as error-shaped results.
func (s *Server) dispatch(ctx context.Context, command string, params map[string]any) map[string]any {
	ctx = context.WithValue(ctx, logger.ContextKeyCommand, command)

	start := time.Now()
	resp := s.client.SendCommand(ctx, command, params)
	elapsed := time.Since(start)

	status := "ok"
	errText := ""
	if unreal.IsError(resp) {
		status = "error"
		errText = unreal.ErrorText(resp)
	}

	metrics.RecordCommand(command, status, elapsed)

	if s.history != nil {
		entry := &history.Entry{
			Command:    command,
			Status:     status,
			Error:      errText,
			DurationMs: elapsed.Milliseconds(),
		}
		if err := s.history.Record(entry); err != nil {
			logger.Warn("Failed to record command history: %v", err)
		}
	}

	logger.InfoContext(ctx, "command dispatched",
		"status", status, "duration_ms", elapsed.Milliseconds())
	return resp
}

// buildMCPServer constructs the SDK server and registers all tools with it
func (s *Server) buildMCPServer() *mcp_sdk.Server {
	srv := mcp_sdk.NewServer(&mcp_sdk.Implementation{
		Name:    "unrealmcp",
		Version: Version,
	}, nil)
	s.registry.RegisterWithMCPServer(srv)
	return srv
}

// ServeStdio runs the MCP server over stdin/stdout, the transport most MCP
// clients spawn the binary with. Blocks until the client disconnects or ctx
// is canceled.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.mcpServer = s.buildMCPServer()
	logger.Info("UnrealMCP server running on stdio (%d tools)", len(s.registry.GetAllTools()))
	return s.mcpServer.Run(ctx, &mcp_sdk.StdioTransport{})
}

// Serve starts the MCP HTTP server
func (s *Server) Serve(addr string) error {
	s.mcpServer = s.buildMCPServer()

	// Streamable transport with SSE stream resumption
	mcpHandler := mcp_sdk.NewStreamableHTTPHandler(func(req *http.Request) *mcp_sdk.Server {
		return s.mcpServer
	}, &mcp_sdk.StreamableHTTPOptions{
		EventStore: mcp_sdk.NewMemoryEventStore(nil),
	})

	// Request ID and logging middleware
	loggingHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = generateRequestID()
		}
		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), logger.ContextKeyRequestID, requestID)
		r = r.WithContext(ctx)

		logger.Info("HTTP %s %s from %s [request_id=%s]", r.Method, r.URL.Path, r.RemoteAddr, requestID)
		mcpHandler.ServeHTTP(w, r)
	})

	rateLimiter := DefaultRateLimiter()
	rateLimitedHandler := RateLimitMiddleware(rateLimiter)(loggingHandler)

	mainMux := http.NewServeMux()

	// Health and metrics endpoints stay outside the rate limit
	mainMux.HandleFunc("/health", s.handleHealthCheck)
	mainMux.HandleFunc("/ready", s.handleReadinessCheck)
	mainMux.Handle("/metrics", metrics.Handler())

	mainMux.Handle("/mcp", metrics.Middleware(rateLimitedHandler))
	mainMux.Handle("/mcp/", metrics.Middleware(rateLimitedHandler))

	logger.Info("UnrealMCP server listening on %s", addr)
	logger.Info("Bridging to Unreal editor at %s", s.Config().Connection.Addr())
	logger.Info("Health check: http://localhost%s/health", addr)
	logger.Info("Metrics: http://localhost%s/metrics", addr)
	return http.ListenAndServe(addr, mainMux)
}

// handleHealthCheck is a basic liveness check
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleReadinessCheck verifies the editor is reachable. Ready means a TCP
// dial to the editor listener succeeds; the editor owns everything past that.
func (s *Server) handleReadinessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := s.client.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"not ready","reason":"Unreal editor unreachable"}`))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ready"}`))
}
