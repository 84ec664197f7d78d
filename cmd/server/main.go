package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/unrealmcp/unrealmcp/internal/config"
	"github.com/unrealmcp/unrealmcp/internal/history"
	"github.com/unrealmcp/unrealmcp/internal/logger"
	"github.com/unrealmcp/unrealmcp/internal/mcp"
	"github.com/unrealmcp/unrealmcp/internal/unreal"
)

// Version is set at build time via -ldflags "-X main.Version=v1.0.0"
var Version = "dev"

func main() {
	// Check for subcommands before parsing flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			cmdInit()
			return
		case "--version", "-v":
			fmt.Printf("unrealmcp %s\n", Version)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	runServer()
}

func printUsage() {
	fmt.Printf(`UnrealMCP %s - MCP bridge server for the Unreal Engine editor

Usage: unrealmcp [command] [options]

Commands:
  (default)    Start the MCP server
  init         Write a default config file

Server Options:
  --dir <path>         UnrealMCP home directory
  --transport <mode>   Override transport: stdio or http

Config Precedence:
  1. --dir flag
  2. UNREAL_MCP_HOME env var
  3. ~/.unrealmcp (default)

The server runs with built-in defaults when no config file exists, so MCP
clients can spawn it directly. Connection settings additionally honor the
UNREAL_MCP_HOST, UNREAL_MCP_PORT, UNREAL_MCP_TIMEOUT, and
UNREAL_MCP_BUFFER_SIZE environment variables.

Examples:
  unrealmcp                          Start on stdio with defaults
  unrealmcp --transport http         Serve MCP over HTTP on :8080
  unrealmcp init                     Write ~/.unrealmcp/unrealmcp.jsonc
  unrealmcp init --dir .             Write the config in the current directory
`, Version)
}

func runServer() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	dirFlag := flag.String("dir", "", "UnrealMCP home directory (default: ~/.unrealmcp)")
	transportFlag := flag.String("transport", "", "Transport override: stdio or http")
	flag.Parse()

	if *showVersion {
		fmt.Printf("unrealmcp %s\n", Version)
		os.Exit(0)
	}

	homeDir := resolveHomeDir(*dirFlag)
	dataDir := filepath.Join(homeDir, "data")
	logDir := filepath.Join(dataDir, "logs")

	// A missing config file is not an error: MCP clients spawn the binary
	// with no setup, so defaults must carry it
	cfg, err := config.LoadAll(homeDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	transport := cfg.Server.Transport
	if *transportFlag != "" {
		transport = *transportFlag
	}
	if transport != "stdio" && transport != "http" {
		log.Fatalf("Invalid transport %q: must be stdio or http", transport)
	}

	// On stdio, stdout belongs to the MCP channel
	if err := logger.Init(logDir, logger.Options{Quiet: transport == "stdio"}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Close() }()

	// Structured per-command logs; stdio keeps the default stderr handler
	if transport == "http" {
		if err := logger.InitSlog(logDir, true); err != nil {
			logger.Warn("Structured logging unavailable: %v", err)
		}
		defer func() { _ = logger.CloseSlog() }()
	}

	logger.Printf("UnrealMCP %s starting", Version)
	if cfg.Path != "" {
		logger.Printf("Config loaded from %s", cfg.Path)
	} else {
		logger.Printf("No config file found, using built-in defaults")
	}
	logger.Printf("Unreal editor endpoint: %s", cfg.Connection.Addr())

	client := unreal.NewClient(cfg.Connection)

	hist, err := history.NewStore(dataDir)
	if err != nil {
		logger.Fatalf("Failed to initialize command history: %v", err)
	}
	defer func() { _ = hist.Close() }()

	if removed, err := hist.Prune(30 * 24 * time.Hour); err != nil {
		logger.Warn("History prune failed: %v", err)
	} else if removed > 0 {
		logger.Printf("Pruned %d history entries older than 30 days", removed)
	}

	// Config watcher pushes fresh connection settings into the client
	var watcher *config.Watcher
	if cfg.Watcher.Enabled && cfg.Path != "" {
		watcher = config.NewWatcher(cfg.Path, func(next *config.LoadedConfig) {
			client.SetConfig(next.Connection)
		})
		if err := watcher.Start(cfg.Watcher.IntervalDuration()); err != nil {
			logger.Warn("Config watcher failed to start: %v", err)
			watcher = nil
		}
	}

	server := mcp.NewServer(client, cfg, hist, watcher)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		if transport == "stdio" {
			serverErr <- server.ServeStdio(ctx)
		} else {
			serverErr <- server.Serve(cfg.Server.Address)
		}
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdownChan:
		logger.Printf("Received signal %v, shutting down...", sig)
		cancel()
		server.Close()
		logger.Println("Shutdown complete")
	}
}

// resolveHomeDir determines the unrealmcp home directory with precedence:
// 1. Explicit flag
// 2. UNREAL_MCP_HOME env var
// 3. ~/.unrealmcp
func resolveHomeDir(flagDir string) string {
	if flagDir != "" {
		absDir, err := filepath.Abs(flagDir)
		if err != nil {
			log.Fatalf("Invalid directory: %v", err)
		}
		return absDir
	}

	if envDir := os.Getenv("UNREAL_MCP_HOME"); envDir != "" {
		absDir, err := filepath.Abs(envDir)
		if err != nil {
			log.Fatalf("Invalid UNREAL_MCP_HOME: %v", err)
		}
		return absDir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}
	return filepath.Join(homeDir, ".unrealmcp")
}

func cmdInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dirFlag := fs.String("dir", "", "Directory to initialize (default: ~/.unrealmcp)")
	_ = fs.Parse(os.Args[2:])

	var homeDir string
	if *dirFlag != "" {
		absDir, err := filepath.Abs(*dirFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid directory: %v\n", err)
			os.Exit(1)
		}
		homeDir = absDir
	} else {
		userHome, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not determine home directory: %v\n", err)
			os.Exit(1)
		}
		homeDir = filepath.Join(userHome, ".unrealmcp")
	}

	configFile := filepath.Join(homeDir, config.ConfigFileName)
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("%s already exists.\n", configFile)
		fmt.Print("Overwrite? [y/N]: ")
		var response string
		_, _ = fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return
		}
	}

	dirs := []string{
		homeDir,
		filepath.Join(homeDir, "data", "logs"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
			os.Exit(1)
		}
		fmt.Printf("   Created %s\n", dir)
	}

	defaultConfig := `{
  // UnrealMCP Configuration

  "server": {
    // HTTP listen address, used when transport is "http"
    "address": ":8080",
    // "stdio" (spawned by MCP clients) or "http" (streamable transport)
    "transport": "stdio"
  },

  "connection": {
    // Where the UnrealMCP editor plugin listens
    "host": "127.0.0.1",
    "port": 55557,
    // Connect timeout in seconds
    "timeout": 5,
    // Socket buffer size in bytes
    "buffer_size": 65536,
    // Dial attempts per command and the delay between them (seconds)
    "max_retries": 3,
    "retry_delay": 1.0
  },

  "logging": {
    "level": "info"
  },

  "watcher": {
    // Reload this file automatically when it changes
    "enabled": false,
    // Poll interval in seconds
    "interval_seconds": 30
  }
}
`

	if err := os.WriteFile(configFile, []byte(defaultConfig), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("   Created %s\n", configFile)
	fmt.Println("")
	fmt.Println("Done. Start the server with: unrealmcp")
}
