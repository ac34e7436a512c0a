// Command context7-plugin serves Context7 documentation tools over MCP.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/hyper-mcp/context7-plugin/cache"
	"github.com/hyper-mcp/context7-plugin/context7"
	"github.com/hyper-mcp/context7-plugin/internal/config"
	"github.com/hyper-mcp/context7-plugin/server"
	"github.com/hyper-mcp/context7-plugin/tools"
)

const version = "0.1.0"

func main() {
	if err := runCLI(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) == 0 {
		return runStdio()
	}

	switch args[0] {
	case "help", "--help", "-h":
		printUsage()
		return nil
	case "version", "--version", "-v":
		fmt.Println("context7-plugin v" + version)
		return nil
	case "clear-cache":
		return runClearCache()
	case "serve-http", "--http":
		addr := ":8080"
		if len(args) > 1 {
			addr = args[1]
		}
		return runHTTP(addr)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage() {
	fmt.Println("Usage: context7-plugin [command]")
	fmt.Println("Commands:")
	fmt.Println("  (none)              Serve MCP over stdio")
	fmt.Println("  serve-http [addr]   Serve MCP over HTTP (default :8080)")
	fmt.Println("  clear-cache         Remove all cached entries and exit")
	fmt.Println("  version             Print the version")
	fmt.Println("  help                Show this help message")
	fmt.Println("Environment:")
	fmt.Println("  CONTEXT7_API_KEY    API key (optional, anonymous access without it)")
	fmt.Println("  CONTEXT7_BASE_URL   API base URL (default https://context7.com/api)")
	fmt.Println("  CACHE_DIR           Cache directory (default /cache; absent disables caching)")
	fmt.Println("  CACHE_TTL           Cache entry lifetime in days (default 1; 0 always refetches)")
	fmt.Println("  HTTP_TIMEOUT        Upstream request timeout in seconds (default 30)")
}

// setup builds the service stack from the environment. The logger writes to
// stderr so the stdio transport keeps stdout to itself.
func setup() (*tools.Service, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("app", "context7-plugin").Logger()
	if cfg.APIKey == "" {
		logger.Info().Msg("unable to resolve api key for Context7, using anonymous access")
	}

	store := cache.New(cfg.CacheDir, cfg.CacheTTL(), logger)
	client := context7.New(
		context7.WithBaseURL(cfg.BaseURL),
		context7.WithAPIKey(cfg.APIKey),
		context7.WithVersion(version),
		context7.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout()}),
	)

	return tools.NewService(client, store, logger), logger, nil
}

func newServer(svc *tools.Service, logger zerolog.Logger) *server.Server {
	srv := server.New("context7-plugin", version, logger)
	server.Mount(srv, svc)
	return srv
}

func runStdio() error {
	svc, logger, err := setup()
	if err != nil {
		return err
	}
	return newServer(svc, logger).ServeStdio(context.Background(), os.Stdin, os.Stdout)
}

func runHTTP(addr string) error {
	svc, logger, err := setup()
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodPost, "/mcp", newServer(svc, logger).HTTPHandler())

	logger.Info().Str("addr", addr).Msg("serving MCP over HTTP")
	return http.ListenAndServe(addr, r)
}

func runClearCache() error {
	svc, _, err := setup()
	if err != nil {
		return err
	}
	result, err := svc.ClearCache(context.Background())
	if err != nil {
		return err
	}
	for _, c := range result.Content {
		fmt.Println(c.Text)
	}
	return nil
}
