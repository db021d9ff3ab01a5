// pirate-platformer-server starts an SSH server that runs one game per
// connection. Build:
//
//	go build -o pirate-platformer-server ./cmd/server
//
// Usage:
//
//	./pirate-platformer-server [-config game.yaml] [-port 2222] [-key server_host_key] [-metrics :9100]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode"

	"pirate-platformer/internal/config"
	"pirate-platformer/internal/game"
	"pirate-platformer/internal/level"
	"pirate-platformer/internal/metrics"
	internalssh "pirate-platformer/internal/ssh"
	"pirate-platformer/internal/tilemap"

	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to $GAME_CONFIG)")
	port := flag.Int("port", 0, "SSH server port (overrides config)")
	keyFile := flag.String("key", "", "Path to the PEM-encoded host key, auto-generated if absent (overrides config)")
	metricsAddr := flag.String("metrics", "", "Address for the Prometheus /metrics endpoint (overrides config)")
	levelPath := flag.String("level", "", "Level file (default: built-in harbor)")
	generate := flag.Bool("generate", false, "Play a generated level")
	seed := flag.Int64("seed", 1, "Seed for -generate")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger, *configPath, *port, *keyFile, *metricsAddr, level.Source{Path: *levelPath, Generate: *generate, Seed: *seed}); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath string, port int, keyFile, metricsAddr string, src level.Source) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if keyFile != "" {
		cfg.Server.HostKey = keyFile
	}
	if metricsAddr != "" {
		cfg.Server.MetricsAddr = metricsAddr
	}

	name, tmpl, err := src.Open()
	if err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mx := metrics.New(reg)
	if cfg.Server.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Server.MetricsAddr, reg, logger); err != nil {
				logger.Error("metrics server", "error", err)
			}
		}()
	}

	h := &handler{
		cfg:       cfg,
		levelName: name,
		level:     tmpl,
		metrics:   mx,
		log:       logger,
		slots:     make(chan struct{}, cfg.Server.MaxSessions),
	}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication, which suits a private home server.
		HostSigners: []gossh.Signer{signer},
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("ssh server listening", "port", cfg.Server.Port, "level", name, "max_sessions", cfg.Server.MaxSessions)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// handler runs one game per SSH connection.
type handler struct {
	cfg       config.Config
	levelName string
	level     *tilemap.Map
	metrics   *metrics.Metrics
	log       *slog.Logger
	slots     chan struct{}
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	log := h.log.With("session", uuid.NewString(), "user", sanitizeName(s.User()), "remote", s.RemoteAddr().String())

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		fmt.Fprintln(s, "The harbor is full. Try again later.")
		log.Warn("session rejected", "reason", "max sessions")
		return
	}

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	screen, err := internalssh.NewScreen(s, pty, winCh)
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Warn("screen setup", "error", err)
		return
	}
	defer screen.Fini()

	done := h.metrics.SessionStarted()
	defer done()

	g, err := game.New(screen, h.cfg, h.levelName, h.level.Clone(), h.metrics, log)
	if err != nil {
		log.Error("start game", "error", err)
		return
	}
	log.Info("session started")
	if err := g.Run(s.Context()); err != nil {
		log.Error("game stopped", "error", err)
		return
	}
	log.Info("session ended")
}

// sanitizeName strips control characters and caps the name at 16 bytes
// without splitting a rune.
func sanitizeName(name string) string {
	const maxBytes = 16
	out := make([]rune, 0, len(name))
	n := 0
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		size := len(string(r))
		if n+size > maxBytes {
			break
		}
		out = append(out, r)
		n += size
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "pirate-platformer server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			logger.Warn("save host key", "path", path, "error", err)
		}
	}
	return signer, nil
}
