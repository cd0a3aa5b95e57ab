package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pribylovaa/odysee-comments/internal/actions"
	"github.com/pribylovaa/odysee-comments/internal/clients"
	"github.com/pribylovaa/odysee-comments/internal/config"
	"github.com/pribylovaa/odysee-comments/internal/prefs"
	"github.com/pribylovaa/odysee-comments/internal/state"
	"github.com/pribylovaa/odysee-comments/internal/tui"
	logctx "github.com/pribylovaa/odysee-comments/pkg/log"
	"github.com/pribylovaa/odysee-comments/pkg/redact"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var (
		configPath string
		logPath    string
	)
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.StringVar(&logPath, "log", "comments-client.log", "log file (stdout is taken by the UI); empty disables logging")
	flag.Parse()

	cfg := config.MustLoadClient(configPath)

	logOut, closeLog := openLog(logPath)
	defer closeLog()

	log := setupLogger(cfg.Env, logOut)
	slog.SetDefault(log)
	log.Info("starting comments-client", "env", cfg.Env, "server", cfg.Server.Addr, "uri", cfg.UI.URI, "account", redact.Account(cfg.Server.Token))

	if err := run(cfg, log); err != nil {
		log.Error("client_failed", slog.String("err", err.Error()))
		fmt.Fprintln(os.Stderr, "comments-client:", err)
		closeLog()
		os.Exit(1)
	}

	log.Info("client_stopped")
}

func run(cfg *config.ClientConfig, log *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()
	ctx = logctx.Into(ctx, log)

	store, err := openPrefs(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	api, err := clients.Dial(*cfg, log)
	if err != nil {
		return err
	}
	defer api.Close()

	toasts := tui.NewToasts()
	acts := actions.New(api, state.New(), store, toasts)

	model := tui.New(ctx, acts, tui.Options{
		URI:      cfg.UI.URI,
		SiteName: cfg.UI.SiteName,
		Toasts:   toasts,
	})
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}

// openPrefs выбирает хранилище активного канала по конфигу.
func openPrefs(ctx context.Context, cfg *config.ClientConfig) (prefs.Store, error) {
	if cfg.Prefs.Backend != config.PrefsRedis {
		logctx.From(ctx).Warn("prefs_not_persisted", "backend", cfg.Prefs.Backend)
		return prefs.NewMemory(), nil
	}

	rctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	store, err := prefs.NewRedis(rctx, cfg.Prefs.RedisURL, cfg.Prefs.Prefix)
	if err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return store, nil
}

func openLog(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintln(os.Stderr, "comments-client: log disabled:", err)
		return io.Discard, func() {}
	}

	return f, func() { _ = f.Close() }
}

func setupLogger(env string, out io.Writer) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
