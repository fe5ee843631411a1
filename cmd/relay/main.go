package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/term"
	"golang.org/x/time/rate"

	"github.com/wippyai/task-bridge/bridge"
	"github.com/wippyai/task-bridge/callbacks"
	"github.com/wippyai/task-bridge/config"
	"github.com/wippyai/task-bridge/wasmbridge"
)

var (
	tokenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	cancelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD166"))
	otherStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// delivery is one notification observed at the sink.
type delivery struct {
	at     time.Time
	token  bridge.Token
	status bridge.Status
}

// deliveryLog collects deliveries from the relayer sink.
type deliveryLog struct {
	items []delivery
	mu    sync.Mutex
}

func (l *deliveryLog) record(token bridge.Token, status bridge.Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, delivery{at: time.Now(), token: token, status: status})
}

func (l *deliveryLog) snapshot() []delivery {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]delivery(nil), l.items...)
}

func main() {
	var (
		configPath  = flag.String("config", "", "Path to YAML config file")
		backend     = flag.String("backend", "", "Relay backend: cgo or wasm")
		count       = flag.Int("n", -1, "Number of completions to relay")
		ratePerSec  = flag.Float64("rate", -1, "Completions per second (0 = unlimited)")
		status      = flag.Int("status", 0, "Status code to report")
		verbose     = flag.Bool("v", false, "Development logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "n":
			cfg.Count = *count
		case "rate":
			cfg.Rate = *ratePerSec
		case "status":
			cfg.Status = *status
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	callbacks.SetLogger(logger.Named("callbacks"))
	wasmbridge.SetLogger(logger.Named("wasmbridge"))

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if *interactive {
		if !isTTY {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, logger, isTTY); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string, development bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	if development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = lvl
	return zcfg.Build()
}

func run(cfg config.Config, logger *zap.Logger, styled bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := prometheus.NewRegistry()
	log := &deliveryLog{}

	r, err := newRelayer(ctx, cfg, log.record, reg)
	if err != nil {
		return fmt.Errorf("create %s relayer: %w", cfg.Backend, err)
	}
	defer r.Close(context.Background())

	limit := rate.Inf
	if cfg.Rate > 0 {
		limit = rate.Limit(cfg.Rate)
	}
	limiter := rate.NewLimiter(limit, cfg.Burst)

	fmt.Printf("Relaying %d completions via %s backend\n\n", cfg.Count, cfg.Backend)

	start := time.Now()
	status := bridge.Status(int8(cfg.Status))
	for i := 0; i < cfg.Count; i++ {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait: %w", err)
		}

		token := bridge.Token(0x1000 + i)
		before := len(log.snapshot())
		if err := r.Notify(ctx, token, status); err != nil {
			return fmt.Errorf("notify %v: %w", token, err)
		}

		items := log.snapshot()
		if len(items) != before+1 {
			logger.Warn("unexpected delivery count",
				zap.Stringer("token", token),
				zap.Int("want", before+1),
				zap.Int("got", len(items)))
			continue
		}
		fmt.Println(formatDelivery(items[len(items)-1], styled))
	}

	delivered := len(log.snapshot())
	logger.Info("relay finished",
		zap.String("backend", cfg.Backend),
		zap.Int("delivered", delivered),
		zap.Duration("elapsed", time.Since(start)))

	fmt.Printf("\nDelivered: %d/%d\n", delivered, cfg.Count)
	printMetrics(reg)
	return nil
}

func formatDelivery(d delivery, styled bool) string {
	token := d.token.String()
	status := d.status.String()
	if !styled {
		return fmt.Sprintf("  %s -> %s", token, status)
	}
	return fmt.Sprintf("  %s -> %s", tokenStyle.Render(token), statusStyle(d.status).Render(status))
}

func statusStyle(s bridge.Status) lipgloss.Style {
	switch s {
	case bridge.StatusSuccess:
		return okStyle
	case bridge.StatusCancelled:
		return cancelStyle
	default:
		return otherStyle
	}
}

func printMetrics(reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil || len(families) == 0 {
		return
	}

	fmt.Println("\nMetrics:")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			default:
				continue
			}
			fmt.Printf("  %s %g\n", mf.GetName(), v)
		}
	}
}
