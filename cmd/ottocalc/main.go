// ottocalc is a terminal front end for a remote calculator service.
//
// Usage:
//
//	ottocalc [-endpoint URL] [-debounce 250ms] [-verbose] [-quiet]
//	ottocalc -e "2*sin(pi/4)"
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/ottocalc/internal/calc"
	"github.com/hammamikhairi/ottocalc/internal/display"
	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/engine"
	"github.com/hammamikhairi/ottocalc/internal/logger"
	"github.com/hammamikhairi/ottocalc/internal/storage"
	"github.com/hammamikhairi/ottocalc/internal/timer"
)

// Env var names. Flags override them.
const (
	EnvEndpoint = "CALC_ENDPOINT"
	EnvTimeout  = "CALC_TIMEOUT"
	EnvDebounce = "CALC_DEBOUNCE"
	EnvLogLevel = "CALC_LOG_LEVEL"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	endpoint := flag.String("endpoint", envString(EnvEndpoint, calc.DefaultEndpoint), "evaluation endpoint URL")
	timeout := flag.Duration("timeout", envDuration(EnvTimeout, 10*time.Second), "HTTP timeout per evaluation")
	debounce := flag.Duration("debounce", envDuration(EnvDebounce, timer.DefaultDelay), "live evaluation quiet period (0 disables)")
	historySize := flag.Int("history", storage.DefaultCapacity, "number of submitted expressions kept for recall")
	expr := flag.String("e", "", "evaluate one expression, print the result line, and exit")
	noBanner := flag.Bool("no-banner", false, "hide the startup banner")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".ottocalc/ottocalc.log", "file to write logs to (use \"stderr\" to log to console)")
	flag.Parse()

	// Configure logger.
	logLevel, err := logger.ParseLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using normal)\n", err)
	}
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the TUI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	log := logger.New(logLevel, logOut)

	// Third-party code that logs through the standard package ends up in
	// the same place.
	stdlog.SetOutput(log.Writer())
	stdlog.SetFlags(stdlog.Ltime)

	// Cancelled on SIGINT/SIGTERM or when the UI quits.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Wire dependencies.
	client := calc.NewClient(*endpoint, log, calc.WithHTTPTimeout(*timeout))
	history := storage.NewMemoryHistory(log, storage.WithCapacity(*historySize))
	eng := engine.New(log, engine.WithHistory(history))

	log.Info("ottocalc starting (endpoint=%s, timeout=%s, debounce=%s)", client.Endpoint(), *timeout, *debounce)

	if *expr != "" {
		return evalOnce(ctx, eng, client, *expr)
	}

	ui := display.NewUI(eng, client, log,
		display.WithDebounce(*debounce),
		display.WithBanner(!*noBanner),
	)

	// Bubble Tea owns the terminal and blocks until quit.
	if err := ui.Run(ctx); err != nil {
		log.Error("display: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	log.Info("ottocalc stopped")
	return 0
}

// evalOnce evaluates expr without the TUI and returns the exit status:
// 0 for a value (or an empty expression), 1 for any failure.
func evalOnce(ctx context.Context, eng *engine.Engine, ev domain.Evaluator, expr string) int {
	eng.Dispatch(ctx, domain.Type(expr))
	fmt.Println(eng.Evaluate(ctx, ev))
	if eng.LastErr() != nil {
		return 1
	}
	return 0
}

func envString(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// envDuration reads a Go duration ("300ms") or a bare number of
// milliseconds ("300").
func envDuration(name string, def time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	fmt.Fprintf(os.Stderr, "warning: ignoring %s=%q (not a duration)\n", name, v)
	return def
}
