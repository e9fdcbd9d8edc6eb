// Command weather looks up one place and prints the widget as text.
//
//	weather [place]
//
// The configured default place is used when no place is given.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"weatherwidget.app/internal/adapters/view"
	"weatherwidget.app/internal/app"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/core/weather"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "weather: %v\n", err)
		return 1
	}

	// Provider request logs still go to the file logger; console logs stay on stderr
	deps, err := app.NewDependencyContainer(app.DependencyConfig{
		Weather:   cfg.Weather,
		Log:       cfg.Log,
		LogOutput: os.Stderr,
	}, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "weather: %v\n", err)
		return 1
	}
	defer func() { _ = deps.Cleanup() }()

	pipeline, err := deps.NewPipeline(view.NewTerminal(os.Stdout, deps.Presenter()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "weather: %v\n", err)
		return 1
	}
	defer pipeline.Close()

	place := strings.Join(args, " ")
	if strings.TrimSpace(place) == "" {
		place = cfg.Widget.DefaultPlace
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result := pipeline.Submit(ctx, place)
	switch result.Outcome {
	case weather.OutcomeShown:
		return 0
	case weather.OutcomeIgnored:
		fmt.Fprintln(os.Stderr, "weather: no place given")
		return 2
	default:
		return 1
	}
}
