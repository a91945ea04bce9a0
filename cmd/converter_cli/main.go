package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/SscSPs/unit_converter_app/internal/adapters/exchangerate"
	"github.com/SscSPs/unit_converter_app/internal/apperrors"
	"github.com/SscSPs/unit_converter_app/internal/core/domain"
	"github.com/SscSPs/unit_converter_app/internal/core/services"
	"github.com/SscSPs/unit_converter_app/internal/dto"
	"github.com/SscSPs/unit_converter_app/internal/platform/config"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: converter_cli <command> [arguments]
Commands:
  <category> <value> <from> <to>   convert a value (categories: length, weight, temperature, volume, currency)
  units <category>                 list the units of a category
  refresh <base>                   fetch exchange rates for a base currency`

func main() {
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], color.Output, color.Error))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(stderr, "Failed to load config:", err)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	fetcher := exchangerate.NewClient(cfg.ExchangeRateAPIURL, cfg.ExchangeRateAPIKey, cfg.ExchangeRateHTTPTimeout, logger)
	cache := services.NewRateCache(fetcher, cfg.RateCacheTTL, logger)
	// The process exits right after one conversion, so refreshes run inline.
	converter := services.NewConversionService(cache,
		services.WithDefaultBaseCurrency(cfg.DefaultBaseCurrency),
		services.WithAsyncRunner(func(f func()) { f() }),
	)
	ctx := context.Background()
	fail := color.New(color.FgRed)

	switch args[0] {
	case "units":
		return listUnits(stdout, stderr, args[1])
	case "refresh":
		rates := services.NewRateService(cache, services.SystemClock{})
		outcome, err := rates.RefreshRates(ctx, args[1])
		if err != nil {
			fail.Fprintln(stderr, err)
			return 1
		}
		outcomeColor(outcome).Fprintln(stdout, outcome)
		return 0
	default:
		if len(args) < 4 {
			fmt.Fprintln(stderr, usage)
			return 2
		}
		conv, err := converter.Convert(ctx, dto.ConvertRequest{
			Value:    dto.InputValue(args[1]),
			Category: args[0],
			From:     args[2],
			To:       args[3],
		})
		if err != nil {
			fail.Fprintln(stderr, err)
			if errors.Is(err, apperrors.ErrUnknownCategory) {
				fmt.Fprintln(stderr, usage)
			}
			return 1
		}
		if conv.Empty {
			// Mirrors the page: nothing is shown for a non-numeric input.
			return 1
		}
		printConversion(stdout, conv)
		return 0
	}
}

func listUnits(stdout, stderr io.Writer, name string) int {
	category, err := domain.ParseCategory(name)
	if err != nil {
		color.New(color.FgRed).Fprintln(stderr, err)
		return 1
	}
	info, err := domain.LookupCategory(category)
	if err != nil {
		color.New(color.FgRed).Fprintln(stderr, err)
		return 1
	}

	color.New(color.Bold).Fprintln(stdout, info.Title)
	for _, u := range info.Units() {
		line := fmt.Sprintf("  %-5s %s", u.Code, u.Name)
		if u.Symbol != "" {
			line += " (" + u.Symbol + ")"
		}
		fmt.Fprintln(stdout, line)
	}
	return 0
}

func printConversion(w io.Writer, conv *domain.Conversion) {
	fmt.Fprintf(w, "%s %s = %s %s\n",
		strconv.FormatFloat(conv.Input, 'f', -1, 64), conv.From,
		color.New(color.FgGreen, color.Bold).Sprint(conv.Output), conv.To)
	if conv.Rate != nil {
		c := color.New(color.FgCyan)
		if conv.Rate.Source == domain.RateSourceOffline {
			c = color.New(color.FgYellow)
		}
		c.Fprintln(w, conv.Rate.String())
	}
}

func outcomeColor(outcome domain.RefreshOutcome) *color.Color {
	switch outcome {
	case domain.RefreshFetchedSuccess:
		return color.New(color.FgGreen)
	case domain.RefreshFetchedFailure:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}
