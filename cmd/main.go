package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/billchain/config"
	"github.com/luca-patrignani/billchain/verifier"
)

const (
	exitValid = iota
	exitInvalid
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		printUsage(stdout)
		return exitUsage
	}

	cfg, err := config.FromEnv()
	if err != nil {
		pterm.Error.WithWriter(stderr).Println(err.Error())
		return exitUsage
	}
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		pterm.Error.WithWriter(stderr).Println(err.Error())
		return exitUsage
	}

	opts := []verifier.Option{
		verifier.WithLogger(logger),
		verifier.WithHashTimeout(cfg.Verification.HashTimeout),
	}
	if cfg.Verification.SequentialHashing {
		opts = append(opts, verifier.WithSequentialHashing())
	}
	v := verifier.New(opts...)

	res, err := v.VerifyFile(context.Background(), args[0])
	if err != nil {
		var ie *verifier.InputError
		if errors.As(err, &ie) {
			pterm.Fprintln(stdout, ie.Error())
		} else {
			pterm.Error.WithWriter(stdout).Println(err.Error())
		}
		return exitUsage
	}
	printResult(stdout, res)

	if path := cfg.Metrics.Textfile; path != "" {
		if err := verifier.WriteMetrics(path); err != nil {
			logger.Warn("failed to write metrics", "path", path, "error", err)
		}
	}

	if !res.Valid() {
		return exitInvalid
	}
	return exitValid
}

// newLogger returns a slog logger backed by the pterm logger, writing to w.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	var ptermLevel pterm.LogLevel
	switch level {
	case slog.LevelDebug:
		ptermLevel = pterm.LogLevelDebug
	case slog.LevelInfo:
		ptermLevel = pterm.LogLevelInfo
	case slog.LevelWarn:
		ptermLevel = pterm.LogLevelWarn
	case slog.LevelError:
		ptermLevel = pterm.LogLevelError
	default:
		return nil, fmt.Errorf("unsupported log level %s", level)
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel).WithWriter(w))
	return slog.New(handler), nil
}
