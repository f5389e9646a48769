// parseinvoice runs the extraction pipeline over a text file (or stdin) and
// prints the resulting record as JSON. Diagnostic tool; the real CLI and
// web surfaces live outside this module.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/invoice-pipeline/internal/common"
	"github.com/joseph-ayodele/invoice-pipeline/internal/entity"
	"github.com/joseph-ayodele/invoice-pipeline/internal/pipeline"
)

func main() {
	var (
		file  = flag.String("file", "", "invoice text file (defaults to stdin)")
		debug = flag.Bool("debug", false, "attach per-stage diagnostics to the record")
		level = flag.String("log-level", "info", "slog level: debug|info|warn|error")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(*level),
	}))
	slog.SetDefault(logger)

	text, err := readInput(*file)
	if err != nil {
		logger.Error("read input", "file", *file, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	p := pipeline.New(logger, cfg)
	rec := p.ParseRawText(entity.RawText{Text: string(text), ByteLen: len(text)},
		pipeline.Options{Debug: *debug})
	if rec == nil {
		logger.Error("nothing to parse", "error", common.ErrEmptyInput)
		os.Exit(2)
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}
	if err := pipeline.ValidateRecordJSON(out); err != nil {
		logger.Warn("record shape drift", "error", err)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}

func readInput(file string) ([]byte, error) {
	if file == "" {
		b, err := io.ReadAll(os.Stdin)
		return b, common.WrapError(err, "reading stdin")
	}
	b, err := os.ReadFile(file)
	return b, common.WrapError(err, "reading file")
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
