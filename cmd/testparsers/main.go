// testparsers runs every registered locale extractor over the same input
// and summarizes what each one recovered. Useful when adding a locale or
// when detection picks the wrong extractor for a sample.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/joseph-ayodele/invoice-pipeline/internal/pipeline"
)

func main() {
	var (
		file = flag.String("file", "", "invoice text file (defaults to stdin)")
		dump = flag.Bool("json", false, "print full records as JSON instead of a summary")
	)
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	var (
		text []byte
		err  error
	)
	if *file == "" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(*file)
	}
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	codes := make([]string, 0, len(pipeline.AvailableParsers()))
	for code := range pipeline.AvailableParsers() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	log.Infow("registered parsers", "codes", codes)

	results := pipeline.New(nil, nil).TestAllParsers(string(text))

	if *dump {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			log.Fatalf("encode results: %v", err)
		}
		os.Stdout.Write(out)
		os.Stdout.Write([]byte("\n"))
		return
	}

	for _, code := range codes {
		res := results[code]
		if res.Err != nil {
			log.Errorw("parser failed", "code", code, "err", res.Err)
			continue
		}
		rec := res.Record
		log.Infow("parser result",
			"code", code,
			"order_number", deref(rec.OrderNumber),
			"order_date", deref(rec.OrderDate),
			"items", len(rec.Items),
			"total", deref(rec.Total),
			"score", rec.Validation.Score,
			"valid", rec.Validation.IsValid,
		)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
