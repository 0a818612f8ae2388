package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/litweave/litweave/internal/filter"
	"github.com/litweave/litweave/internal/format"
	"github.com/litweave/litweave/internal/textio"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		outputPath  string
		encoding    string
		formatsPath string
		listFormats bool
		verbose     bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to the literate document to filter")
	flag.StringVar(&outputPath, "output", "", "Path to write the filtered lines (default stdout)")
	flag.StringVar(&encoding, "encoding", os.Getenv("LITWEAVE_ENCODING"), "Character encoding of the input (IANA name, default UTF-8)")
	flag.StringVar(&formatsPath, "formats", os.Getenv("LITWEAVE_FORMATS"), "Path to a YAML file with additional format descriptors")
	flag.BoolVar(&listFormats, "list", false, "List the known format names and exit")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(inputPath, outputPath, encoding, formatsPath, listFormats); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(inputPath, outputPath, encoding, formatsPath string, listFormats bool) error {
	table := format.Builtin()
	if strings.TrimSpace(formatsPath) != "" {
		var err error
		table, err = format.Load(formatsPath)
		if err != nil {
			return err
		}
	}

	if listFormats {
		return textio.WriteLines(os.Stdout, table.Names())
	}

	if strings.TrimSpace(inputPath) == "" {
		return fmt.Errorf("no input document (use -input)")
	}

	log.Debug().Str("input", inputPath).Str("format", textio.FormatName(inputPath)).Msg("filtering document")
	lines, err := filter.File(inputPath, encoding, table)
	if err != nil {
		return err
	}

	out := os.Stdout
	if strings.TrimSpace(outputPath) != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		defer f.Close()
		out = f
	}
	return textio.WriteLines(out, lines)
}
