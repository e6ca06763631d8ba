// Package main provides the CLI entrypoint for mime-table-generator.
//
// mime-table-generator converts a mime.types file into a C array of
// extension / Content-Type pairs that can be compiled into a program:
//
//	mime-table-generator /etc/mime.types > mime-types.h
//
// The generated table is written to stdout. Malformed lines are reported on
// stderr and skipped; a missing argument or unreadable file exits with
// status 1 and writes nothing to stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"mime-table-generator/internal/diagnostic"
	"mime-table-generator/internal/gen"
	"mime-table-generator/internal/mimetypes"
)

const usage = "Please provide a path to your mime.types file"

var errUsage = errors.New(usage)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)

	if err := generate(args, stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, usage)
		} else {
			logger.WithError(err).Error("generation failed")
		}

		return 1
	}

	return 0
}

func generate(args []string, stdout io.Writer, logger *logrus.Logger) error {
	if len(args) < 1 || args[0] == "" {
		return errUsage
	}

	path := args[0]

	table, diags, err := mimetypes.LoadFile(path)
	if err != nil {
		return err
	}

	reportDiagnostics(logger, path, diags)

	file, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate(table)
	if err != nil {
		return fmt.Errorf("generating table: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"input":         path,
		"records":       file.Records,
		"content_types": len(table.ContentTypes()),
	}).Debug("table generated")

	return gen.Write(stdout, file)
}

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	return logger
}

func reportDiagnostics(logger *logrus.Logger, path string, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		entry := logger.WithFields(logrus.Fields{
			"file": path,
			"line": d.Line,
			"code": d.Code,
		})

		if d.Severity == diagnostic.SeverityWarning {
			entry.Warn(d.Message)
		} else {
			entry.Debug(d.Message)
		}
	}
}
