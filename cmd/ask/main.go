// Command ask answers natural-language questions about a transit schedule,
// either once from its arguments or interactively from standard input.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"busquery.onebusaway.org/internal/logging"
	"busquery.onebusaway.org/internal/query"
	"busquery.onebusaway.org/internal/schedule"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	source   schedule.Config
	export   string
	logLevel string
}

func parseOptions(args []string, stderr io.Writer) (options, []string, error) {
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.source.Path, "schedule", "", "Schedule file (.xlsx, .csv, .db or GTFS .zip); empty uses the built-in sample")
	fs.StringVar(&opts.source.Sheet, "sheet", "", "Worksheet to read from an xlsx schedule")
	fs.StringVar(&opts.source.TableName, "table", "", "Table to read from a sqlite schedule")
	fs.StringVar(&opts.export, "export", "", "Write the loaded table to an .xlsx or .db file and exit")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}
	return opts, fs.Args(), nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, rest, err := parseOptions(args, stderr)
	if err != nil {
		return 2
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := logging.NewLogger(stderr, "text", level)

	manager := schedule.InitManager(ctx, opts.source, logger)
	fmt.Fprintln(stdout, manager.Status().String())

	if opts.export != "" {
		if err := exportTable(ctx, manager.Table(), opts.export, logger); err != nil {
			logging.LogError(logger, "export failed", err, slog.String("path", opts.export))
			return 1
		}
		fmt.Fprintf(stdout, "Wrote %d rows to %s\n", manager.Table().Len(), opts.export)
		return 0
	}

	engine := query.NewEngine(manager.Table(), logger)
	if len(rest) > 0 {
		fmt.Fprintln(stdout, engine.Ask(strings.Join(rest, " ")).Text)
		return 0
	}

	if err := repl(engine, stdin, stdout); err != nil {
		logging.LogError(logger, "reading input failed", err)
		return 1
	}
	return 0
}

// repl answers one query per line until EOF or "exit". "history" prints the
// exchanges so far.
func repl(engine *query.Engine, stdin io.Reader, stdout io.Writer) error {
	var transcript query.Transcript
	scanner := bufio.NewScanner(stdin)

	fmt.Fprint(stdout, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
		case "exit", "quit":
			return nil
		case "history":
			printTranscript(stdout, transcript)
		default:
			var answer query.Answer
			transcript, answer = engine.Converse(transcript, line)
			fmt.Fprintln(stdout, answer.Text)
		}
		fmt.Fprint(stdout, "> ")
	}
	return scanner.Err()
}

func printTranscript(w io.Writer, transcript query.Transcript) {
	if len(transcript) == 0 {
		fmt.Fprintln(w, "No questions asked yet.")
		return
	}
	for i, exchange := range transcript {
		fmt.Fprintf(w, "%d. %s\n%s\n", i+1, exchange.Query, exchange.Answer)
	}
}

var errUnknownExportFormat = errors.New("export path must end in .xlsx, .db, .sqlite or .sqlite3")

func exportTable(ctx context.Context, table *schedule.Table, path string, logger *slog.Logger) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return schedule.WriteXLSX(table, path, "")
	case ".db", ".sqlite", ".sqlite3":
		return schedule.WriteSQLite(ctx, table, path, "", logger)
	default:
		return errUnknownExportFormat
	}
}
