// sqlrepl is a thin line-mode driver for the engine: it is not part of the
// core engine, just a runnable entry point that reads statements from a
// file or stdin, runs each against one in-memory catalog, and prints query
// results as tab-separated rows.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	sqle "github.com/AdrS/sql-interpreter"
	"github.com/AdrS/sql-interpreter/memory"
	"github.com/AdrS/sql-interpreter/sql"
)

type options struct {
	File    string `short:"f" long:"file" description:"Read statements from the file, rather than stdin" value-name:"filename"`
	Verbose bool   `long:"verbose" description:"Log every dispatched statement"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[--file statements.sql] [--verbose]"
	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}

	var input io.Reader = os.Stdin
	if opts.File != "" {
		f, err := os.Open(opts.File)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		input = f
	}

	logger := zap.NewNop()
	if opts.Verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
	}

	config := sqle.DefaultConfig()
	config.Logger = logger
	engine := sqle.NewEngine(memory.NewDatabase(), config)

	if err := run(engine, input, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run reads ';'-terminated statements from src and dispatches each against
// engine, printing query results to out. It stops at the first error.
func run(engine *sqle.Engine, src io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var buf strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
		if !strings.Contains(line, ";") {
			continue
		}
		if err := execStatement(engine, strings.TrimSpace(buf.String()), out); err != nil {
			return err
		}
		buf.Reset()
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(buf.String()) != "" {
		return fmt.Errorf("sqlrepl: trailing input without a terminating ';': %q", buf.String())
	}
	return nil
}

func execStatement(engine *sqle.Engine, stmt string, out io.Writer) error {
	trimmed := strings.TrimSpace(stmt)
	if trimmed == "" {
		return nil
	}
	if isDataDefinition(trimmed) {
		return engine.Exec(stmt)
	}
	node, err := engine.Query(stmt)
	if err != nil {
		return err
	}
	return printRows(node, out)
}

// isDataDefinition reports whether stmt starts with CREATE or INSERT, the
// only two statement kinds Engine.Exec accepts; everything else is routed
// to Engine.Query.
func isDataDefinition(stmt string) bool {
	first := strings.Fields(stmt)
	if len(first) == 0 {
		return false
	}
	switch strings.ToUpper(first[0]) {
	case "CREATE", "INSERT":
		return true
	default:
		return false
	}
}

func printRows(node sql.Node, out io.Writer) error {
	ctx := sql.NewEmptyContext()
	iter, err := node.RowIter(ctx, nil)
	if err != nil {
		return err
	}
	defer iter.Close(ctx)

	for {
		row, err := iter.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				cells[i] = "NULL"
			} else {
				cells[i] = fmt.Sprintf("%v", v)
			}
		}
		fmt.Fprintln(out, strings.Join(cells, "\t"))
	}
}
