// Command hornlog is the CLI entrypoint (§4.10): `hornlog [-trace]
// <file>` loads a clause database and starts the interactive REPL.
// There is no subcommand: the spec names exactly one invocation shape.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/cli"

	"github.com/gitrdm/hornlog/internal/repl"
	"github.com/gitrdm/hornlog/internal/tracelog"
	"github.com/gitrdm/hornlog/pkg/prolog"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ui := &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Reader:      os.Stdin,
	}

	flags := flag.NewFlagSet("hornlog", flag.ContinueOnError)
	trace := flags.Bool("trace", false, "enable debug-level structured logging")
	flags.Usage = func() {}
	flags.SetOutput(errWriter{ui})
	if err := flags.Parse(os.Args[1:]); err != nil {
		return 1
	}
	tracelog.SetDebug(*trace)

	rest := flags.Args()
	if len(rest) != 1 {
		ui.Error(usage)
		return 1
	}
	path := rest[0]

	data, err := os.ReadFile(path)
	if err != nil {
		ui.Error(fmt.Sprintf("could not read %s: %s", path, err))
		return 1
	}

	pctx := prolog.NewContext()
	rules, err := pctx.LoadRules(string(data))
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ui.Output(banner)
	ui.Output("input `q`, `quit`, or `exit` for exiting the REPL")

	session := repl.New(pctx, rules, os.Stdin, os.Stdout)
	session.Run(context.Background())
	return 0
}

const (
	version = "0.1.0"
	banner  = "welcome to hornlog v" + version + "!"
	usage   = "Usage: hornlog [-trace] <file>"
)

// errWriter routes the standard flag package's usage/error output
// through a cli.Ui so it matches the rest of the command's reporting.
type errWriter struct{ ui cli.Ui }

func (w errWriter) Write(p []byte) (int, error) {
	w.ui.Error(string(p))
	return len(p), nil
}
