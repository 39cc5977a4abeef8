// Command sol is the Sol language driver: `sol run <file>` evaluates a
// script once and exits; `sol repl` starts an interactive, history-backed
// session. Subcommand dispatch is built on github.com/urfave/cli/v2 rather
// than the teacher's hand-rolled os.Args switch; REPL line editing keeps the
// teacher's exact choice of github.com/peterh/liner.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"

	sol "github.com/solscript/sol"
)

const (
	historyFile = ".sol_history"
	promptMain  = "==> "
	promptCont  = "... "
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	app := &cli.App{
		Name:  "sol",
		Usage: "run and explore Sol programs",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "evaluate a .sol file once",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "debug", Usage: "print the final value's canonical form to stdout"},
				},
				Action: cmdRun,
			},
			{
				Name:   "repl",
				Usage:  "start an interactive session",
				Action: cmdRepl,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		os.Exit(1)
	}
}

func cmdRun(c *cli.Context) error {
	file := c.Args().First()
	if file == "" {
		return cli.Exit("usage: sol run <file>", 2)
	}
	src, err := os.ReadFile(file)
	if err != nil {
		return cli.Exit(fmt.Sprintf("sol: cannot read %s: %v", file, err), 1)
	}
	v, err := sol.RunFile(string(src))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if c.Bool("debug") {
		fmt.Println(sol.Stringify(v))
	}
	return nil
}

func cmdRepl(_ *cli.Context) error {
	fmt.Println("Sol REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	interp := sol.NewInterpreter()

	for {
		code, ok := sol.ReadStatement(linerAdapter{ln}, promptMain, promptCont, func(err error) bool {
			return errors.Is(err, io.EOF)
		})
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.ToLower(trimmed) == ":quit" {
				return nil
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		v, err := interp.EvalPersistentSource(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(blue(sol.Stringify(v)))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
	return nil
}

// linerAdapter satisfies sol.LineReader over a *liner.State.
type linerAdapter struct{ ln *liner.State }

func (a linerAdapter) Prompt(prompt string) (string, error) {
	return a.ln.Prompt(prompt)
}
