package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jcgregorio/logger"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/mattn/gocalc"
	"github.com/mattn/gocalc/internal/repl"
)

const prompt = "> "

func interactive(s func(io.Writer) *repl.Session) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "failed to set terminal to raw mode")
	}
	defer term.Restore(fd, oldState)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, prompt)
	fmt.Fprintln(t, `Enter an expression ("exit" to quit).`)
	return s(t).Loop(t)
}

// newApp builds the command. Results go to stdout and logs to stderr.
func newApp(stdout io.Writer, stderr logger.SyncWriter) *cli.App {
	run := func(c *cli.Context) error {
		if c.NArg() > 1 {
			if err := cli.ShowAppHelp(c); err != nil {
				return err
			}
			return cli.Exit("", 2)
		}

		log := logger.NewFromOptions(&logger.Options{
			SyncWriter:   stderr,
			IncludeDebug: c.Bool("verbose"),
		})
		opts := repl.Options{
			MaxDepth:   c.Int("max-depth"),
			ShowTokens: c.Bool("tokens"),
			ShowAST:    c.Bool("ast"),
		}
		if f, ok := stdout.(*os.File); ok && !c.Bool("no-color") {
			opts.Color = isatty.IsTerminal(f.Fd())
		}
		session := func(out io.Writer) *repl.Session {
			return repl.New(out, log, opts)
		}

		if c.IsSet("expr") {
			_, err := session(stdout).Line(c.String("expr"))
			if err != nil {
				return cli.Exit("", 1)
			}
			return nil
		}

		var f *os.File
		if c.NArg() == 0 {
			if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return interactive(session)
			}
			f = os.Stdin
		} else {
			var err error
			f, err = os.Open(c.Args().First())
			if err != nil {
				return errors.Wrap(err, "failed to open input")
			}
			defer f.Close()
		}

		if err := session(stdout).Run(f); err != nil {
			log.Debugf("%v", err)
			return cli.Exit("", 1)
		}
		return nil
	}

	return &cli.App{
		Name:      "gocalc",
		Usage:     "evaluate integer arithmetic expressions",
		ArgsUsage: "[file]",
		Writer:    stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "evaluate `EXPRESSION` and exit",
			},
			&cli.BoolFlag{
				Name:    "ast",
				Usage:   "print the syntax tree of each expression",
				EnvVars: []string{"GOCALC_AST"},
			},
			&cli.BoolFlag{
				Name:    "tokens",
				Usage:   "print the tokens of each expression",
				EnvVars: []string{"GOCALC_TOKENS"},
			},
			&cli.IntFlag{
				Name:    "max-depth",
				Value:   gocalc.DefaultMaxDepth,
				Usage:   "maximum parenthesis nesting, 0 for no limit",
				EnvVars: []string{"GOCALC_MAX_DEPTH"},
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "disable colored output",
				EnvVars: []string{"GOCALC_NO_COLOR"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug messages to stderr",
				EnvVars: []string{"GOCALC_VERBOSE"},
			},
		},
		Action: run,
	}
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
