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

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/peterh/liner"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/daios-ai/lox/lox"
)

const (
	appName     = "lox"
	historyFile = ".lox_history"
	promptMain  = "|> "
	promptCont  = ".. "
)

// Exit codes follow the sysexits convention: 64 usage, 65 compile-time
// (lex/parse), 70 runtime.
const (
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70
)

var errPrint = color.New(color.FgRed)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "tree-walking interpreter for the Lox language"
	app.Version = lox.Version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "f, file",
			Usage: "execute `FILE` instead of starting the REPL",
		},
	}
	app.Action = func(c *cli.Context) error {
		if path := c.String("file"); path != "" {
			return runFile(path)
		}
		if c.NArg() > 0 {
			cli.ShowAppHelp(c)
			return cli.NewExitError("", exitUsage)
		}
		// Piped input is run like a file; a terminal gets the REPL.
		if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			src, err := io.ReadAll(os.Stdin)
			if err != nil {
				errPrint.Fprintf(os.Stderr, "%s: cannot read stdin: %v\n", appName, err)
				return cli.NewExitError("", exitUsage)
			}
			return runSource(string(src))
		}
		return runREPL()
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "execute a script file",
			ArgsUsage: "<file>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return cli.NewExitError(
						fmt.Sprintf("usage: %s run <file>", appName), exitUsage)
				}
				return runFile(c.Args().First())
			},
		},
		{
			Name:      "tokens",
			Usage:     "dump the token stream of a script (debug aid)",
			ArgsUsage: "[file]",
			Action:    cmdTokens,
		},
	}

	if err := app.Run(os.Args); err != nil {
		errPrint.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}

// -----------------------------------------------------------------------------
// file mode
// -----------------------------------------------------------------------------

func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		errPrint.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return cli.NewExitError("", exitUsage)
	}
	return runSource(string(src))
}

func runSource(src string) error {
	ip := lox.NewInterpreter()

	stmts, diags := lox.ParseSource(src)
	if len(diags) > 0 {
		for _, d := range diags {
			errPrint.Fprintln(os.Stderr, lox.WrapErrorWithSource(d, src))
		}
		return cli.NewExitError("", exitCompile)
	}

	if err := ip.Interpret(stmts, ip.Global); err != nil {
		errPrint.Fprintln(os.Stderr, lox.WrapErrorWithSource(err, src))
		return cli.NewExitError("", exitRuntime)
	}
	return nil
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func runREPL() error {
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
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
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

	ip := lox.NewInterpreter()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if trimmed == "q" || trimmed == "quit" {
			return nil
		}

		stmts, diags := lox.ParseSource(code)
		if len(diags) > 0 {
			for _, d := range diags {
				errPrint.Fprintln(os.Stderr, d)
			}
			continue
		}

		// The environment persists across lines; a runtime error only kills
		// the current one.
		if err := ip.Interpret(stmts, ip.Global); err != nil {
			errPrint.Fprintln(os.Stderr, err)
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readByParseProbe reads lines until the buffer parses, or fails for a
// reason other than running out of input. Returns ok=false on EOF.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C cancels whatever was typed so far.
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if t := strings.TrimSpace(src); t == "" || t == "q" || t == "quit" {
			return src, true
		}
		if _, diags := lox.ParseSource(src); incompleteOnly(diags) {
			continue
		}
		return src, true
	}
}

// incompleteOnly reports whether every diagnostic is a parse error caused by
// running out of input — the signal to keep reading continuation lines.
func incompleteOnly(diags []error) bool {
	if len(diags) == 0 {
		return false
	}
	perrs := make([]*lox.ParseError, 0, len(diags))
	for _, d := range diags {
		pe, ok := d.(*lox.ParseError)
		if !ok {
			return false
		}
		perrs = append(perrs, pe)
	}
	return lox.IsIncomplete(perrs)
}

// -----------------------------------------------------------------------------
// tokens (debug dump)
// -----------------------------------------------------------------------------

func cmdTokens(c *cli.Context) error {
	var src []byte
	var err error
	switch c.NArg() {
	case 0:
		src, err = io.ReadAll(os.Stdin)
	case 1:
		src, err = os.ReadFile(c.Args().First())
	default:
		return cli.NewExitError(
			fmt.Sprintf("usage: %s tokens [file]", appName), exitUsage)
	}
	if err != nil {
		errPrint.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return cli.NewExitError("", exitUsage)
	}

	toks, lexErrs := lox.NewLexer(string(src)).Scan()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Type", "Lexeme", "Literal", "Pos"})
	table.SetBorder(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})
	for _, t := range toks {
		lit := ""
		if t.Literal != nil {
			lit = fmt.Sprintf("%v", t.Literal)
		}
		table.Append([]string{
			t.Type.String(), t.Lexeme, lit,
			fmt.Sprintf("%d:%d", t.Line, t.Col),
		})
	}
	table.Render()

	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			errPrint.Fprintln(os.Stderr, e)
		}
		return cli.NewExitError("", exitCompile)
	}
	return nil
}
