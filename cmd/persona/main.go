package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/persona/internal/cli"
	"github.com/zarlcorp/persona/internal/person"
	"github.com/zarlcorp/persona/internal/tui"
	"github.com/zarlcorp/persona/internal/wordlist"
	"golang.org/x/term"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("persona"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(ctx, os.Args[1])
		_ = app.Close()
		return
	}

	// no args on a terminal: interactive mode; piped: one table record
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cli.CmdGenerate(nil)
		_ = app.Close()
		return
	}

	if err := runTUI(); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("persona %s\n", version)
	case "generate":
		cli.CmdGenerate(os.Args[2:])
	case "email":
		cli.CmdEmail()
	default:
		fmt.Fprintf(os.Stderr, "persona: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func runTUI() error {
	lists, err := wordlist.LoadSet()
	if err != nil {
		return err
	}
	gen := person.New(lists)

	m := tui.New(version, gen)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
