// SPDX-License-Identifier: Unlicense OR MIT

// Command slidepane shows a two pane sliding layout in a terminal.
//
// The start pane is a list and the sliding pane is a detail view that
// covers it when the terminal is too narrow for both. Drag the detail
// pane with the mouse, or use the keys listed in the status line.
//
// Usage:
//
//	slidepane [-config pane.toml] [-state state.toml] [-log slidepane.log] [-dump]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slidepane/slidepane/config"
	"github.com/slidepane/slidepane/layout"
	"github.com/slidepane/slidepane/unit"
	"github.com/slidepane/slidepane/widget"
)

var (
	configFile = flag.String("config", "", "TOML file with a [pane] table")
	stateFile  = flag.String("state", "", "file to restore and save the open state")
	logFile    = flag.String("log", "", "write diagnostics to this file")
	dump       = flag.Bool("dump", false, "print the pane geometry for the current terminal and exit")
	rtl        = flag.Bool("rtl", false, "lay out panes right to left")
)

// Terminal cells are mapped to pixels at a fixed size.
const (
	cellWidth  = 8
	cellHeight = 16
)

var metric = unit.Metric{PxPerDp: 1}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: slidepane [flags]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "slidepane: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logOut := io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	widget.SetLogger(log)

	cfg := widget.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile, metric); err != nil {
			return err
		}
	}
	if cfg.PreferredFixedWidth == (layout.Extent{}) {
		cfg.PreferredFixedWidth = layout.Extent{Fraction: 0.4}
	}
	dir := layout.LTR
	if *rtl {
		dir = layout.RTL
	}
	if *dump {
		cols, rows := terminalSize(int(os.Stdout.Fd()))
		m := newModel(cfg, dir, log)
		m.resize(cols, rows)
		fmt.Print(m.geometry())
		return nil
	}

	m := newModel(cfg, dir, log)
	if *stateFile != "" {
		st, err := config.LoadState(*stateFile)
		if err != nil {
			return err
		}
		m.pane.Restore(st)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	m.pane.Detach()
	if *stateFile != "" {
		if err := config.SaveState(*stateFile, m.pane.Save()); err != nil {
			return err
		}
	}
	return nil
}
