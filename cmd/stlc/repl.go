package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const historyFile = ".stlc_history"

func runREPL(r *runner) error {
	fmt.Fprintln(r.out, "stlc REPL. Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("stlc> ")
		switch {
		case err == liner.ErrPromptAborted:
			continue
		case err == io.EOF:
			fmt.Fprintln(r.out)
			return nil
		case err != nil:
			return err
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":quit":
			return nil
		case strings.HasPrefix(line, ":"):
			fmt.Fprintln(r.out, "unknown command. Type :quit to exit.")
			continue
		}
		ln.AppendHistory(line)
		r.run(line)
	}
}
