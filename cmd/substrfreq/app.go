package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Ne9or/lazyseq/pkg/lazyseq"
	"github.com/Ne9or/lazyseq/pkg/seqstream"
	"github.com/Ne9or/lazyseq/pkg/substrfreq"
	"github.com/peterh/liner"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// Prompter is the line reading part of *liner.State.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

const ErrUnknownMenuItem errorkit.Error = "unknown menu item"

type App struct {
	Prompter Prompter
	Out      io.Writer
}

const menu = `
Menu:
1 - console input
2 - file input
0 - exit
`

// Run serves the menu until the user exits or the input ends.
// Failures of a single round are printed and the loop goes on.
func (app *App) Run(ctx context.Context) error {
	for {
		fmt.Fprint(app.Out, menu)
		choice, err := app.prompt("> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(choice) == "0" {
			fmt.Fprintln(app.Out, "Bye.")
			return nil
		}

		count, err := app.round(ctx, strings.TrimSpace(choice))
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			logger.Debug(ctx, "round failed", logging.ErrField(err))
			fmt.Fprintf(app.Out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(app.Out, "Result: %d\n", count)
	}
}

func (app *App) round(ctx context.Context, choice string) (int, error) {
	var (
		stream *seqstream.Stream[rune]
		closer io.Closer
	)
	switch choice {
	case "1":
		text, err := app.readConsole()
		if err != nil {
			return 0, err
		}
		stream = seqstream.FromText(text)
	case "2":
		name, err := app.prompt("File name:\n> ")
		if err != nil {
			return 0, err
		}
		f, err := os.Open(strings.TrimSpace(name))
		if err != nil {
			return 0, err
		}
		closer = f
		stream = seqstream.New(lazyseq.FromSource(lazyseq.RuneSource(f)))
	default:
		return 0, ErrUnknownMenuItem.F("%q", choice)
	}

	count, err := app.count(stream)
	if closer != nil {
		err = errorkit.Merge(err, closer.Close())
	}
	if err == nil {
		logger.Info(ctx, "pattern counted", logging.Field("source", choice), logging.Field("count", count))
	}
	return count, err
}

func (app *App) count(stream *seqstream.Stream[rune]) (int, error) {
	pattern, err := app.prompt("Pattern:\n> ")
	if err != nil {
		return 0, err
	}
	counter, err := substrfreq.New(pattern)
	if err != nil {
		return 0, err
	}
	return counter.Count(stream)
}

func (app *App) readConsole() (string, error) {
	fmt.Fprintln(app.Out, "Enter text, an empty line ends the input:")
	var text strings.Builder
	for {
		line, err := app.Prompter.Prompt("")
		if err != nil {
			return "", err
		}
		if line == "" {
			return text.String(), nil
		}
		text.WriteString(line)
		text.WriteByte('\n')
	}
}

func (app *App) prompt(p string) (string, error) {
	in, err := app.Prompter.Prompt(p)
	if err != nil {
		return "", err
	}
	if in != "" {
		app.Prompter.AppendHistory(in)
	}
	return in, nil
}
