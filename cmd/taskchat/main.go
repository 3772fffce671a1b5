package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskchat/internal/completion"
	"github.com/sandeepkv93/taskchat/internal/config"
	"github.com/sandeepkv93/taskchat/internal/session"
	"github.com/sandeepkv93/taskchat/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskchat failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, config.AppName)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	if cfg.Source != "" {
		log.Printf("[config] loaded %s", cfg.Source)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	client := completion.New(completionOptions(cfg))
	if !client.Configured() {
		log.Printf("[config] no API key set, remote completion disabled")
	}

	sess, err := session.Open(cfg.Store, session.Options{
		Completer: client,
		Seed:      seed,
		ChatOpen:  cfg.ChatOpen,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	program := tea.NewProgram(update.NewModel(ctx, sess), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}

// completionOptions leaves HTTPClient nil so requests run under the default
// client with no deadline beyond the program context.
func completionOptions(cfg config.Config) completion.Options {
	return completion.Options{
		URL:    cfg.CompletionURL,
		APIKey: cfg.APIKey,
	}
}
