package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ivor/todolist/internal/model"
	"github.com/ivor/todolist/internal/reminder"
	"github.com/ivor/todolist/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "todolist: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		return err
	}

	s, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer s.Close()

	dispatcher := reminder.NewAlertDispatcher(s, cfg.Reminders.Enabled)
	scheduler := reminder.NewScheduler(dispatcher)
	defer scheduler.Stop()

	// Re-arm reminders for every open todo. Past or absent due dates
	// are skipped by the scheduler itself.
	todos, err := s.GetIncomplete(context.Background())
	if err != nil {
		return err
	}
	for i := range todos {
		scheduler.Reschedule(&todos[i])
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	return nil
}
