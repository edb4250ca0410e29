package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"prodreport/local-app/internal/cli"
	"prodreport/local-app/internal/config"
	"prodreport/local-app/internal/data"
	"prodreport/local-app/internal/event"
	"prodreport/local-app/internal/export"
	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/model"
	"prodreport/local-app/internal/session"
	"prodreport/local-app/internal/stats"
	"prodreport/local-app/internal/storage"
	"prodreport/local-app/internal/ui"
)

// app holds the initialized component graph shared by the shell and
// the one-shot commands.
type app struct {
	cfg      *model.Config
	logger   *log.Logger
	store    storage.Store
	storage  *storage.Storage
	events   *event.EventManager
	data     *data.DataManager
	session  *session.SessionManager
	exporter *export.Exporter
}

// newApp loads configuration and initializes every component in
// dependency order. Callers must Close the returned app.
func newApp(cfgPath string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := log.NewLogger(cfg, log.LevelInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info(context.Background(), "Application started", log.Fields{"config_path": cfgPath})

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	driver, err := storage.ParseDriver(cfg.StorageDriver)
	if err != nil {
		logger.Close()
		return nil, err
	}
	store, err := storage.NewStore(driver, filepath.Join(cfg.DataDir, cfg.StorageFile), logger)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	storageManager, err := storage.NewStorage(store, logger)
	if err != nil {
		store.Close()
		logger.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	eventManager := event.NewEventManager(logger)

	dataManager, err := data.NewDataManager(storageManager, eventManager, logger)
	if err != nil {
		store.Close()
		logger.Close()
		return nil, fmt.Errorf("failed to initialize data manager: %w", err)
	}

	sessionManager, err := session.NewSessionManager(session.Config{
		Username:          cfg.AdminUsername,
		Password:          cfg.AdminPassword,
		InactivityTimeout: time.Duration(cfg.InactivityTimeoutMinutes) * time.Minute,
		AbsoluteCap:       time.Duration(cfg.SessionCapMinutes) * time.Minute,
	}, storageManager, eventManager, logger)
	if err != nil {
		store.Close()
		logger.Close()
		return nil, fmt.Errorf("failed to initialize session manager: %w", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		storage:  storageManager,
		events:   eventManager,
		data:     dataManager,
		session:  sessionManager,
		exporter: export.NewExporter(logger),
	}, nil
}

func (a *app) Close() {
	a.session.Stop()
	if err := a.store.Close(); err != nil {
		a.logger.Error(context.Background(), "Failed to close store", log.Fields{"error": err})
	}
	if err := a.logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close logger: %v\n", err)
	}
}

// runShell starts the interactive shell and blocks until exit, EOF,
// or an interrupt signal.
func runShell(cfgPath string) error {
	a, err := newApp(cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	shell, err := cli.NewCLI(a.data, a.session, a.events, a.exporter, a.cfg.ExportDir, a.logger)
	if err != nil {
		a.logger.Error(context.Background(), "Failed to initialize CLI", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize CLI: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		a.logger.Info(context.Background(), "Received interrupt signal, shutting down", nil)
		shell.Stop()
	}()

	if err := shell.Run(); err != nil {
		a.logger.Error(context.Background(), "CLI error", log.Fields{"error": err})
		return fmt.Errorf("CLI error: %w", err)
	}

	a.logger.Info(context.Background(), "Application shutting down", nil)
	return nil
}

// runDashboard prints the dashboard once without entering the shell.
func runDashboard(cfgPath string) error {
	a, err := newApp(cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	out := ui.NewUI(os.Stdout, false)
	cli.RenderDashboard(out, stats.Dashboard(a.data.ReportManager.ReportAll(), time.Now()))
	return nil
}

// runExport writes all reports to a spreadsheet without entering the
// shell. Credentials are checked the same way 'admin login' checks
// them.
func runExport(cfgPath, filename, username, password string) error {
	a, err := newApp(cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.session.Login(username, password); err != nil {
		return err
	}
	// Don't leave a persisted session behind for a one-shot command.
	defer a.session.Logout()

	if filename == "" {
		filename = export.DefaultFilename(time.Now())
	}
	if err := os.MkdirAll(a.cfg.ExportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(a.cfg.ExportDir, filename)

	if err := a.exporter.WriteFile(a.data.ReportManager.ReportAll(), path); err != nil {
		return err
	}
	fmt.Println("Report exported to " + path)
	return nil
}
