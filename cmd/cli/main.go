package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/cmd/cli/commands"
	"github.com/sarvistore/shiftdesk/internal/config"
	"github.com/sarvistore/shiftdesk/pkg/actions"
	"github.com/sarvistore/shiftdesk/pkg/clients/sheetsclient"
	"github.com/sarvistore/shiftdesk/pkg/core/schedule"
	"github.com/sarvistore/shiftdesk/pkg/core/services"
	"github.com/sarvistore/shiftdesk/pkg/db"
	"github.com/sarvistore/shiftdesk/pkg/sheetssql"
	"github.com/sarvistore/shiftdesk/pkg/utils/logging"
)

var (
	env string
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftdesk",
		Short: "ShiftDesk CLI - Manage store schedules and shift requests",
		Long:  `A CLI tool for managing store schedules, time-off requests, shift offers and shift swaps.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.ActionCmd(app))
	rootCmd.AddCommand(commands.ListEmployeesCmd(app))
	rootCmd.AddCommand(commands.ListRequestsCmd(app))
	rootCmd.AddCommand(commands.ViewScheduleCmd(app))
	rootCmd.AddCommand(commands.PublishCmd(app))
	rootCmd.AddCommand(commands.EditModeCmd(app))
	rootCmd.AddCommand(commands.ExpireRequestsCmd(app))
	rootCmd.AddCommand(commands.AnnounceCmd(app))
	rootCmd.AddCommand(commands.SetTargetCmd(app))
	rootCmd.AddCommand(commands.DeactivateEmployeeCmd(app))
	rootCmd.AddCommand(commands.PeriodHoursCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, clients, database and the in-memory state
func initApp() error {
	var err error
	app.Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Load OAuth client configuration
	app.Logger.Info("Loading OAuth client configuration")
	app.OAuthCfg, err = config.LoadOAuthClientWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load OAuth client config: %w", err)
	}
	app.Logger.Debug("OAuth configuration loaded successfully")

	// Initialize sheets client
	app.Logger.Info("Initializing sheets client")
	app.SheetsClient, err = sheetsclient.NewClient(app.Ctx, app.OAuthCfg)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	app.Logger.Debug("Sheets client initialized successfully")

	// Initialize database schema
	app.Logger.Info("Initializing database schema")
	schema, err := db.Schema()
	if err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}
	app.Logger.Debug("Database schema created", zap.Int("tables", len(schema.Tables)))

	// Initialize SheetsSQL database
	app.Logger.Info("Connecting to database", zap.String("spreadsheet_id", app.Cfg.DatabaseSheetID))
	ssqlDB, err := sheetssql.NewDB(app.SheetsClient, app.Cfg.DatabaseSheetID, schema)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize DB layer
	app.Database = db.NewDB(ssqlDB)
	app.Logger.Info("Database initialized successfully")

	// Holiday rules
	app.Holidays, err = schedule.HolidaysFromRules(app.Cfg.HolidayRules)
	if err != nil {
		return fmt.Errorf("failed to parse holiday rules: %w", err)
	}

	// Load the roster and build the in-memory working set
	app.Logger.Info("Loading roster")
	employees, err := app.SheetsClient.ListEmployees(app.Cfg)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	app.State, err = services.LoadAll(app.Ctx, app.Database, app.Logger, employees, app.Cfg.PeriodAnchor)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	// Sweep requests whose shift dates passed while the app was down. A row
	// that fails to save is retried on the next sweep, so a partial failure
	// does not block startup.
	expired, err := services.ExpireStaleRequests(app.Ctx, app.State, app.Database, app.Logger, time.Now())
	if err != nil {
		app.Logger.Warn("startup expiry sweep incomplete", zap.Int("expired", expired), zap.Error(err))
	} else if expired > 0 {
		app.Logger.Info("expired stale requests at startup", zap.Int("count", expired))
	}

	app.Dispatcher = actions.NewDispatcher(app.State, app.Database, app.Logger)
	return nil
}
