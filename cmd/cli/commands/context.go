package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/internal/config"
	"github.com/sarvistore/shiftdesk/pkg/actions"
	"github.com/sarvistore/shiftdesk/pkg/clients/sheetsclient"
	"github.com/sarvistore/shiftdesk/pkg/core/schedule"
	"github.com/sarvistore/shiftdesk/pkg/core/services"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

// AppContext holds the application dependencies shared by all commands.
type AppContext struct {
	Ctx          context.Context
	Cfg          *config.Config
	OAuthCfg     *config.OAuthClientConfig
	SheetsClient *sheetsclient.Client
	Database     *db.DB
	State        *services.State
	Dispatcher   *actions.Dispatcher
	Holidays     *schedule.Holidays
	Logger       *zap.Logger
}

// rosterWriter adapts the sheets client to the deactivation service; the
// client needs the config to locate the roster tab.
type rosterWriter struct {
	client *sheetsclient.Client
	cfg    *config.Config
}

func (w *rosterWriter) SetEmployeeActive(employeeID string, active bool) error {
	return w.client.SetEmployeeActive(w.cfg, employeeID, active)
}

// RosterWriter returns the roster adapter for the deactivation flow.
func (a *AppContext) RosterWriter() services.RosterWriter {
	return &rosterWriter{client: a.SheetsClient, cfg: a.Cfg}
}
