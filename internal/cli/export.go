package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodhi-os/bodhi/internal/export"
	"github.com/bodhi-os/bodhi/internal/utils"
)

// ExportCmd writes one entity collection to a CSV file.
type ExportCmd struct {
	Entity string `arg:"" help:"Entity to export (tasks, daily_trackers, content, business, goals, habit_streaks, weekly_plans, accountability)."`
	User   string `required:"" help:"Email of the user whose data to export."`
	Out    string `help:"Output file path (default: bodhi_<entity>_<date>.csv in the working directory)." type:"path"`
}

func (cmd *ExportCmd) Run(ctx *Context) error {
	store, err := ctx.Store()
	if err != nil {
		return err
	}
	if err := store.Load(); err != nil {
		return err
	}
	defer store.Close()

	user, err := store.GetUserByEmail(strings.TrimSpace(cmd.User))
	if err != nil {
		return err
	}

	rows, err := export.Fetch(store, cmd.Entity, user.ID)
	if err != nil {
		return err
	}

	out := cmd.Out
	if out == "" {
		out = export.Filename(cmd.Entity, utils.Today())
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, rows); err != nil {
		return err
	}
	fmt.Printf("Exported %s to %s\n", cmd.Entity, filepath.Clean(out))
	return nil
}

// BackupCmd writes the full JSON backup for a user.
type BackupCmd struct {
	User string `required:"" help:"Email of the user whose data to back up."`
	Out  string `help:"Output file path (default: bodhi_full_backup_<date>.json in the working directory)." type:"path"`
}

func (cmd *BackupCmd) Run(ctx *Context) error {
	store, err := ctx.Store()
	if err != nil {
		return err
	}
	if err := store.Load(); err != nil {
		return err
	}
	defer store.Close()

	user, err := store.GetUserByEmail(strings.TrimSpace(cmd.User))
	if err != nil {
		return err
	}

	out := cmd.Out
	if out == "" {
		out = export.BackupFilename(utils.Today())
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	if err := export.WriteBackup(f, store, user.ID); err != nil {
		return err
	}
	fmt.Printf("Backup written to %s\n", filepath.Clean(out))
	return nil
}
