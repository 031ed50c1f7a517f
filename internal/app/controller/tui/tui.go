package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Run shows the dashboard until the user quits or the process is interrupted.
// The dashboard is closed on return, so requests still in flight are dropped.
func Run(ctx context.Context, d OrderDashboard, noticeTimeout time.Duration) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, os.Interrupt)
	defer cancel()
	defer d.Close()

	m := New(ctx, d, noticeTimeout)

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			zap.L().Info("got interruption signal, dashboard closed")
			return nil
		}

		return fmt.Errorf("error while running dashboard: %w", err)
	}

	return nil
}
