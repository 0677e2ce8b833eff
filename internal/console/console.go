// Package console implements the interactive front-end. It owns menus,
// prompts and table rendering only; every data decision is delegated to
// the usecase layer, and typed errors come back as re-prompts rather
// than process exits.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/db-keli/task-management/internal/usecase"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Menu drives the console loop over an injected reader and writer so
// tests can script a session.
type Menu struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
	in  *bufio.Scanner
	out io.Writer
}

// NewMenu constructs the console front-end with its dependencies.
func NewMenu(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		log: log.Named("console"),
		uc:  uc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run loops over the main menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printHeader("Main Menu")
		fmt.Fprintln(m.out, "1. Manage Projects")
		fmt.Fprintln(m.out, "2. Manage Tasks")
		fmt.Fprintln(m.out, "3. View Status Reports")
		fmt.Fprintln(m.out, "4. Manage Users")
		fmt.Fprintln(m.out, "5. Exit")

		choice, ok := m.readInt("Enter your choice: ", 1, 5)
		if !ok {
			return nil
		}

		switch choice {
		case 1:
			m.projectMenu(ctx)
		case 2:
			m.taskMenu(ctx)
		case 3:
			m.showStatusReport(ctx)
		case 4:
			m.userMenu(ctx)
		case 5:
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		}
	}
}

func (m *Menu) printHeader(title string) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, headerStyle.Render(title))
}

func (m *Menu) printErr(err error) {
	fmt.Fprintln(m.out, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
}

func (m *Menu) printOK(msg string) {
	fmt.Fprintln(m.out, okStyle.Render(msg))
}
