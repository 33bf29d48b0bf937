package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/resdev/eclman/internal/domain"
	"github.com/resdev/eclman/internal/manual"
	"github.com/resdev/eclman/internal/output"
)

// PickCmd interactively picks a release and opens its manual
type PickCmd struct {
	PrintOnly bool `help:"Print the picked version instead of opening its manual"`
}

// pickItem implements list.Item for the picker
type pickItem struct {
	version     string
	title       string
	description string
}

func (i pickItem) Title() string       { return i.title }
func (i pickItem) Description() string { return i.description }
func (i pickItem) FilterValue() string { return i.version }

// pickModel is the bubbletea model for the picker
type pickModel struct {
	list     list.Model
	selected pickItem
	quitting bool
	canceled bool
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(pickItem); ok {
				m.selected = item
				m.quitting = true
				return m, tea.Quit
			}
		case "q", "esc", "ctrl+c":
			m.canceled = true
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 2)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Run executes the pick command
func (c *PickCmd) Run(globals *Globals) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return outputErrorCommon(globals, "NOT_INTERACTIVE",
			"eclman pick requires an interactive terminal",
			"Use `eclman versions` to list releases and `eclman open -v VERSION` to open one")
	}

	ctx := context.Background()

	root := globals.cfg().ECLPath
	if root == "" {
		return emitManualError(globals, manual.ErrRootUnset)
	}
	installs, err := globals.releaseManager().Installations(ctx, root)
	if err != nil {
		return outputErrorCommon(globals, "REPORT_FAILED", err.Error(), hintForTooling(err))
	}

	items := pickItems(installs)
	if len(items) == 0 {
		return outputErrorCommon(globals, "NO_RELEASES", "no installed releases reported",
			"Run `eclman doctor` to check the version report command")
	}

	selected, err := runPicker(items, "Select release")
	if err != nil {
		return err
	}

	if c.PrintOnly {
		_, err := fmt.Fprintln(globals.Stdout, selected.version)
		return err
	}
	return (&OpenCmd{Version: selected.version}).Run(globals)
}

// pickItems turns installations into picker entries, latest first.
func pickItems(installs []domain.Installation) []list.Item {
	items := make([]list.Item, 0, len(installs))
	for _, in := range installs {
		title := in.Version
		if in.Latest {
			title += " (latest)"
		}
		desc := in.ManualPath
		if !in.ManualExists {
			desc = "manual missing: " + in.ManualPath
		}
		items = append(items, pickItem{version: in.Version, title: title, description: desc})
	}
	return items
}

func runPicker(items []list.Item, title string) (pickItem, error) {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = output.Styles.Selected
	delegate.Styles.SelectedDesc = output.Styles.Selected.Foreground(output.Styles.Muted.GetForeground())

	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = output.Styles.Title

	m := pickModel{list: l}
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return pickItem{}, fmt.Errorf("picker error: %w", err)
	}

	result := finalModel.(pickModel)
	if result.canceled {
		return pickItem{}, errors.New("selection canceled")
	}
	return result.selected, nil
}
