package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordmaster/internal/router"
	"github.com/abhisek/wordmaster/internal/screen"
	"github.com/abhisek/wordmaster/internal/screens/home"
	"github.com/abhisek/wordmaster/internal/session"
	"github.com/abhisek/wordmaster/internal/store"
	"github.com/abhisek/wordmaster/internal/ui/layout"
)

// Options carries the collaborators the TUI needs.
type Options struct {
	Repo     *store.Repo
	Session  *session.GenerationSession
	LLMReady bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	repo   *store.Repo
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Repo, opts.Session, opts.LLMReady)
	return AppModel{
		router: router.New(homeScreen),
		repo:   opts.Repo,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	total, favorites := m.collectionStats()
	header := layout.RenderHeader(title, total, favorites, m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// collectionStats counts words and favorites for the header bar.
func (m AppModel) collectionStats() (total, favorites int) {
	words, err := m.repo.List(context.Background(), "")
	if err != nil {
		return 0, 0
	}
	for _, w := range words {
		if w.IsFavorite {
			favorites++
		}
	}
	return len(words), favorites
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
