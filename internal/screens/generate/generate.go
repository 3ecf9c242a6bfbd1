package generate

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordmaster/internal/router"
	"github.com/abhisek/wordmaster/internal/screen"
	"github.com/abhisek/wordmaster/internal/session"
	"github.com/abhisek/wordmaster/internal/store"
	"github.com/abhisek/wordmaster/internal/ui/components"
	"github.com/abhisek/wordmaster/internal/ui/layout"
	"github.com/abhisek/wordmaster/internal/ui/theme"
	"github.com/abhisek/wordmaster/internal/word"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// GenerateScreen drives one generation session: request a batch, then
// browse the resulting cards with favorite/learned toggles.
type GenerateScreen struct {
	repo         *store.Repo
	gsess        *session.GenerationSession
	spinnerFrame int
	errMsg       string
}

var _ screen.Screen = (*GenerateScreen)(nil)
var _ screen.KeyHintProvider = (*GenerateScreen)(nil)

// New creates a GenerateScreen. A batch is requested on Init unless the
// session already holds a browsable view.
func New(repo *store.Repo, gsess *session.GenerationSession) *GenerateScreen {
	return &GenerateScreen{repo: repo, gsess: gsess}
}

func (s *GenerateScreen) Init() tea.Cmd {
	if s.gsess.Phase() == session.PhaseReady {
		return nil
	}
	return tea.Batch(s.generateBatch(), spinnerTick())
}

func (s *GenerateScreen) Title() string {
	return "Generate"
}

func (s *GenerateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Browse"},
		{Key: "F", Description: "Favorite"},
		{Key: "L", Description: "Learned"},
		{Key: "G", Description: "New Batch"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		if msg.Err != nil {
			s.errMsg = "Generation failed. Press G to try again."
		} else {
			s.errMsg = ""
		}
		return s, nil

	case spinnerTickMsg:
		if s.gsess.Phase() != session.PhaseGenerating {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *GenerateScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	nav := s.gsess.Navigator()

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "right", "n":
		nav.Next()
		return s, nil
	case "left", "p":
		nav.Previous()
		return s, nil
	case "g":
		if s.gsess.Phase() == session.PhaseGenerating {
			return s, nil
		}
		s.gsess.Discard()
		s.errMsg = ""
		return s, tea.Batch(s.generateBatch(), spinnerTick())
	case "f":
		s.toggleCurrent(func(w word.Word) store.Patch {
			v := !w.IsFavorite
			return store.Patch{IsFavorite: &v}
		})
		return s, nil
	case "l":
		s.toggleCurrent(func(w word.Word) store.Patch {
			v := !w.IsLearned
			return store.Patch{IsLearned: &v}
		})
		return s, nil
	}
	return s, nil
}

// toggleCurrent applies a status patch to the card under the cursor,
// optimistically updating the view and reverting if the write fails.
func (s *GenerateScreen) toggleCurrent(patch func(word.Word) store.Patch) {
	nav := s.gsess.Navigator()
	cur, ok := nav.Current()
	if !ok {
		return
	}

	p := patch(cur)
	nav.SetCurrent(p.Apply(cur))

	if _, err := s.repo.Update(context.Background(), cur.ID, p); err != nil {
		nav.SetCurrent(cur)
	}
}

func (s *GenerateScreen) generateBatch() tea.Cmd {
	return func() tea.Msg {
		words, err := s.gsess.Generate(context.Background(), 0)
		return batchReadyMsg{Words: words, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *GenerateScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(s.errMsg)
	}

	switch s.gsess.Phase() {
	case session.PhaseGenerating:
		frame := spinnerFrames[s.spinnerFrame]
		return center.Foreground(theme.Secondary).
			Render(fmt.Sprintf("%s Conjuring new words...", frame))

	case session.PhaseReady:
		nav := s.gsess.Navigator()
		cur, ok := nav.Current()
		if !ok {
			return center.Foreground(theme.TextDim).
				Render("Nothing to show. Press G for a new batch.")
		}
		return center.Render(components.RenderWordCard(cur, nav.Index()+1, nav.Len()))

	default:
		return center.Foreground(theme.TextDim).
			Render("Press G to generate a batch of words.")
	}
}
