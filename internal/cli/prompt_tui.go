package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/reorient"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive full-screen search",
	Long: `Type a rotationless algorithm and press Enter to search it.

Keyboard shortcuts:
  Enter     - Search the typed algorithm
  Tab       - Toggle between ETM-optimal and all solutions
  Ctrl+U    - Clear the input
  Esc       - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd.Context())

	fmt.Fprintf(cmd.OutOrStdout(), "Initializing pruning table to depth %d ...\n", a.settings.Depth)
	sess, err := a.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	model := newSolveModel(cmd.Context(), sess)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}

// solveModel is a line editor with the latest search result below it.
type solveModel struct {
	ctx    context.Context
	cancel context.CancelFunc
	sess   *session

	input     []rune
	query     string
	result    *reorient.Result
	searching bool
	showAll   bool
	err       error
	quitting  bool
}

// newSolveModel derives a context that is cancelled when the model quits,
// stopping any search still running.
func newSolveModel(ctx context.Context, sess *session) *solveModel {
	ctx, cancel := context.WithCancel(ctx)
	return &solveModel{ctx: ctx, cancel: cancel, sess: sess, showAll: sess.settings.All}
}

func (m *solveModel) Init() tea.Cmd {
	return nil
}

func (m *solveModel) search(alg []reorient.Move) tea.Cmd {
	return func() tea.Msg {
		result, err := m.sess.solve(m.ctx, alg)
		return searchDoneMsg{result: result, err: err}
	}
}

func (m *solveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitting = true
			m.cancel()
			return m, tea.Quit

		case tea.KeyTab:
			m.showAll = !m.showAll

		case tea.KeyCtrlU:
			m.input = nil

		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}

		case tea.KeySpace:
			m.input = append(m.input, ' ')

		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)

		case tea.KeyEnter:
			if m.searching {
				break
			}
			alg, err := reorient.ParseMoves(string(m.input))
			if err != nil {
				m.err = err
				break
			}
			m.err = nil
			m.result = nil
			m.query = reorient.FormatMoves(alg)
			m.searching = true
			return m, m.search(alg)
		}

	case searchDoneMsg:
		m.searching = false
		if msg.err != nil {
			m.err = msg.err
			break
		}
		m.result = &msg.result
	}

	return m, nil
}

func (m *solveModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("reorient"))
	b.WriteString("\n\n")

	b.WriteString("Enter rotationless algorithm: ")
	b.WriteString(moveStyle.Render(string(m.input)))
	b.WriteString("█\n\n")

	switch {
	case m.searching:
		b.WriteString(statusStyle.Render(fmt.Sprintf("Searching %s ...", m.query)))
		b.WriteString("\n")
	case m.result != nil:
		b.WriteString(statusStyle.Render(m.query))
		b.WriteString("\n")
		b.WriteString(renderResult(*m.result, m.showAll))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	mode := "ETM-optimal"
	if m.showAll {
		mode = "all"
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("enter: search  tab: %s  ctrl+u: clear  esc: quit", mode)))
	return b.String()
}
