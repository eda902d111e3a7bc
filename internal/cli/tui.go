package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/reorient"
	"github.com/SeamusWaldron/reorient/internal/ble"
	"github.com/SeamusWaldron/reorient/internal/recorder"
	"github.com/SeamusWaldron/reorient/internal/smartcube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	reorientStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type tickMsg time.Time
type bleConnectedMsg struct{ name string }
type bleMessageMsg struct{ msg *smartcube.Message }
type searchDoneMsg struct {
	result reorient.Result
	err    error
}

// captureModel records an algorithm from a smart cube and searches it.
type captureModel struct {
	ctx    context.Context
	cancel context.CancelFunc

	// BLE
	client      *ble.Client
	scanResults []ble.ScanResult
	stateFile   *recorder.StateFile
	msgChan     chan *smartcube.Message
	connected   bool
	deviceName  string
	battery     int

	capture *recorder.Capture
	sess    *session

	held      reorient.Reorientation
	moves     []reorient.Move
	result    *reorient.Result
	searching bool
	showAll   bool

	err      error
	quitting bool
}

func newCaptureModel(ctx context.Context, sess *session, client *ble.Client, results []ble.ScanResult, stateFile *recorder.StateFile) *captureModel {
	ctx, cancel := context.WithCancel(ctx)
	return &captureModel{
		ctx:         ctx,
		cancel:      cancel,
		client:      client,
		scanResults: results,
		stateFile:   stateFile,
		msgChan:     make(chan *smartcube.Message, 100),
		battery:     -1,
		capture:     recorder.NewCapture(sess.logger),
		sess:        sess,
		showAll:     sess.settings.All,
	}
}

func (m *captureModel) Init() tea.Cmd {
	return tea.Batch(
		m.connectBLE(),
		m.tickCmd(),
		m.listenForMessages(),
	)
}

func (m *captureModel) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		return bleMessageMsg{msg: <-m.msgChan}
	}
}

func (m *captureModel) tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *captureModel) connectBLE() tea.Cmd {
	return func() tea.Msg {
		if m.client == nil || len(m.scanResults) == 0 {
			m.err = fmt.Errorf("no device found in pre-scan")
			return nil
		}

		m.client.SetMessageCallback(func(msg *smartcube.Message) {
			select {
			case m.msgChan <- msg:
			default:
			}
		})

		target := pickTarget(m.scanResults, m.stateFile.State())
		if err := m.client.ConnectToResult(m.ctx, target); err != nil {
			m.err = fmt.Errorf("connection failed: %w", err)
			return nil
		}

		if err := m.client.EnableOrientation(); err != nil {
			m.sess.logger.Debug().Err(err).Msg("orientation-unavailable")
		}
		return bleConnectedMsg{name: m.client.DeviceName()}
	}
}

func (m *captureModel) search(moves []reorient.Move) tea.Cmd {
	return func() tea.Msg {
		result, err := m.sess.solve(m.ctx, moves)
		return searchDoneMsg{result: result, err: err}
	}
}

func (m *captureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.cancel()
			if m.client != nil {
				m.client.Disconnect()
			}
			return m, tea.Quit

		case "s", " ":
			if m.capture.State() != recorder.StateRecording && !m.searching {
				if err := m.capture.Start(); err != nil {
					m.err = err
					break
				}
				m.moves = nil
				m.result = nil
				m.err = nil
				if m.client != nil && m.connected {
					m.client.FlashBacklight()
				}
			}

		case "e", "enter":
			if m.capture.State() == recorder.StateRecording {
				m.moves = m.capture.End()
				m.searching = true
				return m, m.search(m.moves)
			}

		case "a", "tab":
			m.showAll = !m.showAll
		}

	case tickMsg:
		if m.client != nil {
			m.battery = m.client.Battery()
		}
		return m, m.tickCmd()

	case bleConnectedMsg:
		m.connected = true
		m.deviceName = msg.name
		if err := m.stateFile.SetLastDevice(m.client.DeviceUUID(), m.deviceName); err != nil {
			m.sess.logger.Warn().Err(err).Msg("state-save-failed")
		}

	case bleMessageMsg:
		if msg.msg != nil {
			m.handleMessage(msg.msg)
		}
		return m, m.listenForMessages()

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

func (m *captureModel) handleMessage(msg *smartcube.Message) {
	if err := m.capture.HandleMessage(msg); err != nil {
		m.err = err
	}

	switch msg.Type {
	case smartcube.MsgTypeRotation:
		if m.capture.State() == recorder.StateRecording {
			m.moves = reorient.MergeMoves(m.capture.Moves())
		}
	case smartcube.MsgTypeOrientation:
		o, err := smartcube.DecodeOrientation(msg.Payload)
		if err != nil {
			return
		}
		if r, err := smartcube.HeldOrientation(o.UpFace, o.FrontFace); err == nil {
			m.held = r
		}
	}
}

func (m *captureModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("reorient capture"))
	b.WriteString("\n\n")

	status := "Connecting..."
	if m.connected {
		status = fmt.Sprintf("Connected: %s", m.deviceName)
		if m.battery >= 0 {
			status += fmt.Sprintf("  Battery: %d%%", m.battery)
		}
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	if m.connected && !m.held.IsNone() {
		b.WriteString(statusStyle.Render("Held: ") + reorientStyle.Render(m.held.Token(m.sess.settings.Notation())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.searching:
		b.WriteString(statusStyle.Render("Searching..."))
	case m.capture.State() == recorder.StateRecording:
		b.WriteString(statusStyle.Render("Recording"))
	default:
		b.WriteString(statusStyle.Render("Idle"))
	}
	b.WriteString("\n")

	if len(m.moves) > 0 {
		b.WriteString(moveStyle.Render(reorient.FormatMoves(m.moves)))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(renderResult(*m.result, m.showAll))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s: start  e: end and search  a: toggle all  q: quit"))
	return b.String()
}

// renderResult styles a search report, highlighting the rotations.
func renderResult(r reorient.Result, all bool) string {
	lines := strings.Split(strings.TrimRight(r.Report(all), "\n"), "\n")
	if !r.Found() {
		return errorStyle.Render(lines[0]) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(lines[0]))
	b.WriteString("\n")

	body := lines[1:]
	if !all && len(body) > 0 {
		b.WriteString(statusStyle.Render(body[0]))
		b.WriteString("\n")
		body = body[1:]
	}
	for _, line := range body {
		tokens := strings.Fields(line)
		for i, tok := range tokens {
			if _, err := reorient.ParseMove(tok); err != nil {
				tokens[i] = reorientStyle.Render(tok)
			} else {
				tokens[i] = moveStyle.Render(tok)
			}
		}
		b.WriteString(strings.Join(tokens, " "))
		b.WriteString("\n")
	}
	return b.String()
}
