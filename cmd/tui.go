package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/suderio/ojcalc/internal/render"
	"github.com/suderio/ojcalc/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	stateBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94"))
)

const welcome = `100% Orange Juice DEF/EVD survival calculator
Dice: '6' (one d6), '6,6' (two d6), '4,6' (a d4 and a d6) or '2d6'.
Quick line: hp,attack,def,evd[,dice...] or hp attack def evd [dice...]
Type 'exit' at any prompt to quit.`

type stage int

const (
	stageMode stage = iota
	stageDetail
	stageCalc
)

type replModel struct {
	cfg        session.Config
	format     render.Format
	log        *zap.Logger
	session    *session.Session
	prompter   *session.Prompter
	stage      stage
	textInput  textinput.Model
	viewport   viewport.Model
	history    []string
	historyIdx int
	logContent string
	width      int
	height     int
}

func newREPLModel(cfg session.Config, format render.Format, log *zap.Logger, setup bool) *replModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	vp := viewport.New(0, 0)

	m := &replModel{
		cfg:        cfg,
		format:     format,
		log:        log,
		textInput:  ti,
		viewport:   vp,
		history:    []string{},
		historyIdx: -1,
		logContent: welcome,
	}

	if setup {
		m.stage = stageMode
		m.appendLog("\n=== Setup ===\n1. detailed (one value per prompt)\n2. quick (one line)")
	} else {
		m.startCalculating()
	}
	m.refreshPrompt()
	return m
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) appendLog(s string) {
	m.logContent += "\n" + strings.TrimRight(s, "\n")
	m.viewport.SetContent(m.logContent)
	m.viewport.GotoBottom()
}

func (m *replModel) appendError(err error) {
	m.appendLog(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
}

func (m *replModel) appendReport(r session.Report) {
	var b strings.Builder
	if err := render.Write(&b, m.format, r); err != nil {
		m.appendError(err)
		return
	}
	m.appendLog(b.String())
	m.newRound()
}

func (m *replModel) startCalculating() {
	m.session = session.New(m.cfg, m.log)
	m.prompter = m.session.NewPrompter()
	m.stage = stageCalc
	m.newRound()
}

func (m *replModel) newRound() {
	m.appendLog(fmt.Sprintf("\n%s New calculation %s", strings.Repeat("=", 12), strings.Repeat("=", 12)))
}

func (m *replModel) refreshPrompt() {
	switch m.stage {
	case stageMode:
		m.textInput.Prompt = fmt.Sprintf("Input mode 1/2 [%s]: ", m.cfg.Mode)
	case stageDetail:
		def := "n"
		if m.cfg.ShowDetail {
			def = "y"
		}
		m.textInput.Prompt = fmt.Sprintf("Always show detail? y/n [%s]: ", def)
	case stageCalc:
		if m.cfg.Mode == session.ModeQuick {
			m.textInput.Prompt = "hp,attack,def,evd[,dice]: "
		} else {
			m.textInput.Prompt = m.prompter.Prompt() + ": "
		}
	}
}

// submit handles one entered line and reports whether the shell should quit.
func (m *replModel) submit(val string) bool {
	if session.IsExit(val) {
		return true
	}

	switch m.stage {
	case stageMode:
		if val != "" {
			mode, err := session.ParseInputMode(val)
			if err != nil {
				m.appendError(err)
				return false
			}
			m.cfg.Mode = mode
		}
		m.stage = stageDetail

	case stageDetail:
		switch strings.ToLower(val) {
		case "":
		case "y", "yes":
			m.cfg.ShowDetail = true
		case "n", "no":
			m.cfg.ShowDetail = false
		default:
			m.appendError(errors.New("answer y or n"))
			return false
		}
		m.startCalculating()

	case stageCalc:
		if m.cfg.Mode == session.ModeQuick {
			report, err := m.session.EvaluateQuick(val)
			switch {
			case errors.Is(err, session.ErrEmptyInput):
			case err != nil:
				m.appendError(err)
			default:
				m.appendReport(report)
			}
			return false
		}

		report, err := m.prompter.Submit(val)
		if err != nil {
			m.appendError(err)
			return false
		}
		if report != nil {
			m.appendReport(*report)
		}
	}
	return false
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
			}

		case tea.KeyDown:
			if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val != "" && (len(m.history) == 0 || m.history[len(m.history)-1] != val) {
				m.history = append(m.history, val)
			}
			m.historyIdx = -1
			m.textInput.SetValue("")

			m.appendLog(fmt.Sprintf("%s%s", m.textInput.Prompt, val))
			if m.submit(val) {
				return m, tea.Quit
			}
			m.refreshPrompt()

		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	stateH := lipgloss.Height(m.renderState())
	infoH := lipgloss.Height(infoStyle.Render("Dummy"))
	overhead := titleH + stateH + infoH + 1 + 6

	m.viewport.Height = m.height - overhead
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m *replModel) renderState() string {
	detail := "off"
	if m.cfg.ShowDetail {
		detail = "on"
	}
	state := fmt.Sprintf("Mode: %s | Detail: %s | Default dice: [%s] | Format: %s", m.cfg.Mode, detail, m.cfg.DefaultDice.String(), m.format)
	return stateBoxStyle.Width(m.width - 4).Render(state)
}

func (m *replModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(" ojcalc | DEF/EVD survival ")
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.renderState(),
		logBox,
		m.textInput.View(),
		infoStyle.Render("(esc or 'exit' to quit, up/down history)"),
	)
}

// RunTUI starts the interactive calculator. With setup it first asks for the input mode and detail flag.
func RunTUI(cfg session.Config, format render.Format, log *zap.Logger, setup bool) error {
	m := newREPLModel(cfg, format, log, setup)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
