// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     tui
// Description: Interactive terminal front end for the conversion pipeline
// License:     MIT
// ============================================================================

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talevox/talevox/internal/audio"
	"github.com/talevox/talevox/internal/pipeline"
	"github.com/talevox/talevox/internal/tts"
)

// focusArea is the input the keyboard currently drives.
type focusArea int

const (
	focusPDF focusArea = iota
	focusOutput
	focusText
	focusOptions
	focusCount
)

// Model is the TUI front end. It collects the conversion inputs, lets the
// user edit the extracted text before synthesis and drives the pipeline in
// the background.
type Model struct {
	conv   *pipeline.Converter
	player *audio.Player

	// State
	focus      focusArea
	width      int
	height     int
	ready      bool
	extracting bool
	converting bool
	playing    bool
	status     string
	statusKind statusKind
	warnings   []string

	// Options
	langIndex int
	speed     float64
	playAfter bool

	// Components
	pdfInput textinput.Model
	outInput textinput.Model
	textarea textarea.Model
	spinner  spinner.Model

	// Conversion plumbing
	msgCh chan tea.Msg
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

// NewModel creates the TUI model around a ready-to-use converter.
func NewModel(conv *pipeline.Converter, defaultLang string, defaultSpeed float64, playAfter bool) Model {
	pdf := textinput.New()
	pdf.Placeholder = "path/to/document.pdf"
	pdf.Focus()

	out := textinput.New()
	out.Placeholder = "path/to/audiobook.mp3"

	ta := textarea.New()
	ta.Placeholder = "Extracted text appears here and can be edited before conversion..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	langIndex := 0
	for i, l := range tts.Languages {
		if l.Code == defaultLang {
			langIndex = i
			break
		}
	}
	if defaultSpeed == 0 {
		defaultSpeed = 1.0
	}

	return Model{
		conv:      conv,
		player:    audio.NewPlayer(),
		pdfInput:  pdf,
		outInput:  out,
		textarea:  ta,
		spinner:   sp,
		langIndex: langIndex,
		speed:     defaultSpeed,
		playAfter: playAfter,
		status:    "Enter a PDF path and press Ctrl+E to extract its text.",
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if !m.converting {
				m.setFocus((m.focus + 1) % focusCount)
			}
			return m, nil

		case "shift+tab":
			if !m.converting {
				m.setFocus((m.focus + focusCount - 1) % focusCount)
			}
			return m, nil

		case "ctrl+e":
			if !m.extracting && !m.converting {
				path := strings.TrimSpace(m.pdfInput.Value())
				if path == "" {
					m.setStatus(statusWarn, "Enter a PDF path first.")
					return m, nil
				}
				m.extracting = true
				m.setStatus(statusInfo, "Extracting text...")
				return m, m.extractCmd(path)
			}
			return m, nil

		case "ctrl+s":
			if !m.converting && !m.extracting {
				return m.startConversion()
			}
			return m, nil
		}

		// Option keys only act while the options row has focus, so
		// typing in the text inputs is never hijacked.
		if m.focus == focusOptions && !m.converting {
			switch msg.String() {
			case "left", "h":
				m.langIndex = (m.langIndex + len(tts.Languages) - 1) % len(tts.Languages)
				return m, nil
			case "right", "l":
				m.langIndex = (m.langIndex + 1) % len(tts.Languages)
				return m, nil
			case "+", "=", "up", "k":
				m.speed = clampSpeed(m.speed + 0.1)
				return m, nil
			case "-", "down", "j":
				m.speed = clampSpeed(m.speed - 0.1)
				return m, nil
			case "p", " ":
				m.playAfter = !m.playAfter
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		taHeight := msg.Height - 14
		if taHeight < 3 {
			taHeight = 3
		}
		m.textarea.SetWidth(msg.Width - 6)
		m.textarea.SetHeight(taHeight)
		m.pdfInput.Width = msg.Width - 20
		m.outInput.Width = msg.Width - 20
		m.ready = true

	case extractedMsg:
		m.extracting = false
		if msg.err != nil {
			if pipeline.IsKind(msg.err, pipeline.KindEmptyExtraction) {
				m.setStatus(statusWarn, "No text extracted. The PDF may be scanned or image-based.")
			} else {
				m.setStatus(statusError, "Extraction failed: "+msg.err.Error())
			}
			return m, nil
		}
		m.textarea.SetValue(msg.text)
		m.setStatus(statusOK, fmt.Sprintf("Extracted %d characters. Edit the text, then press Ctrl+S to convert.", len(msg.text)))
		m.setFocus(focusText)

	case progressMsg:
		switch msg.stage {
		case pipeline.StageSynthesizing:
			if msg.total > 0 {
				m.setStatus(statusInfo, fmt.Sprintf("Synthesizing chunk %d of %d...", msg.done+1, msg.total))
			} else {
				m.setStatus(statusInfo, "Synthesizing...")
			}
		default:
			m.setStatus(statusInfo, capitalize(msg.stage.String())+"...")
		}
		cmds = append(cmds, listen(m.msgCh))

	case convertDoneMsg:
		m.converting = false
		if msg.err != nil {
			if pipeline.IsKind(msg.err, pipeline.KindEmptyExtraction) {
				m.setStatus(statusWarn, "Nothing to convert: no text was found.")
			} else {
				m.setStatus(statusError, "Conversion failed: "+msg.err.Error())
			}
			return m, nil
		}
		m.warnings = msg.result.Warnings
		m.setStatus(statusOK, fmt.Sprintf("Saved %s (%d chunks, %s).",
			msg.result.OutputPath, msg.result.Chunks, msg.result.Duration.Round(100*time.Millisecond)))
		if m.playAfter {
			m.playing = true
			return m, m.playCmd(msg.result.OutputPath)
		}

	case playbackDoneMsg:
		m.playing = false
		if msg.err != nil {
			m.setStatus(statusWarn, "Playback failed: "+msg.err.Error())
		}

	case spinner.TickMsg:
		if m.converting || m.extracting || m.playing {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Route remaining input to the focused component.
	switch m.focus {
	case focusPDF:
		m.pdfInput, cmd = m.pdfInput.Update(msg)
		cmds = append(cmds, cmd)
	case focusOutput:
		m.outInput, cmd = m.outInput.Update(msg)
		cmds = append(cmds, cmd)
	case focusText:
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.pdfInput.Blur()
	m.outInput.Blur()
	m.textarea.Blur()
	switch f {
	case focusPDF:
		m.pdfInput.Focus()
	case focusOutput:
		m.outInput.Focus()
	case focusText:
		m.textarea.Focus()
	}
}

func (m *Model) setStatus(kind statusKind, msg string) {
	m.statusKind = kind
	m.status = msg
}

func (m Model) startConversion() (tea.Model, tea.Cmd) {
	content := strings.TrimSpace(m.textarea.Value())
	pdfPath := strings.TrimSpace(m.pdfInput.Value())
	outPath := strings.TrimSpace(m.outInput.Value())

	if content == "" && pdfPath == "" {
		m.setStatus(statusWarn, "Load a PDF or enter text before converting.")
		return m, nil
	}
	if outPath == "" {
		m.setStatus(statusWarn, "Enter an output file path.")
		return m, nil
	}

	m.converting = true
	m.warnings = nil
	m.setStatus(statusInfo, "Starting conversion...")

	m.msgCh = make(chan tea.Msg, 16)
	req := pipeline.Request{
		PDFPath:    pdfPath,
		Text:       content,
		OutputPath: outPath,
		Language:   tts.Languages[m.langIndex].Code,
		Speed:      m.speed,
	}

	conv := m.conv
	ch := m.msgCh
	conv.OnProgress = func(stage pipeline.Stage, done, total int) {
		ch <- progressMsg{stage: stage, done: done, total: total}
	}
	go func() {
		result, err := conv.Convert(context.Background(), req)
		ch <- convertDoneMsg{result: result, err: err}
	}()

	return m, tea.Batch(listen(m.msgCh), m.spinner.Tick)
}

func (m Model) extractCmd(path string) tea.Cmd {
	conv := m.conv
	return func() tea.Msg {
		text, err := conv.ExtractText(path)
		return extractedMsg{text: text, err: err}
	}
}

func (m Model) playCmd(path string) tea.Cmd {
	conv := m.conv
	player := m.player
	return func() tea.Msg {
		seg, err := conv.DecodeForPlayback(context.Background(), path)
		if err != nil {
			return playbackDoneMsg{err: err}
		}
		return playbackDoneMsg{err: player.Play(seg)}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func clampSpeed(f float64) float64 {
	if f < audio.MinSpeed {
		return audio.MinSpeed
	}
	if f > audio.MaxSpeed {
		return audio.MaxSpeed
	}
	return f
}

// View renders the UI.
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("TaleVox — PDF to Audiobook"))
	s.WriteString("\n")

	s.WriteString(m.renderInput("PDF file", m.pdfInput.View(), m.focus == focusPDF))
	s.WriteString("\n")
	s.WriteString(m.renderInput("Output  ", m.outInput.View(), m.focus == focusOutput))
	s.WriteString("\n")

	taBox := BoxStyle
	if m.focus == focusText {
		taBox = FocusedBoxStyle
	}
	s.WriteString(taBox.Render(m.textarea.View()))
	s.WriteString("\n")

	s.WriteString(m.renderOptions())
	s.WriteString("\n")

	s.WriteString(m.renderStatus())
	s.WriteString(m.renderHelp())

	return s.String()
}

func (m Model) renderInput(label, view string, focused bool) string {
	style := LabelStyle
	if focused {
		style = FocusedLabelStyle
	}
	return style.Render(label) + " " + view
}

func (m Model) renderOptions() string {
	label := LabelStyle
	if m.focus == focusOptions {
		label = FocusedLabelStyle
	}

	lang := tts.Languages[m.langIndex]
	playState := "off"
	if m.playAfter {
		playState = "on"
	}

	return label.Render("Options ") + " " +
		ValueStyle.Render(fmt.Sprintf("‹%s %s›", lang.Code, lang.Name)) +
		LabelStyle.Render("  speed ") + ValueStyle.Render(fmt.Sprintf("%.1fx", m.speed)) +
		LabelStyle.Render("  play after ") + ValueStyle.Render(playState)
}

func (m Model) renderStatus() string {
	var line string
	switch m.statusKind {
	case statusOK:
		line = StatusOKStyle.Render(m.status)
	case statusWarn:
		line = StatusWarnStyle.Render(m.status)
	case statusError:
		line = StatusErrorStyle.Render(m.status)
	default:
		line = m.status
	}

	if m.converting || m.extracting || m.playing {
		line = m.spinner.View() + " " + line
	}

	for _, w := range m.warnings {
		line += "\n" + StatusWarnStyle.Render("Warning: "+w)
	}
	return line
}

func (m Model) renderHelp() string {
	return HelpStyle.Render(
		"Tab: next field • Ctrl+E: extract PDF • Ctrl+S: convert • " +
			"Options row: ←/→ language, +/- speed, p play toggle • Esc: quit")
}
