//go:build !gui

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andrewhcook/RSVP-Speed-Reader/internal/engine"
	"github.com/andrewhcook/RSVP-Speed-Reader/internal/mailbox"
	"github.com/andrewhcook/RSVP-Speed-Reader/internal/reader"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Pacing bounds exposed through the key controls.
const (
	minWPM   = 30
	maxWPM   = 900
	wpmStep  = 25
	maxChunk = 7
)

const framePeriod = 33 * time.Millisecond

var (
	orpStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))
)

type model struct {
	eng *engine.Engine
	box *mailbox.Box
	bar progress.Model

	lastFrame time.Time
	warning   string
	quitting  bool
	width     int
	height    int
}

type frameMsg time.Time

func newModel(eng *engine.Engine, box *mailbox.Box) model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	return model{
		eng:    eng,
		box:    box,
		bar:    bar,
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd {
	return frame()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			m.eng.TogglePlayPause()
			return m, nil

		case "+", "=", "up":
			wpm := m.eng.WPM() + wpmStep
			if wpm <= maxWPM {
				m.eng.SetPacing(wpm, m.eng.ChunkSize())
			}
			return m, nil

		case "-", "down":
			wpm := m.eng.WPM() - wpmStep
			if wpm >= minWPM {
				m.eng.SetPacing(wpm, m.eng.ChunkSize())
			}
			return m, nil

		case "]":
			if c := m.eng.ChunkSize() + 1; c <= maxChunk {
				m.eng.SetPacing(m.eng.WPM(), c)
			}
			return m, nil

		case "[":
			if c := m.eng.ChunkSize() - 1; c >= 1 {
				m.eng.SetPacing(m.eng.WPM(), c)
			}
			return m, nil

		case "left":
			m.eng.SeekToPage(m.eng.PageIndex() - 1)
			return m, nil

		case "right":
			m.eng.SeekToPage(m.eng.PageIndex() + 1)
			return m, nil

		case "r":
			m.eng.SeekToPage(m.eng.PageIndex())
			return m, nil

		case "q", "Q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = msg.Width - 4
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		var elapsed time.Duration
		if !m.lastFrame.IsZero() {
			elapsed = now.Sub(m.lastFrame)
		}
		m.lastFrame = now

		if u, ok := m.box.Take(); ok {
			m.ingest(u)
		}
		m.eng.Tick(elapsed)
		return m, frame()
	}

	return m, nil
}

// ingest parses an upload and swaps in the resulting document. Failures
// leave the current document in place and surface a warning instead.
func (m *model) ingest(u mailbox.Upload) {
	pages, err := reader.ExtractPages(u.Name, u.Data)
	if err != nil {
		m.warning = fmt.Sprintf("Could not read %s: %v", u.Name, err)
		return
	}
	if err := m.eng.Ingest(pages); err != nil {
		m.warning = fmt.Sprintf("%s contains no readable text", u.Name)
		return
	}
	m.warning = ""
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	pause := ""
	if m.eng.Mode() == engine.Paused {
		pause = pausedStyle.Render(" [PAUSED]")
	}

	status := statusStyle.Render(
		fmt.Sprintf("Page %d/%d | %.0f WPM | %d word(s) per flash%s",
			m.eng.PageIndex()+1,
			m.eng.PageCount(),
			m.eng.WPM(),
			m.eng.ChunkSize(),
			pause,
		),
	)
	if m.warning != "" {
		status += warningStyle.Render(" " + m.warning)
	}

	controls := controlsStyle.Render("SPACE: pause/play  ↑/↓: speed  [/]: chunk  ←/→: page  R: restart page  Q: quit")

	// Reserve 3 lines: status at top, progress bar and controls at bottom
	avail := m.height - 3
	if avail < 1 {
		avail = 1
	}
	vPad := avail / 2

	var sb strings.Builder

	sb.WriteString(status)
	sb.WriteString("\n")

	for i := 0; i < vPad; i++ {
		sb.WriteString("\n")
	}

	sb.WriteString(renderChunk(m.eng.CurrentChunk(), m.width))

	remaining := avail - vPad
	for i := 0; i < remaining; i++ {
		sb.WriteString("\n")
	}

	sb.WriteString(m.bar.ViewAs(m.eng.Progress()))
	sb.WriteString("\n")
	sb.WriteString(controls)

	return sb.String()
}

// renderChunk centers a chunk on the line. Single words get the ORP letter
// highlighted and anchored at the screen center; multi-word chunks are
// centered as a whole.
func renderChunk(chunk string, width int) string {
	if chunk == "" {
		return ""
	}
	if strings.ContainsRune(chunk, ' ') {
		pad := (width - lipgloss.Width(chunk)) / 2
		if pad < 0 {
			pad = 0
		}
		return strings.Repeat(" ", pad) + wordStyle.Render(chunk)
	}

	orp := engine.ORPPosition(chunk)
	runes := []rune(chunk)

	before := string(runes[:orp])
	focus := string(runes[orp])
	after := ""
	if orp+1 < len(runes) {
		after = string(runes[orp+1:])
	}

	pad := width/2 - orp
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) +
		wordStyle.Render(before) +
		orpStyle.Render(focus) +
		wordStyle.Render(after)
}

func frame() tea.Cmd {
	return tea.Tick(framePeriod, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func main() {
	wpm := flag.Float64("w", engine.DefaultWPM, "Words per minute (default: 300)")
	chunk := flag.Int("c", engine.DefaultChunkSize, "Words revealed per flash (default: 1)")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "RSVP - Terminal Speed Reading Tool\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  rsvp [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nFormats:\n")
		for _, f := range reader.SupportedFormats() {
			fmt.Fprintf(os.Stderr, "  %s\n", f)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rsvp paper.pdf            Read a PDF at 300 WPM\n")
		fmt.Fprintf(os.Stderr, "  rsvp -w 500 book.epub     Read an EPUB at 500 WPM\n")
		fmt.Fprintf(os.Stderr, "  cat file.txt | rsvp       Read from stdin\n")
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  SPACE    Pause/play\n")
		fmt.Fprintf(os.Stderr, "  ↑/↓      Speed up/down by %d WPM\n", wpmStep)
		fmt.Fprintf(os.Stderr, "  [/]      Fewer/more words per flash\n")
		fmt.Fprintf(os.Stderr, "  ←/→      Previous/next page\n")
		fmt.Fprintf(os.Stderr, "  R        Restart current page\n")
		fmt.Fprintf(os.Stderr, "  Q        Quit\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("rsvp %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	eng := engine.New()
	if err := eng.SetPacing(*wpm, *chunk); err != nil {
		fmt.Fprintln(os.Stderr, "Error: Speed must be positive and chunk size at least 1.")
		os.Exit(1)
	}

	box := &mailbox.Box{}

	if flag.NArg() > 0 {
		filename := flag.Arg(0)
		data, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to read file '%s': %v\n", filename, err)
			os.Exit(1)
		}
		box.Put(filename, data)
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
				os.Exit(1)
			}
			box.Put("stdin.txt", data)
		}
	}

	p := tea.NewProgram(newModel(eng, box), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
