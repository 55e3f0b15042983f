//go:build gui

package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/andrewhcook/RSVP-Speed-Reader/internal/engine"
	"github.com/andrewhcook/RSVP-Speed-Reader/internal/mailbox"
	"github.com/andrewhcook/RSVP-Speed-Reader/internal/reader"
	"github.com/andrewhcook/RSVP-Speed-Reader/internal/state"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	minWPM   = 30
	maxWPM   = 900
	wpmStep  = 25
	maxChunk = 7
)

const framePeriod = 33 * time.Millisecond

// gui owns the engine on behalf of two callers: the ticker goroutine
// driving frames and the fyne event callbacks. mu serializes their access;
// the engine itself expects a single logical owner.
type gui struct {
	mu       sync.Mutex
	eng      *engine.Engine
	box      *mailbox.Box
	store    *state.Store
	docHash  string
	fontSize float32
	warning  string
}

// display is a consistent snapshot of everything the widgets render, taken
// under the lock so the ticker can keep mutating the engine.
type display struct {
	chunk     string
	progress  float64
	page      int
	pageCount int
	wpm       float64
	chunkSize int
	paused    bool
	fontSize  float32
	warning   string
}

func (g *gui) snapshot() display {
	g.mu.Lock()
	defer g.mu.Unlock()
	return display{
		chunk:     g.eng.CurrentChunk(),
		progress:  g.eng.Progress(),
		page:      g.eng.PageIndex() + 1,
		pageCount: g.eng.PageCount(),
		wpm:       g.eng.WPM(),
		chunkSize: g.eng.ChunkSize(),
		paused:    g.eng.Mode() == engine.Paused,
		fontSize:  g.fontSize,
		warning:   g.warning,
	}
}

// withEngine runs fn with exclusive access to the engine. Event callbacks
// use it for every mutation so they cannot race the frame goroutine.
func (g *gui) withEngine(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn()
}

// ingestUpload parses an upload and swaps in the resulting document,
// restoring any saved position for it. The previous document's position is
// recorded before the cursor is reset so its place survives the switch.
// Parsing happens before the lock is taken.
func (g *gui) ingestUpload(u mailbox.Upload, fresh bool) {
	pages, err := reader.ExtractPages(u.Name, u.Data)

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.warning = fmt.Sprintf("Could not read %s", u.Name)
		return
	}

	prevHash := g.docHash
	prevPos := state.Position{
		PageIndex: g.eng.PageIndex(),
		WordIndex: g.eng.WordIndex(),
	}

	if err := g.eng.Ingest(pages); err != nil {
		g.warning = fmt.Sprintf("%s contains no readable text", u.Name)
		return
	}
	g.warning = ""

	if g.store != nil && prevHash != "" {
		g.store.SetPosition(prevHash, prevPos)
	}

	g.docHash = state.ComputeHash(u.Data)
	if g.store != nil && !fresh {
		pos := g.store.GetPosition(g.docHash)
		g.eng.SetPosition(pos.PageIndex, pos.WordIndex)
	}
}

// savePosition records the current document's cursor.
func (g *gui) savePosition() {
	g.mu.Lock()
	hash := g.docHash
	pos := state.Position{
		PageIndex: g.eng.PageIndex(),
		WordIndex: g.eng.WordIndex(),
	}
	g.mu.Unlock()

	if g.store != nil && hash != "" {
		g.store.SetPosition(hash, pos)
	}
}

// restart rewinds to the first page and forgets the saved position.
func (g *gui) restart() {
	g.mu.Lock()
	g.eng.SeekToPage(0)
	hash := g.docHash
	g.mu.Unlock()

	if g.store != nil && hash != "" {
		g.store.Clear(hash)
	}
}

// createChunkDisplay renders a chunk. Single words get the ORP letter in
// red, anchored at the window's horizontal center; multi-word chunks are
// centered as a whole. Before the first reveal the chunk is empty and
// nothing is drawn.
func createChunkDisplay(chunk string, fontSize float32, windowWidth float32) *fyne.Container {
	if chunk == "" {
		return &fyne.Container{Layout: &centerVerticalLayout{}}
	}

	if strings.ContainsRune(chunk, ' ') {
		text := canvas.NewText(chunk, color.White)
		text.TextSize = fontSize
		text.TextStyle.Bold = true

		w := text.MinSize().Width
		x := (windowWidth - w) / 2
		if x < 0 {
			x = 0
		}

		c := &fyne.Container{
			Layout:  &centerVerticalLayout{},
			Objects: []fyne.CanvasObject{text},
		}
		text.Move(fyne.NewPos(x, 0))
		return c
	}

	runes := []rune(chunk)
	orp := engine.ORPPosition(chunk)

	// Ensure orp is within bounds
	if orp >= len(runes) {
		orp = len(runes) - 1
	}
	if orp < 0 {
		orp = 0
	}

	before := string(runes[:orp])
	focus := string(runes[orp])
	after := ""
	if orp+1 < len(runes) {
		after = string(runes[orp+1:])
	}

	beforeText := canvas.NewText(before, color.White)
	beforeText.TextSize = fontSize
	beforeText.TextStyle.Bold = true

	focusText := canvas.NewText(focus, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	focusText.TextSize = fontSize
	focusText.TextStyle.Bold = true

	afterText := canvas.NewText(after, color.White)
	afterText.TextSize = fontSize
	afterText.TextStyle.Bold = true

	beforeSize := beforeText.MinSize()
	focusSize := focusText.MinSize()

	// Horizontal: anchor ORP at center
	centerX := windowWidth / 2
	beforeX := centerX - beforeSize.Width
	focusX := centerX
	afterX := centerX + focusSize.Width

	if beforeX < 0 {
		beforeX = 0
	}

	c := &fyne.Container{
		Layout: &centerVerticalLayout{},
		Objects: []fyne.CanvasObject{
			beforeText,
			focusText,
			afterText,
		},
	}

	beforeText.Move(fyne.NewPos(beforeX, 0))
	focusText.Move(fyne.NewPos(focusX, 0))
	afterText.Move(fyne.NewPos(afterX, 0))

	return c
}

type centerVerticalLayout struct{}

func (l *centerVerticalLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var maxH float32
	for _, o := range objects {
		size := o.MinSize()
		if size.Height > maxH {
			maxH = size.Height
		}
	}
	return fyne.NewSize(0, maxH)
}

func (l *centerVerticalLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var maxH float32
	for _, o := range objects {
		objSize := o.MinSize()
		if objSize.Height > maxH {
			maxH = objSize.Height
		}
	}

	// Center vertically
	y := (size.Height - maxH) / 2
	if y < 0 {
		y = 0
	}

	// Position each object at the correct Y (X already set)
	for _, o := range objects {
		pos := o.Position()
		o.Move(fyne.NewPos(pos.X, y))
		o.Resize(o.MinSize())
	}
}

func main() {
	wpm := flag.Float64("w", engine.DefaultWPM, "Words per minute")
	chunk := flag.Int("c", engine.DefaultChunkSize, "Words revealed per flash")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	freshStart := flag.Bool("fresh", false, "Ignore saved reading position")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "RSVP - GUI Speed Reading Tool\n\n")
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
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("rsvp %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	g := &gui{
		eng:      engine.New(),
		box:      &mailbox.Box{},
		fontSize: 72,
	}

	if err := g.eng.SetPacing(*wpm, *chunk); err != nil {
		fmt.Fprintln(os.Stderr, "Error: Speed must be positive and chunk size at least 1.")
		os.Exit(1)
	}

	if store, err := state.NewStore(); err == nil {
		g.store = store
	}

	if flag.NArg() > 0 {
		filename := flag.Arg(0)
		data, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to read file '%s': %v\n", filename, err)
			os.Exit(1)
		}
		g.box.Put(filename, data)
	}

	a := app.New()
	w := a.NewWindow("RSVP Speed Reader")

	statusLabel := widget.NewLabel("")
	statusLabel.Alignment = fyne.TextAlignCenter

	pageProgress := widget.NewProgressBar()

	controlsLabel := widget.NewLabel("SPACE: pause  ↑/↓: speed  [/]: chunk  ←/→: page  O: open  +/-: font  R: restart  F: fullscreen  Q: quit")
	controlsLabel.Alignment = fyne.TextAlignCenter

	chunkContainer := container.NewMax()

	mainContainer := container.NewBorder(
		statusLabel,
		container.NewVBox(pageProgress, controlsLabel),
		nil, nil,
		chunkContainer,
	)

	updateDisplay := func() {
		d := g.snapshot()

		canvasWidth := w.Canvas().Size().Width
		if canvasWidth <= 0 {
			canvasWidth = 800
		}

		chunkContainer.Objects = []fyne.CanvasObject{
			createChunkDisplay(d.chunk, d.fontSize, canvasWidth),
		}
		chunkContainer.Refresh()

		pageProgress.SetValue(d.progress)

		pauseText := ""
		if d.paused {
			pauseText = " [PAUSED]"
		}
		status := fmt.Sprintf("Page %d/%d | %.0f WPM | %d word(s) per flash | Font: %.0f%s",
			d.page, d.pageCount, d.wpm, d.chunkSize, d.fontSize, pauseText)
		if d.warning != "" {
			status += " | " + d.warning
		}
		statusLabel.SetText(status)
	}

	openFile := func() {
		dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil || rc == nil {
				return
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				return
			}
			// Hand off to the frame loop; the dialog callback runs on a
			// different goroutine than the ticker.
			g.box.Put(rc.URI().Name(), data)
		}, w)
	}

	ticker := time.NewTicker(framePeriod)
	done := make(chan bool)
	var closeOnce sync.Once

	go func() {
		last := time.Now()
		playing := false
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				elapsed := now.Sub(last)
				last = now

				if u, ok := g.box.Take(); ok {
					g.ingestUpload(u, *freshStart)
					fyne.Do(updateDisplay)
					continue
				}

				var revealed, nowPlaying bool
				g.withEngine(func() {
					_, revealed = g.eng.Tick(elapsed)
					nowPlaying = g.eng.Mode() == engine.Playing
				})
				if revealed || nowPlaying != playing {
					// Either a new chunk or playback just stopped at the
					// end of the document.
					fyne.Do(updateDisplay)
				}
				playing = nowPlaying
			}
		}
	}()

	w.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeySpace:
			g.withEngine(g.eng.TogglePlayPause)
			updateDisplay()

		case fyne.KeyUp:
			g.withEngine(func() {
				if v := g.eng.WPM() + wpmStep; v <= maxWPM {
					g.eng.SetPacing(v, g.eng.ChunkSize())
				}
			})
			updateDisplay()

		case fyne.KeyDown:
			g.withEngine(func() {
				if v := g.eng.WPM() - wpmStep; v >= minWPM {
					g.eng.SetPacing(v, g.eng.ChunkSize())
				}
			})
			updateDisplay()

		case fyne.KeyLeft:
			g.withEngine(func() {
				g.eng.SeekToPage(g.eng.PageIndex() - 1)
			})
			updateDisplay()

		case fyne.KeyRight:
			g.withEngine(func() {
				g.eng.SeekToPage(g.eng.PageIndex() + 1)
			})
			updateDisplay()

		case fyne.KeyF:
			w.SetFullScreen(!w.FullScreen())

		case fyne.KeyO:
			openFile()

		case fyne.KeyQ:
			g.savePosition()
			closeOnce.Do(func() {
				close(done)
			})
			a.Quit()
		}
	})

	w.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case '[':
			g.withEngine(func() {
				if c := g.eng.ChunkSize() - 1; c >= 1 {
					g.eng.SetPacing(g.eng.WPM(), c)
				}
			})
			updateDisplay()
		case ']':
			g.withEngine(func() {
				if c := g.eng.ChunkSize() + 1; c <= maxChunk {
					g.eng.SetPacing(g.eng.WPM(), c)
				}
			})
			updateDisplay()

		case 'r', 'R':
			g.restart()
			updateDisplay()

		case '+', '=':
			g.withEngine(func() {
				if g.fontSize < 200 {
					g.fontSize += 5
				}
			})
			updateDisplay()
		case '-':
			g.withEngine(func() {
				if g.fontSize > 20 {
					g.fontSize -= 5
				}
			})
			updateDisplay()
		}
	})

	w.Resize(fyne.NewSize(800, 600))
	w.SetContent(mainContainer)

	w.SetOnClosed(func() {
		g.savePosition()
		closeOnce.Do(func() {
			close(done)
		})
	})

	// Initialize display after window shows
	go func() {
		time.Sleep(100 * time.Millisecond)
		fyne.Do(updateDisplay)
	}()

	w.ShowAndRun()
}
