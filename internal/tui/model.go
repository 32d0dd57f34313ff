package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/luxe/internal/history"
	"github.com/alexisbeaulieu97/luxe/internal/logger"
	"github.com/alexisbeaulieu97/luxe/internal/session"
	"github.com/alexisbeaulieu97/luxe/internal/theme"
	"github.com/alexisbeaulieu97/luxe/internal/ui"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

// promptMode says what the open prompt edits.
type promptMode int

const (
	promptNone promptMode = iota
	promptPath
	promptText
)

// Options wires the model to its collaborators.
type Options struct {
	Service Service
	Encoder Encoder
	History history.Provider
	Theme   theme.Config
	Logger  *logger.Logger
	Context context.Context
}

// Model is the Bubble Tea model for the LUXE VISION client.
type Model struct {
	state session.State

	service Service
	encoder Encoder
	history history.Provider
	log     *logger.Logger
	ctx     context.Context

	// Component state
	spinner spinner.Model
	input   textinput.Model

	// Prompt state
	prompt      promptMode
	promptSlot  upload.Slot
	promptField settingField

	// Thumbnails rendered once per upload, keyed by slot
	thumbs map[upload.Slot]thumbnail

	// History state
	entries        []history.Entry
	historyLoaded  bool
	historyErr     string
	settingsCursor int

	// Dimensions
	width  int
	height int
}

// NewModel creates the model on the home screen.
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	in := textinput.New()
	in.CharLimit = 1024
	in.Width = 60

	if opts.Encoder == nil {
		opts.Encoder = upload.NewEncoder()
	}
	if opts.History == nil {
		opts.History = history.NewStaticProvider()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	cfg := opts.Theme
	if cfg == (theme.Config{}) {
		cfg = theme.Default()
	}

	m := Model{
		state:   session.New(cfg),
		service: opts.Service,
		encoder: opts.Encoder,
		history: opts.History,
		log:     opts.Logger,
		ctx:     opts.Context,
		spinner: s,
		input:   in,
		thumbs:  map[upload.Slot]thumbnail{},
		width:   80,
		height:  24,
	}
	return m.refreshThumbnail(upload.SlotBanner)
}

// Init starts the spinner and loads history in the background. The spinner
// stops once history is loaded and no call is outstanding.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadHistoryCmd(m.ctx, m.history))
}

// State exposes the current view state.
func (m Model) State() session.State {
	return m.state
}

// spinning reports whether anything on screen shows the spinner.
func (m Model) spinning() bool {
	return m.state.Loading || !m.historyLoaded
}

// Prompting reports whether a text prompt has focus.
func (m Model) Prompting() bool {
	return m.prompt != promptNone
}

// dispatch runs the reducer and turns any emitted request into a command.
func (m Model) dispatch(action session.Action) (Model, tea.Cmd) {
	next, req := session.Reduce(m.state, action)
	m.state = next
	if req == nil {
		return m, nil
	}
	if m.service == nil {
		m.state, _ = session.Reduce(m.state, failureFor(req, errNoService))
		return m, nil
	}

	m.log.Request(string(req.Kind), req.Token, string(req.Origin)).Debug("request started")
	return m, tea.Batch(requestCmd(m.ctx, m.service, req), m.spinner.Tick)
}

// settle feeds a remote completion back, logging ones that no longer apply.
func (m Model) settle(token string, action session.Action) (Model, tea.Cmd) {
	req := m.state.Lookup(token)
	if req == nil {
		m.log.Request("", token, "").Debug("discarding response for a request that is no longer pending")
		return m, nil
	}
	if origin := req.Origin; origin != m.state.Active {
		m.log.Request(string(req.Kind), token, string(origin)).
			Section(string(m.state.Active)).
			Debug("response arrived after navigation")
	}
	return m.dispatch(action)
}

func failureFor(req *session.Request, err error) session.Action {
	if req.Kind == session.RequestTryon {
		return session.TryonFailed{Token: req.Token, Err: err}
	}
	return session.SearchFailed{Token: req.Token, Err: err}
}

// renderThumbnail decodes an upload into half blocks.
var renderThumbnail = ui.Thumbnail

type thumbnail struct {
	dataURL string
	width   int
	blocks  string
}

func (m Model) thumbnailSize(slot upload.Slot) (int, int) {
	if slot == upload.SlotBanner {
		return min(max(m.width-4, 10), 60), previewHeight
	}
	return previewWidth, previewHeight
}

// refreshThumbnail renders the image in slot unless the cached copy is current.
func (m Model) refreshThumbnail(slot upload.Slot) Model {
	img := m.state.Slot(slot)
	if img == nil || slot == upload.SlotLogo {
		delete(m.thumbs, slot)
		return m
	}
	width, height := m.thumbnailSize(slot)
	if t, ok := m.thumbs[slot]; ok && t.dataURL == img.DataURL && t.width == width {
		return m
	}
	m.thumbs[slot] = thumbnail{dataURL: img.DataURL, width: width, blocks: renderThumbnail(*img, width, height)}
	return m
}

// thumbnailFor returns the cached rendering of img, or "" when none matches.
func (m Model) thumbnailFor(slot upload.Slot, img upload.Image) string {
	if t, ok := m.thumbs[slot]; ok && t.dataURL == img.DataURL {
		return t.blocks
	}
	return ""
}
