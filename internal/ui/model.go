package ui

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"showroom/internal/config"
	"showroom/internal/domain"
	"showroom/internal/eventbus"
	"showroom/internal/ui/commands"
	"showroom/internal/ui/handlers"
	"showroom/internal/ui/input"
	inputtypes "showroom/internal/ui/input/types"
	"showroom/internal/ui/services/debounce"
	"showroom/internal/ui/services/events"
	"showroom/internal/ui/services/navigation"
	"showroom/internal/ui/services/router"
	"showroom/internal/ui/services/urlstate"
	"showroom/internal/ui/state"
	"showroom/internal/ui/viewmodels"
	"showroom/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// CatalogStore is what the model needs from the catalog store
type CatalogStore interface {
	commands.CatalogLoader
	Cached(source string) (*domain.Catalog, bool)
}

// Options configures a new Model
type Options struct {
	Config    *config.Config
	Store     CatalogStore
	Bus       eventbus.EventBus
	Logger    zerolog.Logger
	Start     *url.URL           // initial address, nil for the default page
	Clipboard func(string) error // defaults to the system clipboard
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger zerolog.Logger
	state  *state.AppState // centralized state
	store  CatalogStore

	// page lifetime
	ctx    context.Context
	cancel context.CancelFunc
	uiBus  *events.Bus
	sync   *urlstate.Sync
	router *router.Service

	width   int
	height  int
	help    help.Model
	keys    keyMap
	spinner spinner.Model

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *PagerOps
}

// NewModel creates a new UI model with the start page mounted
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger.With().Str("component", "ui").Logger()

	ctx, cancel := context.WithCancel(context.Background())

	uiBus := events.NewBus()
	uiBus.SubscribeAll(func(e interface{}) {
		logger.Debug().Str("event", events.TypeName(e)).Interface("data", e).Msg("ui event")
	})

	start := opts.Start
	if start == nil {
		start = urlstate.Build(string(router.DefaultPage), nil)
	}
	sync := urlstate.NewSync(urlstate.NewHistory(start), uiBus)

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	appState := state.NewAppState()
	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		logger:       logger,
		state:        appState,
		store:        opts.Store,
		ctx:          ctx,
		cancel:       cancel,
		uiBus:        uiBus,
		sync:         sync,
		router:       router.NewService(sync, uiBus),
		help:         help.New(),
		keys:         newKeyMap(),
		spinner:      sp,
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(appState, cfg),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
		cmdExecutor: commands.NewExecutor(&commands.CommandContext{
			Loader:    opts.Store,
			Bus:       opts.Bus,
			Clipboard: clip,
			StateFile: cfg.UI.StateFile,
		}),
	}
	m.eventHandler = handlers.NewEventHandler(appState, m.load, opts.Logger)

	m.mount()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Address returns the current shareable address
func (m *Model) Address() string {
	return m.sync.Current().String()
}

// Close releases the mounted page
func (m *Model) Close() {
	if m.state.Page != nil {
		m.state.Page.Unmount()
	}
	m.cancel()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.state.Page != nil {
			m.state.Page.Nav.SetViewportHeight(msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.state.ShowHelp = m.inputHandler.CurrentMode() == inputtypes.ModeHelp

		return m, tea.Batch(cmds...)

	default:
		// the text input wants blink ticks while searching
		inputCmd := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.state.InPagerMode {
		return ""
	}

	catalogPage := m.state.Page != nil && m.state.Page.IsCatalog()
	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetHelp(m.help, m.keys.forMode(m.inputHandler.CurrentMode(), catalogPage))
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetAddress(m.Address())
	m.viewModel.SetInput(m.inputHandler.Prompt(), m.inputHandler.TextInput())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// mount creates the state for the page the address points at. A cached
// catalog is shown at once; the caller starts the fresh load.
func (m *Model) mount() {
	page := m.router.Current()
	source := ""
	if kind, ok := page.Kind(); ok {
		source = m.config.Catalog.Source(kind)
	}

	ps := state.NewPageState(m.ctx, page, source, m.config.Search.Debounce, m.uiBus)
	if m.height > 0 {
		ps.Nav.SetViewportHeight(m.height)
	}
	m.state.Page = ps
	m.state.ShowHelp = false
	m.inputHandler.Reset()

	current := m.sync.Current()
	if !ps.IsCatalog() {
		ps.Service = current.Query().Get(urlstate.ParamService)
		m.logger.Debug().Str("page", string(page)).Msg("mounted")
		return
	}

	facet, query := urlstate.Seed(current)
	ps.Facets.Seed(facet, query)

	if cat, ok := m.store.Cached(source); ok {
		ps.Resource.ShowCached(cat)
		m.installCatalog(cat)
	}
	m.logger.Debug().
		Str("page", string(page)).
		Str("facet", facet).
		Str("query", query).
		Msg("mounted")
}

// remount swaps the mounted page for the one the address now points at
func (m *Model) remount() tea.Cmd {
	if m.state.Page != nil {
		m.state.Page.Unmount()
	}
	m.mount()
	return m.load()
}

// load starts a fetch for the mounted page's catalog
func (m *Model) load() tea.Cmd {
	ps := m.state.Page
	if ps == nil || !ps.IsCatalog() {
		return nil
	}
	ctx, token := ps.Resource.Begin()
	return m.cmdExecutor.ExecuteLoad(ctx, ps.Source, ps.Resource.Kind, token)
}

// installCatalog hands a catalog to the facets and re-derives everything
// that depends on the visible items
func (m *Model) installCatalog(cat *domain.Catalog) {
	ps := m.state.Page
	if ps.Facets.SetCatalog(cat) {
		m.logger.Debug().Str("active", ps.Facets.ActiveFacet()).Msg("unknown category replaced by first")
	}
	m.visibleChanged(false)
	m.writeAddress()
}

// visibleChanged keeps the cursor and the lightbox inside the visible items
func (m *Model) visibleChanged(resetCursor bool) {
	ps := m.state.Page
	if resetCursor {
		ps.Nav.Reset()
	} else {
		ps.Nav.Clamp()
	}
	if ps.Lightbox.Reconcile(len(ps.Visible())) && m.inputHandler.CurrentMode() == inputtypes.ModeLightbox {
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, "", m.inputContext())
	}
}

// writeAddress mirrors the active facet and settled query into the
// current history entry once data is installed
func (m *Model) writeAddress() {
	ps := m.state.Page
	if ps == nil || !ps.IsCatalog() || ps.Facets.Catalog() == nil {
		return
	}
	m.sync.Write(string(ps.Page), ps.Facets.ActiveFacet(), ps.Facets.DebouncedQuery())
}

// applyQuery makes text the settled query
func (m *Model) applyQuery(text string) {
	ps := m.state.Page
	if ps.Facets.SetDebouncedQuery(text) {
		m.visibleChanged(true)
		m.writeAddress()
	}
}

func (m *Model) inputContext() *input.ModelContext {
	ctx := &input.ModelContext{}
	ps := m.state.Page
	if ps == nil {
		return ctx
	}
	ctx.CatalogPage = ps.IsCatalog()
	ctx.Loaded = ps.Loaded()
	ctx.Query = ps.Facets.QueryText()
	ctx.Lightbox = ps.Lightbox.IsOpen()
	ctx.Cursor = ps.Nav.GetCursor()
	ctx.Visible = len(ps.Visible())
	return ctx
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.state.StatusMessage = text
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug().Str("action", action.Type()).Msg("processAction")
	ps := m.state.Page

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		ps.Nav.Navigate(navigation.Direction(a.Direction))

	case inputtypes.CycleFacetAction:
		var changed bool
		if a.Delta < 0 {
			changed = ps.Facets.PrevFacet()
		} else {
			changed = ps.Facets.NextFacet()
		}
		if changed {
			m.visibleChanged(true)
			m.writeAddress()
		}

	case inputtypes.UpdateTextAction:
		ps.Facets.SetQueryText(a.Text)
		return ps.Debounce.Trigger(a.Text)

	case inputtypes.SubmitTextAction:
		ps.Facets.SetQueryText(a.Text)
		ps.Debounce.Flush()
		m.applyQuery(a.Text)

	case inputtypes.CancelTextAction:
		if text, ok := ps.Debounce.Flush(); ok {
			m.applyQuery(text)
		}

	case inputtypes.ClearQueryAction:
		ps.Debounce.Cancel()
		if ps.Facets.ClearQuery() {
			m.visibleChanged(true)
			m.writeAddress()
		}

	case inputtypes.OpenLightboxAction:
		if err := ps.Lightbox.Open(a.Index, len(ps.Visible())); err != nil {
			m.logger.Debug().Err(err).Msg("lightbox not opened")
			return nil
		}
		m.inputHandler.ChangeMode(inputtypes.ModeLightbox, "", m.inputContext())

	case inputtypes.LightboxStepAction:
		if a.Delta < 0 {
			ps.Lightbox.Prev()
		} else {
			ps.Lightbox.Next()
		}
		if ps.Lightbox.IsOpen() {
			ps.Nav.MoveToIndex(ps.Lightbox.Index())
		}

	case inputtypes.CloseLightboxAction:
		ps.Lightbox.Close()

	case inputtypes.SwitchPageAction:
		page, ok := router.ByNumber(a.Number)
		if !ok || page == m.router.Current() {
			return nil
		}
		m.router.Go(page, nil)
		return m.remount()

	case inputtypes.HistoryAction:
		var moved bool
		if a.Direction == "back" {
			moved = m.router.Back()
		} else {
			moved = m.router.Forward()
		}
		if moved {
			return m.remount()
		}

	case inputtypes.RequestQuoteAction:
		var params map[string]string
		if item, ok := ps.Selected(); ok && ps.IsCatalog() {
			params = map[string]string{urlstate.ParamService: item.Name}
		}
		if m.router.Go(router.PageContact, params) {
			return m.remount()
		}

	case inputtypes.ReloadAction:
		if ps.IsCatalog() {
			return m.load()
		}

	case inputtypes.CopyAddressAction:
		return m.cmdExecutor.ExecuteCopyAddress(m.Address())

	case inputtypes.OpenOverviewAction:
		facet, ok := ps.Facets.Active()
		if !ok {
			return nil
		}
		content := views.RenderOverview(ps.Page.Title(), *facet, ps.Visible())
		if !m.pager.Attached() {
			return m.setStatus("Pager unavailable")
		}
		return m.showPager("overview", content)

	case inputtypes.ToggleHelpAction:
		if m.pager.Attached() {
			return m.showPager("help", views.HelpContent())
		}
		m.inputHandler.ChangeMode(inputtypes.ModeHelp, "", m.inputContext())

	case inputtypes.QuitAction:
		return m.quit()
	}

	return nil
}

// quit saves the current view for the next run and stops the program
func (m *Model) quit() tea.Cmd {
	if err := m.cmdExecutor.SaveView(m.Address()); err != nil {
		m.logger.Error().Err(err).Msg("failed to save view")
	}
	return tea.Quit
}

// showPager returns a command that shows content using ov pager
func (m *Model) showPager(title, content string) tea.Cmd {
	program := m.pager.program
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{title: title, err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case commands.CatalogResultMsg:
		ps := m.state.Page
		if ps == nil || !ps.IsCatalog() || !ps.Resource.Resolve(msg.Token, msg.Catalog, msg.Err) {
			m.logger.Debug().Str("source", msg.Source).Msg("dropped stale catalog result")
			return m, nil
		}
		if msg.Err != nil {
			m.logger.Warn().Err(msg.Err).Str("source", msg.Source).Msg("catalog unavailable")
			return m, nil
		}
		m.installCatalog(msg.Catalog)
		return m, nil

	case debounce.SettledMsg:
		ps := m.state.Page
		if ps == nil {
			return m, nil
		}
		if text, ok := ps.Debounce.Settle(msg); ok {
			m.applyQuery(text)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.StatusMsg:
		if msg.Err != nil {
			m.logger.Warn().Err(msg.Err).Msg(msg.Text)
		}
		return m, m.setStatus(msg.Text)

	case pagerMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Str("pager", msg.title).Msg("pager failed")
			if msg.title == "help" {
				m.inputHandler.ChangeMode(inputtypes.ModeHelp, "", m.inputContext())
				m.state.ShowHelp = true
			}
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil
	}

	return m, nil
}

// errNoStore is returned by Run when the model has nowhere to load from
var errNoStore = errors.New("ui: no catalog store")

// Run starts the program and blocks until it exits. Domain events published
// on bus are forwarded to the model.
func Run(opts Options, teaOpts ...tea.ProgramOption) (*Model, error) {
	if opts.Store == nil {
		return nil, errNoStore
	}
	m := NewModel(opts)
	defer m.Close()

	p := tea.NewProgram(m, teaOpts...)
	m.SetProgram(p)

	if opts.Bus != nil {
		for _, t := range []eventbus.EventType{
			eventbus.EventCatalogChanged,
			eventbus.EventCatalogLoaded,
			eventbus.EventCatalogFailed,
			eventbus.EventError,
			eventbus.EventViewSaved,
		} {
			unsubscribe := opts.Bus.Subscribe(t, func(e eventbus.DomainEvent) {
				p.Send(EventMsg{Event: e})
			})
			defer unsubscribe()
		}
	}

	_, err := p.Run()
	return m, err
}
