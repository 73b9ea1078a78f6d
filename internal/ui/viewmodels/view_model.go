package viewmodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"showroom/internal/config"
	"showroom/internal/ui/services/router"
	"showroom/internal/ui/state"
	"showroom/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	spinner          string
	address          string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		inputTransformer: NewInputTransformer(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it shows
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetAddress sets the address shown in the status line
func (vm *ViewModel) SetAddress(address string) {
	vm.address = address
}

// SetInput sets the active text input, nil outside text modes
func (vm *ViewModel) SetInput(prompt string, ti *textinput.Model) {
	vm.inputTransformer.SetInput(prompt, ti)
}

// FailureMessage is the error panel text for a page whose catalog failed to load
func FailureMessage(page router.Page, source string) string {
	return fmt.Sprintf("Failed to load %s. Check the data resource %s and your network.", page.Title(), source)
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Spinner:       vm.spinner,
		ShowHelp:      vm.state.ShowHelp,
		StatusMessage: vm.state.StatusMessage,
		Address:       vm.address,
		HelpModel:     vm.help,
		HelpKeys:      vm.keys,
		InputPrompt:   vm.inputTransformer.GetPrompt(),
		TextInput:     vm.inputTransformer.GetInputText(),
	}

	page := vm.state.Page
	for i, p := range router.Pages {
		vs.Tabs = append(vs.Tabs, views.PageTab{
			Number: i + 1,
			Title:  p.Title(),
			Active: page != nil && page.Page == p,
		})
	}
	if page == nil {
		return vs
	}

	vs.PageTitle = page.Page.Title()
	if !page.IsCatalog() {
		if page.Page == router.PageContact {
			vs.Contact = &views.ContactView{Service: page.Service}
		} else {
			vs.InfoPage = string(page.Page)
		}
		return vs
	}

	res := page.Resource
	vs.CatalogPage = true
	vs.LoadStatus = res.Status()
	vs.Refreshing = res.Refreshing()
	vs.SkeletonRows = vm.config.UI.SkeletonRows
	if res.Err() != nil {
		vs.ErrorMessage = FailureMessage(page.Page, page.Source)
	}
	if res.RefreshErr() != nil {
		vs.RefreshError = res.RefreshErr().Error()
	}

	if cat := page.Facets.Catalog(); cat != nil {
		vs.Facets = cat.Keys()
		vs.FacetCounts = make(map[string]int, len(cat.Facets))
		for _, f := range cat.Facets {
			vs.FacetCounts[f.Key] = len(f.Items)
		}
	}
	vs.ActiveFacet = page.Facets.ActiveFacet()
	if facet, ok := page.Facets.Active(); ok {
		vs.Overview = facet.Overview
	}

	vs.Items = page.Visible()
	vs.Filtering = page.Facets.Filtering()
	vs.HighlightQuery = page.Facets.DebouncedQuery()
	vs.QueryText = page.Facets.QueryText()
	vs.Cursor = page.Nav.GetCursor()
	vs.ViewportOffset = page.Nav.GetViewportOffset()
	vs.ViewportHeight = page.Nav.GetViewportHeight()

	if page.Lightbox.IsOpen() {
		if i := page.Lightbox.Index(); i >= 0 && i < len(vs.Items) {
			vs.Lightbox = &views.LightboxView{Item: vs.Items[i], Index: i, Count: len(vs.Items)}
		}
	}

	return vs
}
