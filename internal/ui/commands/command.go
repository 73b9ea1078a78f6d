package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"showroom/internal/config"
	"showroom/internal/domain"
	"showroom/internal/eventbus"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CatalogLoader is the part of the catalog store commands use
type CatalogLoader interface {
	Load(ctx context.Context, source string, kind domain.Kind) (*domain.Catalog, error)
}

// CommandContext provides context for command execution
type CommandContext struct {
	Loader    CatalogLoader
	Bus       eventbus.EventBus
	Clipboard func(string) error
	StateFile string
}

// CatalogResultMsg carries the outcome of a catalog load back to the UI loop
type CatalogResultMsg struct {
	Source  string
	Token   uint64
	Catalog *domain.Catalog
	Err     error
}

// StatusMsg sets a transient status line message
type StatusMsg struct {
	Text string
	Err  error
}

// LoadCatalogCommand fetches a catalog in the background
type LoadCatalogCommand struct {
	ctx    *CommandContext
	load   context.Context
	source string
	kind   domain.Kind
	token  uint64
}

// NewLoadCatalogCommand creates a load bound to the mount's context and token
func NewLoadCatalogCommand(ctx *CommandContext, load context.Context, source string, kind domain.Kind, token uint64) *LoadCatalogCommand {
	return &LoadCatalogCommand{
		ctx:    ctx,
		load:   load,
		source: source,
		kind:   kind,
		token:  token,
	}
}

// Execute performs the load off the UI loop
func (c *LoadCatalogCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		cat, err := c.ctx.Loader.Load(c.load, c.source, c.kind)
		return CatalogResultMsg{Source: c.source, Token: c.token, Catalog: cat, Err: err}
	}
}

// CopyAddressCommand puts the shareable address on the clipboard
type CopyAddressCommand struct {
	ctx     *CommandContext
	address string
}

// NewCopyAddressCommand creates a new copy command
func NewCopyAddressCommand(ctx *CommandContext, address string) *CopyAddressCommand {
	return &CopyAddressCommand{ctx: ctx, address: address}
}

// Execute performs the copy
func (c *CopyAddressCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		if c.ctx.Clipboard == nil {
			return StatusMsg{Text: "Clipboard unavailable"}
		}
		if err := c.ctx.Clipboard(c.address); err != nil {
			return StatusMsg{Text: "Copy failed", Err: fmt.Errorf("copy address: %w", err)}
		}
		return StatusMsg{Text: "Link copied"}
	}
}

// SaveViewCommand persists the current address so the next run restores it
type SaveViewCommand struct {
	ctx     *CommandContext
	address string
}

// NewSaveViewCommand creates a new save command
func NewSaveViewCommand(ctx *CommandContext, address string) *SaveViewCommand {
	return &SaveViewCommand{ctx: ctx, address: address}
}

// Save writes the state file synchronously
func (c *SaveViewCommand) Save() error {
	if c.ctx.StateFile == "" {
		return nil
	}
	vs := config.ViewState{Address: c.address, SavedAt: time.Now()}
	if err := config.SaveViewState(c.ctx.StateFile, vs); err != nil {
		return err
	}
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.ViewSavedEvent{Address: c.address})
	}
	return nil
}

// Execute performs the save off the UI loop
func (c *SaveViewCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		if err := c.Save(); err != nil {
			return StatusMsg{Text: "Could not save view", Err: err}
		}
		return nil
	}
}
