package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"showroom/internal/domain"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx *CommandContext) *Executor {
	return &Executor{ctx: ctx}
}

// ExecuteLoad creates and executes a catalog load
func (e *Executor) ExecuteLoad(load context.Context, source string, kind domain.Kind, token uint64) tea.Cmd {
	return NewLoadCatalogCommand(e.ctx, load, source, kind, token).Execute()
}

// ExecuteCopyAddress creates and executes a clipboard copy
func (e *Executor) ExecuteCopyAddress(address string) tea.Cmd {
	return NewCopyAddressCommand(e.ctx, address).Execute()
}

// SaveView persists address before the program exits
func (e *Executor) SaveView(address string) error {
	return NewSaveViewCommand(e.ctx, address).Save()
}
