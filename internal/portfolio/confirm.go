package portfolio

import "context"

// Prompts shown before destructive operations.
const (
	PromptDeleteBlock   = "Deseja remover este bloco?"
	PromptClearVisitors = "Apagar todos os logs?"
)

// Confirmer gates destructive operations behind a yes/no answer.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// Answer is a Confirmer whose answer was decided up front, e.g. by a form
// field the browser filled in after its own confirm dialog.
type Answer bool

func (a Answer) Confirm(context.Context, string) bool { return bool(a) }
