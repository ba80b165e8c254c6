package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/pawmart/pawmart/internal/theme"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// TerminalNotifier prints themed one-line messages, typically to stderr so
// they never mix with command output.
type TerminalNotifier struct {
	mu     sync.Mutex
	w      io.Writer
	styles theme.Styles
}

// NewTerminalNotifier creates a notifier writing to w in theme t.
func NewTerminalNotifier(w io.Writer, t domain.Theme) *TerminalNotifier {
	return &TerminalNotifier{w: w, styles: theme.NewStyles(w, t)}
}

// Success prints a success message.
func (n *TerminalNotifier) Success(msg string) {
	n.print(n.styles.Success.Render("✓ " + msg))
}

// Error prints an error message.
func (n *TerminalNotifier) Error(msg string) {
	n.print(n.styles.Error.Render("✗ " + msg))
}

// Info prints an informational message.
func (n *TerminalNotifier) Info(msg string) {
	n.print(n.styles.Info.Render("• " + msg))
}

func (n *TerminalNotifier) print(line string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(n.w, line) //nolint:errcheck // best-effort user message
}
