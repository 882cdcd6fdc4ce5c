package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// promptCookies reads the cookie string interactively. On a terminal
// it runs a masked prompt so the session secrets never echo; with
// piped input it reads a single line instead.
func promptCookies(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return runCookiePrompt()
	}
	return readLine(in)
}

// readLine reads one newline-terminated line, tolerating a final
// unterminated line at EOF.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var promptLabel = lipgloss.NewStyle().Bold(true)

// cookiePrompt is the bubbletea model for masked cookie entry.
type cookiePrompt struct {
	input     textinput.Model
	done      bool
	cancelled bool
}

func newCookiePrompt() cookiePrompt {
	ti := textinput.New()
	ti.Placeholder = "name=value; name2=value2"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Width = 60
	ti.Focus()

	return cookiePrompt{input: ti}
}

// Init starts the cursor blink.
func (m cookiePrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (m cookiePrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt line.
func (m cookiePrompt) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return fmt.Sprintf("%s %s\n", promptLabel.Render("Cookie string from browser:"), m.input.View())
}

// runCookiePrompt runs the masked prompt on the terminal. A cancelled
// prompt yields an empty string, which the caller treats as "no
// cookies provided".
func runCookiePrompt() (string, error) {
	model, err := tea.NewProgram(newCookiePrompt()).Run()
	if err != nil {
		return "", err
	}

	prompt, ok := model.(cookiePrompt)
	if !ok || prompt.cancelled {
		return "", nil
	}
	return prompt.input.Value(), nil
}
