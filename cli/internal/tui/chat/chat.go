// ABOUTME: Interactive chat TUI backed by the assistant endpoint
// ABOUTME: One textinput, a spinner while waiting, scrolling transcript above

package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rimki/rimki/cli/internal/client"
	"github.com/rimki/rimki/cli/internal/tui/styles"
)

// line is one transcript entry
type line struct {
	fromUser bool
	text     string
}

// replyMsg carries the assistant's response back into the update loop
type replyMsg struct {
	reply string
	err   error
}

// Model is the bubbletea model for the chat session
type Model struct {
	client   *client.Client
	username string

	input   textinput.Model
	spin    spinner.Model
	lines   []line
	waiting bool
	err     error
}

// New creates a chat model for the authenticated client
func New(c *client.Client, username string) Model {
	input := textinput.New()
	input.Placeholder = "Ask about the security policy..."
	input.Focus()
	input.CharLimit = 2000
	input.Width = 72

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		client:   c,
		username: username,
		input:    input,
		spin:     spin,
	}
}

// Err returns the error that ended the session, if any.
// The caller checks this for an expired session after the program exits.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.lines = append(m.lines, line{fromUser: true, text: text})
			m.input.Reset()
			m.waiting = true
			return m, tea.Batch(m.spin.Tick, m.send(text))
		}

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			if errors.Is(msg.err, client.ErrUnauthorized) {
				// Session is dead; bail out and let the command clean up
				m.err = msg.err
				return m, tea.Quit
			}
			m.lines = append(m.lines, line{text: "error: " + msg.err.Error()})
			return m, nil
		}
		m.lines = append(m.lines, line{text: msg.reply})
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("RIMKI assistant"))
	b.WriteString("\n")

	for _, l := range m.lines {
		if l.fromUser {
			b.WriteString(styles.UserLabel.Render(m.username+":") + " " + l.text + "\n")
		} else if strings.HasPrefix(l.text, "error: ") {
			b.WriteString(styles.ErrorText.Render(l.text) + "\n")
		} else {
			b.WriteString(styles.AssistantLabel.Render("assistant:") + " " + l.text + "\n")
		}
	}

	b.WriteString("\n")
	if m.waiting {
		b.WriteString(m.spin.View() + " thinking...\n")
	} else {
		b.WriteString(m.input.View() + "\n")
	}

	b.WriteString(styles.Help.Render("enter: send • esc: quit"))
	return b.String()
}

// send fires the chat request off the update loop
func (m Model) send(text string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		resp, err := c.SendMessage(ctx, text)
		if err != nil {
			return replyMsg{err: err}
		}
		return replyMsg{reply: resp.Message}
	}
}
