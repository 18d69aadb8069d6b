package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:8080"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringUsername step = iota
	stepEnteringPassword
	stepRegistering
	stepVerifying
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	username     string
	password     string
	currentInput string
	message      string
	quitting     bool
}

type registerSuccessMsg struct{}
type loginSuccessMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	url := os.Getenv("BUDGET_SERVER_URL")
	if url == "" {
		url = defaultServerURL
	}
	return model{
		step:      stepEnteringUsername,
		serverURL: strings.TrimRight(url, "/"),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func postCredentials(serverURL, path, username, password string) (*http.Response, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	payload := map[string]string{
		"username": username,
		"password": password,
	}
	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", serverURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return client.Do(req)
}

func registerUser(serverURL, username, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := postCredentials(serverURL, "/api/register", username, password)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			body, _ := io.ReadAll(resp.Body)
			var parsed struct {
				Error string `json:"error"`
			}
			if json.Unmarshal(body, &parsed) == nil && parsed.Error != "" {
				return errMsg{fmt.Errorf("registration failed: %s", parsed.Error)}
			}
			return errMsg{fmt.Errorf("registration failed with status %d", resp.StatusCode)}
		}
		return registerSuccessMsg{}
	}
}

func verifyLogin(serverURL, username, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := postCredentials(serverURL, "/api/login", username, password)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login check failed with status %d", resp.StatusCode)}
		}
		return loginSuccessMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			switch m.step {
			case stepEnteringUsername:
				if strings.TrimSpace(m.currentInput) == "" {
					m.message = "Username must not be empty"
					return m, nil
				}
				m.username = strings.TrimSpace(m.currentInput)
				m.currentInput = ""
				m.message = ""
				m.step = stepEnteringPassword
				return m, nil
			case stepEnteringPassword:
				if m.currentInput == "" {
					m.message = "Password must not be empty"
					return m, nil
				}
				m.password = m.currentInput
				m.currentInput = ""
				m.message = ""
				m.step = stepRegistering
				return m, registerUser(m.serverURL, m.username, m.password)
			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
			return m, nil
		default:
			if m.step == stepEnteringUsername || m.step == stepEnteringPassword {
				if len(msg.String()) == 1 {
					m.currentInput += msg.String()
				}
			}
			return m, nil
		}

	case registerSuccessMsg:
		m.step = stepVerifying
		return m, verifyLogin(m.serverURL, m.username, m.password)

	case loginSuccessMsg:
		m.step = stepComplete
		m.message = ""
		return m, nil

	case errMsg:
		m.message = msg.Error()
		// Send the user back to the first prompt so they can retry
		m.step = stepEnteringUsername
		m.currentInput = ""
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Budget Manager — Account Setup"))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(errorStyle.Render(m.message))
		b.WriteString("\n\n")
	}

	switch m.step {
	case stepEnteringUsername:
		b.WriteString(promptStyle.Render("Username: "))
		b.WriteString(inputStyle.Render(m.currentInput + "█"))
	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput)) + "█"))
	case stepRegistering:
		b.WriteString("Registering account...")
	case stepVerifying:
		b.WriteString("Verifying credentials...")
	case stepComplete:
		b.WriteString(successStyle.Render(fmt.Sprintf("Account '%s' is ready.", m.username)))
		b.WriteString("\n\nPress enter to exit.")
	}

	b.WriteString("\n\n(esc to quit)\n")
	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
