package render

import (
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/adventure-client/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	bannerLine = regexp.MustCompile(`^#### .+$`)
	promptLine = regexp.MustCompile(`^\$.+$`)
)

// Renderer styles game output, errors and the shell prompt.
type Renderer struct {
	styles styles
}

// New returns a Renderer drawing through r. Pass lipgloss.DefaultRenderer()
// for stdout.
func New(r *lipgloss.Renderer) *Renderer {
	return &Renderer{styles: newStyles(r)}
}

// Format highlights level banner lines and in-game prompt lines of text.
// All other lines, and the line structure itself, are left untouched.
func (r *Renderer) Format(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		body, cr := strings.CutSuffix(line, "\r")

		switch {
		case bannerLine.MatchString(body):
			body = r.styles.banner.Render(body)
		case promptLine.MatchString(body):
			body = r.styles.prompt.Render(body)
		default:
			continue
		}

		if cr {
			body += "\r"
		}
		lines[i] = body
	}

	return strings.Join(lines, "\n")
}

// Error styles a client-side error message line by line, so multi-line
// messages are not padded into a block.
func (r *Renderer) Error(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = r.styles.err.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Title returns the banner printed when the shell starts.
func (r *Renderer) Title() string {
	return r.styles.title.Render(titleText)
}

// Prompt renders the shell prompt: the wall clock, then the current level
// once logged in, then "$ ".
func (r *Renderer) Prompt(now time.Time, session models.Session) string {
	var b strings.Builder

	b.WriteString(r.styles.clockBracket.Render("["))
	b.WriteString(r.styles.clock.Render(now.Format(time.TimeOnly)))
	b.WriteString(r.styles.clockBracket.Render("]"))
	b.WriteString(" ")

	if session.LoggedIn {
		b.WriteString(r.styles.levelBracket.Render("["))
		b.WriteString(r.styles.level.Render("level " + session.Level))
		b.WriteString(r.styles.levelBracket.Render("]"))
		b.WriteString(" ")
	}

	b.WriteString(r.styles.dollar.Render("$"))
	b.WriteString(" ")

	return b.String()
}
