package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/folio-labs/portfolio/internal/models"
)

// EmptyMessage is shown when no project matches, including after a failed load.
const (
	EmptyMessage = "No projects found in this category."
	emptyHint    = "Projects will appear here once added to the database."
)

const maxTechnologies = 3

var styles = NewPalette("#06B6D4", "#9333EA", "#F59E0B", "#626262")

// Palette is the set of lipgloss styles used for cards.
type Palette struct {
	title  lipgloss.Style
	badge  lipgloss.Style
	tech   lipgloss.Style
	muted  lipgloss.Style
	card   lipgloss.Style
	active lipgloss.Style
}

func NewPalette(accent, highlight, badge, muted string) *Palette {
	return &Palette{
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		badge:  lipgloss.NewStyle().Foreground(lipgloss.Color(badge)).Bold(true),
		tech:   lipgloss.NewStyle().Foreground(lipgloss.Color(highlight)),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Italic(true),
		card:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(highlight)).Padding(0, 1),
		active: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true).Underline(true),
	}
}

// RenderCategoryBar lists the filter choices with the selected one marked.
func RenderCategoryBar(selected string) string {
	parts := make([]string, 0, len(Categories))
	for _, c := range Categories {
		if c == selected {
			parts = append(parts, styles.active.Render("["+c+"]"))
			continue
		}
		parts = append(parts, " "+c+" ")
	}
	return strings.Join(parts, " ")
}

// RenderProjects draws one card per project, or the empty-state message.
func RenderProjects(projects []models.Project) string {
	if len(projects) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, EmptyMessage, styles.muted.Render(emptyHint))
	}
	cards := make([]string, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, RenderCard(p))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func RenderCard(p models.Project) string {
	header := styles.title.Render(p.Title)
	if p.Featured {
		header += " " + styles.badge.Render("Featured")
	}

	lines := []string{header}
	if media := mediaLine(p); media != "" {
		lines = append(lines, styles.muted.Render(media))
	}
	lines = append(lines, p.Description)
	if tech := TechnologySummary(p.Technologies); tech != "" {
		lines = append(lines, styles.tech.Render(tech))
	}
	if links := linkLine(p); links != "" {
		lines = append(lines, links)
	}
	return styles.card.Render(strings.Join(lines, "\n"))
}

// TechnologySummary shows the first three technologies and a +N for the rest.
func TechnologySummary(tech []string) string {
	if len(tech) <= maxTechnologies {
		return strings.Join(tech, " · ")
	}
	return fmt.Sprintf("%s +%d", strings.Join(tech[:maxTechnologies], " · "), len(tech)-maxTechnologies)
}

// A video takes precedence over an image.
func mediaLine(p models.Project) string {
	switch {
	case p.VideoURL != "":
		return "Video: " + p.VideoURL
	case p.ImageURL != "":
		return "Image: " + p.ImageURL
	default:
		return ""
	}
}

func linkLine(p models.Project) string {
	var parts []string
	if p.GithubURL != "" {
		parts = append(parts, "Code: "+p.GithubURL)
	}
	if p.LiveURL != "" {
		parts = append(parts, "Live: "+p.LiveURL)
	}
	return strings.Join(parts, "  ")
}

// RenderContactStatus is the banner shown under the contact form.
func RenderContactStatus(s Status) string {
	switch s {
	case StatusSuccess:
		return styles.title.Render("Message sent successfully!")
	case StatusError:
		return styles.badge.Render("Failed to send message. Please try again.")
	default:
		return ""
	}
}
