package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/barista/internal/core"
	"github.com/vovakirdan/barista/internal/fortune"
)

// Palette
var (
	colorGold   = lipgloss.Color("178")
	colorCoffee = lipgloss.Color("94")
	colorCream  = lipgloss.Color("230")
	colorMuted  = lipgloss.Color("245")
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorGold:    lipgloss.NewStyle().Foreground(colorGold),
	core.ColorSteel:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorCoffee:  lipgloss.NewStyle().Foreground(colorCoffee),
	core.ColorCream:   lipgloss.NewStyle().Foreground(colorCream),
	core.ColorSteam:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Faint(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(colorMuted),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCoffee).
			Padding(1, 2)
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(colorGold).
			Padding(0, 2)
)

// cardWidth is the text width of the menu and fortune cards.
const cardWidth = 40

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// menuCard is the title overlay shown before a session starts.
func menuCard() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Zen Coffee"),
		"",
		lipgloss.NewStyle().Width(cardWidth).Align(lipgloss.Center).Render(
			"Master the art of the pour. Fill the cup to the gold ring without spilling. "+
				"Discover your fortune in the grounds."),
		"",
		buttonStyle.Render("Start Brewing"),
		"",
		mutedStyle.Render("hold the mouse button or toggle space to pour"),
	)
	return cardStyle.Render(body)
}

// ratingBar draws a rating as ten beans.
func ratingBar(rating int) string {
	r := core.Clamp(rating, 0, 10)
	return lipgloss.NewStyle().Foreground(colorGold).Render(strings.Repeat("●", r)) +
		mutedStyle.Render(strings.Repeat("○", 10-r))
}

// statsLine summarizes a pour in one line.
func statsLine(stats fortune.PourStats) string {
	state := "clean"
	if stats.Spilled {
		state = "spilled"
	}
	return fmt.Sprintf("fill %.1f%% · %.1fs · %s", stats.FillPercentage, stats.TimeTaken, state)
}

// fortuneCard renders the reading of a served cup.
func fortuneCard(f fortune.CoffeeFortune, stats *fortune.PourStats, source fortune.Source) string {
	wrap := lipgloss.NewStyle().Width(cardWidth)

	lines := []string{
		lipgloss.NewStyle().Width(cardWidth).Align(lipgloss.Center).Render(titleStyle.Render(f.Title)),
		lipgloss.NewStyle().Width(cardWidth).Align(lipgloss.Center).Render(
			fmt.Sprintf("Barista Rating %d/10  %s", f.Rating, ratingBar(f.Rating))),
		"",
		headStyle.Render("The Oracle Speaks"),
		wrap.Italic(true).Render(fmt.Sprintf("%q", f.Fortune)),
		"",
		mutedStyle.Bold(true).Render("Technique Critique"),
		wrap.Foreground(colorMuted).Render(f.BaristaComment),
	}
	if stats != nil {
		lines = append(lines, "", mutedStyle.Render(statsLine(*stats)))
	}
	switch source {
	case fortune.SourceOffline:
		lines = append(lines, mutedStyle.Italic(true).Render("offline reading"))
	case fortune.SourceDegraded:
		lines = append(lines, mutedStyle.Italic(true).Render("the spirits could not be reached"))
	}
	lines = append(lines, "", lipgloss.NewStyle().Width(cardWidth).Align(lipgloss.Center).Render(
		buttonStyle.Render("Brew Another Cup")))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
