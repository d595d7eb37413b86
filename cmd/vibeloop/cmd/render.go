package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vibeloop/vibeloop/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

func renderMembers(members []model.TeamMember) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("ID", "NAME", "MOOD", "GOALS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})

	for _, m := range members {
		t.Row(m.ID, m.Name, moodCell(m.Mood), goalsCell(m.Goals))
	}

	return t.Render()
}

func renderStats(stats model.TeamStats) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Today"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Completion: %s (%d/%d goals)\n", stats.CompletionPercentage, stats.CompletedGoals, stats.TotalGoals)

	for _, m := range model.Moods {
		n := stats.MoodBreakdown[m]
		bar := strings.Repeat("█", n)
		fmt.Fprintf(&b, "%s %-9s %s %d\n", m.Emoji(), m, doneStyle.Render(bar), n)
	}

	return strings.TrimRight(b.String(), "\n")
}

func moodCell(mood *model.Mood) string {
	if mood == nil {
		return mutedStyle.Render("-")
	}
	return mood.Emoji() + " " + string(*mood)
}

func goalsCell(goals []model.Goal) string {
	if len(goals) == 0 {
		return mutedStyle.Render("no goals today")
	}

	lines := make([]string, len(goals))
	for i, g := range goals {
		line := fmt.Sprintf("%s %s %s", checkbox(g.Completed), g.Description, mutedStyle.Render("("+g.ID+")"))
		if g.Completed {
			line = doneStyle.Render(line)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
