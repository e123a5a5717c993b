package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-agent-chat/models"
)

func renderRename(input string) string {
	return renderPage("RENAME CONVERSATION", input, "enter: save • esc: cancel")
}

func renderConfirmDelete(title string) string {
	return renderPage("DELETE CONVERSATION", fmt.Sprintf("Delete %q and all its messages?", title), "y: delete • n/esc: cancel")
}

func renderStats(stats models.ConversationStats, loading bool, spin string) string {
	if loading {
		return renderPage("CONVERSATION STATS", spin+" Loading...", "esc: close")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Messages: %d\n", stats.TotalMessages)
	fmt.Fprintf(&b, "Average response time: %.1f ms\n", stats.AverageResponseTime)
	if !stats.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Created: %s\n", stats.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if !stats.LastActivity.IsZero() {
		fmt.Fprintf(&b, "Last activity: %s\n", stats.LastActivity.Local().Format("2006-01-02 15:04"))
	}

	if len(stats.AgentUsage) > 0 {
		b.WriteString("\nAgents:\n")
		agents := make([]string, 0, len(stats.AgentUsage))
		for agent := range stats.AgentUsage {
			agents = append(agents, agent)
		}
		sort.Strings(agents)
		for _, agent := range agents {
			fmt.Fprintf(&b, "  %-16s %d\n", agent, stats.AgentUsage[agent])
		}
	}

	return renderPage("CONVERSATION STATS", strings.TrimRight(b.String(), "\n"), "esc: close")
}
