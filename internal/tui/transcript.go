package tui

import (
	"strings"

	"github.com/MKhiriev/go-agent-chat/models"
)

const emptyTranscript = "No messages yet. Press tab and say hello."

// renderTranscript lays out the messages oldest first. Replies are rendered
// as markdown and labelled with the producing agent; the workflow trace is
// shown under replies that went through more than one agent.
func renderTranscript(messages []models.Message, renderer *markdownRenderer) string {
	if len(messages) == 0 {
		return helpStyle.Render(emptyTranscript)
	}

	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}

		if msg.IsFromUser {
			b.WriteString(userLabelStyle.Render("You"))
			b.WriteString(timeSuffix(msg))
			b.WriteString("\n")
			b.WriteString(msg.Content)
			continue
		}

		b.WriteString(agentLabelStyle.Render(agentLabel(msg)))
		b.WriteString(timeSuffix(msg))
		b.WriteString("\n")
		if msg.ProducingAgent == models.ErrorHandlerAgent {
			b.WriteString(errorStyle.Render(msg.Content))
		} else {
			b.WriteString(renderer.Render(msg.Content))
		}
		if trace := workflowTrace(msg.Workflow); trace != "" {
			b.WriteString("\n")
			b.WriteString(workflowStyle.Render(trace))
		}
	}

	return b.String()
}

func agentLabel(msg models.Message) string {
	if msg.ProducingAgent == "" {
		return "Assistant"
	}
	return msg.ProducingAgent
}

func timeSuffix(msg models.Message) string {
	if msg.Timestamp.IsZero() {
		return ""
	}
	return helpStyle.Render(" " + msg.Timestamp.Local().Format("15:04"))
}

// workflowTrace renders "RouterAgent → MathAgent" for multi-step workflows.
func workflowTrace(workflow []models.AgentWorkflowStep) string {
	if len(workflow) < 2 {
		return ""
	}
	names := make([]string, 0, len(workflow))
	for _, step := range workflow {
		if step.Agent != "" {
			names = append(names, step.Agent)
		}
	}
	return strings.Join(names, " → ")
}
