package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neolog/site-api/internal/domain"
)

const reviewBackground = `You are reading the owner's personal work log: one entry per day with Done, Todo and Note, sometimes with links.
Your goal: for the given date range, comment on what the owner did and suggest concrete next steps.
If the log has little to do with the topics you care about, you may abstain: return an empty commentary and an empty suggestions list.
Reply with strict JSON containing only the fields commentary and suggestions.`

const reviewInstruction = `Based on the log entries in the date range and the link snippets, write your commentary on the owner's work and a list of short, actionable suggestions with a clear next step each. To abstain, reply {"commentary": "", "suggestions": []}. Reply with strict JSON containing only commentary and suggestions.`

func mergeSystem(limit int) string {
	return fmt.Sprintf(`You are the owner's chief of staff.
Merge the advisors' suggestions and the current backlog into the 1-%[1]d most valuable next actions.
Rules: remove duplicates, merge near-duplicates, rank by value against effort, keep each item short and independently actionable, return at most %[1]d items.
Do not repeat completed items.
Reply with strict JSON containing only {"todo": string[]}.`, limit)
}

type promptEntry struct {
	Date string   `json:"date"`
	Done []string `json:"done"`
	Todo []string `json:"todo"`
	Note string   `json:"note"`
}

type outputContract struct {
	Format string            `json:"format"`
	Schema map[string]string `json:"schema"`
}

type reviewPayload struct {
	StartDate    string               `json:"startDate"`
	EndDate      string               `json:"endDate"`
	Entries      []promptEntry        `json:"entries"`
	LinkSnippets []domain.LinkSnippet `json:"linkSnippets"`
	Output       outputContract       `json:"output"`
	Instruction  string               `json:"instruction"`
}

func itemsToText(items []domain.LogItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}

// reviewUserPayload serializes the shared part of every advisor request.
func reviewUserPayload(rng domain.DateRange, entries []domain.LogEntry, snippets []domain.LinkSnippet) (string, error) {
	p := reviewPayload{
		StartDate:    rng.StartString(),
		EndDate:      rng.EndString(),
		Entries:      make([]promptEntry, len(entries)),
		LinkSnippets: snippets,
		Output: outputContract{
			Format: "json",
			Schema: map[string]string{"commentary": "string", "suggestions": "string[]"},
		},
		Instruction: reviewInstruction,
	}
	if p.LinkSnippets == nil {
		p.LinkSnippets = []domain.LinkSnippet{}
	}
	for i, e := range entries {
		p.Entries[i] = promptEntry{
			Date: e.Date,
			Done: itemsToText(e.Done),
			Todo: itemsToText(e.Todo),
			Note: e.Note,
		}
	}

	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal review payload: %w", err)
	}
	return string(raw), nil
}

func reviewSystem(a domain.Advisor) []string {
	return []string{reviewBackground, strings.TrimSpace(a.TopicPrefs), strings.TrimSpace(a.Instructions)}
}

type completedItem struct {
	Text string `json:"text"`
	Note string `json:"note,omitempty"`
}

type mergePayload struct {
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	Limit     int              `json:"limit"`
	Backlog   []string         `json:"backlog"`
	Completed []completedItem  `json:"completed"`
	Reviews   []domain.Finding `json:"reviews"`
}

func mergeUserPayload(p mergePayload) (string, error) {
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal merge payload: %w", err)
	}
	return string(raw), nil
}
