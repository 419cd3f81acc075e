package mapper

import (
	"time"

	gojira "github.com/andygrunwald/go-jira"

	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/model"
)

// sprintField is the Jira Cloud custom field carrying sprint membership.
const sprintField = "customfield_10020"

// ToIssueSummary projects a raw Jira issue into the flat shape every
// action returns. criteriaField is the custom field id holding acceptance
// criteria text; the pointer stays nil when the field is unset upstream.
func ToIssueSummary(issue *gojira.Issue, criteriaField string) model.IssueSummary {
	summary := model.IssueSummary{
		Key:         issue.Key,
		Assignee:    model.UnassignedDisplayName,
		Description: model.NoDescription,
	}

	fields := issue.Fields
	if fields == nil {
		return summary
	}

	summary.Summary = fields.Summary
	summary.IssueType = fields.Type.Name

	if fields.Status != nil {
		summary.Status = fields.Status.Name
	}
	if fields.Assignee != nil && fields.Assignee.DisplayName != "" {
		summary.Assignee = fields.Assignee.DisplayName
	}
	if fields.Description != "" {
		summary.Description = fields.Description
	}
	if fields.Priority != nil {
		summary.Priority = fields.Priority.Name
	}

	if created := time.Time(fields.Created); !created.IsZero() {
		summary.Created = created.Format(time.RFC3339)
	}

	summary.Sprint = sprintName(fields.Unknowns[sprintField])

	if criteriaField != "" {
		if text, ok := fieldText(fields.Unknowns[criteriaField]); ok {
			summary.AcceptanceCriteria = &text
		}
	}

	return summary
}

// ToIssueSummaries maps a search result set. Always returns a non-nil
// slice so an empty result serializes as an empty list.
func ToIssueSummaries(issues []gojira.Issue, criteriaField string) []model.IssueSummary {
	summaries := make([]model.IssueSummary, 0, len(issues))
	for i := range issues {
		summaries = append(summaries, ToIssueSummary(&issues[i], criteriaField))
	}
	return summaries
}

// sprintName extracts the name of the first sprint from the raw custom
// field value, which Jira returns as a list of sprint objects.
func sprintName(raw any) string {
	sprints, ok := raw.([]any)
	if !ok || len(sprints) == 0 {
		return ""
	}
	sprint, ok := sprints[0].(map[string]any)
	if !ok {
		return ""
	}
	name, _ := sprint["name"].(string)
	return name
}

// fieldText pulls text out of a custom field value. Plain text fields
// arrive as strings; single-select fields wrap the text in an object
// under "value".
func fieldText(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case map[string]any:
		if s, ok := v["value"].(string); ok {
			return s, true
		}
	}
	return "", false
}
