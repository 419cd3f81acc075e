package model

// Fallbacks applied when the upstream issue leaves a field unset,
// mirroring what the extractor has always reported.
const (
	UnassignedDisplayName = "Unassigned"
	NoDescription         = "No description"
)

// IssueSummary is the read-only projection of a remote Jira issue returned
// by every action. It has no identity or lifecycle beyond a single
// response.
type IssueSummary struct {
	Key                string  `json:"key"`
	Summary            string  `json:"summary"`
	Status             string  `json:"status"`
	Assignee           string  `json:"assignee"`
	Created            string  `json:"created"`
	Description        string  `json:"description"`
	IssueType          string  `json:"issuetype,omitempty"`
	Priority           string  `json:"priority,omitempty"`
	Sprint             string  `json:"sprint,omitempty"`
	AcceptanceCriteria *string `json:"acceptance_criteria,omitempty"`
}
