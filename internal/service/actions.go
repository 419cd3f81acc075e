package service

import (
	"github.com/invopop/jsonschema"

	"github.com/nissynicolas/sdlc-jira-extractor-agent/common/schema"
)

// The four supported actions.
const (
	ActionGetIssue              = "get_issue"
	ActionSearchIssues          = "search_issues"
	ActionGetMyIssues           = "get_my_issues"
	ActionGetAcceptanceCriteria = "get_acceptance_criteria"
)

// myIssuesJQL lists issues assigned to the authenticated account,
// newest first.
const myIssuesJQL = "assignee = currentUser() ORDER BY created DESC"

// Parameter structs. The reflected JSON schemas are the single source of
// truth for required-parameter validation and for what MCP clients see in
// tools/list.

type GetIssueParams struct {
	IssueKey string `json:"issue_key" jsonschema:"required,description=The Jira issue key (e.g. PROJ-123)"`
}

type SearchIssuesParams struct {
	JQL string `json:"jql" jsonschema:"required,description=Jira Query Language filter expression"`
}

type GetMyIssuesParams struct{}

type GetAcceptanceCriteriaParams struct {
	IssueKey string `json:"issue_key" jsonschema:"required,description=The Jira issue key (e.g. PROJ-123)"`
}

// Definition describes one action: its name, what it does, and the JSON
// schema of its parameters.
type Definition struct {
	Name        string
	Description string
	Schema      *jsonschema.Schema
	Required    []string
}

func newDefinition(name, description string, params any) Definition {
	s := schema.GenerateFrom(params)
	return Definition{
		Name:        name,
		Description: description,
		Schema:      s,
		Required:    s.Required,
	}
}

var definitions = []Definition{
	newDefinition(ActionGetIssue,
		"Get details of a specific Jira issue.",
		GetIssueParams{}),
	newDefinition(ActionSearchIssues,
		"Search for Jira issues using JQL. Returns up to the configured maximum of matching issues.",
		SearchIssuesParams{}),
	newDefinition(ActionGetMyIssues,
		"Get issues assigned to the authenticated account, newest first.",
		GetMyIssuesParams{}),
	newDefinition(ActionGetAcceptanceCriteria,
		"Get the acceptance criteria text of a specific Jira issue. Empty when the field is unset.",
		GetAcceptanceCriteriaParams{}),
}

// Definitions returns the static per-action registry, in a stable order.
func Definitions() []Definition {
	return definitions
}

func definitionByName(name string) (Definition, bool) {
	for _, def := range definitions {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}
