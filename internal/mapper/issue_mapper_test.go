package mapper_test

import (
	"time"

	gojira "github.com/andygrunwald/go-jira"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/trivago/tgo/tcontainer"

	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/mapper"
	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/model"
)

const criteriaField = "customfield_10001"

func fullIssue() *gojira.Issue {
	return &gojira.Issue{
		Key: "PROJ-42",
		Fields: &gojira.IssueFields{
			Summary:     "Fix the login flow",
			Description: "Users get logged out on refresh.",
			Type:        gojira.IssueType{Name: "Bug"},
			Status:      &gojira.Status{Name: "In Progress"},
			Assignee:    &gojira.User{DisplayName: "Dana Developer"},
			Priority:    &gojira.Priority{Name: "High"},
			Created:     gojira.Time(time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)),
			Unknowns: tcontainer.MarshalMap{
				"customfield_10020": []any{
					map[string]any{"id": 7.0, "name": "Sprint 12", "state": "active"},
				},
				criteriaField: "Given a logged-in user, refreshing keeps the session.",
			},
		},
	}
}

var _ = Describe("ToIssueSummary", func() {
	It("projects a fully populated issue", func() {
		summary := mapper.ToIssueSummary(fullIssue(), criteriaField)

		Expect(summary.Key).To(Equal("PROJ-42"))
		Expect(summary.Summary).To(Equal("Fix the login flow"))
		Expect(summary.Status).To(Equal("In Progress"))
		Expect(summary.Assignee).To(Equal("Dana Developer"))
		Expect(summary.Description).To(Equal("Users get logged out on refresh."))
		Expect(summary.IssueType).To(Equal("Bug"))
		Expect(summary.Priority).To(Equal("High"))
		Expect(summary.Created).To(Equal("2026-08-01T09:30:00Z"))
		Expect(summary.Sprint).To(Equal("Sprint 12"))
		Expect(summary.AcceptanceCriteria).NotTo(BeNil())
		Expect(*summary.AcceptanceCriteria).To(Equal("Given a logged-in user, refreshing keeps the session."))
	})

	It("substitutes placeholders for a missing assignee and description", func() {
		issue := fullIssue()
		issue.Fields.Assignee = nil
		issue.Fields.Description = ""

		summary := mapper.ToIssueSummary(issue, criteriaField)
		Expect(summary.Assignee).To(Equal(model.UnassignedDisplayName))
		Expect(summary.Description).To(Equal(model.NoDescription))
	})

	It("treats an empty assignee display name as unassigned", func() {
		issue := fullIssue()
		issue.Fields.Assignee = &gojira.User{DisplayName: ""}

		summary := mapper.ToIssueSummary(issue, criteriaField)
		Expect(summary.Assignee).To(Equal(model.UnassignedDisplayName))
	})

	It("leaves the criteria pointer nil when the field is unset", func() {
		issue := fullIssue()
		delete(issue.Fields.Unknowns, criteriaField)

		summary := mapper.ToIssueSummary(issue, criteriaField)
		Expect(summary.AcceptanceCriteria).To(BeNil())
	})

	It("unwraps single-select criteria values", func() {
		issue := fullIssue()
		issue.Fields.Unknowns[criteriaField] = map[string]any{"id": "1", "value": "Must support SSO."}

		summary := mapper.ToIssueSummary(issue, criteriaField)
		Expect(summary.AcceptanceCriteria).NotTo(BeNil())
		Expect(*summary.AcceptanceCriteria).To(Equal("Must support SSO."))
	})

	It("ignores a malformed sprint field", func() {
		issue := fullIssue()
		issue.Fields.Unknowns["customfield_10020"] = "not a sprint list"

		summary := mapper.ToIssueSummary(issue, criteriaField)
		Expect(summary.Sprint).To(BeEmpty())
	})

	It("leaves the created timestamp empty when unset", func() {
		issue := fullIssue()
		issue.Fields.Created = gojira.Time{}

		summary := mapper.ToIssueSummary(issue, criteriaField)
		Expect(summary.Created).To(BeEmpty())
	})

	It("survives an issue with no fields at all", func() {
		summary := mapper.ToIssueSummary(&gojira.Issue{Key: "PROJ-9"}, criteriaField)

		Expect(summary.Key).To(Equal("PROJ-9"))
		Expect(summary.Assignee).To(Equal(model.UnassignedDisplayName))
		Expect(summary.Description).To(Equal(model.NoDescription))
		Expect(summary.AcceptanceCriteria).To(BeNil())
	})
})

var _ = Describe("ToIssueSummaries", func() {
	It("maps every issue in order", func() {
		first := fullIssue()
		second := fullIssue()
		second.Key = "PROJ-43"

		summaries := mapper.ToIssueSummaries([]gojira.Issue{*first, *second}, criteriaField)
		Expect(summaries).To(HaveLen(2))
		Expect(summaries[0].Key).To(Equal("PROJ-42"))
		Expect(summaries[1].Key).To(Equal("PROJ-43"))
	})

	It("returns a non-nil empty slice for an empty result set", func() {
		summaries := mapper.ToIssueSummaries(nil, criteriaField)
		Expect(summaries).NotTo(BeNil())
		Expect(summaries).To(BeEmpty())
	})
})
