package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nissynicolas/sdlc-jira-extractor-agent/common/logger"
	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/jira"
	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/mapper"
)

// Dispatcher routes a named action plus its parameters to one upstream
// Jira call and shapes the outcome into a uniform response. Per-request
// failures never escape as errors; they become error-status responses.
type Dispatcher interface {
	Dispatch(ctx context.Context, action string, params map[string]string) ActionResponse
}

type dispatcher struct {
	jira          jira.Client
	criteriaField string
}

func NewDispatcher(client jira.Client, criteriaField string) Dispatcher {
	return &dispatcher{
		jira:          client,
		criteriaField: criteriaField,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, action string, params map[string]string) ActionResponse {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Action:    logger.Ptr(action),
		Component: "extractor.dispatcher",
	})

	def, ok := definitionByName(action)
	if !ok {
		return errorResponse(KindUnsupported, fmt.Sprintf("unsupported action: %s", action))
	}

	// Validate against the action's schema before touching the network.
	if missing := missingParams(def.Required, params); len(missing) > 0 {
		return errorResponse(KindValidation,
			fmt.Sprintf("%s: missing required parameter(s): %s", action, strings.Join(missing, ", ")))
	}

	resp := d.dispatch(ctx, action, params)
	if e := resp.Err(); e != nil {
		slog.WarnContext(ctx, "action failed", "kind", e.Kind, "error", e.Message)
	} else {
		slog.DebugContext(ctx, "action completed")
	}
	return resp
}

func (d *dispatcher) dispatch(ctx context.Context, action string, params map[string]string) ActionResponse {
	switch action {
	case ActionGetIssue:
		return d.getIssue(ctx, params["issue_key"])
	case ActionSearchIssues:
		return d.searchIssues(ctx, params["jql"])
	case ActionGetMyIssues:
		return d.searchIssues(ctx, myIssuesJQL)
	case ActionGetAcceptanceCriteria:
		return d.getAcceptanceCriteria(ctx, params["issue_key"])
	default:
		// Unreachable: every registered definition is handled above.
		return errorResponse(KindUnsupported, fmt.Sprintf("unsupported action: %s", action))
	}
}

func (d *dispatcher) getIssue(ctx context.Context, key string) ActionResponse {
	ctx = logger.WithLogFields(ctx, logger.LogFields{IssueKey: logger.Ptr(key)})

	issue, err := d.jira.GetIssue(ctx, key)
	if err != nil {
		return fromUpstreamError(err)
	}

	summary := mapper.ToIssueSummary(issue, d.criteriaField)
	return successResponse(&summary)
}

func (d *dispatcher) searchIssues(ctx context.Context, jql string) ActionResponse {
	issues, err := d.jira.SearchIssues(ctx, jql)
	if err != nil {
		return fromUpstreamError(err)
	}

	return successResponse(mapper.ToIssueSummaries(issues, d.criteriaField))
}

func (d *dispatcher) getAcceptanceCriteria(ctx context.Context, key string) ActionResponse {
	ctx = logger.WithLogFields(ctx, logger.LogFields{IssueKey: logger.Ptr(key)})

	issue, err := d.jira.GetIssue(ctx, key)
	if err != nil {
		return fromUpstreamError(err)
	}

	summary := mapper.ToIssueSummary(issue, d.criteriaField)
	if summary.AcceptanceCriteria == nil {
		// Unset upstream is still a success: absent criteria, not an error.
		empty := ""
		summary.AcceptanceCriteria = &empty
	}
	return successResponse(&summary)
}

func missingParams(required []string, params map[string]string) []string {
	var missing []string
	for _, name := range required {
		if strings.TrimSpace(params[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// fromUpstreamError folds a classified upstream failure into an error
// response. Anything unclassified is a transport failure.
func fromUpstreamError(err error) ActionResponse {
	switch {
	case errors.Is(err, jira.ErrNotFound):
		return errorResponse(KindNotFound, err.Error())
	case errors.Is(err, jira.ErrUnauthorized):
		return errorResponse(KindAuth, err.Error())
	case errors.Is(err, jira.ErrBadRequest):
		return errorResponse(KindValidation, err.Error())
	default:
		return errorResponse(KindTransport, err.Error())
	}
}
