package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs
// within a context. Handlers set the action and issue key once; every log
// statement below them picks the fields up without plumbing.
type LogFields struct {
	Action   *string // dispatched action name (e.g. "get_issue")
	IssueKey *string // Jira issue key (e.g. "PROJ-123")
	Component string // component name (e.g. "extractor.dispatcher")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.Action != nil {
		result.Action = next.Action
	}
	if next.IssueKey != nil {
		result.IssueKey = next.IssueKey
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{IssueKey: logger.Ptr(key)})
func Ptr[T any](v T) *T {
	return &v
}
