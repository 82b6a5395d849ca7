package core

import "context"

// Context keys for run options
type contextKey string

const triggerKey contextKey = "trigger"

// withTrigger records what caused a run, such as a changed file
func withTrigger(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, triggerKey, trigger)
}

// triggerFrom returns the run trigger from context, or "" when there is none
func triggerFrom(ctx context.Context) string {
	val := ctx.Value(triggerKey)
	if val == nil {
		return ""
	}
	trigger, ok := val.(string)
	if !ok {
		return ""
	}
	return trigger
}
