package llm

import "context"

type ctxKey int

const ctxKeyPurpose ctxKey = iota

// WithPurpose tags the context with a purpose label. The logging
// decorator records it on the event so usage can be grouped per call
// site (e.g. "quiz-gen").
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, ctxKeyPurpose, purpose)
}

// PurposeFrom returns the purpose label from the context, or "unknown"
// for untagged requests.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(ctxKeyPurpose).(string); ok {
		return p
	}
	return "unknown"
}
