package auth

import (
	"context"
)

type contextKey string

// ContextKeyAdminSubject is the context key for the authenticated admin subject
const ContextKeyAdminSubject contextKey = "admin_subject"

// WithAdminSubject adds the admin token subject to the context
func WithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, ContextKeyAdminSubject, subject)
}

// AdminSubjectFromContext retrieves the admin token subject from the context
func AdminSubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ContextKeyAdminSubject).(string)
	return sub, ok
}
