package auth

import "context"

// Subject is the resolved identity of the caller for one request. A nil
// *Subject means the call is anonymous: reads degrade to empty or default
// results, mutations are rejected.
type Subject struct {
	ID         string
	Email      string
	GivenName  string
	FamilyName string
	PictureURL string
}

type contextKey struct{}

var subjectKey = contextKey{}

// WithSubject returns a context carrying the resolved subject.
func WithSubject(ctx context.Context, subject *Subject) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext returns the subject resolved for this request, or nil
// when the caller is anonymous.
func SubjectFromContext(ctx context.Context) *Subject {
	subject, ok := ctx.Value(subjectKey).(*Subject)
	if !ok {
		return nil
	}
	return subject
}
