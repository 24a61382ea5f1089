package application

import (
	"github.com/finta-app/finta/internal/auth"
	"github.com/finta-app/finta/internal/finance/errors"
)

// authorizeOwner rejects a mutation unless the fetched record belongs to the
// subject. The error is the same one repositories return for a missing id,
// so a caller probing someone else's record learns nothing about whether it
// exists.
func authorizeOwner(ownerID string, subject *auth.Subject) error {
	if subject == nil || ownerID != subject.ID {
		return errors.ErrNotFound
	}
	return nil
}
