package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Named unique constraints on app_users. Matching on the constraint name in
// the driver error lets Save report which field collided.
const (
	constraintDocument = "uq_app_users_document"
	constraintEmail    = "uq_app_users_email"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fall back to PostgreSQL-specific unique constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// violatedConstraint extracts which named unique constraint tripped, if any.
func violatedConstraint(err error) string {
	msg := err.Error()
	for _, name := range []string{constraintDocument, constraintEmail} {
		if strings.Contains(msg, name) {
			return name
		}
	}

	return ""
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
