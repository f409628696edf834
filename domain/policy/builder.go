package policy

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/nuts-foundation/nuts-contract-service/domain"
)

// BuildTimeWindowConstraint asserts that the policy evaluation time is before evaluationTime + maxDelay.
func BuildTimeWindowConstraint(evaluationTime time.Time, maxDelay time.Duration) (Constraint, error) {
	bound, err := AddDuration(evaluationTime, maxDelay)
	if err != nil {
		return Constraint{}, err
	}
	return NewLiteralConstraint(PolicyEvaluationTime, LessThan, TimestampLiteral(bound))
}

// BuildScopeConstraint pins execution to the deployment scope identified by scopeID.
// The scope is referenced, not copied as literal.
func BuildScopeConstraint(scopeID string) (Constraint, error) {
	return NewReferenceConstraint(System, SameAs, scopeID)
}

// ParseURI checks that raw is an absolute URI without whitespace and returns it unchanged.
func ParseURI(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: empty URI", domain.ErrInvalidOperand)
	}
	if strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("%w: URI %q contains whitespace", domain.ErrInvalidOperand, raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidOperand, err)
	}
	if u.Scheme == "" || (u.Opaque == "" && u.Host == "" && u.Path == "") {
		return "", fmt.Errorf("%w: %q is not an absolute URI", domain.ErrInvalidOperand, raw)
	}
	return raw, nil
}
