package contract

import (
	"fmt"
	"time"

	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/policy"
)

const DefaultValidityYears = 1
const DefaultEvaluationMargin = time.Hour

// Terms holds the fixed parameters of synthesized counter offers.
type Terms struct {
	// ValidityYears is the contract term, counted in calendar years from the contract start.
	ValidityYears int
	// EvaluationMargin bounds the policy evaluation time relative to the contract date.
	EvaluationMargin time.Duration
}

func DefaultTerms() Terms {
	return Terms{ValidityYears: DefaultValidityYears, EvaluationMargin: DefaultEvaluationMargin}
}

// SynthesizeCounterOffer builds a counter offer with the default terms.
func SynthesizeCounterOffer(requestedArtifact string, scopes []string, now time.Time) (Contract, error) {
	return DefaultTerms().SynthesizeCounterOffer(requestedArtifact, scopes, now)
}

// SynthesizeCounterOffer builds a contract granting USE of requestedArtifact inside each of the given
// deployment scopes. Every permission pins execution to its scope and shares one time window constraint
// bounding policy evaluation to now + EvaluationMargin.
func (t Terms) SynthesizeCounterOffer(requestedArtifact string, scopes []string, now time.Time) (Contract, error) {
	if requestedArtifact == "" {
		return Contract{}, fmt.Errorf("%w: no requested artifact", domain.ErrMalformedRequest)
	}
	if len(scopes) == 0 {
		return Contract{}, domain.ErrNoScopesConfigured
	}
	if t.ValidityYears < 1 {
		return Contract{}, fmt.Errorf("%w: validity of %d years", domain.ErrInvalidOperand, t.ValidityYears)
	}

	contractDate := policy.NormalizeTime(now)
	timeWindow, err := policy.BuildTimeWindowConstraint(contractDate, t.EvaluationMargin)
	if err != nil {
		return Contract{}, err
	}

	permissions := make([]Permission, 0, len(scopes))
	for _, scope := range scopes {
		scopeConstraint, err := policy.BuildScopeConstraint(scope)
		if err != nil {
			return Contract{}, err
		}
		permissions = append(permissions, Permission{
			Target:      requestedArtifact,
			Actions:     []Action{Use},
			Constraints: []policy.Constraint{scopeConstraint, timeWindow},
		})
	}

	return Contract{
		Date:        contractDate,
		Start:       contractDate,
		End:         contractDate.AddDate(t.ValidityYears, 0, 0),
		Permissions: permissions,
	}, nil
}
