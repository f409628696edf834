package contract

import (
	"fmt"
	"time"

	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/policy"
)

type Action string

const Use = Action("idsc:USE")

// Permission grants actions on exactly one target artifact, qualified by constraints.
type Permission struct {
	Target      string
	Actions     []Action
	Constraints []policy.Constraint
}

// Contract governs the use of artifacts for a bounded validity period.
// ID is empty until the serialization layer assigns one.
type Contract struct {
	ID          string
	Date        time.Time
	Start       time.Time
	End         time.Time
	Permissions []Permission
}

// Validate checks the validity window and every constraint of the contract.
func (c Contract) Validate() error {
	if !c.End.After(c.Start) {
		return fmt.Errorf("%w: contract end %s is not after start %s", domain.ErrInvalidOperand, c.End, c.Start)
	}
	for i, p := range c.Permissions {
		if p.Target == "" {
			return fmt.Errorf("%w: permission %d has no target", domain.ErrInvalidOperand, i)
		}
		for _, constraint := range p.Constraints {
			if err := constraint.Validate(); err != nil {
				return fmt.Errorf("permission %d: %w", i, err)
			}
		}
	}
	return nil
}

// ContractRequest is the requester's proposal as received in a ContractRequestMessage.
type ContractRequest struct {
	ID          string
	Permissions []Permission
}

// RequestedArtifact returns the target of the first requested permission.
// Further permissions of the request are not considered.
func (r ContractRequest) RequestedArtifact() (string, error) {
	if len(r.Permissions) == 0 {
		return "", fmt.Errorf("%w: contract request has no permissions", domain.ErrMalformedRequest)
	}
	target := r.Permissions[0].Target
	if target == "" {
		return "", fmt.Errorf("%w: first permission has no target", domain.ErrMalformedRequest)
	}
	if _, err := policy.ParseURI(target); err != nil {
		return "", fmt.Errorf("%w: first permission target: %v", domain.ErrMalformedRequest, err)
	}
	return target, nil
}
