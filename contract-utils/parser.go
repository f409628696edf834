package contract_utils

import (
	"fmt"
	"time"

	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/contract"
	"github.com/nuts-foundation/nuts-contract-service/domain/policy"
	"github.com/thedevsaddam/gojsonq/v2"
)

// DeserializeContractRequest parses an ids:ContractRequest document.
func (s InfomodelSerializer) DeserializeContractRequest(body string) (contract.ContractRequest, error) {
	if err := validateContractRequest([]byte(body)); err != nil {
		return contract.ContractRequest{}, err
	}
	jsonq := gojsonq.New().FromString(body)
	if err := jsonq.Error(); err != nil {
		return contract.ContractRequest{}, fmt.Errorf("%w: %v", domain.ErrMalformedRequest, err)
	}

	permissions, err := permissionsFrom(jsonq.Copy().Find("ids:permission"))
	if err != nil {
		return contract.ContractRequest{}, err
	}
	id, err := idFrom(jsonq.Copy().Find("@id"))
	if err != nil {
		return contract.ContractRequest{}, err
	}
	return contract.ContractRequest{ID: id, Permissions: permissions}, nil
}

// DeserializeContract parses a contract document as produced by SerializeContract.
func (s InfomodelSerializer) DeserializeContract(body string) (contract.Contract, error) {
	jsonq := gojsonq.New().FromString(body)
	if err := jsonq.Error(); err != nil {
		return contract.Contract{}, fmt.Errorf("%w: %v", domain.ErrMalformedRequest, err)
	}

	result := contract.Contract{}
	var err error
	if result.ID, err = idFrom(jsonq.Copy().Find("@id")); err != nil {
		return contract.Contract{}, err
	}
	if result.ID == "" {
		return contract.Contract{}, fmt.Errorf("%w: contract has no @id", domain.ErrMalformedRequest)
	}
	if result.Date, err = timestampFrom(jsonq.Copy().Find("ids:contractDate")); err != nil {
		return contract.Contract{}, err
	}
	if result.Start, err = timestampFrom(jsonq.Copy().Find("ids:contractStart")); err != nil {
		return contract.Contract{}, err
	}
	if result.End, err = timestampFrom(jsonq.Copy().Find("ids:contractEnd")); err != nil {
		return contract.Contract{}, err
	}
	if result.Permissions, err = permissionsFrom(jsonq.Copy().Find("ids:permission")); err != nil {
		return contract.Contract{}, err
	}
	if err := result.Validate(); err != nil {
		return contract.Contract{}, err
	}
	return result, nil
}

func permissionsFrom(raw interface{}) ([]contract.Permission, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: ids:permission is not a list", domain.ErrMalformedRequest)
	}
	permissions := make([]contract.Permission, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: permission %d is not an object", domain.ErrMalformedRequest, i)
		}
		p := contract.Permission{Target: referenceFrom(m["ids:target"])}
		if p.Target == "" {
			return nil, fmt.Errorf("%w: permission %d has no target", domain.ErrMalformedRequest, i)
		}
		if actions, ok := m["ids:action"].([]interface{}); ok {
			for _, a := range actions {
				p.Actions = append(p.Actions, contract.Action(referenceFrom(a)))
			}
		}
		if constraints, ok := m["ids:constraint"].([]interface{}); ok {
			for j, c := range constraints {
				constraint, err := constraintFrom(c)
				if err != nil {
					return nil, fmt.Errorf("permission %d, constraint %d: %w", i, j, err)
				}
				p.Constraints = append(p.Constraints, constraint)
			}
		}
		permissions = append(permissions, p)
	}
	return permissions, nil
}

func constraintFrom(raw interface{}) (policy.Constraint, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return policy.Constraint{}, fmt.Errorf("%w: constraint is not an object", domain.ErrMalformedRequest)
	}
	c := policy.Constraint{
		LeftOperand:           policy.LeftOperand(referenceFrom(m["ids:leftOperand"])),
		Operator:              policy.BinaryOperator(referenceFrom(m["ids:operator"])),
		RightOperandReference: referenceFrom(m["ids:rightOperandReference"]),
	}
	if literal, ok := m["ids:rightOperand"].(map[string]interface{}); ok {
		c.RightOperand.Value, _ = literal["@value"].(string)
		t, _ := literal["@type"].(string)
		c.RightOperand.Type = policy.ValueType(t)
	}
	// the operand vocabulary of a requester is open, only the shape is checked here
	if c.LeftOperand == "" || c.Operator == "" {
		return policy.Constraint{}, fmt.Errorf("%w: constraint needs a left operand and an operator", domain.ErrMalformedRequest)
	}
	if c.RightOperandReference == "" && c.RightOperand.Value == "" {
		return policy.Constraint{}, fmt.Errorf("%w: constraint has no right operand", domain.ErrMalformedRequest)
	}
	return c, nil
}

func idFrom(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	}
	return "", fmt.Errorf("%w: @id must be a string, got %T", domain.ErrMalformedRequest, raw)
}

func timestampFrom(raw interface{}) (time.Time, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return time.Time{}, fmt.Errorf("%w: missing timestamp", domain.ErrMalformedRequest)
	}
	value, _ := m["@value"].(string)
	t, _ := m["@type"].(string)
	return policy.TypedLiteral{Value: value, Type: policy.ValueType(t)}.Time()
}

// referenceFrom accepts both {"@id": "..."} and a plain string.
func referenceFrom(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case map[string]interface{}:
		id, _ := v["@id"].(string)
		return id
	}
	return ""
}
