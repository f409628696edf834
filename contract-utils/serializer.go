package contract_utils

import (
	"encoding/json"
	"fmt"

	"github.com/cbroglie/mustache"
	"github.com/gowebpki/jcs"
	"github.com/nuts-foundation/nuts-contract-service/domain/contract"
	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
	"github.com/nuts-foundation/nuts-contract-service/domain/policy"
)

// InfomodelSerializer converts contracts and contract requests from and to infomodel JSON-LD documents.
type InfomodelSerializer struct{}

// SerializeContract renders c as ids:ContractOffer in canonical (RFC 8785) JSON form.
// Identifiers of the contract and its permissions and constraints are generated when empty.
func (s InfomodelSerializer) SerializeContract(c contract.Contract) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	if c.ID == "" {
		c.ID = messages.AutogenID("contractOffer")
	}

	permissions := make([]map[string]interface{}, 0, len(c.Permissions))
	for i, p := range c.Permissions {
		actions := make([]map[string]interface{}, 0, len(p.Actions))
		for j, a := range p.Actions {
			actions = append(actions, map[string]interface{}{
				"action": jsonString(string(a)),
				"last":   j == len(p.Actions)-1,
			})
		}
		constraints := make([]map[string]interface{}, 0, len(p.Constraints))
		for j, con := range p.Constraints {
			view := constraintView(con)
			view["last"] = j == len(p.Constraints)-1
			constraints = append(constraints, view)
		}
		permissions = append(permissions, map[string]interface{}{
			"id":          jsonString(messages.AutogenID("permission")),
			"target":      jsonString(p.Target),
			"actions":     actions,
			"constraints": constraints,
			"last":        i == len(c.Permissions)-1,
		})
	}

	viewModel := map[string]interface{}{
		"id":            jsonString(c.ID),
		"timestampType": jsonString(string(policy.TypeDateTimeStamp)),
		"contractDate":  jsonString(policy.FormatTimestamp(c.Date)),
		"contractStart": jsonString(policy.FormatTimestamp(c.Start)),
		"contractEnd":   jsonString(policy.FormatTimestamp(c.End)),
		"permissions":   permissions,
	}

	res, err := mustache.Render(contractOfferTemplate, viewModel)
	if err != nil {
		return "", fmt.Errorf("could not render contract: %w", err)
	}

	canonical, err := jcs.Transform([]byte(res))
	if err != nil {
		return "", fmt.Errorf("could not canonicalize contract: %w", err)
	}
	return string(canonical), nil
}

func constraintView(c policy.Constraint) map[string]interface{} {
	view := map[string]interface{}{
		"id":          jsonString(messages.AutogenID("constraint")),
		"leftOperand": jsonString(string(c.LeftOperand)),
		"operator":    jsonString(string(c.Operator)),
	}
	if c.IsReference() {
		view["reference"] = map[string]string{"uri": jsonString(c.RightOperandReference)}
	} else {
		view["literal"] = map[string]string{
			"value": jsonString(c.RightOperand.Value),
			"type":  jsonString(string(c.RightOperand.Type)),
		}
	}
	return view
}

// jsonString returns s as quoted JSON string, ready to be placed in the template.
func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
