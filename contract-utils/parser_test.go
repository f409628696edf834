package contract_utils

import (
	"errors"
	"testing"

	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/contract"
	"github.com/nuts-foundation/nuts-contract-service/domain/policy"
	"github.com/stretchr/testify/assert"
)

const contractRequest = `{
  "@context": {"ids": "https://w3id.org/idsa/core/", "idsc": "https://w3id.org/idsa/code/"},
  "@type": "ids:ContractRequest",
  "@id": "https://w3id.org/idsa/autogen/contractRequest/1",
  "ids:permission": [
    {
      "@type": "ids:Permission",
      "ids:target": {"@id": "urn:artifact:42"},
      "ids:action": [{"@id": "idsc:USE"}],
      "ids:constraint": [
        {
          "@type": "ids:Constraint",
          "ids:leftOperand": {"@id": "idsc:SYSTEM"},
          "ids:operator": {"@id": "idsc:SAME_AS"},
          "ids:rightOperandReference": {"@id": "urn:scope:A"}
        }
      ]
    },
    {
      "@type": "ids:Permission",
      "ids:target": "urn:artifact:43"
    }
  ]
}`

func TestInfomodelSerializer_DeserializeContractRequest(t *testing.T) {
	sut := InfomodelSerializer{}

	t.Run("ok", func(t *testing.T) {
		request, err := sut.DeserializeContractRequest(contractRequest)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, contract.ContractRequest{
			ID: "https://w3id.org/idsa/autogen/contractRequest/1",
			Permissions: []contract.Permission{
				{
					Target:  "urn:artifact:42",
					Actions: []contract.Action{contract.Use},
					Constraints: []policy.Constraint{{
						LeftOperand:           policy.System,
						Operator:              policy.SameAs,
						RightOperandReference: "urn:scope:A",
					}},
				},
				{Target: "urn:artifact:43"},
			},
		}, request)
	})

	t.Run("ok - constraints outside the offered vocabulary are accepted", func(t *testing.T) {
		request, err := sut.DeserializeContractRequest(`{
  "@type": "ids:ContractRequest",
  "ids:permission": [{
    "ids:target": {"@id": "urn:artifact:42"},
    "ids:constraint": [{
      "ids:leftOperand": {"@id": "idsc:PURPOSE"},
      "ids:operator": {"@id": "idsc:SAME_AS"},
      "ids:rightOperandReference": {"@id": "http://example.com/purpose/research"}
    }]
  }]
}`)
		if !assert.NoError(t, err) {
			return
		}
		artifact, err := request.RequestedArtifact()
		assert.NoError(t, err)
		assert.Equal(t, "urn:artifact:42", artifact)
		assert.Equal(t, policy.LeftOperand("idsc:PURPOSE"), request.Permissions[0].Constraints[0].LeftOperand)
	})

	t.Run("ok - no permissions", func(t *testing.T) {
		request, err := sut.DeserializeContractRequest(`{"@type": "ids:ContractRequest", "ids:permission": []}`)
		assert.NoError(t, err)
		assert.Empty(t, request.Permissions)
	})

	cases := map[string]string{
		"not json":                         `permission`,
		"wrong type":                       `{"@type": "ids:ContractOffer", "ids:permission": [{"ids:target": "urn:artifact:42"}]}`,
		"missing permission":               `{"@type": "ids:ContractRequest"}`,
		"missing target":                   `{"@type": "ids:ContractRequest", "ids:permission": [{"ids:action": []}]}`,
		"empty target":                     `{"@type": "ids:ContractRequest", "ids:permission": [{"ids:target": {"@id": ""}}]}`,
		"constraint without operator":      `{"@type": "ids:ContractRequest", "ids:permission": [{"ids:target": "urn:artifact:42", "ids:constraint": [{"ids:leftOperand": {"@id": "idsc:SYSTEM"}, "ids:rightOperandReference": "urn:scope:A"}]}]}`,
		"constraint without right operand": `{"@type": "ids:ContractRequest", "ids:permission": [{"ids:target": "urn:artifact:42", "ids:constraint": [{"ids:leftOperand": {"@id": "idsc:SYSTEM"}, "ids:operator": {"@id": "idsc:SAME_AS"}}]}]}`,
		"constraint is not an object":      `{"@type": "ids:ContractRequest", "ids:permission": [{"ids:target": "urn:artifact:42", "ids:constraint": ["idsc:SYSTEM"]}]}`,
		"non-string id":                    `{"@type": "ids:ContractRequest", "@id": 42, "ids:permission": [{"ids:target": "urn:artifact:42"}]}`,
	}
	for name, body := range cases {
		t.Run("err - "+name, func(t *testing.T) {
			_, err := sut.DeserializeContractRequest(body)
			assert.True(t, errors.Is(err, domain.ErrMalformedRequest), "got: %v", err)
		})
	}
}

func TestInfomodelSerializer_DeserializeContractID(t *testing.T) {
	sut := InfomodelSerializer{}

	cases := map[string]string{
		"non-string id": `{"@id": {"@value": "urn:contract:1"}}`,
		"missing id":    `{"ids:permission": []}`,
	}
	for name, body := range cases {
		t.Run("err - "+name, func(t *testing.T) {
			_, err := sut.DeserializeContract(body)
			assert.True(t, errors.Is(err, domain.ErrMalformedRequest), "got: %v", err)
		})
	}

	t.Run("err - non-string id is reported as such", func(t *testing.T) {
		_, err := sut.DeserializeContract(`{"@id": 42}`)
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "@id must be a string")
		}
	})
}
