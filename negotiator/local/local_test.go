package local

import (
	"testing"

	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
	"github.com/stretchr/testify/assert"
)

func TestLocalAgreementHandler_HandleContractOffer(t *testing.T) {
	reply, err := LocalAgreementHandler{}.HandleContractOffer("urn:message:1", messages.Message{
		Header: messages.Header{Kind: messages.ContractOfferMessage, ID: "urn:message:1"},
	})
	assert.NoError(t, err)
	assert.Nil(t, reply)
}
