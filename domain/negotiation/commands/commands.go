package commands

import (
	"fmt"

	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
)

// ForMessage wraps an inbound message in the command for its kind.
func ForMessage(msg messages.Message, reply func(messages.Message)) (eh.Command, error) {
	switch msg.Header.Kind {
	case messages.ContractRequestMessage:
		return &ProcessContractRequest{ID: uuid.New(), Message: msg, Reply: reply}, nil
	case messages.ContractOfferMessage:
		return &ProcessContractOffer{ID: uuid.New(), Message: msg, Reply: reply}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedMessage, msg.Header.Kind)
}
