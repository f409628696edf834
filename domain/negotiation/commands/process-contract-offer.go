package commands

import (
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
)

const ProcessContractOfferCmdType = eh.CommandType("negotiation:process-contract-offer")

func init() {
	eh.RegisterCommand(func() eh.Command {
		return &ProcessContractOffer{}
	})
}

// ProcessContractOffer carries a received ContractOfferMessage.
type ProcessContractOffer struct {
	ID      uuid.UUID
	Message messages.Message `eh:"optional"`
	// Reply receives the answer of the agreement handler, if it has one.
	Reply func(messages.Message) `eh:"optional"`
}

func (cmd ProcessContractOffer) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd ProcessContractOffer) AggregateType() eh.AggregateType {
	return domain.ContractNegotiationAggregateType
}

func (cmd ProcessContractOffer) CommandType() eh.CommandType {
	return ProcessContractOfferCmdType
}
