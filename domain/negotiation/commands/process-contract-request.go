package commands

import (
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
)

const ProcessContractRequestCmdType = eh.CommandType("negotiation:process-contract-request")

func init() {
	eh.RegisterCommand(func() eh.Command {
		return &ProcessContractRequest{}
	})
}

// ProcessContractRequest carries a received ContractRequestMessage.
type ProcessContractRequest struct {
	ID      uuid.UUID
	Message messages.Message `eh:"optional"`
	// Reply receives the ContractResponseMessage.
	Reply func(messages.Message) `eh:"optional"`
}

func (cmd ProcessContractRequest) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd ProcessContractRequest) AggregateType() eh.AggregateType {
	return domain.ContractNegotiationAggregateType
}

func (cmd ProcessContractRequest) CommandType() eh.CommandType {
	return ProcessContractRequestCmdType
}
