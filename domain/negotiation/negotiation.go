package negotiation

import (
	"context"
	"fmt"

	eh "github.com/looplab/eventhorizon"
	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
	"github.com/nuts-foundation/nuts-contract-service/domain/negotiation/commands"
	"github.com/nuts-foundation/nuts-contract-service/negotiator"
)

// CommandHandler runs a negotiation turn for every processed message and hands the answer to the command's reply func.
type CommandHandler struct {
	Negotiator negotiator.Negotiator
}

func (h CommandHandler) HandleCommand(ctx context.Context, command eh.Command) error {
	switch cmd := command.(type) {
	case *commands.ProcessContractRequest:
		return h.process(messages.ContractRequestMessage, cmd.Message, cmd.Reply)
	case *commands.ProcessContractOffer:
		return h.process(messages.ContractOfferMessage, cmd.Message, cmd.Reply)
	default:
		return domain.ErrUnknownCommand
	}
}

func (h CommandHandler) process(expected messages.Kind, msg messages.Message, reply func(messages.Message)) error {
	if msg.Header.Kind != expected {
		return fmt.Errorf("%w: %q in %s command", domain.ErrUnsupportedMessage, msg.Header.Kind, expected)
	}
	outbound, err := h.Negotiator.Negotiate(msg)
	if err != nil {
		return err
	}
	if outbound != nil && reply != nil {
		reply(*outbound)
	}
	return nil
}
