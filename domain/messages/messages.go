package messages

import (
	"fmt"
	"time"

	"github.com/nuts-foundation/nuts-contract-service/domain"
)

// Kind is the infomodel type of a negotiation message.
type Kind string

const ContractOfferMessage = Kind("ids:ContractOfferMessage")
const ContractRequestMessage = Kind("ids:ContractRequestMessage")
const ContractResponseMessage = Kind("ids:ContractResponseMessage")
const ContractAgreementMessage = Kind("ids:ContractAgreementMessage")

// Header is the protocol header of a negotiation message.
type Header struct {
	Kind Kind
	ID   string
	// CorrelationID is the identifier of the message this one answers.
	CorrelationID string
	Issued        time.Time
}

// Message is one protocol turn: a header and a serialized document as body.
type Message struct {
	Header Header
	Body   string
}

// ValidateInbound checks the header fields the engine relies on for received messages.
func (h Header) ValidateInbound() error {
	if h.Kind == "" {
		return fmt.Errorf("%w: message header has no type", domain.ErrMalformedRequest)
	}
	if h.ID == "" {
		return fmt.Errorf("%w: %s has no identifier", domain.ErrMalformedRequest, h.Kind)
	}
	return nil
}

// ValidateOutbound checks that responses are correlated to the message they answer.
func (h Header) ValidateOutbound() error {
	if h.Kind == ContractResponseMessage && h.CorrelationID == "" {
		return domain.ErrMissingCorrelation
	}
	return nil
}
