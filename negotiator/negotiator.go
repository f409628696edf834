package negotiator

import (
	"fmt"
	"time"

	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/contract"
	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
	"github.com/nuts-foundation/nuts-contract-service/domain/policy"
	"github.com/nuts-foundation/nuts-contract-service/pkg/logger"
)

// Negotiator answers a single inbound negotiation message.
// A nil message without error means there is nothing to send back.
type Negotiator interface {
	Negotiate(inbound messages.Message) (*messages.Message, error)
}

// ScopeProvider supplies the deployment scopes permitted for the current exchange.
type ScopeProvider interface {
	DeploymentScopes() ([]string, error)
}

// Serializer converts infomodel documents from and to their domain types.
type Serializer interface {
	DeserializeContractRequest(body string) (contract.ContractRequest, error)
	SerializeContract(c contract.Contract) (string, error)
}

// AgreementHandler takes over received contract offers.
type AgreementHandler interface {
	HandleContractOffer(offerID string, offer messages.Message) (*messages.Message, error)
}

// abstraction of time.Now() for testing
var TimeNow = func() time.Time {
	return time.Now()
}

// ContractNegotiator dispatches offers and requests. It holds no state besides its collaborators,
// so a single instance can serve concurrent turns.
type ContractNegotiator struct {
	scopes     ScopeProvider
	serializer Serializer
	agreements AgreementHandler
	terms      contract.Terms
}

func NewContractNegotiator(scopes ScopeProvider, serializer Serializer, agreements AgreementHandler, terms contract.Terms) ContractNegotiator {
	return ContractNegotiator{
		scopes:     scopes,
		serializer: serializer,
		agreements: agreements,
		terms:      terms,
	}
}

func (n ContractNegotiator) Negotiate(inbound messages.Message) (*messages.Message, error) {
	if err := inbound.Header.ValidateInbound(); err != nil {
		return nil, err
	}
	logger.Logger().Debugf("[IN] %s %s", inbound.Header.Kind, inbound.Header.ID)

	switch inbound.Header.Kind {
	case messages.ContractOfferMessage:
		return n.HandleContractOffer(inbound)
	case messages.ContractRequestMessage:
		response, err := n.HandleContractRequest(inbound)
		if err != nil {
			return nil, err
		}
		return &response, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedMessage, inbound.Header.Kind)
	}
}

// HandleContractOffer forwards the offer to the agreement handler, no contract is synthesized.
func (n ContractNegotiator) HandleContractOffer(offer messages.Message) (*messages.Message, error) {
	reply, err := n.agreements.HandleContractOffer(offer.Header.ID, offer)
	if err != nil {
		return nil, err
	}
	if reply != nil {
		if err := reply.Header.ValidateOutbound(); err != nil {
			return nil, err
		}
	}
	return reply, nil
}

// HandleContractRequest answers a contract request with a correlated ContractResponseMessage carrying
// a counter offer that allows use of the requested artifact inside the configured deployment scopes only.
func (n ContractNegotiator) HandleContractRequest(request messages.Message) (messages.Message, error) {
	contractRequest, err := n.serializer.DeserializeContractRequest(request.Body)
	if err != nil {
		return messages.Message{}, err
	}
	requestedArtifact, err := contractRequest.RequestedArtifact()
	if err != nil {
		return messages.Message{}, err
	}

	now := policy.NormalizeTime(TimeNow())
	header := messages.BuildCorrelatedResponse(request.Header.ID, now)

	scopes, err := n.scopes.DeploymentScopes()
	if err != nil {
		return messages.Message{}, err
	}
	offer, err := n.terms.SynthesizeCounterOffer(requestedArtifact, scopes, now)
	if err != nil {
		return messages.Message{}, err
	}

	offer.ID = messages.AutogenID("contractOffer")
	logger.Logger().Debugf("Contract offer id: %s", offer.ID)

	body, err := n.serializer.SerializeContract(offer)
	if err != nil {
		return messages.Message{}, err
	}
	logger.Logger().Debugf("Serialisation body: %s", body)

	if err := header.ValidateOutbound(); err != nil {
		return messages.Message{}, err
	}
	logger.Logger().Debugf("Serialisation header: %s %s (correlation %s, issued %s)",
		header.Kind, header.ID, header.CorrelationID, policy.FormatTimestamp(header.Issued))
	return messages.Message{Header: header, Body: body}, nil
}
