package pkg

import (
	"context"
	"fmt"
	"sync"
	"time"

	eh "github.com/looplab/eventhorizon"
	"github.com/looplab/eventhorizon/commandhandler/bus"
	contract_utils "github.com/nuts-foundation/nuts-contract-service/contract-utils"
	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/contract"
	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
	"github.com/nuts-foundation/nuts-contract-service/domain/negotiation"
	"github.com/nuts-foundation/nuts-contract-service/domain/negotiation/commands"
	"github.com/nuts-foundation/nuts-contract-service/negotiator"
	"github.com/nuts-foundation/nuts-contract-service/negotiator/local"
	"github.com/nuts-foundation/nuts-contract-service/pkg/logger"
)

type ContractServiceClient interface {
	// HandleMessage runs one negotiation turn. A nil message means there is no answer.
	HandleMessage(ctx context.Context, msg messages.Message) (*messages.Message, error)
}

type ContractService struct {
	Config     ContractServiceConfig
	Negotiator negotiator.Negotiator
	CommandBus eh.CommandHandler

	scopes StaticScopes
	terms  contract.Terms
}

var instance *ContractService
var oneEngine sync.Once

func ContractServiceInstance() *ContractService {
	oneEngine.Do(func() {
		instance = &ContractService{Config: DefaultContractServiceConfig()}
	})
	return instance
}

// Configure validates the config and derives the scopes and contract terms from it.
func (cs *ContractService) Configure() error {
	scopes, err := ParseScopes(cs.Config.Scopes)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", ConfScopes, err)
	}
	if len(scopes) == 0 {
		logger.Logger().Warn("no deployment scopes configured, contract requests will be rejected")
	}

	margin, err := time.ParseDuration(cs.Config.EvaluationMargin)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", ConfEvaluationMargin, err)
	}
	if margin < 0 {
		return fmt.Errorf("invalid %s: %w: negative duration %s", ConfEvaluationMargin, domain.ErrInvalidOperand, margin)
	}
	if cs.Config.Validity < 1 {
		return fmt.Errorf("invalid %s: %w: must be at least 1 year", ConfValidity, domain.ErrInvalidOperand)
	}

	cs.scopes = scopes
	cs.terms = contract.Terms{ValidityYears: cs.Config.Validity, EvaluationMargin: margin}
	return nil
}

// Start wires the negotiator to the command bus.
func (cs *ContractService) Start() error {
	if cs.Negotiator == nil {
		cs.Negotiator = negotiator.NewContractNegotiator(cs.scopes, contract_utils.InfomodelSerializer{}, local.LocalAgreementHandler{}, cs.terms)
	}

	commandBus := bus.NewCommandHandler()
	handler := eh.UseCommandHandlerMiddleware(negotiation.CommandHandler{Negotiator: cs.Negotiator}, logger.CommandLogger)
	if commandBus.SetHandler(handler, commands.ProcessContractRequestCmdType) != nil ||
		commandBus.SetHandler(handler, commands.ProcessContractOfferCmdType) != nil {
		return fmt.Errorf("could not set command handlers")
	}
	cs.CommandBus = commandBus
	return nil
}

func (cs *ContractService) Shutdown() error {
	return nil
}

func (cs *ContractService) HandleMessage(ctx context.Context, msg messages.Message) (*messages.Message, error) {
	if err := msg.Header.ValidateInbound(); err != nil {
		return nil, err
	}
	var reply *messages.Message
	cmd, err := commands.ForMessage(msg, func(outbound messages.Message) {
		reply = &outbound
	})
	if err != nil {
		return nil, err
	}
	if err := cs.CommandBus.HandleCommand(ctx, cmd); err != nil {
		return nil, err
	}
	if reply != nil {
		logger.Logger().Debugf("[OUT] %s %s, correlation: %s", reply.Header.Kind, reply.Header.ID, reply.Header.CorrelationID)
	}
	return reply, nil
}
