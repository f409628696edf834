package negotiation

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
	"github.com/looplab/eventhorizon/commandhandler/bus"
	"github.com/looplab/eventhorizon/mocks"
	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
	"github.com/nuts-foundation/nuts-contract-service/domain/negotiation/commands"
	"github.com/nuts-foundation/nuts-contract-service/mock"
	"github.com/stretchr/testify/assert"
)

var request = messages.Message{
	Header: messages.Header{Kind: messages.ContractRequestMessage, ID: "urn:message:1"},
	Body:   "request",
}

var response = messages.Message{
	Header: messages.Header{Kind: messages.ContractResponseMessage, ID: "urn:message:2", CorrelationID: "urn:message:1"},
	Body:   "offer",
}

var offer = messages.Message{
	Header: messages.Header{Kind: messages.ContractOfferMessage, ID: "urn:message:3"},
	Body:   "offer",
}

func TestCommandHandler_HandleCommand(t *testing.T) {
	id := uuid.New()

	cases := map[string]struct {
		cmd           func(reply func(messages.Message)) eh.Command
		setup         func(negotiator *mock.MockNegotiator)
		expectedReply *messages.Message
		expectedError error
	}{
		"err - unknown command": {
			cmd: func(_ func(messages.Message)) eh.Command {
				return &mocks.Command{ID: id, Content: "test content"}
			},
			expectedError: domain.ErrUnknownCommand,
		},
		"err - message kind does not match command": {
			cmd: func(reply func(messages.Message)) eh.Command {
				return &commands.ProcessContractRequest{ID: id, Message: offer, Reply: reply}
			},
			expectedError: domain.ErrUnsupportedMessage,
		},
		"err - negotiation fails": {
			cmd: func(reply func(messages.Message)) eh.Command {
				return &commands.ProcessContractRequest{ID: id, Message: request, Reply: reply}
			},
			setup: func(negotiator *mock.MockNegotiator) {
				negotiator.EXPECT().Negotiate(request).Return(nil, domain.ErrNoScopesConfigured)
			},
			expectedError: domain.ErrNoScopesConfigured,
		},
		"ok - request is answered": {
			cmd: func(reply func(messages.Message)) eh.Command {
				return &commands.ProcessContractRequest{ID: id, Message: request, Reply: reply}
			},
			setup: func(negotiator *mock.MockNegotiator) {
				negotiator.EXPECT().Negotiate(request).Return(&response, nil)
			},
			expectedReply: &response,
		},
		"ok - offer without answer": {
			cmd: func(reply func(messages.Message)) eh.Command {
				return &commands.ProcessContractOffer{ID: id, Message: offer, Reply: reply}
			},
			setup: func(negotiator *mock.MockNegotiator) {
				negotiator.EXPECT().Negotiate(offer).Return(nil, nil)
			},
		},
	}

	for name, testcase := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			negotiator := mock.NewMockNegotiator(ctrl)
			if testcase.setup != nil {
				testcase.setup(negotiator)
			}
			var reply *messages.Message
			cmd := testcase.cmd(func(m messages.Message) { reply = &m })

			err := CommandHandler{Negotiator: negotiator}.HandleCommand(context.Background(), cmd)

			if testcase.expectedError != nil {
				assert.True(t, errors.Is(err, testcase.expectedError), "got: %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testcase.expectedReply, reply)
		})
	}
}

func TestCommandHandler_OnBus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	negotiator := mock.NewMockNegotiator(ctrl)
	negotiator.EXPECT().Negotiate(request).Return(&response, nil)

	commandBus := bus.NewCommandHandler()
	handler := CommandHandler{Negotiator: negotiator}
	assert.NoError(t, commandBus.SetHandler(handler, commands.ProcessContractRequestCmdType))
	assert.NoError(t, commandBus.SetHandler(handler, commands.ProcessContractOfferCmdType))

	var reply messages.Message
	cmd, err := commands.ForMessage(request, func(m messages.Message) { reply = m })
	if !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, commandBus.HandleCommand(context.Background(), cmd))
	assert.Equal(t, response, reply)
}

func TestForMessage(t *testing.T) {
	t.Run("request", func(t *testing.T) {
		cmd, err := commands.ForMessage(request, nil)
		assert.NoError(t, err)
		assert.Equal(t, commands.ProcessContractRequestCmdType, cmd.CommandType())
		assert.Equal(t, domain.ContractNegotiationAggregateType, cmd.AggregateType())
		assert.NotEqual(t, uuid.Nil, cmd.AggregateID())
	})

	t.Run("offer", func(t *testing.T) {
		cmd, err := commands.ForMessage(offer, nil)
		assert.NoError(t, err)
		assert.Equal(t, commands.ProcessContractOfferCmdType, cmd.CommandType())
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := commands.ForMessage(response, nil)
		assert.True(t, errors.Is(err, domain.ErrUnsupportedMessage))
	})
}
