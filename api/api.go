/*
 *  Nuts contract service holds the contract negotiation logic
 *  Copyright (C) 2021 Nuts community
 *
 *  This program is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License
 *  along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
	"github.com/nuts-foundation/nuts-contract-service/pkg"
)

// Wrapper provides the implementation of the generated ServerInterface
type Wrapper struct {
	Cl pkg.ContractServiceClient
}

// HandleNegotiationMessage runs a negotiation turn for the posted message.
// It answers 200 with the outbound message, or 202 when there is nothing to send back.
func (wrapper Wrapper) HandleNegotiationMessage(ctx echo.Context) error {
	apiMessage := &NegotiationMessage{}
	if err := ctx.Bind(apiMessage); err != nil {
		ctx.Logger().Error("Could not unmarshal json body:", err)
		return err
	}

	if apiMessage.Header.Type == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "the message requires a header with @type")
	}
	if apiMessage.Header.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "the message requires a header with @id")
	}

	reply, err := wrapper.Cl.HandleMessage(ctx.Request().Context(), apiMessage2Internal(*apiMessage))
	if err != nil {
		return echo.NewHTTPError(statusFor(err), err.Error())
	}
	if reply == nil {
		return ctx.NoContent(http.StatusAccepted)
	}
	return ctx.JSON(http.StatusOK, internal2ApiMessage(*reply))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedRequest),
		errors.Is(err, domain.ErrUnsupportedMessage),
		errors.Is(err, domain.ErrInvalidOperand):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Convert the public generated data type to the internal type.
// This abstraction makes the app more robust to api changes.
func apiMessage2Internal(apiMessage NegotiationMessage) messages.Message {
	msg := messages.Message{
		Header: messages.Header{
			Kind: messages.Kind(apiMessage.Header.Type),
			ID:   apiMessage.Header.ID,
		},
		Body: apiMessage.Payload,
	}
	if apiMessage.Header.CorrelationMessage != nil {
		msg.Header.CorrelationID = *apiMessage.Header.CorrelationMessage
	}
	if apiMessage.Header.Issued != nil {
		msg.Header.Issued = *apiMessage.Header.Issued
	}
	return msg
}

func internal2ApiMessage(msg messages.Message) NegotiationMessage {
	apiMessage := NegotiationMessage{
		Header: MessageHeader{
			ID:   msg.Header.ID,
			Type: string(msg.Header.Kind),
		},
		Payload: msg.Body,
	}
	if msg.Header.CorrelationID != "" {
		correlation := msg.Header.CorrelationID
		apiMessage.Header.CorrelationMessage = &correlation
	}
	if !msg.Header.Issued.IsZero() {
		issued := msg.Header.Issued
		apiMessage.Header.Issued = &issued
	}
	return apiMessage
}
