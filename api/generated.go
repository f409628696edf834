package api

import (
	"time"

	"github.com/labstack/echo/v4"
)

// MessageHeader defines component schema for MessageHeader.
type MessageHeader struct {
	ID                 string     `json:"@id"`
	Type               string     `json:"@type"`
	CorrelationMessage *string    `json:"ids:correlationMessage,omitempty"`
	Issued             *time.Time `json:"ids:issued,omitempty"`
}

// NegotiationMessage defines component schema for NegotiationMessage.
type NegotiationMessage struct {
	Header  MessageHeader `json:"header"`
	Payload string        `json:"payload"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Processes a negotiation message and returns the answer, if any.
	// (POST /contract/message)
	HandleNegotiationMessage(ctx echo.Context) error
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register the handlers.
type EchoRouter interface {
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	router.POST("/contract/message", si.HandleNegotiationMessage)
}
