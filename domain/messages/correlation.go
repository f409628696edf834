package messages

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nuts-foundation/nuts-contract-service/domain"
)

const autogenPrefix = "https://w3id.org/idsa/autogen/"

// BuildCorrelatedResponse creates a ContractResponseMessage header answering inboundMessageID.
// An empty inboundMessageID is a programming error and panics with ErrMissingCorrelation.
func BuildCorrelatedResponse(inboundMessageID string, issued time.Time) Header {
	if inboundMessageID == "" {
		panic(domain.ErrMissingCorrelation)
	}
	return Header{
		Kind:          ContractResponseMessage,
		ID:            AutogenID("contractResponseMessage"),
		CorrelationID: inboundMessageID,
		Issued:        issued,
	}
}

// AutogenID returns a fresh identifier for an entity of the given infomodel class.
func AutogenID(class string) string {
	return fmt.Sprintf("%s%s/%s", autogenPrefix, class, uuid.New())
}
