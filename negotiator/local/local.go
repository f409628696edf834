package local

import (
	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
	"github.com/nuts-foundation/nuts-contract-service/pkg/logger"
)

// LocalAgreementHandler only records received offers, it never answers them.
type LocalAgreementHandler struct {
}

func (l LocalAgreementHandler) HandleContractOffer(offerID string, offer messages.Message) (*messages.Message, error) {
	logger.Logger().WithField("offer", offerID).Infof("contract offer received, correlation: %q", offer.Header.CorrelationID)
	return nil, nil
}
