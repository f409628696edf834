package domain

import (
	eh "github.com/looplab/eventhorizon"
)

const ContractNegotiationAggregateType = eh.AggregateType("contract-negotiation")
