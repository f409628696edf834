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

package pkg

import (
	"github.com/nuts-foundation/nuts-contract-service/domain/contract"
)

const ConfScopes = "scopes"
const ConfEvaluationMargin = "evaluationMargin"
const ConfValidity = "validity"

// ContractServiceConfig holds the settings injected by the nuts config.
type ContractServiceConfig struct {
	// Scopes lists the deployment scope URIs offered to requesters, separated by whitespace or commas.
	Scopes string
	// EvaluationMargin is a duration like "1h", bounding policy evaluation after the contract date.
	EvaluationMargin string
	// Validity is the contract term in years.
	Validity int
}

func DefaultContractServiceConfig() ContractServiceConfig {
	return ContractServiceConfig{
		EvaluationMargin: contract.DefaultEvaluationMargin.String(),
		Validity:         contract.DefaultValidityYears,
	}
}
