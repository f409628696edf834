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

package engine

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/nuts-foundation/nuts-contract-service/api"
	"github.com/nuts-foundation/nuts-contract-service/domain/messages"
	pkg2 "github.com/nuts-foundation/nuts-contract-service/pkg"
	engine "github.com/nuts-foundation/nuts-go-core"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewContractServiceEngine() *engine.Engine {
	cs := pkg2.ContractServiceInstance()

	return &engine.Engine{
		Name:      "ContractService",
		Cmd:       cmd(cs),
		Config:    &cs.Config,
		Configure: cs.Configure,
		Start:     cs.Start,
		ConfigKey: "contract",
		FlagSet:   flagSet(),
		Shutdown:  cs.Shutdown,
		Routes: func(router engine.EchoRouter) {
			api.RegisterHandlers(router, &api.Wrapper{Cl: cs})
		},
	}
}

func flagSet() *pflag.FlagSet {
	defs := pkg2.DefaultContractServiceConfig()
	flags := pflag.NewFlagSet("contract", pflag.ContinueOnError)
	flags.String(pkg2.ConfScopes, defs.Scopes, "Deployment scope URIs offered in counter offers, separated by whitespace or commas")
	flags.String(pkg2.ConfEvaluationMargin, defs.EvaluationMargin, "Time after the contract date during which policies may be evaluated")
	flags.Int(pkg2.ConfValidity, defs.Validity, "Contract term in years")
	return flags
}

func cmd(cl pkg2.ContractServiceClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "contract negotiation commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "counter-offer [contract request file]",
		Example: "counter-offer request.jsonld",
		Short:   "answers the ContractRequest document in the given file and prints the counter offer",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := ioutil.ReadFile(args[0])
			if err != nil {
				return err
			}
			reply, err := cl.HandleMessage(context.Background(), messages.Message{
				Header: messages.Header{
					Kind: messages.ContractRequestMessage,
					ID:   messages.AutogenID("contractRequestMessage"),
				},
				Body: string(body),
			})
			if err != nil {
				return err
			}
			if reply == nil {
				return fmt.Errorf("no counter offer for %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply.Body)
			return nil
		},
	})
	return cmd
}
