package pkg

import (
	"strings"
	"unicode"

	"github.com/nuts-foundation/nuts-contract-service/domain"
	"github.com/nuts-foundation/nuts-contract-service/domain/policy"
)

// StaticScopes offers the same deployment scopes in every exchange.
type StaticScopes []string

func (s StaticScopes) DeploymentScopes() ([]string, error) {
	if len(s) == 0 {
		return nil, domain.ErrNoScopesConfigured
	}
	return append([]string(nil), s...), nil
}

// ParseScopes splits value on whitespace and commas. Every entry must be an absolute URI.
func ParseScopes(value string) (StaticScopes, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	scopes := make(StaticScopes, 0, len(fields))
	for _, f := range fields {
		uri, err := policy.ParseURI(f)
		if err != nil {
			return nil, err
		}
		scopes = append(scopes, uri)
	}
	return scopes, nil
}
