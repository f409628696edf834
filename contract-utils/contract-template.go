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

package contract_utils

// all values are rendered unescaped, the view model holds JSON encoded strings.
// Every list item carries a last flag, it decides on the separating comma.
const contractOfferTemplate = `
{
  "@context": {
    "ids": "https://w3id.org/idsa/core/",
    "idsc": "https://w3id.org/idsa/code/"
  },
  "@type": "ids:ContractOffer",
  "@id": {{{id}}},
  "ids:contractDate": {
    "@value": {{{contractDate}}},
    "@type": {{{timestampType}}}
  },
  "ids:contractStart": {
    "@value": {{{contractStart}}},
    "@type": {{{timestampType}}}
  },
  "ids:contractEnd": {
    "@value": {{{contractEnd}}},
    "@type": {{{timestampType}}}
  },
  "ids:permission": [
    {{#permissions}}
    {
      "@type": "ids:Permission",
      "@id": {{{id}}},
      "ids:target": {
        "@id": {{{target}}}
      },
      "ids:action": [
        {{#actions}}
        {
          "@id": {{{action}}}
        }{{^last}},{{/last}}
        {{/actions}}
      ],
      "ids:constraint": [
        {{#constraints}}
        {
          "@type": "ids:Constraint",
          "@id": {{{id}}},
          "ids:leftOperand": {
            "@id": {{{leftOperand}}}
          },
          {{#reference}}
          "ids:rightOperandReference": {
            "@id": {{{uri}}}
          },
          {{/reference}}
          {{#literal}}
          "ids:rightOperand": {
            "@value": {{{value}}},
            "@type": {{{type}}}
          },
          {{/literal}}
          "ids:operator": {
            "@id": {{{operator}}}
          }
        }{{^last}},{{/last}}
        {{/constraints}}
      ]
    }{{^last}},{{/last}}
    {{/permissions}}
  ]
}
`
