package policy

import (
	"fmt"

	"github.com/nuts-foundation/nuts-contract-service/domain"
)

// LeftOperand is the semantic attribute a constraint limits.
type LeftOperand string

const System = LeftOperand("idsc:SYSTEM")
const PolicyEvaluationTime = LeftOperand("idsc:POLICY_EVALUATION_TIME")

// ValueType is the declared type of the right operand belonging to a left operand.
type ValueType string

// TypeReference marks operands that refer to another entity by its identifier instead of holding a literal.
const TypeReference = ValueType("@id")
const TypeDateTimeStamp = ValueType("http://www.w3.org/2001/XMLSchema#dateTimeStamp")

var valueTypes = map[LeftOperand]ValueType{
	System:               TypeReference,
	PolicyEvaluationTime: TypeDateTimeStamp,
}

// ValueType returns the declared right operand type. Unknown operands return an empty type.
func (l LeftOperand) ValueType() ValueType {
	return valueTypes[l]
}

type BinaryOperator string

const SameAs = BinaryOperator("idsc:SAME_AS")
const Equals = BinaryOperator("idsc:EQ")
const LessThan = BinaryOperator("idsc:LT")
const LessThanOrEqual = BinaryOperator("idsc:LTEQ")
const GreaterThan = BinaryOperator("idsc:GT")
const GreaterThanOrEqual = BinaryOperator("idsc:GTEQ")

var operators = map[BinaryOperator]bool{
	SameAs:             true,
	Equals:             true,
	LessThan:           true,
	LessThanOrEqual:    true,
	GreaterThan:        true,
	GreaterThanOrEqual: true,
}

// TypedLiteral is a literal right operand together with its value type.
type TypedLiteral struct {
	Value string
	Type  ValueType
}

// Constraint is a single usage clause: LeftOperand Operator RightOperand.
// Exactly one of RightOperand and RightOperandReference is set.
type Constraint struct {
	LeftOperand           LeftOperand
	Operator              BinaryOperator
	RightOperand          TypedLiteral
	RightOperandReference string
}

// IsReference reports whether the right operand refers to another entity.
func (c Constraint) IsReference() bool {
	return c.RightOperandReference != ""
}

// Validate checks the operator and that the right operand matches the value type declared by the left operand.
func (c Constraint) Validate() error {
	expected := c.LeftOperand.ValueType()
	if expected == "" {
		return fmt.Errorf("%w: unknown left operand %q", domain.ErrInvalidOperand, c.LeftOperand)
	}
	if !operators[c.Operator] {
		return fmt.Errorf("%w: unknown operator %q", domain.ErrInvalidOperand, c.Operator)
	}
	if expected == TypeReference {
		if !c.IsReference() || c.RightOperand != (TypedLiteral{}) {
			return fmt.Errorf("%w: %s requires a reference operand", domain.ErrInvalidOperand, c.LeftOperand)
		}
		return nil
	}
	if c.IsReference() {
		return fmt.Errorf("%w: %s requires a literal operand", domain.ErrInvalidOperand, c.LeftOperand)
	}
	if c.RightOperand.Type != expected {
		return fmt.Errorf("%w: %s compared with %s, expected %s", domain.ErrInvalidOperand, c.LeftOperand, c.RightOperand.Type, expected)
	}
	return nil
}

// NewReferenceConstraint constructs a constraint whose right operand references the entity identified by ref.
func NewReferenceConstraint(left LeftOperand, operator BinaryOperator, ref string) (Constraint, error) {
	uri, err := ParseURI(ref)
	if err != nil {
		return Constraint{}, err
	}
	c := Constraint{LeftOperand: left, Operator: operator, RightOperandReference: uri}
	if err := c.Validate(); err != nil {
		return Constraint{}, err
	}
	return c, nil
}

// NewLiteralConstraint constructs a constraint with a typed literal right operand.
func NewLiteralConstraint(left LeftOperand, operator BinaryOperator, literal TypedLiteral) (Constraint, error) {
	c := Constraint{LeftOperand: left, Operator: operator, RightOperand: literal}
	if err := c.Validate(); err != nil {
		return Constraint{}, err
	}
	return c, nil
}
