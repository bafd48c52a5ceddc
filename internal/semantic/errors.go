package semantic

import (
	"fmt"

	"github.com/semcore-lang/semcore/pkg/ast"
)

// SemanticErrorKind is the closed error-kind set of spec §7.
type SemanticErrorKind int

const (
	TypeNotFound SemanticErrorKind = iota
	TypeAlreadyExist
	ConstantAlreadyExist
	FunctionAlreadyExist
	FunctionNotFound
	ValueNotFound
	ValueIsNotMutable
	WrongLetType
	WrongReturnType
	WrongExpressionType
	FunctionParameterTypeWrong
	ConditionExpressionWrongType
	ConditionExpressionNotSupported
	IfElseDuplicated
	ReturnNotFound
)

func (k SemanticErrorKind) String() string {
	switch k {
	case TypeNotFound:
		return "TypeNotFound"
	case TypeAlreadyExist:
		return "TypeAlreadyExist"
	case ConstantAlreadyExist:
		return "ConstantAlreadyExist"
	case FunctionAlreadyExist:
		return "FunctionAlreadyExist"
	case FunctionNotFound:
		return "FunctionNotFound"
	case ValueNotFound:
		return "ValueNotFound"
	case ValueIsNotMutable:
		return "ValueIsNotMutable"
	case WrongLetType:
		return "WrongLetType"
	case WrongReturnType:
		return "WrongReturnType"
	case WrongExpressionType:
		return "WrongExpressionType"
	case FunctionParameterTypeWrong:
		return "FunctionParameterTypeWrong"
	case ConditionExpressionWrongType:
		return "ConditionExpressionWrongType"
	case ConditionExpressionNotSupported:
		return "ConditionExpressionNotSupported"
	case IfElseDuplicated:
		return "IfElseDuplicated"
	case ReturnNotFound:
		return "ReturnNotFound"
	default:
		return fmt.Sprintf("SemanticErrorKind(%d)", int(k))
	}
}

// SemanticError is one accumulated analysis error (spec §7): `{ kind,
// value, location }`. Errors are never thrown; Driver.Errors accumulates
// them and analysis continues per the recovery policy of §7.
type SemanticError struct {
	Kind     SemanticErrorKind
	Value    string
	Location ast.Ident
}

func newError(kind SemanticErrorKind, value string, loc ast.Ident) SemanticError {
	return SemanticError{Kind: kind, Value: value, Location: loc}
}

func (e SemanticError) Error() string {
	return fmt.Sprintf("%s(%q) at %d:%d", e.Kind, e.Value, e.Location.Line, e.Location.Offset)
}
