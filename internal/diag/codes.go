package diag

import "fmt"

// Code identifies a diagnostic kind. Numeric ranges follow the pipeline's
// phase layout: 100s lexer, 200s parser, 300s resolver, 900s type checking
// and general/internal errors.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexer (100-199).
	LexInfo               Code = 100
	LexUnknownChar        Code = 101
	LexMissingFractional  Code = 102
	LexInvalidFloatFormat Code = 103
	LexUnterminatedString Code = 104
	LexInvalidEscape      Code = 105
	LexTokenTooLong       Code = 106

	// Parser (200-299).
	SynUnexpectedToken   Code = 200
	SynExpectToken       Code = 201
	SynExpectExpression  Code = 202
	SynExpectIdentifier  Code = 203
	SynExpectType        Code = 204
	SynUnclosedDelimiter Code = 205
	SynExpectSemicolon   Code = 206
	SynForMissingIn      Code = 207
	SynUnexpectedEOF     Code = 208

	// Name resolution (300-399).
	SynNameDefinedMultipleTimes  Code = 300
	SynDuplicateIdentInParamList Code = 301
	SynUnresolvedName            Code = 302
	SynUnresolvedModule          Code = 303

	// Type checking and general errors (900+).
	TypeMismatch             Code = 900
	TypeInvalidBinaryOp      Code = 901
	TypeInvalidUnaryOp       Code = 902
	TypeCannotInferVar       Code = 903
	TypeIntLiteralOutOfRange Code = 904
	TypeMissingReturn        Code = 905
	TypeConditionNotBool     Code = 906
	TypeWrongArgCount        Code = 907
	TypeNotCallable          Code = 908
	TypeNullNotSupported     Code = 909
	TypeUnreachableCode      Code = 910

	// Internal/bug (990-999).
	BugDefPathHashCollision Code = 990
	BugInternal             Code = 999
)

var codeDescription = map[Code]string{
	UnknownCode:                  "unknown error",
	LexInfo:                      "lexer information",
	LexUnknownChar:               "unexpected character",
	LexInvalidEscape:             "invalid escape sequence",
	LexInvalidFloatFormat:        "invalid float format",
	LexMissingFractional:         "missing fractional part",
	LexUnterminatedString:        "unterminated string literal",
	LexTokenTooLong:              "token exceeds maximum length",
	SynUnexpectedToken:           "unexpected token",
	SynExpectToken:               "expected a different token",
	SynExpectExpression:          "expected an expression",
	SynExpectIdentifier:          "expected an identifier",
	SynExpectType:                "expected a type",
	SynUnclosedDelimiter:         "unclosed delimiter",
	SynExpectSemicolon:           "expected ';'",
	SynForMissingIn:              "missing 'in' in for loop",
	SynUnexpectedEOF:             "unexpected end of file",
	SynNameDefinedMultipleTimes:  "name is defined multiple times",
	SynDuplicateIdentInParamList: "duplicate identifier in parameter list",
	SynUnresolvedName:            "cannot resolve name",
	SynUnresolvedModule:          "cannot resolve module",
	TypeMismatch:                 "type mismatch",
	TypeInvalidBinaryOp:          "invalid operands for binary operator",
	TypeInvalidUnaryOp:           "invalid operand for unary operator",
	TypeCannotInferVar:           "cannot infer type",
	TypeIntLiteralOutOfRange:     "integer literal out of range for its type",
	TypeMissingReturn:            "function does not return on all paths",
	TypeConditionNotBool:         "condition must be of type bool",
	TypeWrongArgCount:            "wrong number of arguments",
	TypeNotCallable:              "expression is not callable",
	TypeNullNotSupported:         "`null` has no defined type yet",
	TypeUnreachableCode:          "unreachable code",
	BugDefPathHashCollision:      "internal: DefPathHash collision",
	BugInternal:                  "internal compiler error",
}

// ID renders the code as the short printable form used in rendered
// diagnostics, e.g. "E0104".
func (c Code) ID() string {
	return fmt.Sprintf("E%04d", uint16(c))
}

// Title returns the human-readable description registered for c.
func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Phase classifies which pipeline stage a code belongs to, used by
// DiagCtxt to decide whether a phase boundary has been crossed.
type Phase uint8

const (
	PhaseLexer Phase = iota
	PhaseParser
	PhaseResolver
	PhaseTypeCheck
	PhaseInternal
)

// PhaseOf classifies c by its numeric range.
func PhaseOf(c Code) Phase {
	switch {
	case c >= 100 && c < 200:
		return PhaseLexer
	case c >= 200 && c < 300:
		return PhaseParser
	case c >= 300 && c < 400:
		return PhaseResolver
	case c >= 900 && c < 990:
		return PhaseTypeCheck
	default:
		return PhaseInternal
	}
}
