package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexBadRawString             Code = 1006

	// Синтаксические
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedDelimiter  Code = 2002
	SynUnmatchedDelimiter Code = 2003
	SynExpectIdentifier   Code = 2004
	SynExpectType         Code = 2005
	SynExpectBody         Code = 2006
	SynExpectParams       Code = 2007

	// Функциональные компоненты
	FncInfo                  Code = 3000
	FncNotAFunction          Code = 3001
	FncUnsupportedModifier   Code = 3002
	FncReceiverNotAllowed    Code = 3003
	FncInvalidPropsParameter Code = 3004
	FncTooManyParameters     Code = 3005
	FncMissingReturnType     Code = 3006
	FncMissingComponentName  Code = 3007
	FncNameCollision         Code = 3008
	FncBadContract           Code = 3009
	FncExpanded              Code = 3010

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002

	// Проект / манифест
	PrjInfo          Code = 5000
	PrjManifestError Code = 5001

	// Наблюдаемость
	ObsInfo     Code = 6000
	ObsTimings  Code = 6001
	ObsCacheHit Code = 6002
)

var (
	codeDescription = map[Code]string{
		UnknownCode: "Unknown error",

		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number",
		LexUnterminatedChar:         "Unterminated character literal",
		LexBadRawString:             "Malformed raw string",

		SynInfo:               "Syntax information",
		SynUnexpectedToken:    "Unexpected token",
		SynUnclosedDelimiter:  "Unclosed delimiter",
		SynUnmatchedDelimiter: "Unmatched closing delimiter",
		SynExpectIdentifier:   "Expected identifier",
		SynExpectType:         "Expected type",
		SynExpectBody:         "Expected function body",
		SynExpectParams:       "Expected parameter list",

		FncInfo:                  "Functional component information",
		FncNotAFunction:          "Attribute applied to a non-function item",
		FncUnsupportedModifier:   "Unsupported function modifier",
		FncReceiverNotAllowed:    "Receiver parameter not allowed",
		FncInvalidPropsParameter: "Invalid props parameter",
		FncTooManyParameters:     "Too many parameters",
		FncMissingReturnType:     "Missing return type",
		FncMissingComponentName:  "Missing component name",
		FncNameCollision:         "Function and component names collide",
		FncBadContract:           "Invalid runtime contract",
		FncExpanded:              "Functional component expanded",

		IOInfo:          "I/O information",
		IOLoadFileError: "Failed to load file",
		IOWriteError:    "Failed to write file",

		PrjInfo:          "Project information",
		PrjManifestError: "Invalid project manifest",

		ObsInfo:     "Observability information",
		ObsTimings:  "Timings",
		ObsCacheHit: "Expansion served from cache",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("FNC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
