package diag

import (
	"fmt"
)

// Code identifies one diagnostic kind. Ranges are stable:
//
//	1000-1999  lexical
//	2000-2999  syntactic
//	3000-3999  parameter model
//	4000-4999  generation limits
//	9000-9999  internal invariants (generator bugs, never user errors)
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedAttr   Code = 1003
	LexBadLifetime        Code = 1004

	// Syntactic
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynExpectFn            Code = 2002
	SynExpectIdentifier    Code = 2003
	SynExpectColon         Code = 2004
	SynExpectType          Code = 2005
	SynExpectRParen        Code = 2006
	SynExpectSemicolon     Code = 2007
	SynUnclosedAttr        Code = 2008
	SynBadReceiver         Code = 2009
	SynExpectAttrName      Code = 2010
	SynUnclosedDelimiter   Code = 2011
	SynExpectCommaOrRParen Code = 2012

	// Parameter model
	ParamInfo              Code = 3000
	ParamMultipleReceivers Code = 3001
	ParamAttrNameValue     Code = 3002
	ParamAttrEmptyList     Code = 3003
	ParamDefaultOrder      Code = 3004

	// Generation limits
	GenInfo        Code = 4000
	GenCapExceeded Code = 4001

	// Internal invariants
	InternalInfo         Code = 9000
	RenderMissingDefault Code = 9001
)

func (c Code) String() string {
	return fmt.Sprintf("DA%04d", uint16(c))
}

// Internal reports whether the code marks a generator bug rather than a
// problem with the user's declaration.
func (c Code) Internal() bool {
	return c >= InternalInfo
}
