// Package capture carries syntax-capture identifiers and an interval-indexed
// store of captured spans. The taxonomy itself is defined by external
// grammars; this package only transports the dotted names and answers
// range-scoped lookups for the rendering pipeline.
package capture

import "strings"

// Name is a dotted capture identifier such as "keyword.operator" or
// "punctuation.bracket". More segments mean more specific.
type Name string

// Conventional capture names. Grammars may produce arbitrary names; these
// cover what the built-in themes style.
const (
	Comment            Name = "comment"
	CommentDoc         Name = "comment.doc"
	String             Name = "string"
	StringEscape       Name = "string.escape"
	Number             Name = "number"
	Boolean            Name = "boolean"
	Keyword            Name = "keyword"
	KeywordOperator    Name = "keyword.operator"
	Operator           Name = "operator"
	Punctuation        Name = "punctuation"
	PunctuationBracket Name = "punctuation.bracket"
	Function           Name = "function"
	FunctionBuiltin    Name = "function.builtin"
	Type               Name = "type"
	TypeBuiltin        Name = "type.builtin"
	Variable           Name = "variable"
	VariableParameter  Name = "variable.parameter"
	Constant           Name = "constant"
	Property           Name = "property"
	Tag                Name = "tag"
	Attribute          Name = "attribute"
	Invalid            Name = "invalid"
)

// String returns the name as a plain string.
func (n Name) String() string {
	return string(n)
}

// Parent returns the name with its last segment removed, or the empty
// name when no segments remain. "keyword.operator" → "keyword" → "".
func (n Name) Parent() Name {
	s := string(n)
	i := strings.LastIndexByte(s, '.')
	if i < 0 {
		return ""
	}
	return Name(s[:i])
}

// Matches returns true if the name equals the prefix or sits below it in
// the dotted hierarchy.
func (n Name) Matches(prefix Name) bool {
	if n == prefix {
		return true
	}
	p := string(prefix)
	s := string(n)
	return len(s) > len(p) && strings.HasPrefix(s, p) && s[len(p)] == '.'
}
