package value

import (
	"regexp"
	"strings"
)

// PatternSource is the body shared by every generated pattern: an empty
// non-capturing group, which matches the empty string.
const PatternSource = "(?:)"

// Pattern flags, in canonical order.
const (
	FlagGlobal     = 'g'
	FlagIgnoreCase = 'i'
	FlagMultiline  = 'm'
)

// PatternFlags lists the recognized flags in canonical order.
const PatternFlags = "gim"

// Pattern is a regular-expression object.
type Pattern struct {
	Source string
	Flags  string
}

// Global reports whether the g flag is set.
func (p *Pattern) Global() bool { return strings.ContainsRune(p.Flags, FlagGlobal) }

// IgnoreCase reports whether the i flag is set.
func (p *Pattern) IgnoreCase() bool { return strings.ContainsRune(p.Flags, FlagIgnoreCase) }

// Multiline reports whether the m flag is set.
func (p *Pattern) Multiline() bool { return strings.ContainsRune(p.Flags, FlagMultiline) }

// String renders p in literal form, e.g. /(?:)/gi.
func (p *Pattern) String() string { return "/" + p.Source + "/" + p.Flags }

// Compile builds the equivalent Go regexp. The i and m flags map to Go inline
// flags; g has no Go counterpart and only affects matching iteration.
func (p *Pattern) Compile() (*regexp.Regexp, error) {
	var inline string
	if p.IgnoreCase() {
		inline += "i"
	}
	if p.Multiline() {
		inline += "m"
	}
	expr := p.Source
	if inline != "" {
		expr = "(?" + inline + ")" + expr
	}
	return regexp.Compile(expr)
}
