package header

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	headerLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Continuation", Pattern: `\\\r?\n`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Define", Pattern: `#define\b`},
		{Name: "Directive", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `[-+]?\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[{},]`},
		{Name: "Other", Pattern: `[^\s,{}\\]`},
	})

	identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	fileParser = participle.MustBuild[File](
		participle.Lexer(headerLexer),
		participle.Elide("Continuation", "Whitespace", "BlockComment", "LineComment", "Directive"),
	)
)

// File is the root node: every #define initializer found in a header.
// Preprocessor lines other than #define are skipped.
type File struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Defines []*Define      `parser:"@@*"`
}

// Define is a `#define NAME ...` line. Only aggregate initializers carry a
// Body; include guards and scalar defines keep an optional Value.
type Define struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Name  string         `parser:"Define @Ident"`
	Body  *Initializer   `parser:"@@?"`
	Value *Arg           `parser:"@@?"`
}

// Initializer is a `{ ... }` list of elements.
type Initializer struct {
	Elements []*Element `parser:"'{' ( @@ ','? )* '}'"`
}

// Element is a single `{KIND, {arg, ...}}` entry.
type Element struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Kind string         `parser:"'{' @Ident ','"`
	Args []*Arg         `parser:"'{' ( @@ ( ',' @@ )* )? '}' '}'"`
}

// Arg is the token run between two commas, joined without whitespace, so
// pins such as GP-3 or 5A come back as written.
type Arg struct {
	Pos lexer.Position `parser:"" json:"-"`
	Raw string         `parser:"@( Number | Ident | Other )+"`
}

// Int returns the integer value of a numeric argument.
func (a *Arg) Int() (int, error) {
	n, err := strconv.Atoi(a.String())
	if err != nil {
		return 0, fmt.Errorf("%s: expected integer, got %q", a.position(), a.String())
	}
	return n, nil
}

// IsIdent reports whether the argument is a plain C identifier.
func (a *Arg) IsIdent() bool { return identPattern.MatchString(a.String()) }

func (a *Arg) position() lexer.Position {
	if a == nil {
		return lexer.Position{}
	}
	return a.Pos
}

// String returns the argument as it appeared in the source.
func (a *Arg) String() string {
	if a == nil {
		return ""
	}
	return a.Raw
}

// Parse parses header text from an io.Reader.
func Parse(r io.Reader) (*File, error) {
	return fileParser.Parse("", r)
}

// ParseString parses header text from a string.
func ParseString(input string) (*File, error) {
	return fileParser.ParseString("", input)
}

// Lookup returns the define with the given name, or nil.
func (f *File) Lookup(name string) *Define {
	if f == nil {
		return nil
	}
	for _, d := range f.Defines {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Elements returns the initializer entries, or nil for a non-aggregate define.
func (d *Define) Elements() []*Element {
	if d == nil || d.Body == nil {
		return nil
	}
	return d.Body.Elements
}

// Names lists define names in source order.
func (f *File) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.Defines))
	for _, d := range f.Defines {
		names = append(names, d.Name)
	}
	return names
}

// String renders the element back into initializer form without column padding.
func (e *Element) String() string {
	args := make([]string, 0, len(e.Args))
	for _, a := range e.Args {
		args = append(args, a.String())
	}
	return fmt.Sprintf("{%s, {%s}}", e.Kind, strings.Join(args, ", "))
}
