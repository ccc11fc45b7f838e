package flowsheet

import (
	"regexp"
	"strings"
)

// Kind identifies the declaration construct a name was found in.
type Kind string

// Declaration kinds recognized by the parser.
const (
	KindClass      Kind = "class"
	KindInterface  Kind = "interface"
	KindVar        Kind = "var"
	KindType       Kind = "type"
	KindOpaqueType Kind = "opaque type"
	KindModule     Kind = "module"
)

// Declaration is a named construct found in a library declaration file.
// Members is only populated for KindModule.
type Declaration struct {
	Name    string
	Line    int // 0-based
	Members []*Declaration
	File    string
	Kind    Kind
}

// IsModule reports whether the declaration groups nested members.
func (d *Declaration) IsModule() bool {
	return d.Kind == KindModule
}

// linePatterns holds the declaration patterns for one indentation level.
type linePatterns struct {
	class      *regexp.Regexp
	classStart *regexp.Regexp
	iface      *regexp.Regexp
	variable   *regexp.Regexp
	typeAlias  *regexp.Regexp
	typeStart  *regexp.Regexp
	opaque     *regexp.Regexp
}

func compilePatterns(indent string) linePatterns {
	return linePatterns{
		class:      regexp.MustCompile(`^` + indent + `declare (?:export )?class (.+) \{`),
		classStart: regexp.MustCompile(`^` + indent + `declare (?:export )?class \S`),
		iface:      regexp.MustCompile(`^` + indent + `declare (?:export )?interface (.+) \{`),
		variable:   regexp.MustCompile(`^` + indent + `declare (?:export )?var (.+)`),
		typeAlias:  regexp.MustCompile(`^` + indent + `(?:declare )?(?:export )?type (.+) =`),
		typeStart:  regexp.MustCompile(`^` + indent + `(?:declare )?(?:export )?type \S`),
		opaque:     regexp.MustCompile(`^` + indent + `(?:declare )?(?:export )?opaque type (.+);`),
	}
}

var (
	topLevelPatterns = compilePatterns(``)
	modulePatterns   = compilePatterns(`\s+`)

	moduleOpenRe  = regexp.MustCompile(`^declare module (.+) \{`)
	moduleCloseRe = regexp.MustCompile(`^\}\s*$`)
)

// parseState is the multi-line accumulation state of a Parser.
type parseState int

const (
	stateScanning parseState = iota
	stateAccumulating
)

// Parser scans a declaration file line by line.
//
// A class line without "{" or a type alias line without "=" starts an
// accumulation run: following raw lines are concatenated without separators
// until the terminator appears, and the joined text is matched as if it were
// the first line of the run.
type Parser struct {
	file    string
	results []*Declaration
	module  *Declaration

	state      parseState
	start      int
	terminator string
	buf        strings.Builder
}

// NewParser returns a Parser for the named file.
func NewParser(file string) *Parser {
	return &Parser{file: file}
}

// ParseDeclarations extracts the top-level declarations of body.
// Modules carry their nested declarations as members.
func ParseDeclarations(body, file string) []*Declaration {
	p := NewParser(file)
	for lineNo, line := range splitLines(body) {
		p.Feed(lineNo, line)
	}
	return p.Declarations()
}

// Feed processes one line with its 0-based line number.
func (p *Parser) Feed(lineNo int, line string) {
	if p.state == stateAccumulating {
		p.buf.WriteString(line)
		if !strings.Contains(line, p.terminator) {
			return
		}
		text, start := p.buf.String(), p.start
		p.reset()
		p.match(text, start, false)
		return
	}
	p.match(line, lineNo, true)
}

// Accumulating reports whether the parser is inside a multi-line run.
func (p *Parser) Accumulating() bool {
	return p.state == stateAccumulating
}

// Declarations returns the declarations collected so far.
// A module whose closing brace never appeared and an unfinished multi-line
// run are not included.
func (p *Parser) Declarations() []*Declaration {
	return p.results
}

func (p *Parser) reset() {
	p.state = stateScanning
	p.start = 0
	p.terminator = ""
	p.buf.Reset()
}

func (p *Parser) accumulate(line string, lineNo int, terminator string) {
	p.state = stateAccumulating
	p.start = lineNo
	p.terminator = terminator
	p.buf.Reset()
	p.buf.WriteString(line)
}

func (p *Parser) match(line string, lineNo int, allowRun bool) {
	if p.module == nil {
		if m := moduleOpenRe.FindStringSubmatch(line); m != nil {
			p.module = &Declaration{
				Name:    m[1],
				Line:    lineNo,
				Members: []*Declaration{},
				File:    p.file,
				Kind:    KindModule,
			}
			return
		}
	} else if moduleCloseRe.MatchString(line) {
		p.results = append(p.results, p.module)
		p.module = nil
		return
	}

	pats := topLevelPatterns
	if p.module != nil {
		pats = modulePatterns
	}

	if m := pats.class.FindStringSubmatch(line); m != nil {
		p.add(m[1], lineNo, KindClass)
		return
	}
	if allowRun && !strings.Contains(line, "{") && pats.classStart.MatchString(line) {
		p.accumulate(line, lineNo, "{")
		return
	}
	if m := pats.iface.FindStringSubmatch(line); m != nil {
		p.add(m[1], lineNo, KindInterface)
		return
	}
	if m := pats.variable.FindStringSubmatch(line); m != nil {
		p.add(m[1], lineNo, KindVar)
		return
	}
	if m := pats.typeAlias.FindStringSubmatch(line); m != nil {
		p.add(m[1], lineNo, KindType)
		return
	}
	if allowRun && !strings.Contains(line, "=") && pats.typeStart.MatchString(line) {
		p.accumulate(line, lineNo, "=")
		return
	}
	if m := pats.opaque.FindStringSubmatch(line); m != nil {
		p.add(m[1], lineNo, KindOpaqueType)
		return
	}
}

func (p *Parser) add(name string, lineNo int, kind Kind) {
	d := &Declaration{Name: name, Line: lineNo, File: p.file, Kind: kind}
	if p.module != nil {
		p.module.Members = append(p.module.Members, d)
		return
	}
	p.results = append(p.results, d)
}

// splitLines splits body on "\n", tolerating "\r\n" line endings.
func splitLines(body string) []string {
	if body == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
