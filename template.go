package rhino

import (
	"net/url"
	"regexp"
	"strings"
)

// Ranges maps a range name used inside a `{name:range}` template parameter
// to the regular expression fragment it expands to (spec.md 3 "Default
// ranges", 4.1). A Mapper carries its own Ranges table, seeded from
// DefaultRanges and overridable per mapper.
type Ranges map[string]string

// DefaultRanges returns a fresh copy of the built-in range table
// (spec.md 3): word, alpha, digits, alnum, segment (the default when no
// range is named), unreserved, any.
func DefaultRanges() Ranges {
	return Ranges{
		"word":       `\w+`,
		"alpha":      `[a-zA-Z]+`,
		"digits":     `\d+`,
		"alnum":      `[a-zA-Z0-9]+`,
		"segment":    `[^/]+`,
		"unreserved": `[a-zA-Z\d\-._~]+`,
		"any":        `.+`,
	}
}

const defaultRangeName = "segment"

// Template is the bidirectional compilation of one URL path pattern
// (spec.md 3/4.1): a matcher that turns a path into routing arguments, and
// a builder that turns routing arguments into a path.
type Template struct {
	raw      string
	matcher  *regexp.Regexp
	params   []string
	anchored bool
	builder  []pathToken
}

// pathToken is one instruction in the builder program produced by the
// second compiler pass (spec.md 4.1 build_path).
type pathToken struct {
	kind    tokenKind
	literal string // kind == tokLiteral
	name    string // kind == tokParam
	rng     string // kind == tokParam, the range name for validation
	group   []pathToken // kind == tokGroup, the optional group's body
}

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokParam
	tokGroup
)

// Compile parses template string t against the given range table, producing
// both the matcher regex and the builder program (spec.md 4.1). Grammar
// violations (mismatched brackets/braces, `|` not last, unknown range) are
// reported as *TemplateError.
func Compile(t string, ranges Ranges) (*Template, error) {
	matcher, params, anchored, err := compileMatcher(t, ranges)
	if err != nil {
		return nil, err
	}
	builder, err := compileBuilder(t, ranges)
	if err != nil {
		return nil, err
	}
	return &Template{raw: t, matcher: matcher, params: params, anchored: anchored, builder: builder}, nil
}

// Raw returns the original template string.
func (tpl *Template) Raw() string { return tpl.raw }

// Params returns the parameter names referenced by the template, in
// declaration order.
func (tpl *Template) Params() []string { return tpl.params }

// Anchored reports whether the template requires the full path to be
// consumed (i.e. it does not end in a prefix-marking `|`).
func (tpl *Template) Anchored() bool { return tpl.anchored }

// compileMatcher implements spec.md 4.1's compile_matcher: a state machine
// over {PATH, IN_TEMPLATE} that regex-escapes literals, turns `[...]` into
// a non-capturing optional group, and turns `{name}`/`{name:range}` into a
// named capture group.
func compileMatcher(t string, ranges Ranges) (*regexp.Regexp, []string, bool, error) {
	var out strings.Builder
	out.WriteByte('^')

	const (
		statePath = iota
		stateInTemplate
	)

	state := statePath
	var name strings.Builder
	var params []string
	depth := 0
	anchored := true
	runes := []rune(t)

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch state {
		case statePath:
			switch c {
			case '[':
				depth++
				out.WriteString("(?:")
			case ']':
				if depth == 0 {
					return nil, nil, false, &TemplateError{Template: t, Reason: "unmatched ']'"}
				}
				depth--
				out.WriteString(")?")
			case '{':
				state = stateInTemplate
				name.Reset()
			case '}':
				return nil, nil, false, &TemplateError{Template: t, Reason: "unmatched '}'"}
			case '|':
				if i != len(runes)-1 {
					return nil, nil, false, &TemplateError{Template: t, Reason: "'|' may only appear as the last character"}
				}
				anchored = false
			default:
				out.WriteString(regexp.QuoteMeta(string(c)))
			}
		case stateInTemplate:
			switch c {
			case '}':
				nm, rng := splitNameRange(name.String())
				pattern, ok := ranges[rng]
				if !ok {
					return nil, nil, false, &TemplateError{Template: t, Reason: "unknown range " + rng}
				}
				out.WriteString("(?P<" + nm + ">" + pattern + ")")
				params = append(params, nm)
				state = statePath
			default:
				name.WriteRune(c)
			}
		}
	}
	if state == stateInTemplate {
		return nil, nil, false, &TemplateError{Template: t, Reason: "unmatched '{'"}
	}
	if depth != 0 {
		return nil, nil, false, &TemplateError{Template: t, Reason: "unmatched '['"}
	}
	if anchored {
		out.WriteByte('$')
	}
	re, err := regexp.Compile(out.String())
	if err != nil {
		return nil, nil, false, &TemplateError{Template: t, Reason: err.Error()}
	}
	return re, params, anchored, nil
}

func splitNameRange(s string) (name, rng string) {
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		return s[:idx], s[idx+1:]
	}
	return s, defaultRangeName
}

// compileBuilder implements the second, independent pass of spec.md 4.1:
// a token program that build_path replays against a concrete parameter set.
func compileBuilder(t string, ranges Ranges) ([]pathToken, error) {
	toks, rest, err := parseBuilderTokens([]rune(t), ranges, false)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		if rest[0] == ']' {
			return nil, &TemplateError{Template: t, Reason: "unmatched ']'"}
		}
		return nil, &TemplateError{Template: t, Reason: "unexpected trailing characters"}
	}
	return toks, nil
}

// parseBuilderTokens consumes runes until end-of-input or, when inGroup, an
// unmatched ']' (returned as the first rune of rest for the caller to
// consume). It recognizes literals, `{name}`/`{name:range}`, nested `[...]`
// groups, and a trailing `|` (ignored by the builder — prefix markers do
// not contribute to path construction).
func parseBuilderTokens(runes []rune, ranges Ranges, inGroup bool) ([]pathToken, []rune, error) {
	var toks []pathToken
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch c {
		case ']':
			if inGroup {
				return toks, runes[i:], nil
			}
			return nil, nil, &TemplateError{Reason: "unmatched ']'"}
		case '[':
			inner, rest, err := parseBuilderTokens(runes[i+1:], ranges, true)
			if err != nil {
				return nil, nil, err
			}
			if len(rest) == 0 || rest[0] != ']' {
				return nil, nil, &TemplateError{Reason: "unmatched '['"}
			}
			toks = append(toks, pathToken{kind: tokGroup, group: inner})
			runes = rest[1:]
			i = 0
			continue
		case '{':
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			if j >= len(runes) {
				return nil, nil, &TemplateError{Reason: "unmatched '{'"}
			}
			nm, rng := splitNameRange(string(runes[i+1 : j]))
			if _, ok := ranges[rng]; !ok {
				return nil, nil, &TemplateError{Reason: "unknown range " + rng}
			}
			toks = append(toks, pathToken{kind: tokParam, name: nm, rng: rng})
			runes = runes[j+1:]
			i = 0
			continue
		case '|':
			if i != len(runes)-1 {
				return nil, nil, &TemplateError{Reason: "'|' may only appear as the last character"}
			}
			runes = runes[:i]
			i = len(runes)
			continue
		default:
			var lit strings.Builder
			for i < len(runes) && runes[i] != '[' && runes[i] != ']' && runes[i] != '{' && runes[i] != '|' {
				lit.WriteRune(runes[i])
				i++
			}
			toks = append(toks, pathToken{kind: tokLiteral, literal: lit.String()})
			continue
		}
	}
	return toks, nil, nil
}

// Match implements spec.md 4.2's match(path): an anchored or
// prefix-anchored regex match at position 0. On success it returns the
// captured routing arguments and, for a prefix (non-anchored) template,
// the length of path consumed by the match.
func (tpl *Template) Match(path string) (args map[string]string, consumed int, ok bool) {
	loc := tpl.matcher.FindStringSubmatchIndex(path)
	if loc == nil || loc[0] != 0 {
		return nil, 0, false
	}
	names := tpl.matcher.SubexpNames()
	args = make(map[string]string)
	for i, nm := range names {
		if nm == "" {
			continue
		}
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			continue
		}
		args[nm] = path[start:end]
	}
	return args, loc[1], true
}

// Build implements spec.md 4.1's build_path: replay the builder program,
// substituting params, skipping optional groups whose parameters were not
// supplied, and percent-escaping values while preserving '/', ':' and ';'.
func (tpl *Template) Build(params map[string]string, ranges Ranges) (string, error) {
	var out strings.Builder
	used := map[string]bool{}
	if err := buildTokens(tpl.builder, params, ranges, used, &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

func buildTokens(toks []pathToken, params map[string]string, ranges Ranges, used map[string]bool, out *strings.Builder) error {
	for _, tok := range toks {
		switch tok.kind {
		case tokLiteral:
			out.WriteString(tok.literal)
		case tokParam:
			v, ok := params[tok.name]
			if !ok {
				return &ArgumentError{Reason: "missing parameter " + tok.name}
			}
			pattern := ranges[tok.rng]
			re, err := regexp.Compile("^(?:" + pattern + ")$")
			if err != nil || !re.MatchString(v) {
				return &ArgumentError{Reason: "value for " + tok.name + " does not match range " + tok.rng}
			}
			out.WriteString(percentEscapePath(v))
			used[tok.name] = true
		case tokGroup:
			if groupSatisfied(tok.group, params) {
				if err := buildTokens(tok.group, params, ranges, used, out); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// groupSatisfied reports whether an optional group should be emitted: it
// contributes to the URL only if every parameter it *directly* references
// is supplied (spec.md 4.1) — vacuously true for a group that references no
// direct parameters at all, which spec.md 4.1's tie-breaks list as "always
// emitted (not skipped)". A nested subgroup's own satisfiability is not a
// precondition here: buildTokens evaluates nested groups independently,
// once it has already committed to entering this one, so an inner group's
// absence never suppresses an outer group whose own parameter is present —
// matching template2path's per-depth S_SKIP state in
// original_source/.../rhino/mapper.py, where a missing parameter only skips
// its own bracket depth.
func groupSatisfied(toks []pathToken, params map[string]string) bool {
	for _, tok := range toks {
		if tok.kind == tokParam {
			if _, ok := params[tok.name]; !ok {
				return false
			}
		}
	}
	return true
}

// percentEscapePath percent-escapes v for inclusion in a URL path while
// preserving '/', ':' and ';' unescaped (spec.md 4.1: "percent-escaped
// preserving /:;"), matching url.PathEscape everywhere except those three
// reserved characters.
func percentEscapePath(v string) string {
	var b strings.Builder
	for _, r := range v {
		switch r {
		case '/', ':', ';':
			b.WriteRune(r)
		default:
			b.WriteString(url.PathEscape(string(r)))
		}
	}
	return b.String()
}
