package token

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// splitWords splits s into an ordered list of strings honouring sep,
// collapsing leading whitespace, and treating single- and double-quoted
// spans as atomic (quotes are stripped). Empty splits are discarded.
//
// For the default separator (a single space) this delegates to
// mvdan.cc/sh/v3's shell-word lexer, so that quoting behaves exactly like
// a shell would when a command line is typed or pasted in. Non-default
// separators fall back to a small quote-aware manual scanner, since shell
// word-splitting has no notion of an arbitrary separator character.
func splitWords(s string, sep string) []string {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return nil
	}
	if sep == " " {
		if words, ok := splitShellWords(s); ok {
			return words
		}
	}
	return splitManual(s, sep)
}

// splitShellWords parses s as a single shell statement and returns its
// words, with quotes stripped. ok is false if s does not parse as a single
// simple command (e.g. it contains shell operators the grammar engine has no
// business interpreting) — callers fall back to manual splitting.
func splitShellWords(s string) (words []string, ok bool) {
	parser := syntax.NewParser(syntax.KeepComments(false), syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(s), "")
	if err != nil {
		return nil, false
	}
	if len(file.Stmts) != 1 {
		return nil, false
	}
	call, isCall := file.Stmts[0].Cmd.(*syntax.CallExpr)
	if !isCall {
		return nil, false
	}
	printer := syntax.NewPrinter(syntax.Minify(true))
	for _, word := range call.Args {
		words = append(words, wordLiteral(word, printer))
	}
	return words, true
}

// wordLiteral renders a syntax.Word back to the literal string it stands
// for, stripping the quoting syntax rather than preserving it.
func wordLiteral(word *syntax.Word, printer *syntax.Printer) string {
	var sb strings.Builder
	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(p.Value)
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, inner := range p.Parts {
				if lit, isLit := inner.(*syntax.Lit); isLit {
					sb.WriteString(lit.Value)
				} else {
					var buf strings.Builder
					printer.Print(&buf, inner)
					sb.WriteString(buf.String())
				}
			}
		default:
			var buf strings.Builder
			printer.Print(&buf, part)
			sb.WriteString(buf.String())
		}
	}
	return sb.String()
}

// splitManual is a quote-aware scanner for a configurable separator
// character, used whenever sep isn't the shell-default single space.
func splitManual(s string, sep string) []string {
	if sep == "" {
		sep = " "
	}
	sepRune := []rune(sep)[0]
	var out []string
	var cur strings.Builder
	var inSingle, inDouble bool
	has := false
	flush := func() {
		if has {
			out = append(out, cur.String())
			cur.Reset()
			has = false
		}
	}
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inSingle:
			if r == '\'' {
				inSingle = false
			} else {
				cur.WriteRune(r)
			}
		case inDouble:
			if r == '"' {
				inDouble = false
			} else {
				cur.WriteRune(r)
			}
		case r == '\'':
			inSingle = true
			has = true
		case r == '"':
			inDouble = true
			has = true
		case r == sepRune:
			flush()
		default:
			cur.WriteRune(r)
			has = true
		}
	}
	flush()
	return out
}
