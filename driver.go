// driver.go — file mode and line mode execution (spec §6 "Driver").
//
// File mode parses the whole source once, evaluates it top to bottom, and
// exits; line mode (the REPL) evaluates statement by statement against a
// persistent Global environment, buffering input until a complete statement
// is available. Grounded on the teacher's cmd/msg/main.go: `readByParseProbe`
// supplies the exact "keep reading while the parse looks incomplete" idiom,
// adapted from MindScript's S-expression completeness check to Sol's own
// (an unterminated string, EOF reached mid-expression, or no closing
// period yet).
package sol

import (
	"strings"
)

// shebangStrip removes a leading "#!" line, matching the teacher's own
// file-reading path and spec §6's note that file mode skips a shebang line.
func shebangStrip(src string) string {
	if strings.HasPrefix(src, "#!") {
		if i := strings.IndexByte(src, '\n'); i >= 0 {
			return src[i+1:]
		}
		return ""
	}
	return src
}

// RunFile evaluates src (the contents of a .sol file) once against a fresh
// interpreter, returning the final statement's value or the first error.
func RunFile(src string) (Value, error) {
	in := NewInterpreter()
	return in.EvalSource(shebangStrip(src))
}

// IsIncomplete reports whether err looks like "more input is needed to
// finish this statement" rather than a genuine syntax error: an unterminated
// string/fstring, or the parser hitting end-of-input while still expecting
// a closing token. The REPL uses this to decide whether to keep reading
// lines into the same buffer before reporting a failure.
func IsIncomplete(err error) bool {
	se, ok := err.(*SolError)
	if !ok {
		return false
	}
	switch se.Kind {
	case LexErrorKind:
		return strings.Contains(se.Msg, "unterminated string")
	case ParseErrorK:
		// The EOF token's Lexeme is always "": a parse error that cites it
		// means the statement ran out of input before closing, not that it
		// hit unexpected syntax.
		return strings.Contains(se.Msg, `found ""`)
	default:
		return false
	}
}

// LineReader is satisfied by the REPL's line-editing backend (liner.State
// in cmd/sol); kept narrow so driver.go doesn't import liner directly.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// ReadStatement reads lines from lr, starting with prompt and switching to
// cont for continuation lines, until the buffer parses and ends with a
// statement period, or ParseProgram reports an error that is not an
// incomplete-input one. io.EOF (surfaced by LineReader as an error whose
// message callers recognize) ends the loop with ok=false; any other reader
// error (such as a Ctrl+C abort) discards the buffer and returns "".
func ReadStatement(lr LineReader, prompt, cont string, isEOF func(error) bool) (string, bool) {
	var b strings.Builder
	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = lr.Prompt(prompt)
		} else {
			line, err = lr.Prompt(cont)
		}
		if err != nil {
			if isEOF(err) {
				return "", false
			}
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			return src, true
		}
		_, perr := ParseProgram(src)
		if perr == nil {
			if toks, _ := NewLexer(src).Scan(); len(toks) < 2 || toks[len(toks)-2].Type != DOT {
				continue
			}
			return src, true
		}
		if IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
