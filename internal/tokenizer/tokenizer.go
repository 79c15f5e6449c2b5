package tokenizer

import (
	"fmt"
	"os"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/neonlang/strscan/internal/interp"
)

// Token kinds the driver produces itself, on top of the scanner's
// content/interpolation kinds. Escapes and quotes belong to the grammar,
// not the scanner; the expression between "${" and "}" is lexed by the
// expression grammar, which this reference driver stands in for.
const (
	KindQuote      = "quote"
	KindEscape     = "escape"
	KindExpression = "expression"
)

var tokenizerDebugLog = false

func init() {
	if v, err := strconv.ParseBool(os.Getenv("NEON_STRSCAN_DEBUG")); v && err == nil {
		tokenizerDebugLog = true
	}
}

type Token struct {
	Kind string `json:"kind" mapstructure:"kind"`
	Text string `json:"text" mapstructure:"text"`
}

type Result struct {
	Tokens       []Token `json:"tokens"`
	Unterminated bool    `json:"unterminated,omitempty"`
}

// TokenizeLiteral tokenizes one complete double-quoted string literal,
// driving the interpolation scanner at each position with the kinds the
// grammar would accept there. It is the reference host loop used by the
// CLI and the corpus runner; a real parsing engine drives the scanner
// the same way, one token per call.
func TokenizeLiteral(source string) (*Result, error) {
	cur := interp.NewCursor(source)
	sess := interp.NewSession()
	defer func() { sess.Close() }()

	if cur.Lookahead() != '"' {
		return nil, fmt.Errorf("string literal must begin with a quote, got %q", source)
	}

	res := &Result{}
	take := func(kind string) {
		text, _, _ := cur.Take()
		res.Tokens = append(res.Tokens, Token{Kind: kind, Text: text})
	}

	cur.Advance(false)
	cur.MarkEnd()
	take(KindQuote)

	outside := interp.NewKindSet(interp.Content, interp.InterpolationStart)
	for {
		switch la := cur.Lookahead(); {
		case la == interp.EOF:
			res.Unterminated = true
			return finish(res)

		case la == '"':
			cur.Advance(false)
			cur.MarkEnd()
			take(KindQuote)
			return finish(res)

		case la == '\\':
			cur.Advance(false)
			if cur.Lookahead() == interp.EOF {
				cur.MarkEnd()
				take(KindEscape)
				res.Unterminated = true
				return finish(res)
			}
			cur.Advance(false)
			cur.MarkEnd()
			take(KindEscape)

		case sess.Scan(cur, outside):
			kind, _ := cur.Result()
			take(kind.String())
			if kind != interp.InterpolationStart {
				continue
			}

			// The embedded expression is lexed by other grammar rules, so
			// the engine may detach here and reattach after an edit.
			// Snapshot and restore across the hand-off the way it would.
			snapshot, err := sess.Serialize()
			if err != nil {
				return nil, fmt.Errorf("sess.Serialize: %w", err)
			}
			sess.Close()
			sess = interp.NewSession()
			if err := sess.Deserialize(snapshot); err != nil {
				return nil, fmt.Errorf("sess.Deserialize: %w", err)
			}

			for cur.Lookahead() != '}' && cur.Lookahead() != interp.EOF {
				cur.Advance(false)
			}
			cur.MarkEnd()
			if text, _, _ := cur.Take(); text != "" {
				res.Tokens = append(res.Tokens, Token{Kind: KindExpression, Text: text})
			}
			if cur.Lookahead() == interp.EOF {
				res.Unterminated = true
				return finish(res)
			}
			if !sess.Scan(cur, interp.NewKindSet(interp.InterpolationEnd)) {
				return nil, fmt.Errorf("interpolation close did not match at offset %d", cur.Pos())
			}
			take(interp.InterpolationEnd.String())

		default:
			return nil, fmt.Errorf("no token recognized at offset %d", cur.Pos())
		}
	}
}

func finish(res *Result) (*Result, error) {
	if tokenizerDebugLog {
		pp.Println(res)
	}
	return res, nil
}
