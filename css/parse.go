package css

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gorilla/css/scanner"
)

// ErrEmptyValue is returned for value text without any value.
var ErrEmptyValue = errors.New("empty CSS value")

// ErrInvalidValue is returned for value text which cannot be parsed.
var ErrInvalidValue = errors.New("invalid CSS value")

// ParseValues parses the value part of a CSS declaration, e.g.
//
//     ParseValues("1px solid #ff0000")
//
// returns a dimension, an identifier and a color.
// Commas separating list items are kept as value Comma.
func ParseValues(text string) ([]Value, error) {
	p := valueParser{s: scanner.New(text), sign: 1}
	values, err := p.parse(false)
	if err != nil {
		tracer().Debugf("cannot parse CSS value %q: %v", text, err)
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptyValue
	}
	return values, nil
}

// MustParseValue parses a single value and panics on failure.
// It is intended for static tables and tests.
func MustParseValue(text string) Value {
	values, err := ParseValues(text)
	if err != nil || len(values) != 1 {
		panic(fmt.Sprintf("not a single CSS value: %q", text))
	}
	return values[0]
}

type valueParser struct {
	s      *scanner.Scanner
	sign   float64
	signed bool
}

func (p *valueParser) invalid(tok *scanner.Token) error {
	return fmt.Errorf("%w: unexpected %q at column %d", ErrInvalidValue, tok.Value, tok.Column)
}

// parse reads values up to EOF or, if inFunc is set, up to the closing
// parenthesis of a function.
func (p *valueParser) parse(inFunc bool) ([]Value, error) {
	var values []Value
	for {
		tok := p.s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if inFunc || p.signed {
				return nil, fmt.Errorf("%w: premature end of value", ErrInvalidValue)
			}
			return values, nil
		case scanner.TokenError:
			return nil, p.invalid(tok)
		case scanner.TokenS, scanner.TokenComment:
			if p.signed {
				return nil, p.invalid(tok)
			}
			continue
		case scanner.TokenChar:
			switch tok.Value {
			case "-":
				if p.signed {
					return nil, p.invalid(tok)
				}
				p.sign, p.signed = -1, true
				continue
			case "+":
				if p.signed {
					return nil, p.invalid(tok)
				}
				p.signed = true
				continue
			case ",", "/":
				values = append(values, Ident(tok.Value))
			case ")":
				if !inFunc {
					return nil, p.invalid(tok)
				}
				return values, nil
			default:
				return nil, p.invalid(tok)
			}
		case scanner.TokenNumber:
			n, err := strconv.ParseFloat(tok.Value, 64)
			if err != nil {
				return nil, p.invalid(tok)
			}
			values = append(values, Number(p.sign*n))
		case scanner.TokenPercentage:
			n, err := strconv.ParseFloat(strings.TrimSuffix(tok.Value, "%"), 64)
			if err != nil {
				return nil, p.invalid(tok)
			}
			values = append(values, Percent(p.sign*n/100))
		case scanner.TokenDimension:
			v, err := parseDimension(tok.Value)
			if err != nil {
				return nil, err
			}
			values = append(values, Dimen(p.sign*v.num, v.unit))
		case scanner.TokenIdent:
			if p.signed {
				return nil, p.invalid(tok)
			}
			values = append(values, Ident(tok.Value))
		case scanner.TokenString:
			values = append(values, String(unquote(tok.Value)))
		case scanner.TokenURI:
			values = append(values, URI(unwrapURI(tok.Value)))
		case scanner.TokenHash:
			c, ok := parseHexColor(tok.Value[1:])
			if !ok {
				return nil, p.invalid(tok)
			}
			values = append(values, c)
		case scanner.TokenFunction:
			c, err := p.function(tok)
			if err != nil {
				return nil, err
			}
			values = append(values, c)
		default:
			return nil, p.invalid(tok)
		}
		p.sign, p.signed = 1, false
	}
}

// function parses the arguments of a functional notation. Only the color
// functions rgb() and rgba() are supported.
func (p *valueParser) function(tok *scanner.Token) (Value, error) {
	name := strings.ToLower(strings.TrimSuffix(tok.Value, "("))
	if name != "rgb" && name != "rgba" {
		return Value{}, fmt.Errorf("%w: unsupported function %s()", ErrInvalidValue, name)
	}
	args, err := p.parse(true)
	if err != nil {
		return Value{}, err
	}
	var channels []Value
	for _, a := range args {
		if a != Comma && !a.IsIdent("/") {
			channels = append(channels, a)
		}
	}
	c, ok := colorFromFunction(channels)
	if !ok {
		return Value{}, fmt.Errorf("%w: malformed %s()", ErrInvalidValue, name)
	}
	return c, nil
}

func parseDimension(s string) (Value, error) {
	i := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || r == '-' || r == '_'
	})
	if i <= 0 {
		return Value{}, fmt.Errorf("%w: malformed dimension %q", ErrInvalidValue, s)
	}
	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: malformed dimension %q", ErrInvalidValue, s)
	}
	unit, ok := ParseUnit(strings.ToLower(s[i:]))
	if !ok {
		return Value{}, fmt.Errorf("%w: unknown unit in %q", ErrInvalidValue, s)
	}
	return Dimen(n, unit), nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, "\\", "")
}

func unwrapURI(s string) string {
	s = strings.TrimSpace(s[len("url(") : len(s)-1])
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') {
		return unquote(s)
	}
	return s
}
