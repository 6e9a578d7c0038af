package main

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sheetsApi/contracts"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Number is either an arbitrary precision integer or a float64.
// Integer stays integer under + - * and unary minus, division always produces float.
type Number struct {
	integer *big.Int
	float   float64
}

func IntegerNumber(value *big.Int) Number {
	return Number{integer: value}
}

func FloatNumber(value float64) Number {
	return Number{float: value}
}

func (n Number) IsInteger() bool {
	return n.integer != nil
}

func (n Number) Float64() (float64, error) {
	if !n.IsInteger() {
		return n.float, nil
	}

	value, _ := new(big.Float).SetInt(n.integer).Float64()
	if math.IsInf(value, 0) {
		return 0, errors.New("int too large to convert to float")
	}
	return value, nil
}

func (n Number) isZero() bool {
	if n.IsInteger() {
		return n.integer.Sign() == 0
	}
	return n.float == 0
}

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLeftParen
	tokenRightParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// ArithmeticEvaluator evaluates + - * / with parentheses and unary sign over numeric literals.
// Anything else is an evaluation error, nothing is ever executed.
type ArithmeticEvaluator struct{}

func NewArithmeticEvaluator() *ArithmeticEvaluator {
	return &ArithmeticEvaluator{}
}

func (e *ArithmeticEvaluator) Evaluate(expression string) (Number, error) {
	tokens, err := tokenize(expression)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %s", contracts.EvaluationError, err)
	}

	if tokens[0].kind == tokenEOF {
		return Number{}, fmt.Errorf("%w: %s", contracts.EvaluationError, "empty expression")
	}

	parser := &arithmeticParser{tokens: tokens}
	value, err := parser.parseExpression()
	if err == nil && parser.peek().kind != tokenEOF {
		err = parser.unexpected()
	}

	if err != nil {
		return Number{}, fmt.Errorf("%w: %s", contracts.EvaluationError, err)
	}

	return value, nil
}

func tokenize(expression string) ([]token, error) {
	tokens := make([]token, 0, len(expression)/2+1)

	pos := 0
	for pos < len(expression) {
		char := expression[pos]

		switch {
		case char == ' ' || char == '\t' || char == '\n' || char == '\r' || char == '\f':
			pos++

		case isDigit(char) || (char == '.' && pos+1 < len(expression) && isDigit(expression[pos+1])):
			end, err := scanNumber(expression, pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokenNumber, text: expression[pos:end], pos: pos})
			pos = end

		case char == '*' || char == '/':
			if pos+1 < len(expression) && expression[pos+1] == char {
				return nil, fmt.Errorf("unsupported operator '%c%c' at position %d", char, char, pos)
			}
			kind := tokenStar
			if char == '/' {
				kind = tokenSlash
			}
			tokens = append(tokens, token{kind: kind, text: string(char), pos: pos})
			pos++

		case char == '+':
			tokens = append(tokens, token{kind: tokenPlus, text: "+", pos: pos})
			pos++

		case char == '-':
			tokens = append(tokens, token{kind: tokenMinus, text: "-", pos: pos})
			pos++

		case char == '(':
			tokens = append(tokens, token{kind: tokenLeftParen, text: "(", pos: pos})
			pos++

		case char == ')':
			tokens = append(tokens, token{kind: tokenRightParen, text: ")", pos: pos})
			pos++

		default:
			r, _ := utf8.DecodeRuneInString(expression[pos:])
			return nil, fmt.Errorf("unexpected character %q at position %d", r, pos)
		}
	}

	return append(tokens, token{kind: tokenEOF, pos: len(expression)}), nil
}

// scanNumber returns end offset of the numeric literal starting at start: 12, 1.5, .5, 5., 1e3, 2.5E-3
func scanNumber(s string, start int) (int, error) {
	pos := start
	isInteger := true

	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}

	if pos < len(s) && s[pos] == '.' {
		isInteger = false
		pos++
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
	}

	if pos < len(s) && (s[pos] == 'e' || s[pos] == 'E') {
		exponent := pos + 1
		if exponent < len(s) && (s[exponent] == '+' || s[exponent] == '-') {
			exponent++
		}
		if exponent >= len(s) || !isDigit(s[exponent]) {
			return 0, fmt.Errorf("invalid decimal literal at position %d", start)
		}

		isInteger = false
		pos = exponent
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
	}

	if pos < len(s) && (isDigit(s[pos]) || isLetter(s[pos]) || s[pos] == '_' || s[pos] == '.') {
		return 0, fmt.Errorf("invalid decimal literal at position %d", start)
	}

	if isInteger && pos-start > 1 && s[start] == '0' && strings.Trim(s[start:pos], "0") != "" {
		return 0, fmt.Errorf("leading zeros in decimal integer literals are not permitted at position %d", start)
	}

	return pos, nil
}

func isDigit(char byte) bool {
	return char >= '0' && char <= '9'
}

func isLetter(char byte) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}

type arithmeticParser struct {
	tokens []token
	pos    int
}

func (p *arithmeticParser) peek() token {
	return p.tokens[p.pos]
}

func (p *arithmeticParser) next() token {
	current := p.tokens[p.pos]
	if current.kind != tokenEOF {
		p.pos++
	}
	return current
}

func (p *arithmeticParser) unexpected() error {
	current := p.peek()
	switch current.kind {
	case tokenEOF:
		return errors.New("invalid syntax: unexpected end of expression")
	case tokenRightParen:
		return fmt.Errorf("unmatched ')' at position %d", current.pos)
	default:
		return fmt.Errorf("invalid syntax: unexpected '%s' at position %d", current.text, current.pos)
	}
}

// expression := term (("+" | "-") term)*
func (p *arithmeticParser) parseExpression() (Number, error) {
	left, err := p.parseTerm()
	if err != nil {
		return Number{}, err
	}

	for p.peek().kind == tokenPlus || p.peek().kind == tokenMinus {
		operator := p.next().kind
		right, err := p.parseTerm()
		if err != nil {
			return Number{}, err
		}

		left, err = applyOperator(operator, left, right)
		if err != nil {
			return Number{}, err
		}
	}

	return left, nil
}

// term := unary (("*" | "/") unary)*
func (p *arithmeticParser) parseTerm() (Number, error) {
	left, err := p.parseUnary()
	if err != nil {
		return Number{}, err
	}

	for p.peek().kind == tokenStar || p.peek().kind == tokenSlash {
		operator := p.next().kind
		right, err := p.parseUnary()
		if err != nil {
			return Number{}, err
		}

		left, err = applyOperator(operator, left, right)
		if err != nil {
			return Number{}, err
		}
	}

	return left, nil
}

// unary := ("+" | "-") unary | primary
func (p *arithmeticParser) parseUnary() (Number, error) {
	switch p.peek().kind {
	case tokenPlus:
		p.next()
		return p.parseUnary()

	case tokenMinus:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return Number{}, err
		}
		if operand.IsInteger() {
			return IntegerNumber(new(big.Int).Neg(operand.integer)), nil
		}
		return FloatNumber(-operand.float), nil
	}

	return p.parsePrimary()
}

// primary := NUMBER | "(" expression ")"
func (p *arithmeticParser) parsePrimary() (Number, error) {
	current := p.peek()

	switch current.kind {
	case tokenNumber:
		p.next()
		return parseNumberLiteral(current)

	case tokenLeftParen:
		p.next()
		value, err := p.parseExpression()
		if err != nil {
			return Number{}, err
		}

		switch p.peek().kind {
		case tokenRightParen:
			p.next()
			return value, nil
		case tokenEOF:
			return Number{}, fmt.Errorf("'(' was never closed at position %d", current.pos)
		default:
			return Number{}, p.unexpected()
		}
	}

	return Number{}, p.unexpected()
}

func parseNumberLiteral(literal token) (Number, error) {
	if !strings.ContainsAny(literal.text, ".eE") {
		value, ok := new(big.Int).SetString(literal.text, 10)
		if !ok {
			return Number{}, fmt.Errorf("invalid decimal literal at position %d", literal.pos)
		}
		return IntegerNumber(value), nil
	}

	// out of range literals become inf or 0, same as float arithmetic overflow
	value, err := strconv.ParseFloat(literal.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Number{}, fmt.Errorf("invalid decimal literal at position %d", literal.pos)
	}
	return FloatNumber(value), nil
}

func applyOperator(operator tokenKind, left Number, right Number) (Number, error) {
	bothIntegers := left.IsInteger() && right.IsInteger()

	if operator == tokenSlash {
		if right.isZero() {
			if bothIntegers {
				return Number{}, errors.New("division by zero")
			}
			return Number{}, errors.New("float division by zero")
		}

		if bothIntegers {
			quotient, _ := new(big.Rat).SetFrac(left.integer, right.integer).Float64()
			if math.IsInf(quotient, 0) {
				return Number{}, errors.New("integer division result too large for a float")
			}
			return FloatNumber(quotient), nil
		}
	}

	if bothIntegers {
		switch operator {
		case tokenPlus:
			return IntegerNumber(new(big.Int).Add(left.integer, right.integer)), nil
		case tokenMinus:
			return IntegerNumber(new(big.Int).Sub(left.integer, right.integer)), nil
		case tokenStar:
			return IntegerNumber(new(big.Int).Mul(left.integer, right.integer)), nil
		}
	}

	x, err := left.Float64()
	if err != nil {
		return Number{}, err
	}
	y, err := right.Float64()
	if err != nil {
		return Number{}, err
	}

	switch operator {
	case tokenPlus:
		return FloatNumber(x + y), nil
	case tokenMinus:
		return FloatNumber(x - y), nil
	case tokenStar:
		return FloatNumber(x * y), nil
	case tokenSlash:
		return FloatNumber(x / y), nil
	}

	return Number{}, fmt.Errorf("unsupported operator %d", operator)
}
