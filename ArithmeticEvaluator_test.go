package main

import (
	"github.com/stretchr/testify/assert"
	"math/big"
	"sheetsApi/contracts"
	"testing"
)

func TestArithmeticEvaluator_Evaluate(t *testing.T) {
	evaluator := NewArithmeticEvaluator()
	formatter := NewResultFormatter()

	evaluate := func(expression string) (string, error) {
		number, err := evaluator.Evaluate(expression)
		if err != nil {
			return "", err
		}
		return formatter.FormatNumber(number), nil
	}

	t.Run("integers", func(t *testing.T) {
		testCases := map[string]string{
			"1+2":          "3",
			"2*3+4":        "10",
			"2*(3+4)":      "14",
			"1 - 2 - 3":    "-4",
			"   42   ":     "42",
			"000":          "0",
			"99999999999999999999*10": "999999999999999999990",
		}

		for expression, expected := range testCases {
			actual, err := evaluate(expression)
			assert.NoError(t, err, expression)
			assert.Equal(t, expected, actual, expression)
		}
	})

	t.Run("floats", func(t *testing.T) {
		testCases := map[string]string{
			"10.0+5":   "15.0",
			"7/2":      "3.5",
			"4/2":      "2.0",
			"8/4/2":    "1.0",
			"0.1+0.2":  "0.30000000000000004",
			".5+5.":    "5.5",
			"00.5":     "0.5",
			"1e+16":    "1e+16",
			"2.5E-3*2": "0.005",
			"1e308*10": "inf",
		}

		for expression, expected := range testCases {
			actual, err := evaluate(expression)
			assert.NoError(t, err, expression)
			assert.Equal(t, expected, actual, expression)
		}
	})

	t.Run("unary", func(t *testing.T) {
		testCases := map[string]string{
			"-3":       "-3",
			"--3":      "3",
			"+5":       "5",
			"2*-3":     "-6",
			"10--5.0":  "15.0",
			"-(2+3)":   "-5",
			"-2.0*3":   "-6.0",
			"- - - 1":  "-1",
		}

		for expression, expected := range testCases {
			actual, err := evaluate(expression)
			assert.NoError(t, err, expression)
			assert.Equal(t, expected, actual, expression)
		}
	})

	t.Run("division_by_zero", func(t *testing.T) {
		_, err := evaluate("1/0")
		assert.ErrorIs(t, err, contracts.EvaluationError)
		assert.Equal(t, "evaluation error: division by zero", err.Error())

		_, err = evaluate("1.0/0")
		assert.ErrorIs(t, err, contracts.EvaluationError)
		assert.Equal(t, "evaluation error: float division by zero", err.Error())

		_, err = evaluate("1/(2.0-2)")
		assert.ErrorIs(t, err, contracts.EvaluationError)
		assert.Contains(t, err.Error(), "float division by zero")
	})

	t.Run("malformed", func(t *testing.T) {
		testCases := map[string]string{
			"":       "empty expression",
			"   ":    "empty expression",
			"10.0+":  "unexpected end of expression",
			"(1+2":   "'(' was never closed",
			"1+2)":   "unmatched ')'",
			"2 3":    "unexpected '3'",
			"1.2.3":  "invalid decimal literal",
			"1e":     "invalid decimal literal",
			"5a":     "invalid decimal literal",
			"007":    "leading zeros",
			"*2":     "unexpected '*'",
		}

		for expression, expectedMessage := range testCases {
			_, err := evaluate(expression)
			assert.ErrorIs(t, err, contracts.EvaluationError, expression)
			assert.Contains(t, err.Error(), expectedMessage, expression)
		}
	})

	t.Run("non_arithmetic_rejected", func(t *testing.T) {
		for _, expression := range []string{
			"2**3",
			"7//2",
			"7%2",
			"abs(1)",
			"__import__('os').system('id')",
			"1,2",
			"'a'",
			"1 if 1 else 2",
			"1<2",
			"inf+5",
		} {
			_, err := evaluate(expression)
			assert.ErrorIs(t, err, contracts.EvaluationError, expression)
		}
	})
}

func TestNumber_Float64(t *testing.T) {
	value, err := IntegerNumber(big.NewInt(42)).Float64()
	assert.NoError(t, err)
	assert.Equal(t, 42.0, value)

	huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(400), nil)
	_, err = IntegerNumber(huge).Float64()
	assert.Error(t, err)

	value, err = FloatNumber(2.5).Float64()
	assert.NoError(t, err)
	assert.Equal(t, 2.5, value)
}
