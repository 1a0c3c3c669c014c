package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"fulano-assistant/internal/agent"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
)

// CalculateTool evaluates plain arithmetic. Anything other than digits,
// operators and parentheses is stripped before evaluation.
type CalculateTool struct {
	extract ExpressionExtractor
	timeout time.Duration
}

func NewCalculateTool(timeout time.Duration) *CalculateTool {
	return &CalculateTool{timeout: timeout}
}

func (t *CalculateTool) Name() agent.ToolName {
	return NameCalculate
}

func (t *CalculateTool) Description() string {
	return "Resuelve una operación aritmética con + - * / y paréntesis, por ejemplo '3 + 4 * 2'."
}

func (t *CalculateTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"expression": map[string]interface{}{
				"type":        "string",
				"description": "Arithmetic expression using digits, + - * / and parentheses",
				"minLength":   1,
			},
		},
		"required": []string{"expression"},
	}
}

func (t *CalculateTool) Timeout() time.Duration {
	return t.timeout
}

type CalculateInput struct {
	Expression string `json:"expression"`
}

func (t *CalculateTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input CalculateInput
	if err := agent.DecodeArgs(params, &input); err != nil {
		return nil, err
	}

	value, cleaned, err := t.Evaluate(input.Expression)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"expression": cleaned,
		"result":     FormatNumber(value),
	}, nil
}

// Evaluate sanitizes and evaluates text, returning the value and the expression actually evaluated.
func (t *CalculateTool) Evaluate(text string) (float64, string, error) {
	cleaned, ok := t.extract.Extract(text)
	if !ok {
		return 0, "", ErrEmptyExpression
	}

	program, err := expr.Compile(cleaned, expr.Patch(floatLiterals{}), expr.AsFloat64())
	if err != nil {
		return 0, cleaned, fmt.Errorf("invalid expression %q: %w", cleaned, err)
	}
	out, err := expr.Run(program, nil)
	if err != nil {
		return 0, cleaned, fmt.Errorf("evaluate %q: %w", cleaned, err)
	}

	value, ok := out.(float64)
	if !ok {
		return 0, cleaned, fmt.Errorf("evaluate %q: unexpected result type %T", cleaned, out)
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, cleaned, ErrNonFiniteResult
	}
	return value, cleaned, nil
}

// floatLiterals rewrites integer literals as floats so integer arithmetic cannot wrap around.
type floatLiterals struct{}

func (floatLiterals) Visit(node *ast.Node) {
	if n, ok := (*node).(*ast.IntegerNode); ok {
		ast.Patch(node, &ast.FloatNode{Value: float64(n.Value)})
	}
}

// FormatNumber renders integral values without a decimal part.
// Values past exactFloatLimit use exponent notation so no false digits are shown.
func FormatNumber(v float64) string {
	if math.Abs(v) >= exactFloatLimit {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var _ agent.Tool = (*CalculateTool)(nil)
