package paramerge

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/opendsc/paramerge/ir"
)

// Query evaluates an expr expression against a merged document. The
// document's top-level mapping keys are visible as variables, so
// expressions like `server.port > 1024` work directly.
func Query(doc *ir.Node, expression string) (any, error) {
	env, _ := ir.ToAny(doc).(map[string]any)
	if env == nil {
		env = map[string]any{}
	}
	prg, err := expr.Compile(expression, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling query: %w", err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	return res, nil
}
