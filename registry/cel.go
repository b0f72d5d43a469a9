package registry

import (
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/farmlogix/compliance"
)

// Gap expressions are evaluated against a single variable, `data`, bound to
// the domain blob. An expression yields a string hint; the empty string (or
// any non-string result) means the requirement is satisfied.
var (
	celEnvOnce sync.Once
	celEnv     *cel.Env
	celEnvErr  error
)

func gapEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("data", cel.MapType(cel.StringType, cel.DynType)),
		)
	})
	return celEnv, celEnvErr
}

// CompileDetector compiles a CEL gap expression into a GapDetector. The
// expression sees the domain blob as `data` and should produce a remediation
// hint string, or an empty string when the requirement is satisfied:
//
//	has(data.audits) && data.audits.quarters_completed < 4
//	    ? string(data.audits.quarters_completed) + " of 4 quarterly audits completed"
//	    : ""
//
// Compilation failures are reported at catalog-construction time; evaluation
// failures at render time fail open (no hint).
func CompileDetector(expr string) (GapDetector, error) {
	const op = "registry.CompileDetector"

	env, err := gapEnv()
	if err != nil {
		return nil, compliance.NewConfigurationError(op, err)
	}

	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, compliance.NewConfigurationError(op, compliance.ErrInvalidExpression).
			WithContext(map[string]any{"expression": expr, "issues": iss.Err().Error()})
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, compliance.NewConfigurationError(op, err)
	}

	return func(data Blob) string {
		out, _, err := prg.Eval(map[string]any{
			"data": map[string]any(data),
		})
		if err != nil {
			// Missing fields, type mismatches: the rule does not fire.
			return ""
		}
		if hint, ok := out.Value().(string); ok {
			return hint
		}
		return ""
	}, nil
}
