/*
File : curlang/builtins/io.go
*/
package builtins

import (
	"fmt"

	"github.com/curlang/curlang/eval"
	"github.com/curlang/curlang/values"
)

// FormatValue renders a Value for display — used by "print" and by the
// repl/cmd drivers when showing a top-level result.
func FormatValue(v values.Value) string {
	switch x := v.(type) {
	case values.Num:
		return fmt.Sprintf("%d", uint64(x))
	case values.Fun:
		if x.Closure.Kind == values.KindNative {
			return fmt.Sprintf("<native %s/%d>", x.Closure.Name, x.Closure.Arity)
		}
		return fmt.Sprintf("<func/%d bound=%d>", len(x.Closure.Lambda.Params), len(x.Closure.AccumulatedArgs))
	default:
		return "<?>"
	}
}

// registerIO installs "print", which writes its argument to the
// evaluator's output writer and returns it unchanged so it can appear
// mid-expression without disturbing the surrounding computation.
func registerIO(reg *eval.Registry) {
	reg.RegisterNative("print", 1, func(rt any, args []values.Value) (values.Value, error) {
		e := rt.(*eval.Evaluator)
		fmt.Fprintln(e.Out, FormatValue(args[0]))
		return args[0], nil
	})
}
