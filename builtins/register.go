/*
File : curlang/builtins/register.go
*/
package builtins

import "github.com/curlang/curlang/eval"

// RegisterAll installs every reference native into reg: arithmetic,
// control flow and binding, the host-state counter demo, and print.
// cfg may be nil, in which case no renaming/disabling is applied.
func RegisterAll(reg *eval.Registry, cfg *Config) {
	registerArithmetic(reg)
	registerControl(reg)
	registerState(reg)
	registerIO(reg)
	cfg.apply(reg)
}
