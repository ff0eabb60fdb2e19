// This file is part of m6502.
//
// m6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m6502.  If not, see <https://www.gnu.org/licenses/>.

package expression

import (
	"fmt"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/jetsetilly/m6502/curated"
)

// Sentinel error returned by Evaluate(). The values are the expression and
// the reason for failure.
const EvaluationError = "expression: %s: %v"

// matches 6502 assembler style hex numbers
var assemblerHex = regexp.MustCompile(`\$([0-9a-fA-F]+)`)

// the name of the variable the result is assigned to during evaluation
const result = "rc"

// Evaluate returns the integer value of the expression. The symbols map can be
// nil.
func Evaluate(expr string, symbols map[string]int64) (int64, error) {
	prog := fmt.Sprintf("%s = %s\n", result, assemblerHex.ReplaceAllString(expr, "0x$1"))

	pred := starlark.StringDict{}
	for k, v := range symbols {
		pred[k] = starlark.MakeInt64(v)
	}

	thread := &starlark.Thread{Name: "expression"}
	opts := syntax.FileOptions{}
	dict, err := starlark.ExecFileOptions(&opts, thread, "expression", prog, pred)
	if err != nil {
		return 0, curated.Errorf(EvaluationError, expr, err)
	}

	v, ok := dict[result]
	if !ok {
		return 0, curated.Errorf(EvaluationError, expr, "no result")
	}

	i, ok := v.(starlark.Int)
	if !ok {
		return 0, curated.Errorf(EvaluationError, expr, fmt.Sprintf("not an integer (%s)", v.Type()))
	}

	n, ok := i.Int64()
	if !ok {
		return 0, curated.Errorf(EvaluationError, expr, "integer too large")
	}

	return n, nil
}

// EvaluateUint16 is a convenience function that evaluates the expression and
// checks that it fits in sixteen bits.
func EvaluateUint16(expr string, symbols map[string]int64) (uint16, error) {
	n, err := Evaluate(expr, symbols)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 0xffff {
		return 0, curated.Errorf(EvaluationError, expr, fmt.Sprintf("out of range for 16 bits (%d)", n))
	}
	return uint16(n), nil
}

// EvaluateUint8 is a convenience function that evaluates the expression and
// checks that it fits in eight bits.
func EvaluateUint8(expr string, symbols map[string]int64) (uint8, error) {
	n, err := Evaluate(expr, symbols)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 0xff {
		return 0, curated.Errorf(EvaluationError, expr, fmt.Sprintf("out of range for 8 bits (%d)", n))
	}
	return uint8(n), nil
}
