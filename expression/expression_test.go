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

package expression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/expression"
)

func TestEvaluate(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		expr  string
		value int64
	}{
		{"10", 10},
		{"0x20ff", 0x20ff},
		{"$20ff", 0x20ff},
		{"$20FF + 1", 0x2100},
		{"0x2000 | (3 << 8)", 0x2300},
		{"256 // 2", 128},
		{"-1", -1},
	}

	for _, entry := range table {
		v, err := expression.Evaluate(entry.expr, nil)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.value, v, entry.expr)
	}
}

func TestSymbols(t *testing.T) {
	v, err := expression.Evaluate("base + x", map[string]int64{"base": 0x20ff, "x": 1})
	assert.NoError(t, err)
	assert.Equal(t, int64(0x2100), v)
}

func TestEvaluateErrors(t *testing.T) {
	for _, expr := range []string{"", "1 +", "'string'", "undefined_name", "1.5"} {
		_, err := expression.Evaluate(expr, nil)
		assert.Error(t, err, expr)
		assert.True(t, curated.Is(err, expression.EvaluationError), expr)
	}
}

func TestRanges(t *testing.T) {
	v16, err := expression.EvaluateUint16("$ffff", nil)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xffff), v16)

	_, err = expression.EvaluateUint16("$10000", nil)
	assert.Error(t, err)

	v8, err := expression.EvaluateUint8("$ff", nil)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xff), v8)

	_, err = expression.EvaluateUint8("256", nil)
	assert.Error(t, err)

	_, err = expression.EvaluateUint8("-1", nil)
	assert.Error(t, err)
}
