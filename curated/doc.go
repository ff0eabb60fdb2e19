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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages declare their
// patterns as exported constants and callers test for them with the Is()
// function:
//
//	const UnimplementedOpcode = "cpu: unimplemented opcode (%#02x)"
//
//	err := curated.Errorf(UnimplementedOpcode, 0x02)
//	if curated.Is(err, UnimplementedOpcode) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(UnimplementedOpcode, 0x02)
//	f := curated.Errorf("dispatch: %v", e)
//
//	if curated.Has(f, UnimplementedOpcode) {
//		fmt.Println("true")
//	}
//
// In this example, a call to Is(f, UnimplementedOpcode) would return false
// because f was created with the pattern "dispatch: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference as being
// 'expected' and 'unexpected' errors.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This alleviates the problem of when and how to
// wrap errors. For example, this chain:
//
//	instructions: instructions: malformed metadata: unknown mode (Zero Pg)
//
// is printed as:
//
//	instructions: malformed metadata: unknown mode (Zero Pg)
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': '.
//
// Curated errors also work with the standard errors package. The first value
// that is itself an error is returned by Unwrap(), so errors.Is() and
// errors.As() can see through a curated error to the error it wraps.
package curated
