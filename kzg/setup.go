// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package kzg

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	gokzg "github.com/protolambda/go-kzg"
	"github.com/protolambda/go-kzg/bls"
)

// ErrInvalidSetup is returned by NewSetup when width is not a usable
// evaluation-domain size for the precomputed root-of-unity table, or when
// the underlying FFT fails to produce a Lagrange basis.
var ErrInvalidSetup = errors.New("kzg: invalid trusted setup parameters")

// maxDomainBits bounds the width this module will generate a setup for,
// matching the size of bls.Scale2RootOfUnity.
const maxDomainBits = 20

// Setup holds a toy KZG trusted setup: the secret is supplied by the
// caller rather than produced by a multi-party ceremony. Width is a
// constructor parameter rather than a baked-in constant, so the same code
// serves any power-of-two tree width.
type Setup struct {
	Width    int
	Lagrange []Point // the Lagrange basis L_0..L_{Width-1} in G1
}

// NewSecret parses a decimal scalar string into a field element, the same
// representation GetKZGConfig uses for its hardcoded secret. The string is
// validated as a base-10 integer before being handed to bls.SetFr, which
// assumes a well-formed input.
func NewSecret(decimal string) (Fr, error) {
	var s Fr
	if _, ok := new(big.Int).SetString(decimal, 10); !ok {
		return s, fmt.Errorf("%w: secret %q is not a valid decimal scalar", ErrInvalidSetup, decimal)
	}
	bls.SetFr(&s, decimal)
	return s, nil
}

// NewSetup builds the G1 powers of secret and converts them to the
// Lagrange basis for an evaluation domain of size width via an inverse
// FFT, following GetKZGConfig/initKZGConfig. width must be a power of two
// that the precomputed root-of-unity table can support.
func NewSetup(width int, secret Fr) (*Setup, error) {
	if width < 4 || width&(width-1) != 0 {
		return nil, fmt.Errorf("%w: width %d is not a power of two >= 4", ErrInvalidSetup, width)
	}
	widthBits := bits.TrailingZeros(uint(width))
	if widthBits > maxDomainBits {
		return nil, fmt.Errorf("%w: width %d exceeds the supported domain size", ErrInvalidSetup, width)
	}

	sPow := bls.ONE
	s1Out := make([]bls.G1Point, width)
	for i := 0; i < width; i++ {
		bls.MulG1(&s1Out[i], &bls.GenG1, &sPow)
		var tmp bls.Fr
		bls.CopyFr(&tmp, &sPow)
		bls.MulModFr(&sPow, &tmp, &secret)
	}

	fftCfg := gokzg.NewFFTSettings(uint8(widthBits))
	lg1, err := fftCfg.FFTG1(s1Out, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}

	return &Setup{Width: width, Lagrange: lg1}, nil
}
