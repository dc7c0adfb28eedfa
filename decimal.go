package graphmarshal

// BigNumber is an arbitrary-precision decimal value, the node kind
// spec.md §3 leaves as an open extension point ("the source does not
// specify the encoding of ... BigInt primitives"). It is grounded in the
// teacher's own choice of math/big for Python's arbitrary-precision long
// (see ogorek.go's loadLong/loadLong1 and encode.go's encodeLong), widened
// from *big.Int to *big.Rat so fractional decimals round-trip exactly.

import (
	"fmt"
	"math/big"
)

// BigNumber wraps an arbitrary-precision decimal value.
type BigNumber struct {
	rat *big.Rat
}

// NewBigNumber parses decimal (e.g. "3.14159", "-42", "1e9") into a
// BigNumber. A "num/den" fraction such as "1/3" is accepted as well. It
// returns an error if decimal is neither a valid decimal literal nor a
// valid fraction.
func NewBigNumber(decimal string) (*BigNumber, error) {
	r, ok := new(big.Rat).SetString(decimal)
	if !ok {
		return nil, fmt.Errorf("graphmarshal: invalid decimal literal %q", decimal)
	}
	return &BigNumber{rat: r}, nil
}

// NewBigNumberFromRat wraps r as a BigNumber.
func NewBigNumberFromRat(r *big.Rat) *BigNumber {
	return &BigNumber{rat: new(big.Rat).Set(r)}
}

// Rat returns the underlying rational value.
func (b *BigNumber) Rat() *big.Rat {
	return new(big.Rat).Set(b.rat)
}

// String returns the canonical decimal literal form used on the wire: the
// shortest decimal representation that round-trips exactly when the
// denominator is a power of ten, and a fraction form ("num/den") otherwise.
func (b *BigNumber) String() string {
	if b.rat.IsInt() {
		return b.rat.Num().String()
	}
	// The value has a finite decimal expansion exactly when its reduced
	// denominator is 2^a·5^b; max(a, b) fractional digits then suffice.
	den := new(big.Int).Set(b.rat.Denom())
	twos := int(den.TrailingZeroBits())
	den.Rsh(den, uint(twos))
	fives := 0
	five, q, r := big.NewInt(5), new(big.Int), new(big.Int)
	for {
		q.QuoRem(den, five, r)
		if r.Sign() != 0 {
			break
		}
		den.Set(q)
		fives++
	}
	if den.IsInt64() && den.Int64() == 1 {
		return b.rat.FloatString(max(twos, fives))
	}
	return b.rat.RatString()
}

// decimalNode returns the Node.Decimal field value for b.
func (b *BigNumber) decimalNode() string {
	return b.String()
}

// parseBigNumberNode reconstructs a BigNumber from a Node.Decimal field,
// accepting either plain decimal literals or the "num/den" fraction form
// String can produce.
func parseBigNumberNode(decimal string) (*BigNumber, error) {
	r, ok := new(big.Rat).SetString(decimal)
	if !ok {
		return nil, fmt.Errorf("graphmarshal: invalid decimal literal %q", decimal)
	}
	return &BigNumber{rat: r}, nil
}
