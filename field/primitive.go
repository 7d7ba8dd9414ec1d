package field

// primitiveTable holds a fixed primitive polynomial of degree m for each
// supported m. Binary digits are the coefficients, most significant bit =
// x^m. This is a lookup table, not a derivation: the same role a fixed
// modulus constant plays for a single-size field, just carrying one entry
// per m instead of one fixed m.
var primitiveTable = map[int]uint32{
	2:  0b111,
	3:  0b1011,
	4:  0b10011,
	5:  0b100101,
	6:  0b1000011,
	7:  0b10001001,
	8:  0b100011101,
	9:  0b1000010001,
	10: 0b10000001001,
	11: 0b100000000101,
	12: 0b1000001010011,
	13: 0b10000000011011,
	14: 0b100010001000011,
	15: 0b1000000000000011,
	16: 0b10001000000001011,
	17: 0b100000000000001001,
	18: 0b1000000000010000001,
	19: 0b10000000000000100111,
	20: 0b100000000000000001001,
}

// MinM and MaxM bound the m values this package can construct a field for;
// the primitive-polynomial table defines the cap.
const (
	MinM = 2
	MaxM = 20
)

// Primitive returns the fixed primitive polynomial for m, and whether m is
// in the supported range [MinM, MaxM].
func Primitive(m int) (uint32, bool) {
	p, ok := primitiveTable[m]
	return p, ok
}
