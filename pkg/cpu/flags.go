package cpu

// Flag bit positions within State.Flags. Only the low 5
// bits are meaningful.
const (
	FlagL uint8 = 1 << 0 // signed less-than: S XOR O
	FlagO uint8 = 1 << 1 // signed overflow
	FlagS uint8 = 1 << 2 // sign (bit 7 of result)
	FlagZ uint8 = 1 << 3 // zero
	FlagC uint8 = 1 << 4 // carry/borrow
)

func setBit(flags uint8, bit uint8, set bool) uint8 {
	if set {
		return flags | bit
	}
	return flags &^ bit
}

func bit7(v uint8) bool {
	return v&0x80 != 0
}

// Add computes x+y mod 256 and the full flag set.
func Add(x, y uint8) (result uint8, flags uint8) {
	sum := uint16(x) + uint16(y)
	result = uint8(sum)
	c := sum >= 256
	z := result == 0
	s := bit7(result)
	x7, y7 := bit7(x), bit7(y)
	o := (!x7 && !y7 && s) || (x7 && y7 && !s)
	l := s != o
	flags = packFlags(c, z, s, o, l)
	return result, flags
}

// Sub computes x-y mod 256 and the full flag set. CMP
// is this function with the result discarded.
func Sub(x, y uint8) (result uint8, flags uint8) {
	diff := uint16(x) - uint16(y)
	result = uint8(diff)
	c := x < y // borrow occurred
	z := result == 0
	s := bit7(result)
	x7, y7 := bit7(x), bit7(y)
	o := (!x7 && y7 && s) || (x7 && !y7 && !s)
	l := s != o
	flags = packFlags(c, z, s, o, l)
	return result, flags
}

// Not computes ^x. Clears C and O.
func Not(x uint8) (result uint8, flags uint8) {
	result = ^x
	z := result == 0
	s := bit7(result)
	l := s // L = S XOR O, O is cleared
	flags = packFlags(false, z, s, false, l)
	return result, flags
}

// RShift computes x >> n. Only Z and S are updated; C, O, L are
// retained from prev. n >= 8 yields 0 with Z=1, the natural
// consequence of an 8-bit shift.
func RShift(x, n uint8, prev uint8) (result uint8, flags uint8) {
	if n >= 8 {
		result = 0
	} else {
		result = x >> n
	}
	z := result == 0
	s := bit7(result)
	flags = packFlags(prev&FlagC != 0, z, s, prev&FlagO != 0, prev&FlagL != 0)
	return result, flags
}

// And computes x&y. Only Z and S are updated; C, O, L are retained.
func And(x, y uint8, prev uint8) (result uint8, flags uint8) {
	result = x & y
	z := result == 0
	s := bit7(result)
	flags = packFlags(prev&FlagC != 0, z, s, prev&FlagO != 0, prev&FlagL != 0)
	return result, flags
}

// Or computes x|y. Only Z and S are updated; C, O, L are retained.
func Or(x, y uint8, prev uint8) (result uint8, flags uint8) {
	result = x | y
	z := result == 0
	s := bit7(result)
	flags = packFlags(prev&FlagC != 0, z, s, prev&FlagO != 0, prev&FlagL != 0)
	return result, flags
}

func packFlags(c, z, s, o, l bool) uint8 {
	var f uint8
	f = setBit(f, FlagC, c)
	f = setBit(f, FlagZ, z)
	f = setBit(f, FlagS, s)
	f = setBit(f, FlagO, o)
	f = setBit(f, FlagL, l)
	return f
}
