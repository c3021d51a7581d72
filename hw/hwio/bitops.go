package hwio

// 16-bit operations
func GetBit16(v uint16, n uint) bool {
	return GetBiti16(v, n) != 0
}

func GetBiti16(v uint16, n uint) uint16 {
	return v >> (n) & 0x01
}

func ClearBits16(v *uint16, mask uint16) {
	*v &= ^mask
}

// SetBits16 sets (or clears, if on is false) the bits of v selected by mask.
func SetBits16(v *uint16, mask uint16, on bool) {
	if on {
		*v |= mask
	} else {
		*v &^= mask
	}
}
