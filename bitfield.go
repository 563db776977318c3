package chiptrack

// ReadField returns the index:th unsigned field of the given bit width from
// buf. Fields are packed back to back starting from the least significant
// bit of buf[0], i.e. little endian bit and byte order. Fields that do not
// fit in buf read as 0.
func ReadField(buf []byte, width, index int) int {
	if width <= 0 || index < 0 {
		return 0
	}
	offset := index * width
	if offset+width > len(buf)*8 {
		return 0
	}
	ret := 0
	for i := 0; i < width; i++ {
		bit := offset + i
		if buf[bit>>3]&(1<<(bit&7)) != 0 {
			ret |= 1 << i
		}
	}
	return ret
}

// WriteField stores the lowest width bits of value as the index:th field of
// buf, leaving all the other bits untouched. It is the inverse of
// ReadField. Writes outside buf are ignored and reported by returning false.
func WriteField(buf []byte, width, index, value int) bool {
	if width <= 0 || index < 0 {
		return false
	}
	offset := index * width
	if offset+width > len(buf)*8 {
		return false
	}
	for i := 0; i < width; i++ {
		bit := offset + i
		if value&(1<<i) != 0 {
			buf[bit>>3] |= 1 << (bit & 7)
		} else {
			buf[bit>>3] &^= 1 << (bit & 7)
		}
	}
	return true
}
