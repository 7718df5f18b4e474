package detection

// Greyscale returns the mean of the R, G and B bytes at pix[off:off+3],
// truncated and clamped to 255. Alpha is ignored.
func Greyscale(pix []byte, off int) uint8 {
	sum := uint32(pix[off]) + uint32(pix[off+1]) + uint32(pix[off+2])
	v := sum / 3
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// SaturatingSub subtracts the background estimate from v, flooring at zero.
func SaturatingSub(v, median uint8) uint8 {
	if v < median {
		return 0
	}
	return v - median
}
