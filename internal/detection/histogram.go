package detection

// histSet is a counting histogram over 8-bit intensities.
//
// count always equals the sum of data. decr must only be called for a bin
// that currently holds at least one sample.
type histSet struct {
	data  [256]uint32
	count uint32
}

func (h *histSet) incr(bin uint8) {
	h.data[bin]++
	h.count++
}

func (h *histSet) decr(bin uint8) {
	h.data[bin]--
	h.count--
}

// median returns the lower median: the smallest bin i for which twice the
// cumulative count through i reaches count. An empty histogram yields 0.
func (h *histSet) median() uint8 {
	var cum uint32
	for i := 0; i < len(h.data); i++ {
		cum += h.data[i]
		if 2*cum >= h.count {
			return uint8(i)
		}
	}
	return 255
}
