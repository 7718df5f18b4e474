package detection

// newBuffer returns an opaque width x height RGBA buffer filled with grey level v.
func newBuffer(width, height int, v uint8) []byte {
	pix := make([]byte, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i] = v
		pix[i+1] = v
		pix[i+2] = v
		pix[i+3] = 255
	}
	return pix
}

// setGrey sets the pixel at (x, y) to grey level v.
func setGrey(pix []byte, width, x, y int, v uint8) {
	off := (y*width + x) * 4
	pix[off] = v
	pix[off+1] = v
	pix[off+2] = v
}

// fillRect sets every pixel in [x1,x2) x [y1,y2) to grey level v.
func fillRect(pix []byte, width, x1, y1, x2, y2 int, v uint8) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			setGrey(pix, width, x, y, v)
		}
	}
}
