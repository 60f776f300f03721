package hocr

// Rescale maps every coordinate in the index from the OCR engine's working
// resolution (scaledW x scaledH) back to the capture resolution
// (origW x origH). Each axis scales independently and values truncate
// toward zero. Scaling by equal dimensions is the identity on whole-pixel
// coordinates.
func Rescale(index WordIndex, scaledW, scaledH, origW, origH int) WordIndex {
	sw, sh := float64(scaledW), float64(scaledH)
	ow, oh := float64(origW), float64(origH)

	out := make(WordIndex, len(index))
	for word, appearances := range index {
		scaled := make([]Appearance, len(appearances))
		for i, a := range appearances {
			scaled[i] = Appearance{
				ID: a.ID,
				Center: Point{
					X: float64(int(a.Center.X / sw * ow)),
					Y: float64(int(a.Center.Y / sh * oh)),
				},
				Box: Box{
					Left:   int(float64(a.Box.Left) / sw * ow),
					Top:    int(float64(a.Box.Top) / sh * oh),
					Right:  int(float64(a.Box.Right) / sw * ow),
					Bottom: int(float64(a.Box.Bottom) / sh * oh),
				},
			}
		}
		out[word] = scaled
	}
	return out
}
