package bar

// Layout converts the measured sizes of all modules, in display order, into
// final bounds within a strip of the given width and height. The host owns
// layout policy; the bar only guarantees it measures before it draws.
type Layout func(sizes []Size, width, height int) []Bounds

// LeftPack returns the default layout: modules packed left-to-right with a
// fixed gap between them, vertically centered in the strip.
func LeftPack(gap int) Layout {
	if gap < 0 {
		gap = 0
	}
	return func(sizes []Size, width, height int) []Bounds {
		bounds := make([]Bounds, len(sizes))
		x := 0
		for i, size := range sizes {
			y := (height - size.Height) / 2
			if y < 0 {
				y = 0
			}
			bounds[i] = Bounds{X: x, Y: y, Width: size.Width, Height: size.Height}
			x += size.Width + gap
		}
		return bounds
	}
}
