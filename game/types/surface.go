package types

// Surface is anything tiles can be painted on
type Surface interface {
	Clear(region Rect)
	FillRect(x, y, w, h int, c Color)
}
