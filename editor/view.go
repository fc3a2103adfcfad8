package editor

// view maps between plane coordinates (y up) and canvas pixels (y down).
// originX/originY is the plane coordinate visible at the canvas top-left
// corner; scale is pixels per plane unit.
type view struct {
	initialized bool
	originX     float64
	originY     float64
	scale       float64
	width       float32 // last known canvas size in pixels
	height      float32
}

const (
	minScale = 0.5
	maxScale = 500.0
)

func (v *view) toScreen(x, y float64) (float32, float32) {
	return float32((x - v.originX) * v.scale), float32((v.originY - y) * v.scale)
}

func (v *view) toPlane(sx, sy float32) (float64, float64) {
	return v.originX + float64(sx)/v.scale, v.originY - float64(sy)/v.scale
}

// pan shifts the view by a screen-space delta.
func (v *view) pan(dx, dy float32) {
	v.originX -= float64(dx) / v.scale
	v.originY += float64(dy) / v.scale
}

// zoomAt scales the view by factor, keeping the plane point under the
// given screen position fixed.
func (v *view) zoomAt(sx, sy float32, factor float64) {
	newScale := v.scale * factor
	if newScale < minScale {
		newScale = minScale
	}
	if newScale > maxScale {
		newScale = maxScale
	}
	px, py := v.toPlane(sx, sy)
	v.scale = newScale
	v.originX = px - float64(sx)/newScale
	v.originY = py + float64(sy)/newScale
}

// fit frames the given plane rectangle, centered, as large as the canvas
// allows.
func (v *view) fit(minX, minY, maxX, maxY float64) {
	bw, bh := maxX-minX, maxY-minY
	if bw <= 0 || bh <= 0 || v.width <= 0 || v.height <= 0 {
		return
	}
	v.scale = min(float64(v.width)/bw, float64(v.height)/bh)
	if v.scale > maxScale {
		v.scale = maxScale
	}
	v.originX = minX - (float64(v.width)/v.scale-bw)/2
	v.originY = maxY + (float64(v.height)/v.scale-bh)/2
}

// center returns the plane coordinate at the middle of the canvas. Before
// the first draw the view sits at its default 0..50 extent.
func (v *view) center() (float64, float64) {
	if !v.initialized || v.scale <= 0 {
		return 25, 25
	}
	return v.toPlane(v.width/2, v.height/2)
}
