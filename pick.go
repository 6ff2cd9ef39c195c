package pointviz

import "cogentcore.org/core/math32"

// PickResult identifies the point under the cursor.
type PickResult struct {
	Cloud *PointCloud
	Index int
}

// minPickRadius is the smallest hit radius in pixels, so tiny sprites
// stay clickable.
const minPickRadius = 4

// pickPoint projects every visible point and returns the one whose
// screen sprite covers (x, y); among hits the closest depth wins, with
// ties going to the smaller cursor distance.
func pickPoint(clouds []*PointCloud, cam *Camera, w, h, x, y float32) (PickResult, bool) {
	var best PickResult
	bestDepth := float32(math32.Infinity)
	bestDist2 := float32(math32.Infinity)
	found := false

	aspect := w / h
	vp := cam.ViewProjection(aspect)
	// Screen radius of a sprite at clip depth d is r * (h/2) * f / d,
	// with f the projection's focal scale. Same formula the scene
	// shader uses for gl_PointSize.
	focal := 1 / math32.Tan(math32.DegToRad(cam.FOV)/2)

	for _, pc := range clouds {
		if !pc.enabled || len(pc.positions) == 0 {
			continue
		}
		var m math32.Matrix4
		m.MulMatrices(vp, &pc.transform)
		for i, p := range pc.positions {
			sx, sy, depth, ok := ProjectPoint(&m, p, w, h)
			if !ok {
				continue
			}
			r := pc.pointRadius * (h / 2) * focal / depth
			if r < minPickRadius {
				r = minPickRadius
			}
			dx, dy := sx-x, sy-y
			dist2 := dx*dx + dy*dy
			if dist2 > r*r {
				continue
			}
			if depth < bestDepth || (depth == bestDepth && dist2 < bestDist2) {
				best = PickResult{Cloud: pc, Index: i}
				bestDepth = depth
				bestDist2 = dist2
				found = true
			}
		}
	}
	return best, found
}
