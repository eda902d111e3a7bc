package reorient

// Move tables are generated from the cube's geometry rather than written
// out by hand. Every facelet has a cubie position p in {-1,0,1}^3 and an
// outward normal n. Turning a layer rotates p and n of every facelet in the
// layer by quarter turns about the layer's axis.
//
// Axes: x points to R, y to U, z to F.

type vec [3]int

func (a vec) add(b vec) vec { return vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a vec) sub(b vec) vec { return vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a vec) scale(k int) vec {
	return vec{a[0] * k, a[1] * k, a[2] * k}
}
func (a vec) dot(b vec) int { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// rotate turns v counter-clockwise (viewed from the positive end of the
// axis) by k quarter turns.
func (a vec) rotate(axis, k int) vec {
	k = ((k % 4) + 4) % 4
	for ; k > 0; k-- {
		x, y, z := a[0], a[1], a[2]
		switch axis {
		case 0:
			a = vec{x, -z, y}
		case 1:
			a = vec{z, y, -x}
		case 2:
			a = vec{-y, x, z}
		}
	}
	return a
}

// faceFrame places a face's 3x3 grid in space: facelet (row, col) sits at
// normal + col*(col-1) + row*(row-1).
type faceFrame struct {
	normal, col, row vec
}

var faceFrames = [6]faceFrame{
	CubeFaceU: {normal: vec{0, 1, 0}, col: vec{1, 0, 0}, row: vec{0, 0, 1}},
	CubeFaceD: {normal: vec{0, -1, 0}, col: vec{1, 0, 0}, row: vec{0, 0, -1}},
	CubeFaceF: {normal: vec{0, 0, 1}, col: vec{1, 0, 0}, row: vec{0, -1, 0}},
	CubeFaceB: {normal: vec{0, 0, -1}, col: vec{-1, 0, 0}, row: vec{0, -1, 0}},
	CubeFaceR: {normal: vec{1, 0, 0}, col: vec{0, 0, -1}, row: vec{0, -1, 0}},
	CubeFaceL: {normal: vec{-1, 0, 0}, col: vec{0, 0, 1}, row: vec{0, -1, 0}},
}

func faceletPosition(index int) (pos, normal vec) {
	frame := faceFrames[index/9]
	row, col := (index%9)/3, index%3
	pos = frame.normal.add(frame.col.scale(col - 1)).add(frame.row.scale(row - 1))
	return pos, frame.normal
}

func faceletIndex(pos, normal vec) int {
	for face, frame := range faceFrames {
		if frame.normal != normal {
			continue
		}
		d := pos.sub(normal)
		return face*9 + (d.dot(frame.row)+1)*3 + d.dot(frame.col) + 1
	}
	panic("reorient: facelet normal is not a face normal")
}

// layerGeometry describes which facelets a layer moves and which way a
// clockwise turn goes. sign is -1 when clockwise (looking at the face) is
// clockwise about the positive axis.
type layerGeometry struct {
	axis   int
	sign   int
	inside func(p vec) bool
}

var layerGeometries = [numLayers]layerGeometry{
	LayerR: {0, -1, func(p vec) bool { return p[0] == 1 }},
	LayerL: {0, 1, func(p vec) bool { return p[0] == -1 }},
	LayerU: {1, -1, func(p vec) bool { return p[1] == 1 }},
	LayerD: {1, 1, func(p vec) bool { return p[1] == -1 }},
	LayerF: {2, -1, func(p vec) bool { return p[2] == 1 }},
	LayerB: {2, 1, func(p vec) bool { return p[2] == -1 }},

	LayerRw: {0, -1, func(p vec) bool { return p[0] >= 0 }},
	LayerLw: {0, 1, func(p vec) bool { return p[0] <= 0 }},
	LayerUw: {1, -1, func(p vec) bool { return p[1] >= 0 }},
	LayerDw: {1, 1, func(p vec) bool { return p[1] <= 0 }},
	LayerFw: {2, -1, func(p vec) bool { return p[2] >= 0 }},
	LayerBw: {2, 1, func(p vec) bool { return p[2] <= 0 }},

	LayerX: {0, -1, func(vec) bool { return true }},
	LayerY: {1, -1, func(vec) bool { return true }},
	LayerZ: {2, -1, func(vec) bool { return true }},

	LayerM: {0, 1, func(p vec) bool { return p[0] == 0 }},
	LayerE: {1, 1, func(p vec) bool { return p[1] == 0 }},
	LayerS: {2, -1, func(p vec) bool { return p[2] == 0 }},
}

// moveTables[layer][q][i] is the facelet that lands on facelet i after q
// clockwise quarter turns of layer. q == 0 is the identity.
var moveTables [numLayers][4][54]uint8

func init() {
	for layer, geom := range layerGeometries {
		for q := 0; q < 4; q++ {
			table := &moveTables[layer][q]
			for i := range table {
				table[i] = uint8(i)
			}
			for i := 0; i < 54; i++ {
				pos, normal := faceletPosition(i)
				if !geom.inside(pos) {
					continue
				}
				k := geom.sign * q
				dst := faceletIndex(pos.rotate(geom.axis, k), normal.rotate(geom.axis, k))
				table[dst] = uint8(i)
			}
		}
	}
}
