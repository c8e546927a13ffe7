package simulation

// topology は境界処理の戦略です。1つのシミュレーションで一貫して使います。
type topology interface {
	// wrap は移動後の座標を空間内に収めます。
	wrap(p Vec2) Vec2
	// displacement は from から to への最短変位を返します。
	displacement(from, to Vec2) Vec2
	// hasWalls は壁衝突イベントを報告するかを返します。
	hasWalls() bool
}

func newTopology(p Params) topology {
	if p.Topology == TopologyBox {
		return box{sizeX: p.SizeX, sizeY: p.SizeY}
	}
	return torus{sizeX: p.SizeX, sizeY: p.SizeY}
}

// torus は端でラップするトーラス空間です。
type torus struct {
	sizeX, sizeY float64
}

func (t torus) wrap(p Vec2) Vec2 {
	return Vec2{X: wrapCoord(p.X, t.sizeX), Y: wrapCoord(p.Y, t.sizeY)}
}

func (t torus) displacement(from, to Vec2) Vec2 {
	return Vec2{
		X: wrapHalf(to.X-from.X, t.sizeX),
		Y: wrapHalf(to.Y-from.Y, t.sizeY),
	}
}

func (t torus) hasWalls() bool { return false }

// box は壁で反射する有界空間です。座標のラップは行いません。
type box struct {
	sizeX, sizeY float64
}

func (b box) wrap(p Vec2) Vec2 { return p }

func (b box) displacement(from, to Vec2) Vec2 {
	return to.Sub(from)
}

func (b box) hasWalls() bool { return true }

// wrapCoord は座標を [0, limit) に1周分だけ折り返します。
func wrapCoord(x, limit float64) float64 {
	if x > limit {
		return x - limit
	}
	if x < 0 {
		return x + limit
	}
	return x
}

// wrapHalf は座標差を [-limit/2, limit/2] の最短符号付き距離に写します。
func wrapHalf(d, limit float64) float64 {
	if d > limit/2 {
		return d - limit
	}
	if d < -limit/2 {
		return d + limit
	}
	return d
}
