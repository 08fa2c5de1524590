package types

import "strings"

// RadialPattern 定义径向爆发的初速度分布方式
type RadialPattern int

const (
	RadialCircular RadialPattern = iota // 均匀环形
	RadialCone                          // 向上锥形
	RadialRandom                        // 随机方向
	RadialSpiral                        // 螺旋（飞行中持续转向）
	RadialVortex                        // 漩涡（向中心牵引）
	RadialPinwheel                      // 风车（旋转臂 + 切向推力）
)

var radialPatternNames = map[RadialPattern]string{
	RadialCircular: "circular",
	RadialCone:     "cone",
	RadialRandom:   "random",
	RadialSpiral:   "spiral",
	RadialVortex:   "vortex",
	RadialPinwheel: "pinwheel",
}

func (r RadialPattern) String() string {
	if name, ok := radialPatternNames[r]; ok {
		return name
	}
	return "unknown"
}

// Steered reports whether the pattern keeps re-steering particles mid-flight.
func (r RadialPattern) Steered() bool {
	return r == RadialSpiral || r == RadialVortex || r == RadialPinwheel
}

// ParseRadialPattern 解析径向模式名称；空字符串视为 circular
func ParseRadialPattern(name string) (RadialPattern, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return RadialCircular, true
	}
	for p, n := range radialPatternNames {
		if n == name {
			return p, true
		}
	}
	return RadialCircular, false
}
