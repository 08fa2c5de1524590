// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "strings"

// AnimationType 定义奖励动画的类型
//
// The set is closed: every value below NumAnimationTypes must have an entry in
// the animation registry.
type AnimationType int

const (
	AnimationConfetti AnimationType = iota // 彩纸
	AnimationSparkles                      // 闪光
	AnimationFireworks                     // 烟花（先升空再爆炸）
	AnimationHearts                        // 爱心
	AnimationStars                         // 星星
	AnimationEmoji                         // 表情
	AnimationSnow                          // 雪花
	AnimationLeaves                        // 落叶
	AnimationBubbles                       // 气泡
	AnimationCoins                         // 金币
	AnimationBalloons                      // 气球
	AnimationGalaxy                        // 星系

	// NumAnimationTypes 类型数量（必须放在最后）
	NumAnimationTypes
)

var animationTypeNames = [NumAnimationTypes]string{
	AnimationConfetti:  "confetti",
	AnimationSparkles:  "sparkles",
	AnimationFireworks: "fireworks",
	AnimationHearts:    "hearts",
	AnimationStars:     "stars",
	AnimationEmoji:     "emoji",
	AnimationSnow:      "snow",
	AnimationLeaves:    "leaves",
	AnimationBubbles:   "bubbles",
	AnimationCoins:     "coins",
	AnimationBalloons:  "balloons",
	AnimationGalaxy:    "galaxy",
}

// String 返回动画类型的字符串键
func (a AnimationType) String() string {
	if a < 0 || a >= NumAnimationTypes {
		return "unknown"
	}
	return animationTypeNames[a]
}

// Valid reports whether a names a known animation type.
func (a AnimationType) Valid() bool {
	return a >= 0 && a < NumAnimationTypes
}

// ParseAnimationType 将字符串键转换为动画类型（忽略大小写）
func ParseAnimationType(name string) (AnimationType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range animationTypeNames {
		if n == name {
			return AnimationType(i), true
		}
	}
	return -1, false
}

// AllAnimationTypes 返回所有动画类型（按声明顺序）
func AllAnimationTypes() []AnimationType {
	all := make([]AnimationType, 0, NumAnimationTypes)
	for a := AnimationType(0); a < NumAnimationTypes; a++ {
		all = append(all, a)
	}
	return all
}
