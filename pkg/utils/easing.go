package utils

import (
	"math"
	"strings"
)

// Easing 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的进度
//
// 粒子渲染器用它塑造尺寸增长曲线，演示场景用它做按钮按下反馈。
type Easing func(t float64) float64

// EaseLinear 线性（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutBack 缓出并轻微越过终点后回弹（按钮弹出）
// 公式：f(t) = 1 + c3(t-1)³ + c1(t-1)²，c1 = 1.70158，c3 = c1 + 1
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

var easings = map[string]Easing{
	"linear":     EaseLinear,
	"outcubic":   EaseOutCubic,
	"incubic":    EaseInCubic,
	"inoutcubic": EaseInOutCubic,
	"outback":    EaseOutBack,
}

// EasingByName 按名称查找缓动函数（忽略大小写和连字符），未知名称返回线性
func EasingByName(name string) (Easing, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, "-", ""))
	if e, ok := easings[key]; ok {
		return e, true
	}
	return EaseLinear, false
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 v 限制在 [0, 1]
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
