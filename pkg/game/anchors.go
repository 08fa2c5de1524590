package game

import "github.com/decker502/rewardfx/pkg/types"

// StaticAnchors 按名称登记的触发元素矩形表
//
// 宿主在布局变化时调用 Set 更新矩形，控制器在每次触发时重新解析，
// 因此元素移动后新的爆发会跟随新位置。已移除的锚点解析失败，
// 对应控制器的 Reward 会直接返回已完成的 Completion。
type StaticAnchors struct {
	rects map[string]types.Rect
	order []string
}

// NewStaticAnchors 创建空的锚点表
func NewStaticAnchors() *StaticAnchors {
	return &StaticAnchors{rects: make(map[string]types.Rect)}
}

// Set 登记或更新锚点矩形
func (a *StaticAnchors) Set(name string, r types.Rect) {
	if _, exists := a.rects[name]; !exists {
		a.order = append(a.order, name)
	}
	a.rects[name] = r
}

// Remove 删除锚点，返回是否存在
func (a *StaticAnchors) Remove(name string) bool {
	if _, exists := a.rects[name]; !exists {
		return false
	}
	delete(a.rects, name)
	for i, n := range a.order {
		if n == name {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

// Resolve 实现 systems.AnchorResolver
func (a *StaticAnchors) Resolve(name string) (types.Rect, bool) {
	r, ok := a.rects[name]
	return r, ok
}

// HitTest 返回包含该点的锚点名称（后登记的优先）
func (a *StaticAnchors) HitTest(x, y float64) (string, bool) {
	for i := len(a.order) - 1; i >= 0; i-- {
		name := a.order[i]
		if a.rects[name].Contains(x, y) {
			return name, true
		}
	}
	return "", false
}

// Names 按登记顺序返回锚点名称
func (a *StaticAnchors) Names() []string {
	return append([]string(nil), a.order...)
}
