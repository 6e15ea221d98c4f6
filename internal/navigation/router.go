// Package navigation 页面栈、底部标签与功能流程协调器
package navigation

import "sync"

// Router 单个导航栈 + 一个模态 sheet 槽位
type Router[S any] struct {
	mu    sync.RWMutex
	path  []S
	sheet *S
}

func NewRouter[S any](initial ...S) *Router[S] {
	r := &Router[S]{}
	r.path = append(r.path, initial...)
	return r
}

// Push 入栈，长度 +1
func (r *Router[S]) Push(s S) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = append(r.path, s)
}

// Pop 出栈，长度 -1；栈为空时返回 false
func (r *Router[S]) Pop() (S, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero S
	if len(r.path) == 0 {
		return zero, false
	}
	top := r.path[len(r.path)-1]
	r.path[len(r.path)-1] = zero
	r.path = r.path[:len(r.path)-1]
	return top, true
}

// Replace 替换栈顶，长度不变；栈为空时等同 Push
func (r *Router[S]) Replace(s S) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.path) == 0 {
		r.path = append(r.path, s)
		return
	}
	r.path[len(r.path)-1] = s
}

// PopToRoot 清空栈
func (r *Router[S]) PopToRoot() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.path)
	r.path = r.path[:0]
}

// SetPath 整体替换栈
func (r *Router[S]) SetPath(screens ...S) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = append(r.path[:0:0], screens...)
}

// Top 栈顶
func (r *Router[S]) Top() (S, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.path) == 0 {
		var zero S
		return zero, false
	}
	return r.path[len(r.path)-1], true
}

// Path 栈副本
func (r *Router[S]) Path() []S {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]S, len(r.path))
	copy(out, r.path)
	return out
}

func (r *Router[S]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.path)
}

// Present 展示模态 sheet，已有 sheet 时替换
func (r *Router[S]) Present(s S) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheet = &s
}

// Dismiss 关闭模态 sheet；没有 sheet 时返回 false
func (r *Router[S]) Dismiss() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sheet == nil {
		return false
	}
	r.sheet = nil
	return true
}

// Sheet 当前模态 sheet
func (r *Router[S]) Sheet() (S, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.sheet == nil {
		var zero S
		return zero, false
	}
	return *r.sheet, true
}
