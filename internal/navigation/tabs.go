package navigation

import "sync"

// TabManager 每个标签持有独立的导航栈
type TabManager[T comparable, S any] struct {
	mu       sync.RWMutex
	order    []T
	routers  map[T]*Router[S]
	selected T
}

// NewTabManager 第一个标签默认选中
func NewTabManager[T comparable, S any](tabs ...T) *TabManager[T, S] {
	m := &TabManager[T, S]{
		order:   append([]T(nil), tabs...),
		routers: make(map[T]*Router[S], len(tabs)),
	}
	for _, t := range tabs {
		m.routers[t] = NewRouter[S]()
	}
	if len(tabs) > 0 {
		m.selected = tabs[0]
	}
	return m
}

// Select 切换标签；重复选中当前标签时该标签回到根页面。未知标签返回 false
func (m *TabManager[T, S]) Select(tab T) bool {
	m.mu.Lock()
	r, ok := m.routers[tab]
	if !ok {
		m.mu.Unlock()
		return false
	}
	reselect := m.selected == tab
	m.selected = tab
	m.mu.Unlock()

	if reselect {
		r.PopToRoot()
	}
	return true
}

func (m *TabManager[T, S]) Selected() T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selected
}

// Router 指定标签的导航栈，未知标签返回 nil
func (m *TabManager[T, S]) Router(tab T) *Router[S] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.routers[tab]
}

// Current 当前标签的导航栈
func (m *TabManager[T, S]) Current() *Router[S] {
	return m.Router(m.Selected())
}

func (m *TabManager[T, S]) Tabs() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]T(nil), m.order...)
}

// Next 循环切到下一个标签
func (m *TabManager[T, S]) Next() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.order {
		if t == m.selected {
			m.selected = m.order[(i+1)%len(m.order)]
			break
		}
	}
	return m.selected
}
