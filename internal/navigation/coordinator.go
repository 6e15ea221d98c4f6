package navigation

import (
	"sync"

	"github.com/google/uuid"
)

// Feature 一个功能流程（如新游戏），嵌入 BaseCoordinator 即可
type Feature interface {
	Base() *BaseCoordinator
	Start()
}

// BaseCoordinator 维护父子关系；子流程结束时通过回调把结果交给父流程
type BaseCoordinator struct {
	mu       sync.Mutex
	id       string
	parent   *BaseCoordinator
	children map[string]Feature
	onFinish func(result any)
	finished bool
}

func NewBaseCoordinator() *BaseCoordinator {
	return &BaseCoordinator{
		id:       uuid.NewString(),
		children: make(map[string]Feature),
	}
}

func (b *BaseCoordinator) Base() *BaseCoordinator { return b }

func (b *BaseCoordinator) ID() string { return b.id }

// StartChild 注册子流程并启动；onFinish 在子流程 Finish 时调用一次
func (b *BaseCoordinator) StartChild(child Feature, onFinish func(result any)) {
	cb := child.Base()
	cb.mu.Lock()
	cb.parent = b
	cb.onFinish = onFinish
	cb.finished = false
	cb.mu.Unlock()

	b.mu.Lock()
	b.children[cb.id] = child
	b.mu.Unlock()

	child.Start()
}

// Finish 从父流程注销并回传结果；重复调用无效
func (b *BaseCoordinator) Finish(result any) {
	b.mu.Lock()
	if b.finished {
		b.mu.Unlock()
		return
	}
	b.finished = true
	parent, cb := b.parent, b.onFinish
	b.parent, b.onFinish = nil, nil
	b.mu.Unlock()

	if parent != nil {
		parent.removeChild(b.id)
	}
	if cb != nil {
		cb(result)
	}
}

func (b *BaseCoordinator) removeChild(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.children, id)
}

// Children 当前仍在运行的子流程
func (b *BaseCoordinator) Children() []Feature {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Feature, 0, len(b.children))
	for _, c := range b.children {
		out = append(out, c)
	}
	return out
}

func (b *BaseCoordinator) Parent() *BaseCoordinator {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.parent
}
