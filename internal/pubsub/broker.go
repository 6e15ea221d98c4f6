// Package pubsub 进程内数据变更发布：写入成功后通知所有订阅方刷新
package pubsub

import (
	"sync"

	"CareerMode/internal/model"

	"github.com/sirupsen/logrus"
)

// Broker 变更事件广播器。订阅方消费过慢时丢弃事件，不阻塞写入方
type Broker struct {
	mu     sync.RWMutex
	subs   map[uint64]chan model.ChangeEvent
	nextID uint64
	buffer int
	closed bool
	logger *logrus.Logger
}

func NewBroker(buffer int, logger *logrus.Logger) *Broker {
	if buffer <= 0 {
		buffer = 16
	}
	return &Broker{
		subs:   make(map[uint64]chan model.ChangeEvent),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe 返回事件通道与取消函数；取消后通道关闭
func (b *Broker) Subscribe() (<-chan model.ChangeEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan model.ChangeEvent, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
		})
	}
}

// Publish 向所有订阅方投递事件
func (b *Broker) Publish(ev model.ChangeEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			if b.logger != nil {
				b.logger.WithFields(logrus.Fields{
					"subscriber": id,
					"kind":       ev.Kind,
				}).Warn("订阅方缓冲已满，丢弃变更事件")
			}
		}
	}
}

// SubscriberCount 当前订阅数
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close 关闭所有订阅通道，之后的订阅立即得到已关闭的通道
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
