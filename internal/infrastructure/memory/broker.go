// Package memory — встроенный брокер в памяти процесса: для тестов и локального запуска без Kafka.
// Топик — журнал сообщений; у каждой consumer group свой курсор на топик,
// поэтому консьюмеры одной группы делят поток, а разные группы видят все сообщения.
// Журнал хранит только то, что ещё не прочитали все группы, и не больше MaxBacklog записей.
package memory

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"kafkaBridge/internal/domain"
	"kafkaBridge/internal/ports"
)

// ErrClosed возвращается публикацией и чтением после Close.
var ErrClosed = errors.New("memory broker closed")

// DefaultMaxBacklog — сколько непрочитанных записей топик держит по умолчанию.
const DefaultMaxBacklog = 10000

var (
	_ ports.IPublisher = (*Broker)(nil)
	_ ports.IPinger    = (*Broker)(nil)
	_ ports.IConsumer  = (*Consumer)(nil)
)

// topic — журнал с абсолютными offset: log[0] имеет offset base.
type topic struct {
	log     [][]byte
	base    int
	cursors map[string]int // следующий offset группы
	notify  chan struct{}  // закрывается и пересоздаётся на каждую публикацию
}

// trim отбрасывает записи, которые прочитали все группы. Без групп не трогает журнал.
func (t *topic) trim() {
	if len(t.cursors) == 0 {
		return
	}
	low := -1
	for _, off := range t.cursors {
		if low == -1 || off < low {
			low = off
		}
	}
	t.drop(low - t.base)
}

// drop убирает n самых старых записей и подтягивает отставшие курсоры.
func (t *topic) drop(n int) {
	if n <= 0 {
		return
	}
	if n > len(t.log) {
		n = len(t.log)
	}
	clear(t.log[:n])
	t.log = t.log[n:]
	t.base += n
	for group, off := range t.cursors {
		if off < t.base {
			t.cursors[group] = t.base
		}
	}
}

// Broker — брокер в памяти. Безопасен для конкурентного использования.
type Broker struct {
	mu         sync.Mutex
	topics     map[string]*topic
	maxBacklog int
	closed     bool
	done       chan struct{}
}

// New создаёт пустой брокер с DefaultMaxBacklog.
func New() *Broker {
	return NewWithBacklog(DefaultMaxBacklog)
}

// NewWithBacklog создаёт брокер, который держит не больше maxBacklog записей на топик;
// при переполнении самые старые выбрасываются, отставшие группы их пропускают. maxBacklog <= 0 — без предела.
func NewWithBacklog(maxBacklog int) *Broker {
	return &Broker{topics: make(map[string]*topic), maxBacklog: maxBacklog, done: make(chan struct{})}
}

// topicLocked возвращает топик, создавая его при первом обращении. Вызывать под b.mu.
func (b *Broker) topicLocked(name string) *topic {
	t, ok := b.topics[name]
	if !ok {
		t = &topic{cursors: make(map[string]int), notify: make(chan struct{})}
		b.topics[name] = t
	}
	return t
}

// Publish добавляет копию payload в журнал топика и будит ожидающих консьюмеров.
func (b *Broker) Publish(ctx context.Context, topicName string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}

	t := b.topicLocked(topicName)
	t.log = append(t.log, append([]byte(nil), payload...))
	if b.maxBacklog > 0 {
		t.drop(len(t.log) - b.maxBacklog)
	}
	close(t.notify)
	t.notify = make(chan struct{})
	return nil
}

// Ping сообщает, открыт ли брокер.
func (b *Broker) Ping(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	return nil
}

// Close закрывает брокер и останавливает все Run.
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.done)
	}
	return nil
}

// Consumer возвращает консьюмера группы groupID на топике topicName.
func (b *Broker) Consumer(topicName, groupID string, log *slog.Logger) *Consumer {
	return &Consumer{b: b, topic: topicName, group: groupID, log: log}
}

// next забирает следующее сообщение группы или возвращает канал, по которому ждать новых.
func (b *Broker) next(topicName, group string) (domain.Message, bool, <-chan struct{}, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return domain.Message{}, false, nil, ErrClosed
	}

	t := b.topicLocked(topicName)
	off, ok := t.cursors[group]
	if !ok || off < t.base {
		off = t.base
		t.cursors[group] = off
	}
	if i := off - t.base; i < len(t.log) {
		msg := domain.Message{Topic: topicName, Offset: int64(off), Value: t.log[i]}
		t.cursors[group] = off + 1
		t.trim()
		return msg, true, nil, nil
	}
	return domain.Message{}, false, t.notify, nil
}

// Consumer — подписка группы на топик встроенного брокера.
type Consumer struct {
	b     *Broker
	topic string
	group string
	log   *slog.Logger
}

// Run доставляет сообщения обработчику, пока не отменён ctx или не закрыт брокер.
// Ошибка обработчика логируется, сообщение считается обработанным.
func (c *Consumer) Run(ctx context.Context, handle ports.MessageHandler) error {
	log := c.log
	if log == nil {
		log = slog.Default()
	}
	log.Info("memory consumer subscribed", "topic", c.topic, "group", c.group)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg, ok, wait, err := c.b.next(c.topic, c.group)
		if err != nil {
			return err
		}
		if ok {
			if err := handle(ctx, msg); err != nil {
				log.Warn("memory handle error, skip", "error", err, "topic", msg.Topic, "offset", msg.Offset)
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.b.done:
			return ErrClosed
		case <-wait:
		}
	}
}
