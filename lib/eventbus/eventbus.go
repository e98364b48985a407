package eventbus

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

type Topic string

const (
	TopicEmployeeCreated    Topic = "employeeCreated"
	TopicEmployeeUpdated    Topic = "employeeUpdated"
	TopicEmployeeDeleted    Topic = "employeeDeleted"
	TopicUserCreated        Topic = "userCreated"
	TopicAssignmentsCreated Topic = "assignmentsCreated"
	TopicAppraisalSubmitted Topic = "appraisalSubmitted"
)

type Event struct {
	Topic   Topic       `json:"topic"`
	Payload interface{} `json:"payload,omitempty"`
}

type Handler func(event Event)

// Provider внутрипроцессная шина событий с именованными темами,
// уведомляет подписчиков о создании и изменении записей
type Provider interface {
	Publish(topic Topic, payload interface{})
	Subscribe(topic Topic, handler Handler)
	SubscribeAll(handler Handler)
}

var Instance Provider

func NewBus() {
	Instance = &impl{
		subscribers: map[Topic][]Handler{},
	}
}

type impl struct {
	mu          sync.RWMutex
	subscribers map[Topic][]Handler
	allHandlers []Handler
}

func (i *impl) Subscribe(topic Topic, handler Handler) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.subscribers[topic] = append(i.subscribers[topic], handler)
}

func (i *impl) SubscribeAll(handler Handler) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.allHandlers = append(i.allHandlers, handler)
}

func (i *impl) Publish(topic Topic, payload interface{}) {
	i.mu.RLock()
	handlers := make([]Handler, 0, len(i.subscribers[topic])+len(i.allHandlers))
	handlers = append(handlers, i.subscribers[topic]...)
	handlers = append(handlers, i.allHandlers...)
	i.mu.RUnlock()

	event := Event{Topic: topic, Payload: payload}
	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithField("topic", string(topic)).Errorf("паника в обработчике события: %v", r)
				}
			}()
			handler(event)
		}()
	}
}
