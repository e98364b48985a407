package eventbus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventBus(t *testing.T) {
	t.Run(`подписчик темы получает событие с нагрузкой`, func(t *testing.T) {
		NewBus()
		var received []Event
		Instance.Subscribe(TopicEmployeeCreated, func(event Event) {
			received = append(received, event)
		})
		Instance.Publish(TopicEmployeeCreated, "emp-1")
		Instance.Publish(TopicEmployeeDeleted, "emp-2")

		require.Len(t, received, 1)
		require.Equal(t, TopicEmployeeCreated, received[0].Topic)
		require.Equal(t, "emp-1", received[0].Payload)
	})

	t.Run(`подписчик всех тем получает каждое событие`, func(t *testing.T) {
		NewBus()
		var topics []Topic
		Instance.SubscribeAll(func(event Event) {
			topics = append(topics, event.Topic)
		})
		Instance.Publish(TopicEmployeeCreated, nil)
		Instance.Publish(TopicAppraisalSubmitted, nil)

		require.Equal(t, []Topic{TopicEmployeeCreated, TopicAppraisalSubmitted}, topics)
	})

	t.Run(`паника в обработчике не роняет публикацию`, func(t *testing.T) {
		NewBus()
		Instance.Subscribe(TopicUserCreated, func(event Event) {
			panic("обработчик сломан")
		})
		var delivered bool
		Instance.Subscribe(TopicUserCreated, func(event Event) {
			delivered = true
		})
		require.NotPanics(t, func() {
			Instance.Publish(TopicUserCreated, nil)
		})
		require.True(t, delivered)
	})
}
