package connectionhub

import (
	"sync"

	"appraisal-backend/lib/eventbus"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	// Broadcast рассылка события шины всем подключенным клиентам UI
	Broadcast(event eventbus.Event)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	hub := &impl{
		clients: map[string]*websocket.Conn{},
	}
	Instance = hub
	// все события шины транслируются в подключенные области UI
	eventbus.Instance.SubscribeAll(hub.Broadcast)
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]*websocket.Conn //map[userID]
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if old, ok := i.clients[userID]; ok && old != nil {
		_ = old.Close()
	}
	i.clients[userID] = conn
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.clients, userID)
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	conn, ok := i.clients[userID]
	return ok && conn != nil
}

func (i *impl) Broadcast(event eventbus.Event) {
	i.mu.RLock()
	conns := make(map[string]*websocket.Conn, len(i.clients))
	for userID, conn := range i.clients {
		conns[userID] = conn
	}
	i.mu.RUnlock()

	for userID, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			log.
				WithField("user_id", userID).
				WithError(err).
				Warn("ошибка отправки события клиенту, соединение закрывается")
			i.DeleteClient(userID)
		}
	}
}
