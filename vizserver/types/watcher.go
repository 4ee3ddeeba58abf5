package types

import (
	"sync"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"
)

// Watcher is one connected viz websocket client.
type Watcher struct {
	id        string
	conn      *websocket.Conn
	connmutex *sync.Mutex
}

func NewWatcher(conn *websocket.Conn) *Watcher {
	return &Watcher{
		id:        uuid.NewV4().String(),
		conn:      conn,
		connmutex: &sync.Mutex{},
	}
}

func (watcher *Watcher) GetId() string {
	return watcher.id
}

// gorilla websocket connections support one concurrent writer only
func (watcher *Watcher) WriteJSON(v interface{}) error {
	watcher.connmutex.Lock()
	defer watcher.connmutex.Unlock()
	return watcher.conn.WriteJSON(v)
}

func (watcher *Watcher) WriteMessage(messageType int, data []byte) error {
	watcher.connmutex.Lock()
	defer watcher.connmutex.Unlock()
	return watcher.conn.WriteMessage(messageType, data)
}
