package handler

import (
	"cinema_planner/database"
	"cinema_planner/helper"
	"context"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	wsClients = make(map[*websocket.Conn]bool)
	wsMu      sync.Mutex
	wsFanout  sync.Once
)

// startScheduleFanout chạy đúng một subscriber Redis cho cả process,
// mỗi message phát lại một lần cho từng client đang nối
func startScheduleFanout() {
	go func() {
		pubsub := database.RedisClient.Subscribe(context.Background(), "schedule:changed")
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			payload := []byte(msg.Payload)

			wsMu.Lock()
			for conn := range wsClients {
				// Nếu client lỗi → xoá
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					conn.Close()
					delete(wsClients, conn)
				}
			}
			wsMu.Unlock()
		}
	}()
}

// WebSocketConnection xử lý WS connection: đẩy lịch hiện tại khi kết nối
// và báo mỗi khi lịch đổi (client tự gọi lại API để lấy bảng mới)
func WebSocketConnection(c *websocket.Conn) {
	// Khi WS disconnect → xoá client
	defer func() {
		wsMu.Lock()
		delete(wsClients, c)
		wsMu.Unlock()
		c.Close()
	}()

	wsMu.Lock()
	wsClients[c] = true
	wsMu.Unlock()

	// Gửi bảng lịch lần đầu
	helper.SessionMu.Lock()
	shows := helper.Session.Resolve()
	date := helper.Session.Date
	helper.SessionMu.Unlock()
	c.WriteJSON(map[string]any{"event": "schedule", "date": date, "shows": shows})

	if database.RedisClient != nil {
		wsFanout.Do(startScheduleFanout)
	}

	// Giữ kết nối tới khi client đóng
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
