package helper

import (
	"cinema_planner/database"
	"cinema_planner/engine"
	"context"
	"log"
	"sync"
	"time"
)

var (
	// Session là phiên xếp lịch đang hoạt động, mọi handler phải giữ SessionMu khi dùng
	Session   *engine.Session
	SessionMu sync.Mutex
)

// InitSession dựng phiên xếp lịch từ catalog DB và store Redis (fallback bộ nhớ)
func InitSession(redisOk bool) {
	loc := time.FixedZone("ICT", 7*3600)

	var store engine.Store
	if redisOk {
		store = database.NewRedisStore(database.RedisClient)
	} else {
		log.Println("dùng store bộ nhớ, lịch sẽ mất khi tắt server")
		store = engine.NewMemStore()
	}

	s := engine.NewSession(database.NewGormCatalog(database.DB), store, loc)
	s.Notify = func(event string) {
		database.Publish("schedule:changed", event)
	}

	// khôi phục ngày đang mở và khung giờ hoạt động đã lưu
	s.LoadState(context.Background())

	Session = s
}
