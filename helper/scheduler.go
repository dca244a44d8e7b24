package helper

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var scheduler *cron.Cron

func StartAutosaveScheduler() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy mỗi 5 phút (không cần mỗi phút)
	_, err := scheduler.AddFunc("*/5 * * * *", autosaveSchedule)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler: %v", err)
		return
	}

	scheduler.Start()
	log.Println("Scheduler tự lưu lịch đã khởi động (mỗi 5 phút)")
}

func autosaveSchedule() {
	SessionMu.Lock()
	defer SessionMu.Unlock()
	if Session == nil {
		return
	}
	if err := Session.Save(context.Background()); err != nil {
		log.Printf("Lỗi tự lưu lịch: %v", err)
	}
}

// Dừng scheduler khi tắt server
func StopAutosaveScheduler() {
	if scheduler != nil {
		scheduler.Stop()
		log.Println("Scheduler tự lưu lịch đã dừng")
	}
}

var pruneScheduler gocron.Scheduler

func PruneOldSchedules() {
	log.Println("[CRON] PruneOldSchedules triggered")

	SessionMu.Lock()
	defer SessionMu.Unlock()
	if Session == nil {
		return
	}
	Session.PruneRetention(context.Background())
}

func StartPruneScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	pruneScheduler = s

	// chạy sau mốc chuyển ngày 05:00
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(5, 5, 0),
			),
		),
		gocron.NewTask(PruneOldSchedules),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Prune scheduler started (05:05 ICT)")
}

func StopPruneScheduler() {
	if pruneScheduler != nil {
		if err := pruneScheduler.Shutdown(); err != nil {
			log.Printf("Lỗi dừng prune scheduler: %v", err)
		}
	}
}
