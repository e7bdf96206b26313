package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// CleaningDueNotifier định nghĩa interface cho việc quét và thông báo phòng đến hạn dọn
type CleaningDueNotifier interface {
	NotifyDueCleanings(m *melody.Melody) error
}

// RoomCacheRefresher định nghĩa interface cho việc làm mới cache phòng
type RoomCacheRefresher interface {
	RefreshRoomCaches() error
}

var (
	cleaningDueNotifier CleaningDueNotifier
	roomCacheRefresher  RoomCacheRefresher
)

// SetCleaningDueNotifier thiết lập implementation cho CleaningDueNotifier
func SetCleaningDueNotifier(notifier CleaningDueNotifier) {
	cleaningDueNotifier = notifier
}

// SetRoomCacheRefresher thiết lập implementation cho RoomCacheRefresher
func SetRoomCacheRefresher(refresher RoomCacheRefresher) {
	roomCacheRefresher = refresher
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Quét phòng đến hạn dọn lúc 7h sáng mỗi ngày
	_, err := c.AddFunc("0 7 * * *", func() {
		now := time.Now()
		log.Printf("Đang quét phòng đến hạn dọn lúc: %v", now)
		if cleaningDueNotifier == nil {
			log.Printf("Lỗi: CleaningDueNotifier chưa được thiết lập")
			return
		}
		if err := cleaningDueNotifier.NotifyDueCleanings(m); err != nil {
			log.Printf("Lỗi khi thông báo phòng đến hạn dọn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Làm mới cache trạng thái phòng mỗi giờ
	_, err = c.AddFunc("0 * * * *", func() {
		if roomCacheRefresher == nil {
			return
		}
		if err := roomCacheRefresher.RefreshRoomCaches(); err != nil {
			log.Printf("Lỗi khi làm mới cache phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
