package services

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"github.com/olahol/melody"

	"hotelops/config"
	"hotelops/constants"
	"hotelops/models"
	"hotelops/services/housekeeping"
	"hotelops/services/notification"
)

const DefaultTimezone = "Asia/Ho_Chi_Minh"

// GetDueCleaningRooms lấy các phòng quá hạn hoặc đến hạn dọn hôm nay,
// chỉ xét hạng phòng có bật thông báo
func GetDueCleaningRooms(now time.Time) ([]models.Room, map[uint]string, error) {
	var rooms []models.Room
	err := config.DB.
		Joins("JOIN room_classes ON room_classes.id = rooms.room_class_id").
		Where("room_classes.cleaning_due_notification = ?", true).
		Preload("RoomClass").
		Find(&rooms).Error
	if err != nil {
		return nil, nil, fmt.Errorf("❌ Lỗi khi truy vấn phòng cần thông báo: %w", err)
	}

	due := make([]models.Room, 0)
	labels := make(map[uint]string)
	for i := range rooms {
		room := &rooms[i]
		nextDue := housekeeping.NextCleaningDue(room.LastCleaned, room.RoomClass.CleaningFrequencyDays)
		bucket, label := housekeeping.ComputeCleaningBucket(nextDue, now)
		if bucket == constants.CleaningBucketOverdue || bucket == constants.CleaningBucketDueToday {
			due = append(due, *room)
			labels[room.RoomId] = label
		}
	}

	return due, labels, nil
}

// NotifyDueCleanings quét phòng đến hạn dọn, lưu thông báo và broadcast qua websocket
func NotifyDueCleanings(m *melody.Melody) error {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return fmt.Errorf("❌ Lỗi khi tải múi giờ: %w", err)
	}
	now := time.Now().In(loc)

	dueRooms, labels, err := GetDueCleaningRooms(now)
	if err != nil {
		log.Println("❌ Lỗi lấy danh sách phòng đến hạn dọn:", err)
		return err
	}

	if len(dueRooms) == 0 {
		log.Println("ℹ️ Không có phòng nào đến hạn dọn hôm nay.")
		return nil
	}

	notifier := notification.NewMelodyService(m)

	for _, room := range dueRooms {
		label := labels[room.RoomId]
		message := notification.NewCleaningMessageBuilder(room.RoomNumber, label).Build()

		roomID := room.RoomId
		record := models.Notification{
			RoomID:      &roomID,
			Message:     message,
			Description: fmt.Sprintf("Hạng phòng %s, tần suất %d ngày", room.RoomClass.Name, room.RoomClass.CleaningFrequencyDays),
		}
		if err := config.DB.Create(&record).Error; err != nil {
			log.Printf("❌ Lỗi lưu thông báo cho phòng %s: %v\n", room.RoomNumber, err)
			continue
		}

		if err := notifier.SendMessage(message); err != nil {
			log.Printf("❌ Lỗi broadcast thông báo cho phòng %s: %v\n", room.RoomNumber, err)
		} else {
			log.Printf("✅ Đã thông báo phòng %s: %s\n", room.RoomNumber, label)
		}
	}

	log.Println("✅ Hoàn tất quét phòng đến hạn dọn.")
	return nil
}

// CleaningNotifierAdapter adapter để jobs gọi NotifyDueCleanings qua interface
type CleaningNotifierAdapter struct{}

func NewCleaningNotifierAdapter() *CleaningNotifierAdapter {
	return &CleaningNotifierAdapter{}
}

func (a *CleaningNotifierAdapter) NotifyDueCleanings(m *melody.Melody) error {
	return NotifyDueCleanings(m)
}

// CacheRefresherAdapter adapter để jobs làm mới cache phòng định kỳ
type CacheRefresherAdapter struct{}

func NewCacheRefresherAdapter() *CacheRefresherAdapter {
	return &CacheRefresherAdapter{}
}

func (a *CacheRefresherAdapter) RefreshRoomCaches() error {
	if config.RedisClient == nil {
		return nil
	}
	InvalidateRoomCaches(config.Ctx, config.RedisClient)
	return nil
}
