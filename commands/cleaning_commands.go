package commands

import (
	"time"

	"gorm.io/gorm"

	"hotelops/constants"
	"hotelops/models"
)

// CleaningCommand định nghĩa interface cho các command ghi dữ liệu dọn phòng
type CleaningCommand interface {
	Execute() error
}

// MarkCleanedCommand cập nhật lastCleaned của phòng và ghi log trong một transaction
type MarkCleanedCommand struct {
	room         *models.Room
	cleaningDate time.Time
	notes        string
	db           *gorm.DB
}

func NewMarkCleanedCommand(room *models.Room, cleaningDate time.Time, notes string, db *gorm.DB) *MarkCleanedCommand {
	return &MarkCleanedCommand{
		room:         room,
		cleaningDate: cleaningDate,
		notes:        notes,
		db:           db,
	}
}

func (c *MarkCleanedCommand) Execute() error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Room{}).
			Where("room_id = ?", c.room.RoomId).
			Updates(map[string]interface{}{
				"last_cleaned":    c.cleaningDate,
				"cleaning_status": constants.CleaningStatusIdle,
			}).Error; err != nil {
			return err
		}

		logEntry := models.CleaningLog{
			RoomID:       c.room.RoomId,
			CleaningDate: c.cleaningDate,
			Notes:        c.notes,
		}
		if err := tx.Create(&logEntry).Error; err != nil {
			return err
		}

		c.room.LastCleaned = &c.cleaningDate
		c.room.CleaningStatus = constants.CleaningStatusIdle
		return nil
	})
}

// UpdateFrequencyCommand cập nhật tần suất dọn của hạng phòng
type UpdateFrequencyCommand struct {
	roomClassID     uint
	frequencyDays   int
	dueNotification bool
	db              *gorm.DB
}

func NewUpdateFrequencyCommand(roomClassID uint, frequencyDays int, dueNotification bool, db *gorm.DB) *UpdateFrequencyCommand {
	return &UpdateFrequencyCommand{
		roomClassID:     roomClassID,
		frequencyDays:   frequencyDays,
		dueNotification: dueNotification,
		db:              db,
	}
}

func (c *UpdateFrequencyCommand) Execute() error {
	return c.db.Model(&models.RoomClass{}).
		Where("id = ?", c.roomClassID).
		Updates(map[string]interface{}{
			"cleaning_frequency_days":   c.frequencyDays,
			"cleaning_due_notification": c.dueNotification,
		}).Error
}
