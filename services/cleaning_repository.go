package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelops/commands"
	"hotelops/models"
)

// GormCleaningRepository implement CleaningRepository trên gorm
type GormCleaningRepository struct {
	db *gorm.DB
}

func NewGormCleaningRepository(db *gorm.DB) *GormCleaningRepository {
	return &GormCleaningRepository{db: db}
}

func (r *GormCleaningRepository) RoomWithClass(ctx context.Context, roomID uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Preload("RoomClass").Where("room_id = ?", roomID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *GormCleaningRepository) RoomsWithClass(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).Preload("RoomClass").
		Order("floor ASC, room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *GormCleaningRepository) MarkCleaned(ctx context.Context, room *models.Room, cleaningDate time.Time, notes string) error {
	cmd := commands.NewMarkCleanedCommand(room, cleaningDate, notes, r.db.WithContext(ctx))
	return cmd.Execute()
}

func (r *GormCleaningRepository) UpdateClassFrequency(ctx context.Context, roomClassID uint, frequencyDays int, dueNotification bool) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RoomClass{}).Where("id = ?", roomClassID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	cmd := commands.NewUpdateFrequencyCommand(roomClassID, frequencyDays, dueNotification, r.db.WithContext(ctx))
	return cmd.Execute()
}
