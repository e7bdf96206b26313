package services

import (
	"context"
	"fmt"
	"time"

	"hotelops/constants"
	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/services/housekeeping"
	"hotelops/services/logger"
	"hotelops/services/notification"
)

// CleaningRepository định nghĩa các thao tác dữ liệu cho nghiệp vụ dọn phòng
type CleaningRepository interface {
	RoomWithClass(ctx context.Context, roomID uint) (*models.Room, error)
	RoomsWithClass(ctx context.Context) ([]models.Room, error)
	MarkCleaned(ctx context.Context, room *models.Room, cleaningDate time.Time, notes string) error
	UpdateClassFrequency(ctx context.Context, roomClassID uint, frequencyDays int, dueNotification bool) error
}

type CleaningService struct {
	repo     CleaningRepository
	logger   logger.Logger
	notifier notification.Service
}

type CleaningServiceOptions struct {
	Repo     CleaningRepository
	Logger   logger.Logger
	Notifier notification.Service
}

func NewCleaningService(opts CleaningServiceOptions) *CleaningService {
	return &CleaningService{
		repo:     opts.Repo,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
}

// MarkRoomCleaned đánh dấu phòng đã dọn: cập nhật lastCleaned, ghi log và
// phát thông báo. Phòng đang dọn dở (CLEANING) thì từ chối.
func (s *CleaningService) MarkRoomCleaned(ctx context.Context, roomID uint, cleaningDate time.Time, notes string) (*models.Room, error) {
	room, err := s.repo.RoomWithClass(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	if room.CleaningStatus == constants.CleaningStatusInProgress {
		return nil, apperrors.ErrCleaningInProgress
	}

	if err := s.repo.MarkCleaned(ctx, room, cleaningDate, notes); err != nil {
		s.logger.Error("Lỗi khi cập nhật dọn phòng %s: %v", room.RoomNumber, err)
		return nil, err
	}

	s.logger.Info("Phòng %s được đánh dấu đã dọn lúc %v", room.RoomNumber, cleaningDate)

	if s.notifier != nil {
		message := notification.NewCleanedMessageBuilder(room.RoomNumber).Build()
		if err := s.notifier.SendMessage(message); err != nil {
			// Thông báo lỗi không chặn nghiệp vụ chính
			s.logger.Warn("Không gửi được thông báo dọn phòng: %v", err)
		}
	}

	return room, nil
}

// UpdateCleaningFrequency cập nhật tần suất dọn và cờ thông báo của hạng phòng
func (s *CleaningService) UpdateCleaningFrequency(ctx context.Context, roomClassID uint, frequencyDays int, dueNotification bool) error {
	if frequencyDays <= 0 {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFreq,
			fmt.Sprintf("tần suất dọn phải lớn hơn 0, nhận được %d", frequencyDays), nil)
	}
	return s.repo.UpdateClassFrequency(ctx, roomClassID, frequencyDays, dueNotification)
}

// Schedule dựng danh sách lịch dọn phòng kèm bucket độ khẩn cấp tại thời điểm now
func (s *CleaningService) Schedule(ctx context.Context, now time.Time) ([]dto.CleaningScheduleItem, error) {
	rooms, err := s.repo.RoomsWithClass(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CleaningScheduleItem, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]
		nextDue := housekeeping.NextCleaningDue(room.LastCleaned, room.RoomClass.CleaningFrequencyDays)
		bucket, label := housekeeping.ComputeCleaningBucket(nextDue, now)
		items = append(items, dto.CleaningScheduleItem{
			RoomID:                room.RoomId,
			RoomNumber:            room.RoomNumber,
			Floor:                 room.Floor,
			RoomClassName:         room.RoomClass.Name,
			CleaningFrequencyDays: room.RoomClass.CleaningFrequencyDays,
			CleaningStatus:        room.CleaningStatus,
			LastCleaned:           room.LastCleaned,
			NextCleaningDue:       nextDue,
			Bucket:                bucket,
			BucketLabel:           label,
		})
	}
	return items, nil
}
