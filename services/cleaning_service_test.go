package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelops/constants"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/services/logger"
)

type cleaningRepoMock struct {
	roomFn     func(ctx context.Context, roomID uint) (*models.Room, error)
	roomsFn    func(ctx context.Context) ([]models.Room, error)
	markFn     func(ctx context.Context, room *models.Room, cleaningDate time.Time, notes string) error
	updateFn   func(ctx context.Context, roomClassID uint, frequencyDays int, dueNotification bool) error
	markCalled bool
}

func (m *cleaningRepoMock) RoomWithClass(ctx context.Context, roomID uint) (*models.Room, error) {
	return m.roomFn(ctx, roomID)
}

func (m *cleaningRepoMock) RoomsWithClass(ctx context.Context) ([]models.Room, error) {
	return m.roomsFn(ctx)
}

func (m *cleaningRepoMock) MarkCleaned(ctx context.Context, room *models.Room, cleaningDate time.Time, notes string) error {
	m.markCalled = true
	return m.markFn(ctx, room, cleaningDate, notes)
}

func (m *cleaningRepoMock) UpdateClassFrequency(ctx context.Context, roomClassID uint, frequencyDays int, dueNotification bool) error {
	return m.updateFn(ctx, roomClassID, frequencyDays, dueNotification)
}

type notifierMock struct {
	messages []string
}

func (n *notifierMock) SendMessage(message string) error {
	n.messages = append(n.messages, message)
	return nil
}

func newTestService(repo *cleaningRepoMock, notifier *notifierMock) *CleaningService {
	opts := CleaningServiceOptions{
		Repo:   repo,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	}
	if notifier != nil {
		opts.Notifier = notifier
	}
	return NewCleaningService(opts)
}

func TestMarkRoomCleanedSuccess(t *testing.T) {
	room := &models.Room{RoomId: 7, RoomNumber: "203", CleaningStatus: constants.CleaningStatusIdle}
	repo := &cleaningRepoMock{
		roomFn: func(ctx context.Context, roomID uint) (*models.Room, error) {
			if roomID != 7 {
				return nil, errors.New("bad room id")
			}
			return room, nil
		},
		markFn: func(ctx context.Context, r *models.Room, cleaningDate time.Time, notes string) error {
			r.LastCleaned = &cleaningDate
			return nil
		},
	}
	notifier := &notifierMock{}
	s := newTestService(repo, notifier)

	date := time.Date(2025, 7, 16, 9, 0, 0, 0, time.UTC)
	got, err := s.MarkRoomCleaned(context.Background(), 7, date, "dọn tổng vệ sinh")
	if err != nil {
		t.Fatalf("MarkRoomCleaned error: %v", err)
	}
	if got.LastCleaned == nil || !got.LastCleaned.Equal(date) {
		t.Fatalf("lastCleaned = %v; want %v", got.LastCleaned, date)
	}
	if !repo.markCalled {
		t.Fatal("expected repository MarkCleaned to be called")
	}
	if len(notifier.messages) != 1 {
		t.Fatalf("expected 1 broadcast message, got %d", len(notifier.messages))
	}
}

func TestMarkRoomCleanedRejectsInProgress(t *testing.T) {
	repo := &cleaningRepoMock{
		roomFn: func(ctx context.Context, roomID uint) (*models.Room, error) {
			return &models.Room{RoomId: 7, CleaningStatus: constants.CleaningStatusInProgress}, nil
		},
		markFn: func(ctx context.Context, r *models.Room, cleaningDate time.Time, notes string) error {
			return nil
		},
	}
	s := newTestService(repo, nil)

	_, err := s.MarkRoomCleaned(context.Background(), 7, time.Now(), "")
	if !errors.Is(err, apperrors.ErrCleaningInProgress) {
		t.Fatalf("err = %v; want ErrCleaningInProgress", err)
	}
	if repo.markCalled {
		t.Fatal("MarkCleaned must not be called when cleaning is in progress")
	}
}

func TestMarkRoomCleanedRoomNotFound(t *testing.T) {
	repo := &cleaningRepoMock{
		roomFn: func(ctx context.Context, roomID uint) (*models.Room, error) {
			return nil, nil
		},
	}
	s := newTestService(repo, nil)

	_, err := s.MarkRoomCleaned(context.Background(), 99, time.Now(), "")
	if !errors.Is(err, apperrors.ErrRoomNotFound) {
		t.Fatalf("err = %v; want ErrRoomNotFound", err)
	}
}

func TestUpdateCleaningFrequencyValidation(t *testing.T) {
	repo := &cleaningRepoMock{
		updateFn: func(ctx context.Context, roomClassID uint, frequencyDays int, dueNotification bool) error {
			t.Fatal("repository must not be called for invalid frequency")
			return nil
		},
	}
	s := newTestService(repo, nil)

	if err := s.UpdateCleaningFrequency(context.Background(), 1, 0, true); err == nil {
		t.Fatal("expected error for frequency 0")
	}
	if err := s.UpdateCleaningFrequency(context.Background(), 1, -3, true); err == nil {
		t.Fatal("expected error for negative frequency")
	}
}

func TestScheduleBuildsBuckets(t *testing.T) {
	last := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &cleaningRepoMock{
		roomsFn: func(ctx context.Context) ([]models.Room, error) {
			return []models.Room{
				{
					RoomId:      1,
					RoomNumber:  "101",
					LastCleaned: &last,
					RoomClass:   models.RoomClass{Name: "Standard", CleaningFrequencyDays: 3},
				},
				{
					RoomId:     2,
					RoomNumber: "102",
					RoomClass:  models.RoomClass{Name: "Deluxe", CleaningFrequencyDays: 5},
				},
			}, nil
		},
	}
	s := newTestService(repo, nil)

	now := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	items, err := s.Schedule(context.Background(), now)
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items; want 2", len(items))
	}

	// Phòng 101: hạn 04/01, trễ 1 ngày
	if items[0].Bucket != constants.CleaningBucketOverdue {
		t.Fatalf("room 101 bucket = %d; want overdue", items[0].Bucket)
	}
	if items[0].BucketLabel != "Quá hạn 1 ngày" {
		t.Fatalf("room 101 label = %q", items[0].BucketLabel)
	}

	// Phòng 102 chưa dọn lần nào
	if items[1].Bucket != constants.CleaningBucketNoSchedule {
		t.Fatalf("room 102 bucket = %d; want no schedule", items[1].Bucket)
	}
	if items[1].NextCleaningDue != nil {
		t.Fatal("room 102 must not have a due date")
	}
}
