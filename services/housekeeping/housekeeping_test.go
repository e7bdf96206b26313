package housekeeping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hotelops/constants"
	"hotelops/models"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02T15:04", value)
	require.NoError(t, err)
	return ts
}

func reservation(t *testing.T, checkIn, checkOut string) models.Reservation {
	t.Helper()
	return models.Reservation{
		CheckInDate:  mustParse(t, checkIn),
		CheckOutDate: mustParse(t, checkOut),
	}
}

func TestResolveRoomStatusActiveStay(t *testing.T) {
	room := &models.Room{
		RoomNumber:  "101",
		IsAvailable: true,
		Reservations: []models.Reservation{
			reservation(t, "2025-07-15T14:00", "2025-07-18T11:00"),
		},
	}
	now := mustParse(t, "2025-07-16T09:00")

	status, relevant := ResolveRoomStatus(room, now)
	require.Equal(t, constants.RoomStatusCheckIn, status)
	require.NotNil(t, relevant)
	require.Equal(t, room.Reservations[0].CheckInDate, relevant.CheckInDate)
}

func TestResolveRoomStatusActiveStayBeatsMaintenance(t *testing.T) {
	// Khách đang ở thì phòng vẫn là "Đang ở" dù bị khóa bảo trì
	room := &models.Room{
		IsAvailable: false,
		Reservations: []models.Reservation{
			reservation(t, "2025-07-15T14:00", "2025-07-18T11:00"),
		},
	}
	now := mustParse(t, "2025-07-16T09:00")

	status, _ := ResolveRoomStatus(room, now)
	require.Equal(t, constants.RoomStatusCheckIn, status)
}

func TestResolveRoomStatusActiveAtBoundaries(t *testing.T) {
	room := &models.Room{
		IsAvailable: true,
		Reservations: []models.Reservation{
			reservation(t, "2025-07-15T14:00", "2025-07-18T11:00"),
		},
	}

	status, _ := ResolveRoomStatus(room, mustParse(t, "2025-07-15T14:00"))
	require.Equal(t, constants.RoomStatusCheckIn, status, "checkIn == now vẫn tính là đang ở")

	status, _ = ResolveRoomStatus(room, mustParse(t, "2025-07-18T11:00"))
	require.Equal(t, constants.RoomStatusCheckIn, status, "checkOut == now vẫn tính là đang ở")
}

func TestResolveRoomStatusEarliestFutureWins(t *testing.T) {
	room := &models.Room{
		IsAvailable: true,
		Reservations: []models.Reservation{
			reservation(t, "2025-08-01T14:00", "2025-08-03T11:00"),
			reservation(t, "2025-07-20T14:00", "2025-07-22T11:00"),
		},
	}
	now := mustParse(t, "2025-07-10T00:00")

	status, relevant := ResolveRoomStatus(room, now)
	require.Equal(t, constants.RoomStatusBooked, status)
	require.NotNil(t, relevant)
	require.Equal(t, mustParse(t, "2025-07-20T14:00"), relevant.CheckInDate)
}

func TestResolveRoomStatusNoReservations(t *testing.T) {
	now := mustParse(t, "2025-07-10T00:00")

	status, relevant := ResolveRoomStatus(&models.Room{IsAvailable: true}, now)
	require.Equal(t, constants.RoomStatusAvailable, status)
	require.Nil(t, relevant)

	status, relevant = ResolveRoomStatus(&models.Room{IsAvailable: false}, now)
	require.Equal(t, constants.RoomStatusMaintenance, status)
	require.Nil(t, relevant)
}

func TestResolveRoomStatusPastReservationsIgnored(t *testing.T) {
	room := &models.Room{
		IsAvailable: true,
		Reservations: []models.Reservation{
			reservation(t, "2025-06-01T14:00", "2025-06-03T11:00"),
		},
	}
	now := mustParse(t, "2025-07-10T00:00")

	status, relevant := ResolveRoomStatus(room, now)
	require.Equal(t, constants.RoomStatusAvailable, status)
	require.Nil(t, relevant)
}

func TestFormatRemaining(t *testing.T) {
	now := mustParse(t, "2025-07-10T08:00")

	require.Equal(t, "Quá hạn", FormatRemaining(mustParse(t, "2025-07-10T08:00"), now))
	require.Equal(t, "Quá hạn", FormatRemaining(mustParse(t, "2025-07-09T08:00"), now))
	require.Equal(t, "2d 5h", FormatRemaining(mustParse(t, "2025-07-12T13:00"), now))
	require.Equal(t, "1d 0h", FormatRemaining(mustParse(t, "2025-07-11T08:00"), now))
	require.Equal(t, "04:30", FormatRemaining(mustParse(t, "2025-07-10T12:30"), now))
	require.Equal(t, "00:45", FormatRemaining(mustParse(t, "2025-07-10T08:45"), now))
}

func TestFormatRemainingIdempotent(t *testing.T) {
	now := mustParse(t, "2025-07-10T08:00")
	target := mustParse(t, "2025-07-12T13:00")
	require.Equal(t, FormatRemaining(target, now), FormatRemaining(target, now))
}

func TestNextCleaningDue(t *testing.T) {
	require.Nil(t, NextCleaningDue(nil, 3))

	last := mustParse(t, "2025-01-01T00:00")
	due := NextCleaningDue(&last, 3)
	require.NotNil(t, due)
	require.Equal(t, mustParse(t, "2025-01-04T00:00"), *due)
}

func TestComputeCleaningBucket(t *testing.T) {
	now := mustParse(t, "2025-01-05T00:00")

	bucket, label := ComputeCleaningBucket(nil, now)
	require.Equal(t, constants.CleaningBucketNoSchedule, bucket)
	require.Equal(t, "Chưa có lịch dọn", label)

	// Tần suất 3 ngày, dọn lần cuối 01/01 => hạn 04/01, trễ 1 ngày
	last := mustParse(t, "2025-01-01T00:00")
	due := NextCleaningDue(&last, 3)
	bucket, label = ComputeCleaningBucket(due, now)
	require.Equal(t, constants.CleaningBucketOverdue, bucket)
	require.Equal(t, "Quá hạn 1 ngày", label)

	dueToday := mustParse(t, "2025-01-05T00:00")
	bucket, _ = ComputeCleaningBucket(&dueToday, now)
	require.Equal(t, constants.CleaningBucketDueToday, bucket)

	dueSoon := mustParse(t, "2025-01-07T00:00")
	bucket, _ = ComputeCleaningBucket(&dueSoon, now)
	require.Equal(t, constants.CleaningBucketDueSoon, bucket)

	onSchedule := mustParse(t, "2025-01-10T00:00")
	bucket, _ = ComputeCleaningBucket(&onSchedule, now)
	require.Equal(t, constants.CleaningBucketOnSchedule, bucket)
}

func TestComputeCleaningBucketCeilRule(t *testing.T) {
	// Trễ vài tiếng nhưng chưa đủ 1 ngày: ceil đưa diffDays về 0 => vẫn "hôm nay"
	due := mustParse(t, "2025-01-05T00:00")
	now := mustParse(t, "2025-01-05T18:00")
	bucket, _ := ComputeCleaningBucket(&due, now)
	require.Equal(t, constants.CleaningBucketDueToday, bucket)
}

func TestComputeCleaningBucketMonotonic(t *testing.T) {
	// Với nextDue cố định, now tăng dần thì bucket chỉ tăng độ khẩn cấp
	due := mustParse(t, "2025-01-10T12:00")
	prev := -1
	for now := mustParse(t, "2025-01-01T00:00"); now.Before(mustParse(t, "2025-01-20T00:00")); now = now.Add(6 * time.Hour) {
		bucket, _ := ComputeCleaningBucket(&due, now)
		require.GreaterOrEqual(t, bucket, prev, "bucket giảm tại %v", now)
		prev = bucket
	}
}

func TestCleaningRoundTrip(t *testing.T) {
	// nextDue = lastCleaned + F ngày; với now = lastCleaned và F > 2 thì đúng lịch
	last := mustParse(t, "2025-03-01T09:00")
	due := NextCleaningDue(&last, 5)
	bucket, _ := ComputeCleaningBucket(due, last)
	require.Equal(t, constants.CleaningBucketOnSchedule, bucket)
}
