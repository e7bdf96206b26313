package housekeeping

import (
	"fmt"
	"math"
	"time"

	"hotelops/constants"
	"hotelops/models"
)

// ResolveRoomStatus suy ra trạng thái phòng từ danh sách đặt phòng tại thời điểm now.
// Thứ tự ưu tiên: đang ở > đã đặt > bảo trì > trống. Khách đang ở luôn thắng,
// kể cả khi phòng bị khóa bảo trì. Không có side effect, không có lỗi.
func ResolveRoomStatus(room *models.Room, now time.Time) (int, *models.Reservation) {
	// Đặt phòng đang hiệu lực: checkIn <= now <= checkOut.
	// Nếu dữ liệu có nhiều đặt phòng trùng nhau thì lấy cái đầu tiên theo thứ tự input.
	for i := range room.Reservations {
		r := &room.Reservations[i]
		if !now.Before(r.CheckInDate) && !now.After(r.CheckOutDate) {
			return constants.RoomStatusCheckIn, r
		}
	}

	// Đặt phòng tương lai gần nhất
	var next *models.Reservation
	for i := range room.Reservations {
		r := &room.Reservations[i]
		if r.CheckInDate.After(now) {
			if next == nil || r.CheckInDate.Before(next.CheckInDate) {
				next = r
			}
		}
	}
	if next != nil {
		return constants.RoomStatusBooked, next
	}

	if !room.IsAvailable {
		return constants.RoomStatusMaintenance, nil
	}
	return constants.RoomStatusAvailable, nil
}

// StatusLabel trả về nhãn hiển thị cho trạng thái phòng
func StatusLabel(status int) string {
	switch status {
	case constants.RoomStatusCheckIn:
		return "Đang ở"
	case constants.RoomStatusBooked:
		return "Đã đặt"
	case constants.RoomStatusMaintenance:
		return "Bảo trì"
	default:
		return "Trống"
	}
}

// FormatRemaining hiển thị thời gian còn lại đến target. Chỉ hiện số ngày khi
// còn từ 1 ngày trở lên, dưới 1 ngày hiện giờ:phút. Hàm thuần, không tạo timer,
// việc refresh định kỳ là trách nhiệm của phía gọi.
func FormatRemaining(target, now time.Time) string {
	if !target.After(now) {
		return "Quá hạn"
	}
	d := target.Sub(now)
	days := int(d.Hours()) / 24
	if days >= 1 {
		hours := int(d.Hours()) % 24
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// NextCleaningDue tính hạn dọn kế tiếp = lastCleaned + freqDays ngày.
// Phòng chưa dọn lần nào (lastCleaned nil) thì chưa có hạn.
func NextCleaningDue(lastCleaned *time.Time, freqDays int) *time.Time {
	if lastCleaned == nil {
		return nil
	}
	due := lastCleaned.AddDate(0, 0, freqDays)
	return &due
}

// ComputeCleaningBucket xếp phòng vào bucket độ khẩn cấp theo hạn dọn.
// diffDays lấy ceil của hiệu mili giây chia cho 1 ngày; quy tắc ceil này được
// giữ nguyên nên kết quả có thể lệch 1 ngày quanh mốc nửa đêm khi lastCleaned
// có thành phần giờ.
func ComputeCleaningBucket(nextDue *time.Time, now time.Time) (int, string) {
	if nextDue == nil {
		return constants.CleaningBucketNoSchedule, "Chưa có lịch dọn"
	}

	diffDays := int(math.Ceil(float64(nextDue.Sub(now).Milliseconds()) / 86400000.0))
	switch {
	case diffDays < 0:
		return constants.CleaningBucketOverdue, fmt.Sprintf("Quá hạn %d ngày", -diffDays)
	case diffDays == 0:
		return constants.CleaningBucketDueToday, "Đến hạn hôm nay"
	case diffDays <= 2:
		return constants.CleaningBucketDueSoon, "Sắp đến hạn"
	default:
		return constants.CleaningBucketOnSchedule, "Đúng lịch"
	}
}
