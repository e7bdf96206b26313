package constants

// Trạng thái phòng (suy ra từ danh sách đặt phòng, không lưu DB)
const (
	RoomStatusAvailable   = 0
	RoomStatusBooked      = 1
	RoomStatusCheckIn     = 2
	RoomStatusMaintenance = 3
)

// Trạng thái dọn phòng
const (
	CleaningStatusIdle       = 0
	CleaningStatusInProgress = 1
)

// Bucket độ khẩn cấp của lịch dọn phòng
const (
	CleaningBucketNoSchedule = 0
	CleaningBucketOnSchedule = 1
	CleaningBucketDueSoon    = 2
	CleaningBucketDueToday   = 3
	CleaningBucketOverdue    = 4
)

// Trạng thái đặt phòng
const (
	ReservationStatusPending   = 0
	ReservationStatusConfirmed = 1
	ReservationStatusCompleted = 2
	ReservationStatusCancelled = 3
)

// Trạng thái phiếu bếp (KOT)
const (
	KitchenOrderPending   = 0
	KitchenOrderPreparing = 1
	KitchenOrderServed    = 2
	KitchenOrderCancelled = 3
)

// Trạng thái bàn nhà hàng
const (
	TableStatusFree     = 0
	TableStatusOccupied = 1
	TableStatusReserved = 2
)
