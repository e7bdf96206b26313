package models

import "errors"

// KitchenOrderState định nghĩa interface cho các trạng thái phiếu bếp
type KitchenOrderState interface {
	StartPreparing(order *KitchenOrder) error
	Serve(order *KitchenOrder) error
	Cancel(order *KitchenOrder) error
}

// PendingKOTState phiếu mới tạo, chờ bếp nhận
type PendingKOTState struct{}

func (s *PendingKOTState) StartPreparing(order *KitchenOrder) error {
	order.Status = KitchenOrderStatusPreparing
	return nil
}

func (s *PendingKOTState) Serve(order *KitchenOrder) error {
	return errors.New("cannot serve order that is not being prepared")
}

func (s *PendingKOTState) Cancel(order *KitchenOrder) error {
	order.Status = KitchenOrderStatusCancelled
	return nil
}

// PreparingKOTState bếp đang chuẩn bị món
type PreparingKOTState struct{}

func (s *PreparingKOTState) StartPreparing(order *KitchenOrder) error {
	return errors.New("order already being prepared")
}

func (s *PreparingKOTState) Serve(order *KitchenOrder) error {
	order.Status = KitchenOrderStatusServed
	return nil
}

func (s *PreparingKOTState) Cancel(order *KitchenOrder) error {
	order.Status = KitchenOrderStatusCancelled
	return nil
}

// ServedKOTState món đã phục vụ xong
type ServedKOTState struct{}

func (s *ServedKOTState) StartPreparing(order *KitchenOrder) error {
	return errors.New("order already served")
}

func (s *ServedKOTState) Serve(order *KitchenOrder) error {
	return errors.New("order already served")
}

func (s *ServedKOTState) Cancel(order *KitchenOrder) error {
	return errors.New("cannot cancel served order")
}

// CancelledKOTState phiếu đã hủy
type CancelledKOTState struct{}

func (s *CancelledKOTState) StartPreparing(order *KitchenOrder) error {
	return errors.New("cannot prepare cancelled order")
}

func (s *CancelledKOTState) Serve(order *KitchenOrder) error {
	return errors.New("cannot serve cancelled order")
}

func (s *CancelledKOTState) Cancel(order *KitchenOrder) error {
	return errors.New("order already cancelled")
}

// GetKitchenOrderState trả về state tương ứng với trạng thái phiếu bếp
func GetKitchenOrderState(status int) KitchenOrderState {
	switch status {
	case KitchenOrderStatusPending:
		return &PendingKOTState{}
	case KitchenOrderStatusPreparing:
		return &PreparingKOTState{}
	case KitchenOrderStatusServed:
		return &ServedKOTState{}
	case KitchenOrderStatusCancelled:
		return &CancelledKOTState{}
	default:
		return &PendingKOTState{}
	}
}
