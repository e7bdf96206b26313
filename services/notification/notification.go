package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// CleaningMessageBuilder dựng nội dung thông báo dọn phòng
type CleaningMessageBuilder struct {
	roomNumber string
	label      string
}

func NewCleaningMessageBuilder(roomNumber, label string) *CleaningMessageBuilder {
	return &CleaningMessageBuilder{
		roomNumber: roomNumber,
		label:      label,
	}
}

func (b *CleaningMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Phòng %s cần dọn: %s", b.roomNumber, b.label)
}

// CleanedMessageBuilder dựng nội dung thông báo đã dọn xong
type CleanedMessageBuilder struct {
	roomNumber string
}

func NewCleanedMessageBuilder(roomNumber string) *CleanedMessageBuilder {
	return &CleanedMessageBuilder{roomNumber: roomNumber}
}

func (b *CleanedMessageBuilder) Build() string {
	return fmt.Sprintf("✅ Phòng %s đã được dọn xong.", b.roomNumber)
}
