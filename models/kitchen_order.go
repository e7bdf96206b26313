package models

import (
	"encoding/json"
	"time"
)

// Kitchen order status constants
const (
	KitchenOrderStatusPending   = 0
	KitchenOrderStatusPreparing = 1
	KitchenOrderStatusServed    = 2
	KitchenOrderStatusCancelled = 3
)

// KitchenOrder là phiếu bếp (KOT) gửi cho nhân viên bếp
type KitchenOrder struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	TableID   uint            `json:"tableId" gorm:"index"`
	Table     *Table          `json:"table,omitempty" gorm:"foreignKey:TableID"`
	Items     json.RawMessage `json:"items" gorm:"type:json"` // [{name, quantity, note}]
	Status    int             `json:"status" gorm:"default:0"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

type KitchenOrderRequest struct {
	TableID uint            `json:"tableId" binding:"required"`
	Items   json.RawMessage `json:"items" binding:"required"`
	Notes   string          `json:"notes,omitempty"`
}
