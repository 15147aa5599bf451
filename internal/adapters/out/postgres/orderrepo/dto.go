// Package orderrepo persists order aggregates in the orders and order_items
// tables.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of an order. Status and payment enums are stored as
// their integer values.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryAddressID uuid.UUID       `gorm:"type:uuid;not null"`
	DeliveryPartnerID *uuid.UUID      `gorm:"type:uuid;index"`
	TotalPrice        decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Status            int             `gorm:"not null;index"`
	PaymentMethod     int             `gorm:"not null"`
	PaymentStatus     int             `gorm:"not null"`
	TransactionID     string          `gorm:"size:255"`
	CreatedAt         time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt         time.Time       `gorm:"not null;autoUpdateTime:false"`
	Version           int             `gorm:"not null"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item. Position keeps the order of the request.
type OrderItemDTO struct {
	ID         uint            `gorm:"primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position   int             `gorm:"not null"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := o.DeliveryPartner(); id != nil {
		raw := id.Google()
		partnerID = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    o.ID().Google(),
			Position:   i,
			MenuItemID: item.MenuItemID().Google(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:                o.ID().Google(),
		CustomerID:        o.CustomerID().Google(),
		RestaurantID:      o.RestaurantID().Google(),
		DeliveryAddressID: o.DeliveryAddressID().Google(),
		DeliveryPartnerID: partnerID,
		TotalPrice:        o.TotalPrice().Amount(),
		Status:            int(o.Status()),
		PaymentMethod:     int(o.Payment().Method()),
		PaymentStatus:     int(o.Payment().Status()),
		TransactionID:     o.Payment().TransactionID(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
		Version:           o.Version(),
		Items:             items,
	}
}

// toDomain rebuilds the aggregate. Items must be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromGoogle(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromGoogle(dto.DeliveryAddressID)
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.DeliveryPartnerID != nil {
		pID, partnerErr := kernel.UUIDFromGoogle(*dto.DeliveryPartnerID)
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, idErr := kernel.UUIDFromGoogle(itemDTO.MenuItemID)
		if idErr != nil {
			return nil, idErr
		}
		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewLineItem(menuItemID, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payment := order.RestorePayment(
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		dto.TransactionID,
	)

	return order.RestoreOrder(
		id, customerID, restaurantID, addressID,
		items, total, order.Status(dto.Status), partnerID, payment,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), dto.Version,
	), nil
}
