package queries

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemView is one line of an order as shown to its readers.
type OrderItemView struct {
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
}

// OrderView is the read model shared by the order listings.
type OrderView struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	RestaurantID      kernel.UUID
	DeliveryAddressID kernel.UUID
	DeliveryPartnerID *kernel.UUID
	Items             []OrderItemView
	TotalPrice        kernel.Money
	Status            order.Status
	PaymentMethod     order.PaymentMethod
	PaymentStatus     order.PaymentStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

const orderViewColumns = `
	id,
	customer_id,
	restaurant_id,
	delivery_address_id,
	delivery_partner_id,
	total_price,
	status,
	payment_method,
	payment_status,
	created_at,
	updated_at`

// loadOrderViews runs a raw orders query selecting orderViewColumns and
// attaches the line items of every returned order in one further query.
func loadOrderViews(ctx context.Context, db *gorm.DB, sql string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			id, customerID, restaurantID, addressID uuid.UUID
			partnerID                               *uuid.UUID
			total                                   decimal.Decimal
			status, method, paymentStatus           int
			view                                    OrderView
		)
		if err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&addressID,
			&partnerID,
			&total,
			&status,
			&method,
			&paymentStatus,
			&view.CreatedAt,
			&view.UpdatedAt,
		); err != nil {
			return nil, err
		}

		var idErrs [5]error
		view.ID, idErrs[0] = kernel.UUIDFromGoogle(id)
		view.CustomerID, idErrs[1] = kernel.UUIDFromGoogle(customerID)
		view.RestaurantID, idErrs[2] = kernel.UUIDFromGoogle(restaurantID)
		view.DeliveryAddressID, idErrs[3] = kernel.UUIDFromGoogle(addressID)
		if partnerID != nil {
			var p kernel.UUID
			p, idErrs[4] = kernel.UUIDFromGoogle(*partnerID)
			view.DeliveryPartnerID = &p
		}
		if err = errors.Join(idErrs[:]...); err != nil {
			return nil, err
		}
		if view.TotalPrice, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		view.Status = order.Status(status)
		view.PaymentMethod = order.PaymentMethod(method)
		view.PaymentStatus = order.PaymentStatus(paymentStatus)
		view.Items = make([]OrderItemView, 0)

		views = append(views, view)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return views, nil
	}
	if err = attachItems(ctx, db, views, ids); err != nil {
		return nil, err
	}
	return views, nil
}

func attachItems(ctx context.Context, db *gorm.DB, views []OrderView, ids []uuid.UUID) error {
	index := make(map[uuid.UUID]int, len(views))
	for i, id := range ids {
		index[id] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, menuItemID uuid.UUID
			quantity            int
			unitPrice           decimal.Decimal
		)
		if err = rows.Scan(&orderID, &menuItemID, &quantity, &unitPrice); err != nil {
			return err
		}
		price, moneyErr := kernel.NewMoney(unitPrice)
		if moneyErr != nil {
			return moneyErr
		}
		itemID, idErr := kernel.UUIDFromGoogle(menuItemID)
		if idErr != nil {
			return idErr
		}
		i, ok := index[orderID]
		if !ok {
			continue
		}
		views[i].Items = append(views[i].Items, OrderItemView{
			MenuItemID: itemID,
			Quantity:   quantity,
			UnitPrice:  price,
		})
	}
	return rows.Err()
}
