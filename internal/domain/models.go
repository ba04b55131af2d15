package domain

import "time"

type Order struct {
	ID                 int64       `db:"id"`
	UserID             int64       `db:"user_id"`
	CompanyID          int64       `db:"company_id"`
	AddressID          *int64      `db:"address_id"`
	Status             OrderStatus `db:"status"`
	Number             *string     `db:"number"`
	ErrorCode          *ErrorCode  `db:"error_code"`
	SendIikoAmount     int         `db:"send_iiko_amount"`
	DeliveryType       int         `db:"delivery_type"`
	PayType            PayType     `db:"pay_type"`
	PaymentStatus      *int        `db:"payment_status"`
	Birthday           bool        `db:"birthday"`
	IsMobile           bool        `db:"is_mobile"`
	Change             *float64    `db:"change"`
	FinalSum           float64     `db:"final_sum"`
	Comment            *string     `db:"comment"`
	DeliveryAt         *string     `db:"delivery_at"`
	ExpectedDeliveryAt *string     `db:"expected_delivery_at"`
	HelperID           *string     `db:"helper_id"`
	UserName           string      `db:"user_name"`
	UserPhone          string      `db:"user_phone"`
	CreatedAt          time.Time   `db:"created_at"`
}

type OrderItem struct {
	ID              int64               `db:"id"`
	OrderID         int64               `db:"order_id"`
	ProductSourceID string              `db:"product_source_id"`
	Quantity        float64             `db:"quantity"`
	Modifiers       []OrderItemModifier `db:"-"`
}

type OrderItemModifier struct {
	ID            int64  `db:"id"`
	SourceID      string `db:"source_id"`
	GroupSourceID string `db:"group_source_id"`
}

type UserAddress struct {
	ID           int64   `db:"id"`
	Address      string  `db:"address"`
	HomeNumber   string  `db:"home_number"`
	Building     string  `db:"building"`
	Entrance     string  `db:"entrance"`
	Floor        string  `db:"floor"`
	Apartment    string  `db:"apartment"`
	Intercom     string  `db:"intercom"`
	Comment      string  `db:"comment"`
	Lat          float64 `db:"lat"`
	Lng          float64 `db:"lng"`
	ClassifierID string  `db:"classifier_id"`
	CityName     string  `db:"city_name"`
}

type Company struct {
	ID               int64  `db:"id"`
	Name             string `db:"name"`
	SourceID         string `db:"source_id"`
	TerminalSourceID string `db:"terminal_source_id"`
	CitySourceID     string `db:"city_source_id"`
	UTCOffset        int    `db:"utc_offset"`
	Version          int64  `db:"version"`
}

type Region struct {
	ID       int64  `db:"id"`
	SourceID string `db:"source_id"`
	Name     string `db:"name"`
}

// OrdersIikoSync links one submission attempt to the vendor correlation id
// and the last known vendor status. One row per attempt, never updated.
type OrdersIikoSync struct {
	ID            int64     `db:"id"`
	OrderID       int64     `db:"order_id"`
	Status        string    `db:"status"`
	CorrelationID string    `db:"correlation_id"`
	IikoOrderID   string    `db:"iiko_order_id"`
	CreatedAt     time.Time `db:"created_at"`
}

// ReconcileItem is the reconciliation working set: a sync-join row with the
// order fields the status flow needs, joined in one query.
type ReconcileItem struct {
	OrderID          int64
	IikoOrderID      string
	OrderStatus      OrderStatus
	SendIikoAmount   int
	HelperID         *string
	UserID           int64
	IsMobile         bool
	CompanySourceID  string
}

const (
	SyncStatusPending = "pending"
	SyncStatusSuccess = "success"
)

// DiscountFilter describes a discount lookup: every Include substring must
// occur in the name, no Exclude substring may, and the row version must be at
// least MinVersion.
type DiscountFilter struct {
	MinVersion int64
	Include    []string
	Exclude    []string
}
