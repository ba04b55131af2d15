package domain

// OrderStatus is the local ordinal scale for delivery progress. Higher means
// further along; comparisons against stored values gate progress events.
type OrderStatus int

const (
	StatusUnconfirmed      OrderStatus = 1
	StatusWaitCooking      OrderStatus = 2
	StatusReadyForCooking  OrderStatus = 3
	StatusCookingStarted   OrderStatus = 4
	StatusCookingCompleted OrderStatus = 5
	StatusWaiting          OrderStatus = 6
	StatusOnWay            OrderStatus = 7
	StatusDelivered        OrderStatus = 8
	StatusClosed           OrderStatus = 9
	StatusCancelled        OrderStatus = 10
	StatusError            OrderStatus = 99
)

var iikoStatuses = map[string]OrderStatus{
	"Unconfirmed":      StatusUnconfirmed,
	"WaitCooking":      StatusWaitCooking,
	"ReadyForCooking":  StatusReadyForCooking,
	"CookingStarted":   StatusCookingStarted,
	"CookingCompleted": StatusCookingCompleted,
	"Waiting":          StatusWaiting,
	"OnWay":            StatusOnWay,
	"Delivered":        StatusDelivered,
	"Closed":           StatusClosed,
	"Cancelled":        StatusCancelled,
}

// StatusFromIiko maps a vendor delivery status string onto the local scale.
func StatusFromIiko(s string) (OrderStatus, bool) {
	st, ok := iikoStatuses[s]
	return st, ok
}

// StatusFromCreation maps the delivery creation status returned on submit.
func StatusFromCreation(s string) OrderStatus {
	if s == "Error" {
		return StatusError
	}
	return StatusUnconfirmed
}

// IsDeliveredRange reports whether the ordinal falls in the range the status
// flow treats as delivered (Delivered..Cancelled, matching upstream behavior).
func (s OrderStatus) IsDeliveredRange() bool {
	return s >= StatusDelivered && s <= StatusCancelled
}

// IsTerminal reports whether no further transition is expected.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusClosed || s == StatusError
}

type DeliveryType int

const (
	DeliveryTypePickup  = 0
	DeliveryTypeCourier = 1
)

// ServiceTypeFor returns the vendor order service type for a delivery type.
func ServiceTypeFor(deliveryType int) string {
	if deliveryType == DeliveryTypePickup {
		return "DeliveryPickUp"
	}
	return "DeliveryByCourier"
}

type PayType int

const (
	PayTypeCash  PayType = 1
	PayTypeDKPay PayType = 2
	PayTypeYDPay PayType = 3
	PayTypeInet  PayType = 4
	PayTypeVisa  PayType = 5
)

// PaymentStatusSuccess is the upstream payment module's success value.
const PaymentStatusSuccess = 2

func (p PayType) Name() string {
	switch p {
	case PayTypeCash:
		return "CASH"
	case PayTypeDKPay:
		return "DKPAY"
	case PayTypeYDPay:
		return "YDPAY"
	case PayTypeInet:
		return "INET"
	case PayTypeVisa:
		return "VISA"
	}
	return "UNKNOWN"
}

// IikoKind returns the vendor payment kind text.
func (p PayType) IikoKind() string {
	if p == PayTypeCash {
		return "Cash"
	}
	return "Card"
}
