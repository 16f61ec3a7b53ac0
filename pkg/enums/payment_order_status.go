package enums

// PaymentOrderStatus mirrors the gateway lifecycle for a payment order.
type PaymentOrderStatus string

const (
	PaymentOrderStatusCreated  PaymentOrderStatus = "created"
	PaymentOrderStatusPaid     PaymentOrderStatus = "paid"
	PaymentOrderStatusFailed   PaymentOrderStatus = "failed"
	PaymentOrderStatusCanceled PaymentOrderStatus = "canceled"
)

// String implements fmt.Stringer.
func (s PaymentOrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known PaymentOrderStatus.
func (s PaymentOrderStatus) IsValid() bool {
	switch s {
	case PaymentOrderStatusCreated, PaymentOrderStatusPaid, PaymentOrderStatusFailed, PaymentOrderStatusCanceled:
		return true
	}
	return false
}
