package order

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// PaymentMethod is how the customer chose to pay. The core only keeps books on
// the payment; collecting money is done elsewhere.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	PaymentMethodCOD
	PaymentMethodUPI
	PaymentMethodNetBanking
	PaymentMethodCard
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown:    "Unknown",
		PaymentMethodCOD:        "COD",
		PaymentMethodUPI:        "UPI",
		PaymentMethodNetBanking: "Net-Banking",
		PaymentMethodCard:       "Card",
	}
}

// ParsePaymentMethod converts "COD", "UPI", "Net-Banking" or "Card".
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for m, str := range getPaymentMethodStrings() {
		if m != PaymentMethodUnknown && strings.EqualFold(str, s) {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a supported payment method", s))
}

func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return "Unknown"
}

// Validate fails for PaymentMethodUnknown and out-of-range values.
func (m PaymentMethod) Validate() error {
	if m <= PaymentMethodUnknown || m > PaymentMethodCard {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// PaymentStatus is the bookkeeping state of the payment.
type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusPending
	PaymentStatusPaid
	PaymentStatusFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "Unknown",
		PaymentStatusPending: "Pending",
		PaymentStatusPaid:    "Paid",
		PaymentStatusFailed:  "Failed",
	}
}

// ParsePaymentStatus converts "Pending", "Paid" or "Failed".
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for st, str := range getPaymentStatusStrings() {
		if st != PaymentStatusUnknown && strings.EqualFold(str, s) {
			return st, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Payment is the method and bookkeeping status of an order's payment.
type Payment struct {
	method        PaymentMethod
	status        PaymentStatus
	transactionID string
}

// NewPayment starts the books for a freshly placed order: status Pending.
func NewPayment(method PaymentMethod) (Payment, error) {
	if err := method.Validate(); err != nil {
		return Payment{}, err
	}
	return Payment{method: method, status: PaymentStatusPending}, nil
}

// RestorePayment rebuilds a Payment read from storage.
func RestorePayment(method PaymentMethod, status PaymentStatus, transactionID string) Payment {
	return Payment{method: method, status: status, transactionID: transactionID}
}

func (p Payment) Method() PaymentMethod { return p.method }

func (p Payment) Status() PaymentStatus { return p.status }

// TransactionID is empty until an external gateway reports one.
func (p Payment) TransactionID() string { return p.transactionID }

// markPaid returns the payment with status Paid, whatever the method.
func (p Payment) markPaid() Payment {
	p.status = PaymentStatusPaid
	return p
}
