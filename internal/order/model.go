package order

// Order is the persisted record for a checkout. Payment fields from the
// submission are deliberately not part of it; they only live in OrderInfo on
// the notification side.
type Order struct {
	ID           int    `json:"id"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Total        string `json:"total"`
}

// CheckoutRequest is the full checkout submission, a superset of Order.
type CheckoutRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	ZipCode      string `json:"zipCode" validate:"required"`
	Total        string `json:"total" validate:"required,decimalstr"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,min=8,max=15"`
	CardNumber   string `json:"cardNumber" validate:"required,len=16"`
	ExpiryDate   string `json:"expiryDate" validate:"required,expiry"`
	CVV          string `json:"cvv" validate:"required,min=3,max=4"`
}

// Order extracts the fields that get persisted. The id is assigned by the
// repository.
func (r CheckoutRequest) Order() Order {
	return Order{
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
		Total:        r.Total,
	}
}

type PaymentInfo struct {
	CardNumberLast4 string `json:"cardNumberLast4"`
	ExpiryDate      string `json:"expiryDate"`
}

// OrderInfo is the server-internal superset kept for the notification relay.
// It is never returned to HTTP clients.
type OrderInfo struct {
	Order
	PaymentInfo PaymentInfo `json:"paymentInfo"`
	PhoneNumber string      `json:"phoneNumber"`
}
