package payments

// SessionStatusComplete is the provider's terminal status for a paid session.
const SessionStatusComplete = "complete"

// Session is one payment attempt at the checkout provider, queried by its id.
type Session struct {
	ID              string            `json:"id"`
	URL             string            `json:"url"`
	Status          string            `json:"status"`
	PaymentStatus   string            `json:"payment_status"`
	PaymentIntent   string            `json:"payment_intent"`
	AmountTotal     int64             `json:"amount_total"`
	Metadata        map[string]string `json:"metadata"`
	CustomerDetails CustomerDetails   `json:"customer_details"`
}

type CustomerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateSessionParams describes the single line item and redirect URLs for a
// new checkout session. Amount is in the smallest currency unit.
type CreateSessionParams struct {
	ProductName        string
	ProductDescription string
	ProductImage       string
	Currency           string
	UnitAmount         int64
	Quantity           int64
	CustomerEmail      string
	SuccessURL         string
	CancelURL          string
	Metadata           map[string]string
}
