package domain

type PaymentMethod string

const (
	PaymentMethodCredit     PaymentMethod = "credit"
	PaymentMethodBank       PaymentMethod = "bank"
	PaymentMethodThirdParty PaymentMethod = "thirdparty"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCredit, PaymentMethodBank, PaymentMethodThirdParty:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentDetails is a closed union over the supported payment methods. Each
// variant carries exactly the field set its method requires; nothing leaks
// between variants.
type PaymentDetails interface {
	Method() PaymentMethod
	isPaymentDetails()
}

type CreditCardDetails struct {
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

func (CreditCardDetails) Method() PaymentMethod { return PaymentMethodCredit }
func (CreditCardDetails) isPaymentDetails()     {}

type BankTransferDetails struct {
	AccountNumber string `json:"accountNumber"`
	BSB           string `json:"bsb"`
}

func (BankTransferDetails) Method() PaymentMethod { return PaymentMethodBank }
func (BankTransferDetails) isPaymentDetails()     {}

type ThirdPartyDetails struct {
	Provider string `json:"provider"`
}

func (ThirdPartyDetails) Method() PaymentMethod { return PaymentMethodThirdParty }
func (ThirdPartyDetails) isPaymentDetails()     {}

// CheckoutRequest is built once per submit attempt and never reused; OrderID
// is freshly generated for every attempt, including retries.
type CheckoutRequest struct {
	CustomerID     string         `json:"customerId"`
	OrderID        string         `json:"orderId"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
	TotalCost      float64        `json:"totalCost"`
}

const (
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

type PaymentResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Invoice string `json:"invoice,omitempty"`
}

func (r *PaymentResult) Succeeded() bool {
	return r != nil && r.Status == PaymentStatusSuccess
}
