package entity

import "time"

// Métodos de pago aceptados en el POS.
const (
	PaymentCash     = "cash"
	PaymentDebit    = "debit"
	PaymentCredit   = "credit"
	PaymentTransfer = "transfer"
)

// ValidPaymentMethod informa si el método de pago es uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentDebit, PaymentCredit, PaymentTransfer:
		return true
	}
	return false
}

// Sale es una venta presencial (POS), inmutable después de creada.
// Total se calcula en el servidor: Σ(quantity × price de cada línea).
type Sale struct {
	ID            string
	BranchID      string
	UserID        string // vendedor que realiza la venta (desde el token)
	Total         int64  // CLP
	PaymentMethod string
	CreatedAt     time.Time
}

// SaleItem es una línea de venta. Price es el precio unitario congelado al
// momento de la venta: cambios posteriores de Product.Price no la afectan.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64 // >= 1
	Price     int64 // precio unitario histórico en CLP
}
