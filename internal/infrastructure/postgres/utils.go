package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de Postgres para violación de constraint UNIQUE.
const uniqueViolationCode = "23505"

// isUniqueViolation informa si err viene de un constraint único violado: SKU de
// producto repetido, email de usuario ya registrado en el tenant o fila de
// ledger (branch, product) duplicada. Los repositorios lo traducen a ErrDuplicate.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
