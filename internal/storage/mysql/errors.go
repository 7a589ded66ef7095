package mysql

import (
	"database/sql"
	"errors"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"

	"hotel_inventory/internal/domain"
)

// MySQL server error numbers we translate.
const (
	errDupEntry      = 1062
	errNoReferenced  = 1452
	errDataTooLong   = 1406
	errOutOfRange    = 1264
	errRowIsReferred = 1451
)

// uniqueKeyMessages maps unique index names to the message reported on collision.
var uniqueKeyMessages = map[string]string{
	"uq_hotels_name":   "the name has already been taken",
	"uq_hotels_tax_id": "the tax_id has already been taken",
	"uq_rooms_active":  "a room with the same type and accommodation already exists for this hotel",
}

// translate turns driver errors into domain errors. what describes the operation.
func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("%s not found", what)
	}
	var me *gomysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case errDupEntry:
			for key, msg := range uniqueKeyMessages {
				if strings.Contains(me.Message, key) {
					return domain.Conflict("%s", msg)
				}
			}
			return domain.Conflict("duplicate entry")
		case errNoReferenced:
			return domain.Validation("the selected hotel_id is invalid")
		case errDataTooLong, errOutOfRange:
			return domain.Validation("%s", me.Message)
		case errRowIsReferred:
			return domain.Conflict("%s is still referenced", what)
		}
	}
	return domain.Storage(what+" query failed", err)
}
