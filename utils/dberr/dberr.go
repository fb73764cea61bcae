package dberr

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// DuplicateKey reports whether err is a unique key violation and, if so, the
// name of the violated key (e.g. "uq_leads_email").
func DuplicateKey(err error) (string, bool) {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) || myErr.Number != mysqlDuplicateEntry {
		return "", false
	}

	// Duplicate entry 'x' for key 'leads.uq_leads_email'
	msg := myErr.Message
	idx := strings.LastIndex(msg, "for key '")
	if idx < 0 {
		return "", true
	}
	key := strings.TrimSuffix(msg[idx+len("for key '"):], "'")
	if dot := strings.LastIndex(key, "."); dot >= 0 {
		key = key[dot+1:]
	}
	return key, true
}

// IsDuplicateKey reports whether err violates the named unique key.
func IsDuplicateKey(err error, key string) bool {
	got, ok := DuplicateKey(err)
	return ok && got == key
}
