package dbx

import "database/sql"

// ToNullString maps an empty string to NULL. Used for optional TEXT columns
// where the domain represents absence as "".
func ToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// FromNullString maps NULL back to the empty string.
func FromNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
