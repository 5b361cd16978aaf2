package helpers

import (
	"database/sql"
	"time"
)

// GetNullString converts a string pointer to sql.NullString.
// If the pointer is nil, returns an empty NullString.
func GetNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// GetNullTime converts a time pointer to sql.NullTime.
// If the pointer is nil, returns an empty NullTime.
func GetNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// GetNullFloat64 converts a float pointer to sql.NullFloat64.
// If the pointer is nil, returns an empty NullFloat64.
func GetNullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// StringPtr returns a pointer to the NullString value, or nil when invalid.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// TimePtr returns a pointer to the NullTime value, or nil when invalid.
func TimePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

// Float64Ptr returns a pointer to the NullFloat64 value, or nil when invalid.
func Float64Ptr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
