package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// insertChunkSize keeps named bulk inserts well inside driver parameter limits
const insertChunkSize = 100

// marshalList encodes a string list as the JSON stored in text columns
func marshalList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(b), nil
}

// marshalListOpt is marshalList for optional (Spanish) variants; an empty
// list is stored as NULL so SQL fallback picks the English column
func marshalListOpt(v []string) (sql.NullString, error) {
	if len(v) == 0 {
		return sql.NullString{}, nil
	}
	s, err := marshalList(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: s, Valid: true}, nil
}

// unmarshalList decodes a JSON text column back into a string list
func unmarshalList(s string) ([]string, error) {
	var v []string
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	return v, nil
}

// nullIfEmpty stores empty optional text as NULL
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
