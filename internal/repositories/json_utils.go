package repositories

import (
	"database/sql"
	"encoding/json"
	"log"
)

// decodeStringList decodes a JSON array column. Malformed admin-entered data
// degrades to an empty set instead of failing the row.
func decodeStringList(raw sql.NullString, column, id string) []string {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		log.Printf("failed to decode %s for item %s: %v", column, id, err)
		return nil
	}
	return out
}

func encodeStringList(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}
