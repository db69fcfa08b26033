package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Game is a single game record as it is stored and served.
// ID is assigned by the store on create and never changes afterwards.
type Game struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"releaseDate"`
}

// ReleaseDate accepts either a JSON string ("1998") or a JSON integer year (1998)
// and keeps the textual form.
type ReleaseDate string

// UnmarshalJSON implements json.Unmarshaler.
func (d *ReleaseDate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*d = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = ReleaseDate(s)
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("releaseDate must be a string or an integer year: %s", b)
	}
	*d = ReleaseDate(strconv.FormatInt(n, 10))
	return nil
}

// String returns the textual release date.
func (d ReleaseDate) String() string { return string(d) }
