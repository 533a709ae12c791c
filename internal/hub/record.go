// Path: internal/hub/record.go
package hub

import (
	"encoding/json"
	"strconv"
	"time"
)

// The hub API is loosely typed: counts arrive as numbers or strings,
// timestamps in a couple of RFC3339 variants, and optional fields are
// sometimes null and sometimes missing entirely. The flex* types below
// absorb all of that so that decoding a RawDataset can only fail when the
// entry is not a JSON object at all.

// flexInt decodes a JSON number or numeric string, defaulting to zero on
// anything unreadable.
type flexInt int

// UnmarshalJSON implements the json.Unmarshaler interface for flexInt.
func (f *flexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexInt(n)
		return nil
	}

	var fl float64
	if err := json.Unmarshal(data, &fl); err == nil {
		*f = flexInt(int(fl))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			*f = flexInt(n)
		}
	}
	return nil
}

// flexInt64 decodes a JSON number or numeric string, remembering whether a
// usable value was present at all. Absent or unreadable values stay invalid
// so callers can keep "unknown" distinct from zero.
type flexInt64 struct {
	value int64
	valid bool
}

// UnmarshalJSON implements the json.Unmarshaler interface for flexInt64.
func (f *flexInt64) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		f.value, f.valid = n, true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.value, f.valid = n, true
		}
	}
	return nil
}

func (f flexInt64) ptr() *int64 {
	if !f.valid {
		return nil
	}
	v := f.value
	return &v
}

// flexTime decodes the timestamp formats the hub emits, leaving the zero
// time when the value is absent or unreadable.
type flexTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// UnmarshalJSON implements the json.Unmarshaler interface for flexTime.
func (f *flexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t
			return nil
		}
	}
	return nil
}

// flexStrings decodes a JSON string array, defaulting to nil on anything
// unreadable.
type flexStrings []string

// UnmarshalJSON implements the json.Unmarshaler interface for flexStrings.
func (f *flexStrings) UnmarshalJSON(data []byte) error {
	var ss []string
	if err := json.Unmarshal(data, &ss); err == nil {
		*f = ss
	}
	return nil
}

// Sibling is one file entry inside a dataset repository.
type Sibling struct {
	Rfilename string `json:"rfilename"`
}

// flexSiblings decodes the siblings file list, remembering whether the hub
// sent one at all; the file count stays unknown when it did not.
type flexSiblings struct {
	items []Sibling
	valid bool
}

// UnmarshalJSON implements the json.Unmarshaler interface for flexSiblings.
func (f *flexSiblings) UnmarshalJSON(data []byte) error {
	var items []Sibling
	if err := json.Unmarshal(data, &items); err == nil && items != nil {
		f.items, f.valid = items, true
	}
	return nil
}

// RawDataset is the wire shape of one dataset entry from the hub API.
// Every field except the id tolerates being missing, null, or mistyped.
type RawDataset struct {
	ID           string       `json:"id"`
	Description  string       `json:"description"`
	Downloads    flexInt      `json:"downloads"`
	Likes        flexInt      `json:"likes"`
	CreatedAt    flexTime     `json:"createdAt"`
	LastModified flexTime     `json:"lastModified"`
	Tags         flexStrings  `json:"tags"`
	SizeInBytes  flexInt64    `json:"size_in_bytes"`
	Siblings     flexSiblings `json:"siblings"`
}
