package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// StringList stores a []string column as jsonb.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}

	data, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal string list")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}

		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported string list source type %T", src)
	}

	return errors.Wrap(json.Unmarshal(data, l), "failed to unmarshal string list")
}
