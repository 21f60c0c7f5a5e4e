package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ChallanStatus represents the status of a delivery challan
type ChallanStatus int

const (
	ChallanStatusPending   ChallanStatus = 0
	ChallanStatusDelivered ChallanStatus = 1
	ChallanStatusReturned  ChallanStatus = 2
)

func (s ChallanStatus) String() string {
	return [...]string{"Pending", "Delivered", "Returned"}[s]
}

// IsValid reports whether the value is a known status
func (s ChallanStatus) IsValid() bool {
	return s >= ChallanStatusPending && s <= ChallanStatusReturned
}

func (s ChallanStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ChallanStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ChallanStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = ChallanStatusPending
	case "Delivered":
		*s = ChallanStatusDelivered
	case "Returned":
		*s = ChallanStatusReturned
	}
	return nil
}

func (s ChallanStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ChallanStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ChallanStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ChallanStatus(v)
	case int:
		*s = ChallanStatus(v)
	}
	return nil
}
