package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TicketStatus represents the status of a sales ticket
type TicketStatus int

const (
	TicketStatusOpen     TicketStatus = 0
	TicketStatusBilled   TicketStatus = 1
	TicketStatusClosed   TicketStatus = 2
	TicketStatusCanceled TicketStatus = 3
)

func (s TicketStatus) String() string {
	return [...]string{"Open", "Billed", "Closed", "Canceled"}[s]
}

// IsValid reports whether the value is a known status
func (s TicketStatus) IsValid() bool {
	return s >= TicketStatusOpen && s <= TicketStatusCanceled
}

func (s TicketStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TicketStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TicketStatus(i)
		return nil
	}
	switch str {
	case "Open":
		*s = TicketStatusOpen
	case "Billed":
		*s = TicketStatusBilled
	case "Closed":
		*s = TicketStatusClosed
	case "Canceled":
		*s = TicketStatusCanceled
	}
	return nil
}

func (s TicketStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TicketStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TicketStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TicketStatus(v)
	case int:
		*s = TicketStatus(v)
	}
	return nil
}
