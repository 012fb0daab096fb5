package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ApplicationStatus represents the review state of an artist application.
type ApplicationStatus int

const (
	ApplicationStatusSubmitted ApplicationStatus = 0
	ApplicationStatusInReview  ApplicationStatus = 1
	ApplicationStatusApproved  ApplicationStatus = 2
	ApplicationStatusRejected  ApplicationStatus = 3
)

func (s ApplicationStatus) String() string {
	names := [...]string{"Submitted", "InReview", "Approved", "Rejected"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Submitted"
	}
	return names[s]
}

func (s ApplicationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ApplicationStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ApplicationStatus(i)
		return nil
	}
	switch str {
	case "Submitted":
		*s = ApplicationStatusSubmitted
	case "InReview":
		*s = ApplicationStatusInReview
	case "Approved":
		*s = ApplicationStatusApproved
	case "Rejected":
		*s = ApplicationStatusRejected
	}
	return nil
}

func (s ApplicationStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ApplicationStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ApplicationStatusSubmitted
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ApplicationStatus(v)
	case int:
		*s = ApplicationStatus(v)
	}
	return nil
}
