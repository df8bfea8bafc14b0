package schema

import (
	"encoding/json"
	"time"
)

// AccountCreated is the wire format of the account created event.
type AccountCreated struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *AccountCreated) Marshal() ([]byte, error) {
	return json.Marshal(a)
}

func (a *AccountCreated) Unmarshal(data []byte) error {
	return json.Unmarshal(data, a)
}
