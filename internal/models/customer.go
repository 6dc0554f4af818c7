package models

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

type Customer struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phoneNumber"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return errors.New("a valid email is required")
	}
	return nil
}
