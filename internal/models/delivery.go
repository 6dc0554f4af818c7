package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type DeliveryPerson struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Vehicle  string    `json:"vehicle"`
	Active   bool      `json:"active"`
	JoinDate time.Time `json:"joinDate"`
}

type DeliveryAssignment struct {
	ID               string    `json:"_id"`
	OrderID          string    `json:"orderId"`
	DeliveryPersonID string    `json:"deliveryPersonId"`
	Status           string    `json:"status"`
	AssignedAt       time.Time `json:"assignedAt"`
	Notes            string    `json:"notes,omitempty"`
}

func (p *DeliveryPerson) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

func (a *DeliveryAssignment) Validate() error {
	if a.OrderID == "" {
		return errors.New("orderId is required")
	}
	if a.DeliveryPersonID == "" {
		return errors.New("deliveryPersonId is required")
	}
	if !IsAssignmentStatus(a.Status) {
		return fmt.Errorf("unknown assignment status %q", a.Status)
	}
	return nil
}
