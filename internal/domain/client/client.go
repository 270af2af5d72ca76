package client

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Common errors
var (
	ErrEmptyName  = errors.New("client name cannot be empty")
	ErrInvalidCPF = errors.New("cpf must be an 11-digit string")
)

// Address is an optional postal address attached to a client.
type Address struct {
	Street     string
	Number     string
	District   string
	City       string
	State      string
	PostalCode string
}

// Client represents a bank client. Identity is defined solely by the CPF;
// contact fields may change over the client's lifetime.
type Client struct {
	Name      string
	CPF       string // 11-digit national id, primary key
	Email     string
	Phone     string
	BirthDate time.Time
	Address   *Address
}

// New creates a client after validating name and CPF format.
func New(name, cpf, email, phone string, birthDate time.Time) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !ValidCPF(cpf) {
		return nil, ErrInvalidCPF
	}

	return &Client{
		Name:      name,
		CPF:       cpf,
		Email:     email,
		Phone:     phone,
		BirthDate: birthDate,
	}, nil
}

// ValidCPF reports whether s is an 11-digit string. Checksum digits are
// not verified; this system only uses the CPF as a lookup key.
func ValidCPF(s string) bool {
	if len(s) != 11 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Age returns the client's age in whole years as of today.
func (c *Client) Age() int {
	now := time.Now()
	years := now.Year() - c.BirthDate.Year()
	if now.YearDay() < c.BirthDate.YearDay() {
		years--
	}
	return years
}

// Equal reports whether both clients share the same CPF.
func (c *Client) Equal(other *Client) bool {
	return other != nil && c.CPF == other.CPF
}

func (c *Client) String() string {
	return fmt.Sprintf("%s (CPF: %s, email: %s)", c.Name, c.CPF, c.Email)
}
