package models

import (
	"strings"

	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/email"
)

// Customer is the profile row a customer's credential is scoped to.
type Customer struct {
	ID      domain.CustomerID `json:"id"`
	UserID  domain.UserID     `json:"userId"`
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Phone   string            `json:"phone"`
	Address string            `json:"address"`
}

// Agent is the profile row an agent's credential is scoped to.
type Agent struct {
	ID     domain.AgentID `json:"id"`
	UserID domain.UserID  `json:"userId"`
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Phone  string         `json:"phone"`
}

// RegisterCustomerRequest creates a login and a customer profile together.
type RegisterCustomerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (r *RegisterCustomerRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = email.Normalize(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
}

func (r *RegisterCustomerRequest) Validate() error {
	if r.Username == "" {
		return dErrors.New(dErrors.CodeValidation, "username is required")
	}
	return validateContact(r.Name, r.Email, r.Phone)
}

// AddAgentRequest creates a login and an agent profile together.
type AddAgentRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (r *AddAgentRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = email.Normalize(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *AddAgentRequest) Validate() error {
	if r.Username == "" {
		return dErrors.New(dErrors.CodeValidation, "username is required")
	}
	return validateContact(r.Name, r.Email, r.Phone)
}

// ProfileUpdate replaces the editable contact fields. Address is ignored for
// agents.
type ProfileUpdate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (u *ProfileUpdate) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = email.Normalize(u.Email)
	u.Phone = strings.TrimSpace(u.Phone)
	u.Address = strings.TrimSpace(u.Address)
}

func (u *ProfileUpdate) Validate() error {
	return validateContact(u.Name, u.Email, u.Phone)
}

func validateContact(name, addr, phone string) error {
	if name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if !email.IsValid(addr) {
		return dErrors.New(dErrors.CodeValidation, "a valid email is required")
	}
	if len(phone) > 32 {
		return dErrors.New(dErrors.CodeValidation, "phone is too long")
	}
	return nil
}
