package models

import (
	"errors"
	"strings"
)

type CreateUserProfileRequest struct {
	Email                   string `json:"email"`
	Password                string `json:"password"`
	Name                    string `json:"name"`
	Surname                 string `json:"surname"`
	TaxIdentificationNumber string `json:"taxIdentificationNumber"`
}

func (r CreateUserProfileRequest) Validate() error {
	var errs []string

	email := strings.TrimSpace(r.Email)
	if email == "" || !strings.Contains(email, "@") {
		errs = append(errs, "a valid email is required")
	}
	if len(strings.TrimSpace(r.Password)) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	if isBlank(r.Name) {
		errs = append(errs, "name is required")
	}
	if isBlank(r.Surname) {
		errs = append(errs, "surname is required")
	}
	if isBlank(r.TaxIdentificationNumber) {
		errs = append(errs, "taxIdentificationNumber is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type UserProfileResponse struct {
	ID                      string `json:"id"`
	Email                   string `json:"email"`
	Name                    string `json:"name"`
	Surname                 string `json:"surname"`
	TaxIdentificationNumber string `json:"taxIdentificationNumber"`
	CreatedAt               string `json:"createdAt"`
}
