package domain

import "time"

type UserProfile struct {
	ID                      string
	Email                   string
	PasswordHash            string
	Name                    string
	Surname                 string
	TaxIdentificationNumber string
	CreatedAt               time.Time
}
