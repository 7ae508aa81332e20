package domain

type Bank struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	SwiftCode string
}
