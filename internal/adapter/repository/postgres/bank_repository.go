package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
)

type BankRepository struct {
	db *sql.DB
}

func NewBankRepository(db *sql.DB) *BankRepository {
	return &BankRepository{db: db}
}

func (r *BankRepository) Create(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	const query = `
INSERT INTO bank (name, address, phone, swift_code)
VALUES ($1, $2, $3, $4)
RETURNING id`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		bank.Name,
		bank.Address,
		bank.Phone,
		bank.SwiftCode,
	).Scan(&bank.ID); err != nil {
		return domain.Bank{}, fmt.Errorf("create bank: %w", err)
	}
	return bank, nil
}

func (r *BankRepository) GetByID(ctx context.Context, id string) (domain.Bank, error) {
	const query = `SELECT id, name, address, phone, swift_code FROM bank WHERE id::text = $1`

	var bank domain.Bank
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&bank.ID,
		&bank.Name,
		&bank.Address,
		&bank.Phone,
		&bank.SwiftCode,
	)
	if err == sql.ErrNoRows {
		return domain.Bank{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.Bank{}, fmt.Errorf("get bank: %w", err)
	}
	return bank, nil
}

func (r *BankRepository) List(ctx context.Context) ([]domain.Bank, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, address, phone, swift_code FROM bank ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	defer rows.Close()

	banks := make([]domain.Bank, 0)
	for rows.Next() {
		var bank domain.Bank
		if err := rows.Scan(&bank.ID, &bank.Name, &bank.Address, &bank.Phone, &bank.SwiftCode); err != nil {
			return nil, fmt.Errorf("scan bank row: %w", err)
		}
		banks = append(banks, bank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank rows: %w", err)
	}
	return banks, nil
}
