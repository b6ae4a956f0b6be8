package models

import "time"

// Tenant maps the tenants table.
type Tenant struct {
	TenantID      string    `db:"tenant_id"`
	Name          string    `db:"name"`
	BaseCurrency  string    `db:"base_currency"`
	LocalCurrency string    `db:"local_currency"`
	CreatedAt     time.Time `db:"created_at"`
}

// PaymentMethod maps the payment_methods table.
type PaymentMethod struct {
	MethodID string `db:"method_id"`
	TenantID string `db:"tenant_id"`
	Name     string `db:"name"`
	IsCash   bool   `db:"is_cash"`
	Position int    `db:"position"`
}
