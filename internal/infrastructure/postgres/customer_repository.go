package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// Columnas de dirección compartidas por facturas fiscales, direcciones de entrega y shop_settings.
const addressColumns = `addr_number, addr_moo, addr_village, addr_soi, addr_road, addr_tambon, addr_amphoe, addr_province, addr_zipcode`

func addressArgs(a entity.Address) []any {
	return []any{a.Number, a.Moo, a.Village, a.Soi, a.Road, a.Tambon, a.Amphoe, a.Province, a.Zipcode}
}

func addressDest(a *entity.Address) []any {
	return []any{&a.Number, &a.Moo, &a.Village, &a.Soi, &a.Road, &a.Tambon, &a.Amphoe, &a.Province, &a.Zipcode}
}

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste la cabecera del cliente (los sub-registros van por ReplaceChildren).
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, email, line_id, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, c.LineID, c.Note, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente con facturas fiscales, direcciones y contactos.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, phone, email, line_id, note, created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.LineID, &c.Note, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if c.TaxInvoices, err = r.taxInvoices(ctx, id); err != nil {
		return nil, err
	}
	if c.Addresses, err = r.addresses(ctx, id); err != nil {
		return nil, err
	}
	if c.Contacts, err = r.contacts(ctx, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// List lista clientes por nombre con paginación. search filtra por nombre, teléfono o email.
func (r *CustomerRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, phone, email, line_id, note, created_at, updated_at
		FROM customers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR phone ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.LineID, &c.Note, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera del cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, phone = $3, email = $4, line_id = $5, note = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Phone, c.Email, c.LineID, c.Note, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceChildren borra y vuelve a insertar los sub-registros del cliente.
func (r *CustomerRepo) ReplaceChildren(ctx context.Context, c *entity.Customer) error {
	for _, table := range []string{"customer_tax_invoices", "customer_addresses", "customer_contacts"} {
		if _, err := r.q.Exec(ctx, `DELETE FROM `+table+` WHERE customer_id = $1`, c.ID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i := range c.TaxInvoices {
		t := &c.TaxInvoices[i]
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		t.CustomerID = c.ID
		args := append([]any{t.ID, c.ID, t.CompanyName, t.TaxID, t.Branch}, addressArgs(t.Address)...)
		_, err := r.q.Exec(ctx, `
			INSERT INTO customer_tax_invoices (id, customer_id, company_name, tax_id, branch, `+addressColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`, args...)
		if err != nil {
			return fmt.Errorf("insert tax invoice: %w", err)
		}
	}

	for i := range c.Addresses {
		a := &c.Addresses[i]
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		a.CustomerID = c.ID
		args := append([]any{a.ID, c.ID, a.Label, a.MapsURL}, addressArgs(a.Address)...)
		_, err := r.q.Exec(ctx, `
			INSERT INTO customer_addresses (id, customer_id, label, maps_url, `+addressColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`, args...)
		if err != nil {
			return fmt.Errorf("insert delivery address: %w", err)
		}
	}

	for i := range c.Contacts {
		ct := &c.Contacts[i]
		if ct.ID == "" {
			ct.ID = uuid.New().String()
		}
		ct.CustomerID = c.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO customer_contacts (id, customer_id, name, position, phone, email, line_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			ct.ID, c.ID, ct.Name, ct.Position, ct.Phone, ct.Email, ct.LineID,
		)
		if err != nil {
			return fmt.Errorf("insert contact: %w", err)
		}
	}
	return nil
}

// Delete elimina el cliente; los sub-registros caen por ON DELETE CASCADE.
// Un cliente con pedidos no se puede borrar (ErrConflict).
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CustomerRepo) taxInvoices(ctx context.Context, customerID string) ([]entity.TaxInvoice, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, customer_id, company_name, tax_id, branch, `+addressColumns+`
		FROM customer_tax_invoices WHERE customer_id = $1 ORDER BY created_at, id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list tax invoices: %w", err)
	}
	defer rows.Close()
	list := []entity.TaxInvoice{}
	for rows.Next() {
		var t entity.TaxInvoice
		dest := append([]any{&t.ID, &t.CustomerID, &t.CompanyName, &t.TaxID, &t.Branch}, addressDest(&t.Address)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan tax invoice: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) addresses(ctx context.Context, customerID string) ([]entity.DeliveryAddress, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, customer_id, label, maps_url, `+addressColumns+`
		FROM customer_addresses WHERE customer_id = $1 ORDER BY created_at, id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list delivery addresses: %w", err)
	}
	defer rows.Close()
	list := []entity.DeliveryAddress{}
	for rows.Next() {
		var a entity.DeliveryAddress
		dest := append([]any{&a.ID, &a.CustomerID, &a.Label, &a.MapsURL}, addressDest(&a.Address)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan delivery address: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) contacts(ctx context.Context, customerID string) ([]entity.Contact, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, customer_id, name, position, phone, email, line_id
		FROM customer_contacts WHERE customer_id = $1 ORDER BY created_at, id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	list := []entity.Contact{}
	for rows.Next() {
		var ct entity.Contact
		if err := rows.Scan(&ct.ID, &ct.CustomerID, &ct.Name, &ct.Position, &ct.Phone, &ct.Email, &ct.LineID); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, ct)
	}
	return list, rows.Err()
}
