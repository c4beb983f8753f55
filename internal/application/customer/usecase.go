// Package customer casos de uso de clientes y de volcado de texto libre parseado en sus sub-registros.
package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/decor-ops-api/internal/application/dto"
	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/addressparse"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
	"github.com/jhoicas/decor-ops-api/pkg/logger"
)

// UseCase CRUD de clientes.
type UseCase struct {
	repo repository.CustomerRepository
	tx   TxRunner
	log  *logger.Logger
}

// NewUseCase construye el caso de uso. log puede ser nil.
func NewUseCase(repo repository.CustomerRepository, tx TxRunner, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{repo: repo, tx: tx, log: log.Component("customer")}
}

// Create crea el cliente con sus sub-registros en una sola transacción.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyRequest(c, in)

	err := uc.tx.RunCustomer(ctx, func(repo repository.CustomerRepository) error {
		if err := repo.Create(ctx, c); err != nil {
			return err
		}
		return repo.ReplaceChildren(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("customer_id", c.ID).Msg("cliente creado")
	return toResponse(c), nil
}

// Get devuelve el cliente con sub-registros.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// List lista clientes filtrando por nombre, teléfono o email.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, strings.TrimSpace(page.Search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out, nil
}

// Update reemplaza los datos del cliente y sus sub-registros.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	applyRequest(c, in)
	if err := uc.save(ctx, c); err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// Delete elimina el cliente.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// ApplyParsed parsea el texto y lo vuelca en el sub-registro elegido. Si Index es nil o está fuera
// de rango se agrega un sub-registro nuevo; con target basic se completa la ficha del cliente.
func (uc *UseCase) ApplyParsed(ctx context.Context, id string, in dto.ApplyParsedRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, fmt.Errorf("%w: text es requerido", domain.ErrInvalidInput)
	}
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	r := addressparse.Parse(in.Text)
	target, err := selectTarget(c, in.Target, in.Index)
	if err != nil {
		return nil, err
	}
	addressparse.Merge(target, r)

	if err := uc.save(ctx, c); err != nil {
		return nil, err
	}
	uc.log.Debug().Str("customer_id", c.ID).Str("target", in.Target).Msg("texto parseado aplicado")
	return toResponse(c), nil
}

// selectTarget resuelve el destino del volcado. Los sub-registros nuevos se agregan al cliente antes
// de devolver el puntero, para que Merge escriba sobre el elemento ya guardado en el slice.
func selectTarget(c *entity.Customer, kind string, index *int) (addressparse.Target, error) {
	inRange := func(n int) bool { return index != nil && *index >= 0 && *index < n }

	switch kind {
	case dto.ParseTargetTaxInvoice:
		if !inRange(len(c.TaxInvoices)) {
			c.TaxInvoices = append(c.TaxInvoices, entity.TaxInvoice{ID: uuid.New().String(), CustomerID: c.ID})
			return addressparse.TaxInvoiceTarget{Invoice: &c.TaxInvoices[len(c.TaxInvoices)-1]}, nil
		}
		return addressparse.TaxInvoiceTarget{Invoice: &c.TaxInvoices[*index]}, nil
	case dto.ParseTargetDelivery:
		if !inRange(len(c.Addresses)) {
			c.Addresses = append(c.Addresses, entity.DeliveryAddress{ID: uuid.New().String(), CustomerID: c.ID})
			return addressparse.DeliveryTarget{Address: &c.Addresses[len(c.Addresses)-1]}, nil
		}
		return addressparse.DeliveryTarget{Address: &c.Addresses[*index]}, nil
	case dto.ParseTargetContact:
		if !inRange(len(c.Contacts)) {
			c.Contacts = append(c.Contacts, entity.Contact{ID: uuid.New().String(), CustomerID: c.ID})
			return addressparse.ContactTarget{Contact: &c.Contacts[len(c.Contacts)-1]}, nil
		}
		return addressparse.ContactTarget{Contact: &c.Contacts[*index]}, nil
	case dto.ParseTargetBasic:
		return addressparse.BasicInfoTarget{Customer: c}, nil
	default:
		return nil, fmt.Errorf("%w: target debe ser tax_invoice, delivery, contact o basic", domain.ErrInvalidInput)
	}
}

func (uc *UseCase) load(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (uc *UseCase) save(ctx context.Context, c *entity.Customer) error {
	c.UpdatedAt = time.Now()
	return uc.tx.RunCustomer(ctx, func(repo repository.CustomerRepository) error {
		if err := repo.Update(ctx, c); err != nil {
			return err
		}
		return repo.ReplaceChildren(ctx, c)
	})
}

// applyRequest copia el body al cliente; los sub-registros sin ID reciben uno nuevo.
func applyRequest(c *entity.Customer, in dto.CreateCustomerRequest) {
	c.Name = strings.TrimSpace(in.Name)
	c.Phone = in.Phone
	c.Email = in.Email
	c.LineID = in.LineID
	c.Note = in.Note

	c.TaxInvoices = make([]entity.TaxInvoice, 0, len(in.TaxInvoices))
	for _, t := range in.TaxInvoices {
		c.TaxInvoices = append(c.TaxInvoices, entity.TaxInvoice{
			ID:          idOrNew(t.ID),
			CustomerID:  c.ID,
			CompanyName: t.CompanyName,
			TaxID:       t.TaxID,
			Branch:      t.Branch,
			Address:     t.Address.ToEntity(),
		})
	}
	c.Addresses = make([]entity.DeliveryAddress, 0, len(in.Addresses))
	for _, a := range in.Addresses {
		c.Addresses = append(c.Addresses, entity.DeliveryAddress{
			ID:         idOrNew(a.ID),
			CustomerID: c.ID,
			Label:      a.Label,
			Address:    a.Address.ToEntity(),
			MapsURL:    a.MapsURL,
		})
	}
	c.Contacts = make([]entity.Contact, 0, len(in.Contacts))
	for _, ct := range in.Contacts {
		c.Contacts = append(c.Contacts, entity.Contact{
			ID:         idOrNew(ct.ID),
			CustomerID: c.ID,
			Name:       ct.Name,
			Position:   ct.Position,
			Phone:      ct.Phone,
			Email:      ct.Email,
			LineID:     ct.LineID,
		})
	}
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

func toResponse(c *entity.Customer) *dto.CustomerResponse {
	out := &dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		LineID:      c.LineID,
		Note:        c.Note,
		TaxInvoices: make([]dto.TaxInvoiceDTO, 0, len(c.TaxInvoices)),
		Addresses:   make([]dto.DeliveryAddressDTO, 0, len(c.Addresses)),
		Contacts:    make([]dto.ContactDTO, 0, len(c.Contacts)),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	for _, t := range c.TaxInvoices {
		out.TaxInvoices = append(out.TaxInvoices, dto.TaxInvoiceDTO{
			ID:          t.ID,
			CompanyName: t.CompanyName,
			TaxID:       t.TaxID,
			Branch:      t.Branch,
			Address:     dto.AddressFromEntity(t.Address),
		})
	}
	for _, a := range c.Addresses {
		out.Addresses = append(out.Addresses, dto.DeliveryAddressDTO{
			ID:      a.ID,
			Label:   a.Label,
			Address: dto.AddressFromEntity(a.Address),
			MapsURL: a.MapsURL,
		})
	}
	for _, ct := range c.Contacts {
		out.Contacts = append(out.Contacts, dto.ContactDTO{
			ID:       ct.ID,
			Name:     ct.Name,
			Position: ct.Position,
			Phone:    ct.Phone,
			Email:    ct.Email,
			LineID:   ct.LineID,
		})
	}
	return out
}
