// Package teamfee casos de uso de lotes de honorarios de equipos: alta, ajustes, pagos,
// vínculo con trabajos y saldo por equipo.
package teamfee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/decor-ops-api/internal/application/dto"
	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
	"github.com/jhoicas/decor-ops-api/internal/domain/servicefee"
	"github.com/jhoicas/decor-ops-api/pkg/logger"
)

// Estados del lote.
const (
	BatchStatusOpen = "open"
	BatchStatusPaid = "paid"
)

// UseCase orquesta lotes de honorarios.
type UseCase struct {
	fees       repository.ServiceFeeRepository
	teams      repository.TeamRepository
	tx         TxRunner
	defaultPct decimal.Decimal
	log        *logger.Logger
}

// NewUseCase construye el caso de uso. defaultPct es la retención usada cuando el lote no define una.
func NewUseCase(
	fees repository.ServiceFeeRepository,
	teams repository.TeamRepository,
	tx TxRunner,
	defaultPct decimal.Decimal,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{fees: fees, teams: teams, tx: tx, defaultPct: defaultPct, log: log.Component("teamfee")}
}

// CreateBatch crea el lote y vincula los trabajos indicados en la misma transacción.
func (uc *UseCase) CreateBatch(ctx context.Context, in dto.CreateServiceFeeRequest) (*dto.ServiceFeeResponse, error) {
	team, err := uc.teams.GetByID(ctx, in.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, fmt.Errorf("%w: equipo %s", domain.ErrNotFound, in.TeamID)
	}
	if in.LaborCost.IsNegative() || in.MaterialCost.IsNegative() || in.TravelCost.IsNegative() {
		return nil, fmt.Errorf("%w: los costos no pueden ser negativos", domain.ErrInvalidInput)
	}
	if p := in.DeductPercent; p != nil && (p.IsNegative() || p.GreaterThan(decimal.NewFromInt(100))) {
		return nil, fmt.Errorf("%w: deduct_percent debe estar entre 0 y 100", domain.ErrInvalidInput)
	}

	now := time.Now()
	batch := &entity.ServiceFeeBatch{
		ID:            uuid.New().String(),
		TeamID:        team.ID,
		LaborCost:     in.LaborCost,
		MaterialCost:  in.MaterialCost,
		TravelCost:    in.TravelCost,
		DeductPercent: in.DeductPercent,
		Note:          in.Note,
		Status:        BatchStatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err = uc.tx.RunServiceFee(ctx, func(repo repository.ServiceFeeRepository) error {
		if err := repo.CreateBatch(ctx, batch); err != nil {
			return err
		}
		if len(in.JobIDs) == 0 {
			return nil
		}
		return repo.LinkJobs(ctx, batch.ID, in.JobIDs)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("batch_id", batch.ID).Str("team_id", team.ID).Msg("lote de honorarios creado")
	return uc.GetBatch(ctx, batch.ID)
}

// GetBatch devuelve el lote con totales y estado de cuenta.
func (uc *UseCase) GetBatch(ctx context.Context, id string) (*dto.ServiceFeeResponse, error) {
	b, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := uc.toResponse(b)
	for _, l := range servicefee.Statement(b, uc.defaultPct) {
		out.Statement = append(out.Statement, dto.StatementLine{
			Date:        l.Date,
			Kind:        l.Kind,
			Description: l.Description,
			Amount:      l.Amount,
			Balance:     l.Balance,
		})
	}
	return out, nil
}

// ListByTeam lista los lotes del equipo con sus totales (sin estado de cuenta).
func (uc *UseCase) ListByTeam(ctx context.Context, teamID string) ([]*dto.ServiceFeeResponse, error) {
	list, err := uc.fees.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceFeeResponse, 0, len(list))
	for _, b := range list {
		out = append(out, uc.toResponse(b))
	}
	return out, nil
}

// AddAdjustment agrega un ajuste con signo; cero no se admite.
func (uc *UseCase) AddAdjustment(ctx context.Context, batchID string, in dto.AdjustmentRequest) (*dto.ServiceFeeResponse, error) {
	if in.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount no puede ser 0", domain.ErrInvalidInput)
	}
	if _, err := uc.load(ctx, batchID); err != nil {
		return nil, err
	}
	adj := &entity.ServiceFeeAdjustment{
		ID:           uuid.New().String(),
		ServiceFeeID: batchID,
		Amount:       in.Amount,
		Note:         in.Note,
		CreatedAt:    time.Now(),
	}
	if err := uc.fees.AddAdjustment(ctx, adj); err != nil {
		return nil, err
	}
	return uc.GetBatch(ctx, batchID)
}

// DeleteAdjustment elimina un ajuste del lote.
func (uc *UseCase) DeleteAdjustment(ctx context.Context, batchID, adjustmentID string) (*dto.ServiceFeeResponse, error) {
	b, err := uc.load(ctx, batchID)
	if err != nil {
		return nil, err
	}
	found := false
	for _, a := range b.Adjustments {
		if a.ID == adjustmentID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: ajuste %s", domain.ErrNotFound, adjustmentID)
	}
	if err := uc.fees.DeleteAdjustment(ctx, adjustmentID); err != nil {
		return nil, err
	}
	return uc.GetBatch(ctx, batchID)
}

// AddPayment registra un pago al equipo. Pagar de más se permite y queda como saldo negativo.
func (uc *UseCase) AddPayment(ctx context.Context, batchID string, in dto.ServiceFeePaymentRequest) (*dto.ServiceFeeResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount debe ser mayor a 0", domain.ErrInvalidInput)
	}
	b, err := uc.load(ctx, batchID)
	if err != nil {
		return nil, err
	}
	paidAt := time.Now()
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}
	p := &entity.ServiceFeePayment{
		ID:            uuid.New().String(),
		ServiceFeeID:  batchID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		SlipURL:       in.SlipURL,
		Note:          in.Note,
		PaidAt:        paidAt,
	}
	if err := uc.fees.AddPayment(ctx, p); err != nil {
		return nil, err
	}

	b.Payments = append(b.Payments, *p)
	if remaining := servicefee.Compute(b, uc.defaultPct).Remaining; remaining.IsNegative() {
		uc.log.Warn().
			Str("batch_id", batchID).
			Str("remaining", remaining.String()).
			Msg("pago supera el total adeudado al equipo")
	}
	return uc.GetBatch(ctx, batchID)
}

// LinkJobs vincula trabajos al lote; cada trabajo pertenece a lo sumo a un lote.
func (uc *UseCase) LinkJobs(ctx context.Context, batchID string, jobIDs []string) (*dto.ServiceFeeResponse, error) {
	if len(jobIDs) == 0 {
		return nil, fmt.Errorf("%w: job_ids es requerido", domain.ErrInvalidInput)
	}
	if _, err := uc.load(ctx, batchID); err != nil {
		return nil, err
	}
	if err := uc.fees.LinkJobs(ctx, batchID, jobIDs); err != nil {
		return nil, err
	}
	return uc.GetBatch(ctx, batchID)
}

// UnlinkJob quita el vínculo de un trabajo con el lote.
func (uc *UseCase) UnlinkJob(ctx context.Context, batchID, jobID string) (*dto.ServiceFeeResponse, error) {
	if _, err := uc.load(ctx, batchID); err != nil {
		return nil, err
	}
	if err := uc.fees.UnlinkJob(ctx, jobID); err != nil {
		return nil, err
	}
	return uc.GetBatch(ctx, batchID)
}

// DeleteBatch elimina el lote con ajustes, pagos y vínculos.
func (uc *UseCase) DeleteBatch(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	err := uc.tx.RunServiceFee(ctx, func(repo repository.ServiceFeeRepository) error {
		return repo.DeleteBatch(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("batch_id", id).Msg("lote de honorarios eliminado")
	return nil
}

// TeamOutstanding saldo total adeudado al equipo.
func (uc *UseCase) TeamOutstanding(ctx context.Context, teamID string) (*dto.TeamOutstandingResponse, error) {
	team, err := uc.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domain.ErrNotFound
	}
	batches, err := uc.fees.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return &dto.TeamOutstandingResponse{
		TeamID:      teamID,
		Batches:     len(batches),
		Outstanding: servicefee.TeamOutstanding(batches, uc.defaultPct),
	}, nil
}

func (uc *UseCase) load(ctx context.Context, id string) (*entity.ServiceFeeBatch, error) {
	b, err := uc.fees.GetBatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (uc *UseCase) toResponse(b *entity.ServiceFeeBatch) *dto.ServiceFeeResponse {
	t := servicefee.Compute(b, uc.defaultPct)
	status := b.Status
	if status == "" {
		status = BatchStatusOpen
	}
	if t.TotalDue.IsPositive() && !t.Remaining.IsPositive() {
		status = BatchStatusPaid
	}
	jobIDs := b.JobIDs
	if jobIDs == nil {
		jobIDs = []string{}
	}
	return &dto.ServiceFeeResponse{
		ID:                b.ID,
		TeamID:            b.TeamID,
		LaborCost:         b.LaborCost,
		MaterialCost:      b.MaterialCost,
		TravelCost:        b.TravelCost,
		Note:              b.Note,
		Status:            status,
		JobIDs:            jobIDs,
		TotalBeforeDeduct: t.TotalBeforeDeduct,
		DeductPercent:     t.DeductPercent,
		DeductAmount:      t.DeductAmount,
		AdjustmentsTotal:  t.AdjustmentsTotal,
		TotalDue:          t.TotalDue,
		TotalPaid:         t.TotalPaid,
		Remaining:         t.Remaining,
		CreatedAt:         b.CreatedAt,
	}
}
