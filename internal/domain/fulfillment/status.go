// Package fulfillment deriva el estado de un pedido a partir del avance de sus líneas y trabajos.
package fulfillment

import (
	"sort"
	"strings"

	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
)

// Equivalentes en tailandés usados por los equipos en campo.
const (
	thaiPending    = "รอดำเนินการ"
	thaiProcessing = "กำลังดำเนินการ"
	thaiCompleted  = "เสร็จสิ้น"
	thaiCancelled  = "ยกเลิก"
)

// NormalizeJobStatus lleva un estado (inglés o tailandés, cualquier capitalización) al valor canónico.
// Lo desconocido o vacío es pending.
func NormalizeJobStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case entity.JobStatusCompleted, thaiCompleted:
		return entity.JobStatusCompleted
	case entity.JobStatusCancelled, thaiCancelled:
		return entity.JobStatusCancelled
	case entity.JobStatusProcessing, thaiProcessing:
		return entity.JobStatusProcessing
	default:
		return entity.JobStatusPending
	}
}

// IsValidJobStatus indica si s es un estado reconocido (vacío no lo es).
func IsValidJobStatus(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case entity.JobStatusPending, entity.JobStatusProcessing, entity.JobStatusCompleted, entity.JobStatusCancelled,
		thaiPending, thaiProcessing, thaiCompleted, thaiCancelled:
		return true
	}
	return false
}

// ItemStatus estado de una línea: el explícito si existe, si no el del trabajo más reciente.
func ItemStatus(item entity.OrderItem) string {
	if item.Status != "" {
		return NormalizeJobStatus(item.Status)
	}
	if len(item.Jobs) == 0 {
		return entity.JobStatusPending
	}
	jobs := make([]entity.Job, len(item.Jobs))
	copy(jobs, item.Jobs)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return NormalizeJobStatus(jobs[0].Status)
}

// OrderStatus deriva el estado del pedido:
// todas canceladas -> Cancelled; todas completadas o canceladas -> Completed;
// alguna en proceso o completada -> Processing; resto (incluido sin líneas) -> Pending.
func OrderStatus(items []entity.OrderItem) string {
	if len(items) == 0 {
		return entity.OrderStatusPending
	}

	allCancelled, allClosed, anyStarted := true, true, false
	for _, it := range items {
		s := ItemStatus(it)
		if s != entity.JobStatusCancelled {
			allCancelled = false
		}
		if s != entity.JobStatusCompleted && s != entity.JobStatusCancelled {
			allClosed = false
		}
		if s == entity.JobStatusProcessing || s == entity.JobStatusCompleted {
			anyStarted = true
		}
	}

	switch {
	case allCancelled:
		return entity.OrderStatusCancelled
	case allClosed:
		return entity.OrderStatusCompleted
	case anyStarted:
		return entity.OrderStatusProcessing
	default:
		return entity.OrderStatusPending
	}
}
