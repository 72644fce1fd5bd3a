package contracts

import (
	"context"
	"time"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	GetWeekSchedule(ctx context.Context, weekStart *time.Time) (*responses.WeekSchedule, error)
	GetSlot(ctx context.Context, slotID string) (*responses.Slot, error)
	InitializeWeek(ctx context.Context, weekStart *time.Time) (int, error)
	BookSlot(ctx context.Context, request *requests.BookAppointment) (*responses.Slot, error)
	BookSlotInRange(ctx context.Context, request *requests.BookAppointmentInRange) (*responses.Slot, error)
	CancelSlot(ctx context.Context, request *requests.CancelAppointment) (*responses.Slot, error)
}

// SlotFilter selects slots for a conditional update. Zero-valued (nil) fields
// are left out of the match. Filtering on Status together with ID or the
// datetime window is what turns an update into a compare-and-set.
type SlotFilter struct {
	ID           *string
	Date         *string
	Status       *string
	BookedBy     *string
	DatetimeFrom *time.Time
	DatetimeTo   *time.Time
}

// SlotMutation is the write half of a conditional update. Every applied
// mutation also increments the slot's version by exactly one.
type SlotMutation struct {
	Status    string
	BookedBy  *string
	UpdatedAt time.Time
}

// SlotRepository is the slot store contract. Implementations must make
// ConditionalUpdate a single atomic match-and-mutate: when several callers
// race on the same filter, at most one observes a non-nil slot per matching
// document, and with SortByDatetimeAsc the earliest matching slot wins.
type SlotRepository interface {
	InsertIfAbsent(ctx context.Context, slot *models.Slot) (bool, error)
	FindByID(ctx context.Context, slotID string) (*models.Slot, error)
	ConditionalUpdate(ctx context.Context, filter SlotFilter, mutation SlotMutation, sortByDatetimeAsc bool) (*models.Slot, error)
	CountByDate(ctx context.Context, date string, limit int64) (int64, error)
	FindByDatetimeRange(ctx context.Context, from, to time.Time) ([]models.Slot, error)
	EnsureIndexes(ctx context.Context) error
}
