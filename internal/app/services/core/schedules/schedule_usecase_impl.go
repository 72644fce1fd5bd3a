package schedules

import (
	"context"
	"fmt"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

const weekInitLockTTL = 30 * time.Second

type ScheduleUsecase struct {
	slots  contracts.SlotRepository
	locker contracts.LockerService
	grid   Grid
	logger *zap.Logger
}

func NewScheduleUsecase(
	slotRepository contracts.SlotRepository,
	lockerService contracts.LockerService,
	grid Grid,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &ScheduleUsecase{
		slots:  slotRepository,
		locker: lockerService,
		grid:   grid,
		logger: logger,
	}
}

// InitializeWeek creates every slot of the 7-day window starting at weekStart
// (default: Monday of the current week) and returns how many were actually
// created. Slots that already exist are left untouched, so re-running is a
// no-op. This is the only place slots are created.
func (s *ScheduleUsecase) InitializeWeek(ctx context.Context, weekStart *time.Time) (int, error) {
	start := s.resolveWeekStart(weekStart)

	// Best-effort stampede guard: concurrent initializers of the same week are
	// already safe through InsertIfAbsent, the lock just spares the duplicate
	// round trips. Failure to lock never blocks initialization.
	lockKey := fmt.Sprintf(constvars.RedisKeyWeekInitLockFormat, start.Format(constvars.DateLayout))
	acquired, lockValue, err := s.locker.TryLock(ctx, lockKey, weekInitLockTTL)
	if err == nil && acquired {
		defer s.locker.Unlock(ctx, lockKey, lockValue)
	}

	dayTimes := s.grid.DayTimes()
	slotsCreated := 0
	now := time.Now()

	for day := 0; day < 7; day++ {
		currentDate := start.AddDate(0, 0, day)
		for _, dayTime := range dayTimes {
			slotDatetime := time.Date(
				currentDate.Year(), currentDate.Month(), currentDate.Day(),
				dayTime.Hour, dayTime.Minute, 0, 0, currentDate.Location(),
			)
			slot := &models.Slot{
				ID:        SlotID(slotDatetime),
				Date:      currentDate.Format(constvars.DateLayout),
				Time:      dayTime.String(),
				Datetime:  slotDatetime,
				Status:    constvars.SlotStatusAvailable,
				BookedBy:  nil,
				Version:   0,
				CreatedAt: now,
				UpdatedAt: now,
			}
			created, err := s.slots.InsertIfAbsent(ctx, slot)
			if err != nil {
				return slotsCreated, err
			}
			if created {
				slotsCreated++
			}
		}
	}

	s.logger.Info("ScheduleUsecase.InitializeWeek finished",
		zap.String(constvars.LoggingWeekStartKey, start.Format(constvars.DateLayout)),
		zap.Int(constvars.LoggingSlotsCreatedKey, slotsCreated),
	)
	return slotsCreated, nil
}

// GetWeekSchedule returns every slot of the week in chronological order,
// booked ones included. An empty week is initialized lazily and re-queried
// once.
func (s *ScheduleUsecase) GetWeekSchedule(ctx context.Context, weekStart *time.Time) (*responses.WeekSchedule, error) {
	start := s.resolveWeekStart(weekStart)
	end := s.grid.WeekEnd(start)
	rangeEnd := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())

	slots, err := s.slots.FindByDatetimeRange(ctx, start, rangeEnd)
	if err != nil {
		return nil, err
	}

	if len(slots) == 0 {
		if _, err := s.InitializeWeek(ctx, &start); err != nil {
			return nil, err
		}
		slots, err = s.slots.FindByDatetimeRange(ctx, start, rangeEnd)
		if err != nil {
			return nil, err
		}
	}

	schedule := &responses.WeekSchedule{
		WeekStart: start.Format(constvars.DateLayout),
		WeekEnd:   end.Format(constvars.DateLayout),
		Slots:     make([]responses.Slot, 0, len(slots)),
	}
	for i := range slots {
		schedule.Slots = append(schedule.Slots, toSlotResponse(&slots[i]))
	}
	return schedule, nil
}

func (s *ScheduleUsecase) GetSlot(ctx context.Context, slotID string) (*responses.Slot, error) {
	slot, err := s.slots.FindByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(nil, slotID)
	}
	response := toSlotResponse(slot)
	return &response, nil
}

// BookSlot books an exact slot with a single conditional update: the match on
// {id, status=available} and the mutation are one atomic store operation, so
// of any number of concurrent callers exactly one wins. Only when the update
// misses do we read the slot back to tell NotFound from AlreadyBooked.
func (s *ScheduleUsecase) BookSlot(ctx context.Context, request *requests.BookAppointment) (*responses.Slot, error) {
	available := constvars.SlotStatusAvailable
	slot, err := s.slots.ConditionalUpdate(ctx,
		contracts.SlotFilter{ID: &request.SlotID, Status: &available},
		contracts.SlotMutation{
			Status:    constvars.SlotStatusBooked,
			BookedBy:  &request.Name,
			UpdatedAt: time.Now(),
		},
		false,
	)
	if err != nil {
		return nil, err
	}

	if slot == nil {
		existing, err := s.slots.FindByID(ctx, request.SlotID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrSlotNotFound(nil, request.SlotID)
		}
		return nil, exceptions.ErrSlotAlreadyBooked(nil, request.SlotID, derefName(existing.BookedBy))
	}

	s.logger.Info("ScheduleUsecase.BookSlot booked",
		zap.String(constvars.LoggingSlotIDKey, slot.ID),
		zap.String(constvars.LoggingBookedByKey, request.Name),
	)
	response := toSlotResponse(slot)
	return &response, nil
}

// BookSlotInRange books the earliest available slot on the given day inside
// [start_time, end_time], both boundaries inclusive. The caller picks the
// window, never the exact slot; the ascending-sort conditional update
// guarantees concurrent overlapping requests each win a distinct slot.
func (s *ScheduleUsecase) BookSlotInRange(ctx context.Context, request *requests.BookAppointmentInRange) (*responses.Slot, error) {
	day, err := ParseDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrScheduleInvalidDateFormat(err)
	}

	if err := s.ensureSlotsForDate(ctx, request.Date, day); err != nil {
		return nil, err
	}

	startTime, err := ParseTime(request.StartTime)
	if err != nil {
		return nil, exceptions.ErrScheduleInvalidTimeFormat(err)
	}
	endTime, err := ParseTime(request.EndTime)
	if err != nil {
		return nil, exceptions.ErrScheduleInvalidTimeFormat(err)
	}
	if err := s.grid.ValidateWindow(startTime, endTime); err != nil {
		return nil, exceptions.ErrScheduleInvalidTimeRange(err)
	}

	rangeStart := time.Date(day.Year(), day.Month(), day.Day(), startTime.Hour, startTime.Minute, 0, 0, day.Location())
	rangeEnd := time.Date(day.Year(), day.Month(), day.Day(), endTime.Hour, endTime.Minute, 0, 0, day.Location())

	available := constvars.SlotStatusAvailable
	slot, err := s.slots.ConditionalUpdate(ctx,
		contracts.SlotFilter{
			Date:         &request.Date,
			Status:       &available,
			DatetimeFrom: &rangeStart,
			DatetimeTo:   &rangeEnd,
		},
		contracts.SlotMutation{
			Status:    constvars.SlotStatusBooked,
			BookedBy:  &request.Name,
			UpdatedAt: time.Now(),
		},
		true,
	)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrScheduleNoAvailability(nil)
	}

	s.logger.Info("ScheduleUsecase.BookSlotInRange booked",
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String("range", request.StartTime+"-"+request.EndTime),
		zap.String(constvars.LoggingSlotIDKey, slot.ID),
		zap.String(constvars.LoggingBookedByKey, request.Name),
	)
	response := toSlotResponse(slot)
	return &response, nil
}

// CancelSlot reverts a booked slot to available. Ownership is name equality:
// the conditional update matches {id, status=booked, booked_by=name}, and a
// miss is diagnosed by reading the slot back.
func (s *ScheduleUsecase) CancelSlot(ctx context.Context, request *requests.CancelAppointment) (*responses.Slot, error) {
	booked := constvars.SlotStatusBooked
	slot, err := s.slots.ConditionalUpdate(ctx,
		contracts.SlotFilter{ID: &request.SlotID, Status: &booked, BookedBy: &request.Name},
		contracts.SlotMutation{
			Status:    constvars.SlotStatusAvailable,
			BookedBy:  nil,
			UpdatedAt: time.Now(),
		},
		false,
	)
	if err != nil {
		return nil, err
	}

	if slot == nil {
		existing, err := s.slots.FindByID(ctx, request.SlotID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrSlotNotFound(nil, request.SlotID)
		}
		if existing.Status != constvars.SlotStatusBooked {
			return nil, exceptions.ErrSlotNotBooked(nil, request.SlotID)
		}
		return nil, exceptions.ErrSlotCancelForbidden(nil, request.SlotID, derefName(existing.BookedBy))
	}

	s.logger.Info("ScheduleUsecase.CancelSlot cancelled",
		zap.String(constvars.LoggingSlotIDKey, slot.ID),
		zap.String(constvars.LoggingBookedByKey, request.Name),
	)
	response := toSlotResponse(slot)
	return &response, nil
}

// ensureSlotsForDate lazily provisions a day that has no slots yet. The whole
// containing week is initialized, not just the day, so a week's slot set stays
// a deterministic function of its Monday.
func (s *ScheduleUsecase) ensureSlotsForDate(ctx context.Context, date string, day time.Time) error {
	count, err := s.slots.CountByDate(ctx, date, 1)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	weekStart := s.grid.WeekStart(day)
	_, err = s.InitializeWeek(ctx, &weekStart)
	return err
}

func (s *ScheduleUsecase) resolveWeekStart(weekStart *time.Time) time.Time {
	if weekStart == nil {
		return s.grid.WeekStart(time.Now())
	}
	return s.grid.WeekStart(*weekStart)
}

func toSlotResponse(slot *models.Slot) responses.Slot {
	return responses.Slot{
		SlotID:   slot.ID,
		Date:     slot.Date,
		Time:     slot.Time,
		Datetime: slot.Datetime,
		Status:   slot.Status,
		BookedBy: slot.BookedBy,
		Version:  slot.Version,
	}
}

func derefName(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}
