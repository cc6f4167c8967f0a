package calendar_test

import (
	"context"
	"testing"
	"time"

	"astramaie-backoffice/internal/calendar"
	calendarerrors "astramaie-backoffice/internal/calendar/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeCalendarRepository struct {
	createFn      func(ctx context.Context, h *calendar.Holiday) error
	findAllFn     func(ctx context.Context) ([]calendar.Holiday, error)
	findBetweenFn func(ctx context.Context, start, end time.Time) ([]calendar.Holiday, error)
	deleteByIDFn  func(ctx context.Context, id string) error
}

func (f *fakeCalendarRepository) Create(ctx context.Context, h *calendar.Holiday) error {
	if f.createFn != nil {
		return f.createFn(ctx, h)
	}
	return nil
}

func (f *fakeCalendarRepository) FindAll(ctx context.Context) ([]calendar.Holiday, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeCalendarRepository) FindBetween(ctx context.Context, start, end time.Time) ([]calendar.Holiday, error) {
	if f.findBetweenFn != nil {
		return f.findBetweenFn(ctx, start, end)
	}
	return nil, nil
}

func (f *fakeCalendarRepository) DeleteByID(ctx context.Context, id string) error {
	if f.deleteByIDFn != nil {
		return f.deleteByIDFn(ctx, id)
	}
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountWorkingDays(t *testing.T) {
	ctx := context.Background()

	t.Run("weekend only range is zero", func(t *testing.T) {
		svc := calendar.NewService(&fakeCalendarRepository{})

		// 2025-01-18 is a Saturday, 2025-01-19 a Sunday.
		days, err := svc.CountWorkingDays(ctx, date(2025, time.January, 18), date(2025, time.January, 19))
		assert.NoError(t, err)
		assert.Equal(t, 0, days)
	})

	t.Run("full business week", func(t *testing.T) {
		svc := calendar.NewService(&fakeCalendarRepository{})

		days, err := svc.CountWorkingDays(ctx, date(2025, time.January, 20), date(2025, time.January, 24))
		assert.NoError(t, err)
		assert.Equal(t, 5, days)
	})

	t.Run("holiday inside range is excluded", func(t *testing.T) {
		repo := &fakeCalendarRepository{
			findBetweenFn: func(ctx context.Context, start, end time.Time) ([]calendar.Holiday, error) {
				return []calendar.Holiday{
					{ID: uuid.New(), Name: "Republic Day Bridge", Date: date(2025, time.January, 22), Category: calendar.CategoryNational},
				}, nil
			},
		}
		svc := calendar.NewService(repo)

		days, err := svc.CountWorkingDays(ctx, date(2025, time.January, 20), date(2025, time.January, 24))
		assert.NoError(t, err)
		assert.Equal(t, 4, days)
	})

	t.Run("count never exceeds span", func(t *testing.T) {
		svc := calendar.NewService(&fakeCalendarRepository{})

		start := date(2025, time.March, 3)
		end := date(2025, time.March, 31)
		days, err := svc.CountWorkingDays(ctx, start, end)
		assert.NoError(t, err)
		span := int(end.Sub(start).Hours()/24) + 1
		assert.LessOrEqual(t, days, span)
		assert.Equal(t, 21, days)
	})

	t.Run("inverted range is an error not zero", func(t *testing.T) {
		svc := calendar.NewService(&fakeCalendarRepository{})

		_, err := svc.CountWorkingDays(ctx, date(2025, time.January, 24), date(2025, time.January, 20))
		assert.ErrorIs(t, err, calendarerrors.ErrInvalidRange)
	})

	t.Run("normalizes timezones before comparing days", func(t *testing.T) {
		svc := calendar.NewService(&fakeCalendarRepository{})

		ist := time.FixedZone("IST", 5*3600+1800)
		// 23:30 IST on Monday is still Monday after UTC normalization (18:00 UTC).
		start := time.Date(2025, time.January, 20, 23, 30, 0, 0, ist)
		days, err := svc.CountWorkingDays(ctx, start, date(2025, time.January, 20))
		assert.NoError(t, err)
		assert.Equal(t, 1, days)
	})
}

func TestIsWorkingDay(t *testing.T) {
	ctx := context.Background()

	t.Run("saturday is not a working day", func(t *testing.T) {
		svc := calendar.NewService(&fakeCalendarRepository{})

		working, err := svc.IsWorkingDay(ctx, date(2025, time.January, 18))
		assert.NoError(t, err)
		assert.False(t, working)
	})

	t.Run("weekday holiday is not a working day", func(t *testing.T) {
		repo := &fakeCalendarRepository{
			findBetweenFn: func(ctx context.Context, start, end time.Time) ([]calendar.Holiday, error) {
				return []calendar.Holiday{{Date: date(2025, time.August, 15)}}, nil
			},
		}
		svc := calendar.NewService(repo)

		working, err := svc.IsWorkingDay(ctx, date(2025, time.August, 15))
		assert.NoError(t, err)
		assert.False(t, working)
	})

	t.Run("plain weekday is a working day", func(t *testing.T) {
		svc := calendar.NewService(&fakeCalendarRepository{})

		working, err := svc.IsWorkingDay(ctx, date(2025, time.January, 21))
		assert.NoError(t, err)
		assert.True(t, working)
	})
}

func TestAddHoliday(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes the stored date", func(t *testing.T) {
		var stored *calendar.Holiday
		repo := &fakeCalendarRepository{
			createFn: func(ctx context.Context, h *calendar.Holiday) error {
				stored = h
				return nil
			},
		}
		svc := calendar.NewService(repo)

		resp, err := svc.AddHoliday(ctx, calendar.CreateHolidayRequest{
			Name:     "Diwali",
			Date:     "2025-10-21",
			Category: calendar.CategoryFestival,
		})
		assert.NoError(t, err)
		assert.Equal(t, "2025-10-21", resp.Date)
		assert.NotNil(t, stored)
		assert.Equal(t, time.UTC, stored.Date.Location())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc := calendar.NewService(&fakeCalendarRepository{})

		_, err := svc.AddHoliday(ctx, calendar.CreateHolidayRequest{
			Name:     "   ",
			Date:     "2025-10-21",
			Category: calendar.CategoryFestival,
		})
		assert.ErrorIs(t, err, calendarerrors.ErrNameRequired)
	})

	t.Run("unparsable date rejected", func(t *testing.T) {
		svc := calendar.NewService(&fakeCalendarRepository{})

		_, err := svc.AddHoliday(ctx, calendar.CreateHolidayRequest{
			Name:     "Diwali",
			Date:     "21-10-2025",
			Category: calendar.CategoryFestival,
		})
		assert.ErrorIs(t, err, calendarerrors.ErrInvalidDateFormat)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		svc := calendar.NewService(&fakeCalendarRepository{})

		_, err := svc.AddHoliday(ctx, calendar.CreateHolidayRequest{
			Name:     "Diwali",
			Date:     "2025-10-21",
			Category: "regional",
		})
		assert.ErrorIs(t, err, calendarerrors.ErrInvalidCategory)
	})
}

func TestRemoveHoliday(t *testing.T) {
	ctx := context.Background()

	t.Run("removing an absent holiday is a no-op success", func(t *testing.T) {
		calls := 0
		repo := &fakeCalendarRepository{
			deleteByIDFn: func(ctx context.Context, id string) error {
				calls++
				return nil
			},
		}
		svc := calendar.NewService(repo)

		id := uuid.NewString()
		assert.NoError(t, svc.RemoveHoliday(ctx, id))
		assert.NoError(t, svc.RemoveHoliday(ctx, id))
		assert.Equal(t, 2, calls)
	})
}
