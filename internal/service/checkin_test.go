package service

import (
	"testing"
	"time"

	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/stretchr/testify/require"
)

type fakeCheckInRepo struct {
	checkIns []*model.CheckIn
}

func (r *fakeCheckInRepo) Create(checkIn *model.CheckIn) error {
	clone := *checkIn
	r.checkIns = append(r.checkIns, &clone)
	return nil
}

func (r *fakeCheckInRepo) ByID(id string) (*model.CheckIn, error) {
	for _, checkIn := range r.checkIns {
		if checkIn.ID == id {
			return checkIn, nil
		}
	}
	return nil, nil
}

func (r *fakeCheckInRepo) CheckIns(userID string) ([]*model.CheckIn, error) {
	var out []*model.CheckIn
	for _, checkIn := range r.checkIns {
		if checkIn.UserID == userID {
			out = append(out, checkIn)
		}
	}
	return out, nil
}

func (r *fakeCheckInRepo) CountInRange(userID string, start, end time.Time) (int, error) {
	count := 0
	for _, checkIn := range r.checkIns {
		if checkIn.UserID != userID {
			continue
		}
		if !checkIn.CreatedAt.Before(start) && checkIn.CreatedAt.Before(end) {
			count++
		}
	}
	return count, nil
}

func (r *fakeCheckInRepo) Latest(userID string) (*model.CheckIn, error) {
	var latest *model.CheckIn
	for _, checkIn := range r.checkIns {
		if checkIn.UserID != userID {
			continue
		}
		if latest == nil || checkIn.CreatedAt.After(latest.CreatedAt) {
			latest = checkIn
		}
	}
	return latest, nil
}

func TestRecordCheckInStampsIDAndTime(t *testing.T) {
	repo := &fakeCheckInRepo{}
	svc := NewCheckInService(repo)

	at := time.Date(2026, 3, 7, 7, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	checkIn, err := svc.Record(CheckInInput{
		UserID:        "user-1",
		DenariiEarned: 120,
		MannaEarned:   2,
		FruitEarned:   600,
		EnergyEarned:  20,
	})
	require.NoError(t, err)
	require.NotEmpty(t, checkIn.ID)
	require.Equal(t, at, checkIn.CreatedAt)
	require.Len(t, repo.checkIns, 1)
}

func TestRecordCheckInValidation(t *testing.T) {
	svc := NewCheckInService(&fakeCheckInRepo{})

	_, err := svc.Record(CheckInInput{DenariiEarned: 10})
	require.ErrorIs(t, err, ErrCheckInUserRequired)

	_, err = svc.Record(CheckInInput{UserID: "user-1", FruitEarned: -1})
	require.ErrorIs(t, err, ErrNegativeCheckInEarns)
}

func TestCountTodayLocalDayBoundary(t *testing.T) {
	repo := &fakeCheckInRepo{}
	svc := NewCheckInService(repo)

	day := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	// Three check-ins on the 7th, one late the night before.
	for _, offset := range []time.Duration{-time.Minute, time.Minute, 12 * time.Hour, 23*time.Hour + 59*time.Minute} {
		repo.checkIns = append(repo.checkIns, &model.CheckIn{
			ID:        "ci",
			UserID:    "user-1",
			CreatedAt: day.Add(offset),
		})
	}

	svc.now = func() time.Time { return day.Add(15 * time.Hour) }
	count, err := svc.CountToday("user-1")
	require.NoError(t, err)
	require.Equal(t, 3, count)

	// The next local day starts empty.
	svc.now = func() time.Time { return day.AddDate(0, 0, 1).Add(time.Minute) }
	count, err = svc.CountToday("user-1")
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestLatestNilWithoutError(t *testing.T) {
	svc := NewCheckInService(&fakeCheckInRepo{})

	checkIn, err := svc.Latest("user-1")
	require.NoError(t, err)
	require.Nil(t, checkIn)
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	at := time.Date(2026, 3, 7, 18, 45, 12, 0, loc)
	start, end := dayBounds(at)

	require.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, loc), start)
	require.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, loc), end)
	require.Equal(t, loc, start.Location())
}
