package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/internal/testutil"
	"hospital-booking-api/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countOrphans(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	err := db.Model(&models.Appointment{}).
		Where("hospital_id NOT IN (?)", db.Model(&models.Hospital{}).Select("id")).
		Count(&n).Error
	require.NoError(t, err)
	return n
}

func TestAppointmentRepo_CreateUnknownHospital(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAppointmentRepo(db)

	err := repo.Create(context.Background(), &models.Appointment{
		ApptDate:   time.Now().UTC(),
		UserID:     "u1",
		HospitalID: "missing",
	})
	assert.ErrorIs(t, err, apperrors.ErrHospitalNotFound)

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	assert.Zero(t, count)
}

// A hospital delete issued right after the booking has seen the hospital
// must not leave the new appointment behind.
func TestAppointmentRepo_CreateRacingHospitalDelete(t *testing.T) {
	db := testutil.NewDB(t)
	hospitals := NewHospitalRepo(db)
	appts := NewAppointmentRepo(db)
	ctx := context.Background()

	h := newHospital("Contested")
	require.NoError(t, hospitals.Create(ctx, h))

	var (
		once      sync.Once
		deleteErr error
		deleted   = make(chan struct{})
	)
	err := db.Callback().Query().After("gorm:query").Register("test:delete_after_lookup", func(tx *gorm.DB) {
		if tx.Statement.Table != "hospitals" {
			return
		}
		once.Do(func() {
			go func() {
				defer close(deleted)
				_, deleteErr = hospitals.Delete(ctx, h.ID)
			}()
		})
	})
	require.NoError(t, err)

	createErr := appts.Create(ctx, &models.Appointment{
		ApptDate:   time.Now().Add(time.Hour).UTC(),
		UserID:     "u1",
		HospitalID: h.ID,
	})

	select {
	case <-deleted:
	case <-time.After(5 * time.Second):
		t.Fatal("hospital delete did not finish")
	}
	require.NoError(t, deleteErr)

	if createErr != nil {
		assert.ErrorIs(t, createErr, apperrors.ErrHospitalNotFound)
	}
	_, err = hospitals.GetByID(ctx, h.ID, false)
	assert.ErrorIs(t, err, apperrors.ErrHospitalNotFound)
	assert.Zero(t, countOrphans(t, db))
}

func TestAppointmentRepo_ListAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAppointmentRepo(db)
	hospitals := NewHospitalRepo(db)
	ctx := context.Background()

	h := newHospital("Listed")
	require.NoError(t, hospitals.Create(ctx, h))
	first := bookAt(t, db, h.ID, "u1")
	bookAt(t, db, h.ID, "u2")

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), apperrors.ErrAppointmentNotFound)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
