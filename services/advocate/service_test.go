package advocate

import (
	"context"
	"testing"

	advocateRepo "quicklegal/database/repository/advocate"
	"quicklegal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	advocates map[string]*models.Advocate
}

func (r *memRepo) Create(ctx context.Context, adv *models.Advocate) error {
	r.advocates[adv.ID] = adv
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*models.Advocate, error) {
	return r.advocates[id], nil
}

func (r *memRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return nil
}

func (r *memRepo) Search(ctx context.Context, filter advocateRepo.SearchFilter) ([]models.Advocate, int64, error) {
	var out []models.Advocate
	for _, adv := range r.advocates {
		out = append(out, *adv)
	}
	return out, int64(len(out)), nil
}

func TestRegisterAndLookup(t *testing.T) {
	svc := &DefaultAdvocateService{Repo: &memRepo{advocates: map[string]*models.Advocate{}}}
	ctx := context.Background()

	windows := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: 3, StartTime: "10:00", EndTime: "14:00"},
	}
	adv, err := svc.Register(ctx, RegisterInput{
		UserID:          "u-adv",
		Expertise:       []string{"criminal"},
		Languages:       []string{"hindi", "english"},
		ConsultationFee: 2000,
		Availability:    windows,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, adv.ID)
	assert.True(t, adv.IsActive)

	got, err := svc.GetByID(ctx, adv.ID)
	require.NoError(t, err)
	assert.Equal(t, adv.ID, got.ID)

	avail, err := svc.GetAvailability(ctx, adv.ID)
	require.NoError(t, err)
	assert.Equal(t, windows, avail)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := &DefaultAdvocateService{Repo: &memRepo{advocates: map[string]*models.Advocate{}}}

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetAvailability(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
