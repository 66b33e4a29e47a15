package advocateRepo

import (
	"context"

	"quicklegal/models"
)

// SearchFilter narrows advocate search results. Zero-value fields are ignored.
type SearchFilter struct {
	Expertise string
	Language  string
	MinFee    float64
	MaxFee    float64
	Page      int
	Limit     int
}

// AdvocateRepository persists advocate profiles.
type AdvocateRepository interface {
	Create(ctx context.Context, advocate *models.Advocate) error
	GetByID(ctx context.Context, id string) (*models.Advocate, error)
	Update(ctx context.Context, id string, updates map[string]any) error
	Search(ctx context.Context, filter SearchFilter) ([]models.Advocate, int64, error)
}
