// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// SeedDefaultCategoriesUseCase creates the default category set at startup.
type SeedDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultCategoriesUseCase creates a new SeedDefaultCategoriesUseCase instance.
func NewSeedDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultCategoriesUseCase {
	return &SeedDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds each default category that is not already present. The
// operation is idempotent and safe to run concurrently: a unique-constraint
// violation on insert means another instance seeded the name first, which is
// treated as a no-op.
func (uc *SeedDefaultCategoriesUseCase) Execute(ctx context.Context) error {
	for _, name := range entity.DefaultCategoryNames {
		existing, err := uc.categoryRepo.FindByName(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to check default category %q: %w", name, err)
		}
		if existing != nil {
			continue
		}

		if err := uc.categoryRepo.Create(ctx, entity.NewCategory(name)); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNameExists) {
				slog.Debug("Default category seeded concurrently", "name", name)
				continue
			}
			return fmt.Errorf("failed to seed default category %q: %w", name, err)
		}
	}

	return nil
}
