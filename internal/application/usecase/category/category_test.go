package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeCategoryRepository is an in-memory category store with a unique name
// constraint.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
}

func (f *fakeCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	for _, c := range f.categories {
		if c.Name == category.Name {
			return domainerror.ErrCategoryNameExists
		}
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	result := make([]*entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		result = append(result, c)
	}
	return result, nil
}

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(ctx, CreateCategoryInput{Name: "Books"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Created {
			t.Error("expected Created to be true")
		}
		if output.Category.Name != "Books" {
			t.Errorf("expected name Books, got %s", output.Category.Name)
		}
	})

	t.Run("name is trimmed", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(ctx, CreateCategoryInput{Name: "  Travel  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Travel" {
			t.Errorf("expected trimmed name Travel, got %q", output.Category.Name)
		}
	})

	t.Run("duplicate is a warning not an error", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)

		first, err := uc.Execute(ctx, CreateCategoryInput{Name: "Books"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second, err := uc.Execute(ctx, CreateCategoryInput{Name: "Books"})
		if err != nil {
			t.Fatalf("duplicate must not error: %v", err)
		}
		if second.Created {
			t.Error("expected Created to be false for duplicate")
		}
		if second.Category.ID != first.Category.ID {
			t.Error("expected the existing category to be returned")
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		for _, name := range []string{"", "   "} {
			_, err := uc.Execute(ctx, CreateCategoryInput{Name: name})
			if !errors.Is(err, domainerror.ErrCategoryNameEmpty) {
				t.Errorf("name %q: expected ErrCategoryNameEmpty, got %v", name, err)
			}
		}
	})

	t.Run("overlong name rejected", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		_, err := uc.Execute(ctx, CreateCategoryInput{Name: strings.Repeat("x", MaxCategoryNameLength+1)})
		if !errors.Is(err, domainerror.ErrCategoryNameTooLong) {
			t.Errorf("expected ErrCategoryNameTooLong, got %v", err)
		}
	})
}

func TestSeedDefaultCategoriesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds all defaults", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewSeedDefaultCategoriesUseCase(repo)

		if err := uc.Execute(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.categories) != len(entity.DefaultCategoryNames) {
			t.Errorf("expected %d categories, got %d", len(entity.DefaultCategoryNames), len(repo.categories))
		}
		for _, name := range entity.DefaultCategoryNames {
			found, err := repo.FindByName(ctx, name)
			if err != nil || found == nil {
				t.Errorf("default category %s was not seeded", name)
			}
		}
	})

	t.Run("reseeding is idempotent", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewSeedDefaultCategoriesUseCase(repo)

		if err := uc.Execute(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Execute(ctx); err != nil {
			t.Fatalf("second run must succeed: %v", err)
		}

		if len(repo.categories) != len(entity.DefaultCategoryNames) {
			t.Errorf("expected %d categories after reseeding, got %d",
				len(entity.DefaultCategoryNames), len(repo.categories))
		}
	})
}
