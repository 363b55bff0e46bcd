package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermaplan/engine/internal/domain"
)

var productRows = []string{
	"id", "name", "raw_step", "raw_category", "skin_types", "ingredients",
	"strength", "price_tier", "hero", "priority", "published", "brand_active", "created_at",
}

func TestPostgres_FindByStepType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM catalog_products").
		WithArgs(true, true, "serum", "oily").
		WillReturnRows(sqlmock.NewRows(productRows).
			AddRow("s1", "Niacinamide 10%", "serum", "niacinamide serum",
				"{oily,combination_oily}", "{niacinamide,zinc}",
				"moderate", "low", true, 5, true, true, created))

	p := NewPostgres(db)
	products, err := p.FindByStepType(context.Background(), domain.StepTypeSerum, domain.SkinOily)
	require.NoError(t, err)
	require.Len(t, products, 1)

	got := products[0]
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, []domain.SkinType{domain.SkinOily, domain.SkinCombinationOily}, got.SkinTypes)
	assert.Equal(t, []domain.ActiveIngredient{domain.IngredientNiacinamide, domain.IngredientZinc}, got.Ingredients)
	assert.True(t, got.Hero)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_FindByStepType_DropsUnknownIngredients(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM catalog_products").
		WillReturnRows(sqlmock.NewRows(productRows).
			AddRow("s2", "Mystery Serum", "serum", "hydrating serum",
				"{}", "{niacinamide,snail_mucin}",
				"gentle", "low", false, 0, true, true, time.Now()))

	p := NewPostgres(db)
	products, err := p.FindByStepType(context.Background(), domain.StepTypeSerum, "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, []domain.ActiveIngredient{domain.IngredientNiacinamide}, products[0].Ingredients,
		"ingredients outside the closed set are ignored, not an error")
}

func TestPostgres_FindByStepType_MalformedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM catalog_products").
		WillReturnRows(sqlmock.NewRows(productRows).
			AddRow("", "No ID", "serum", "hydrating serum", "{}", "{}",
				"gentle", "low", false, 0, true, true, time.Now()))

	p := NewPostgres(db)
	_, err = p.FindByStepType(context.Background(), domain.StepTypeSerum, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedProduct)
}

func TestPostgres_FindByIDs_Empty(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	p := NewPostgres(db)
	products, err := p.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, products, "no ids means no query at all")
}

func TestPostgres_FindByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM catalog_products").
		WillReturnRows(sqlmock.NewRows(productRows).
			AddRow("a1", "Cream", "moisturizer", "barrier cream", "{}", "{ceramides}",
				"gentle", "medium", false, 0, true, true, time.Now()))

	p := NewPostgres(db)
	products, err := p.FindByIDs(context.Background(), []string{"a1"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "a1", products[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
