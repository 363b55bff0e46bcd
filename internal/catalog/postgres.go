package catalog

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/dermaplan/engine/internal/domain"
)

// Postgres implements Query against a products table whose base step
// families and skin-type tags are precomputed at ingestion time
// (step_types text[], skin_types text[]).
type Postgres struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewPostgres creates a Postgres-backed catalog.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const productColumns = `id, name, raw_step, raw_category, skin_types, ingredients,
	strength, price_tier, hero, priority, published, brand_active, created_at`

// FindByStepType implements Query. One call issues exactly one SQL query;
// the resolver batches per distinct base family so catalog I/O stays bounded
// regardless of how many step categories map onto the same family.
func (p *Postgres) FindByStepType(ctx context.Context, stepType domain.StepType, skinType domain.SkinType) ([]domain.CatalogProduct, error) {
	q := p.sb.
		Select(productColumns).
		From("catalog_products").
		Where(sq.Eq{"published": true, "brand_active": true}).
		Where("? = ANY(step_types)", string(stepType)).
		OrderBy("hero DESC", "priority DESC", "created_at DESC", "id ASC")

	if skinType != "" {
		// Untagged products suit every skin type.
		q = q.Where(sq.Or{
			sq.Expr("skin_types = '{}'"),
			sq.Expr("? = ANY(skin_types)", string(skinType)),
		})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build step-type query: %w", err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find by step type %s: %w", stepType, err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindByIDs implements Query.
func (p *Postgres) FindByIDs(ctx context.Context, ids []string) ([]domain.CatalogProduct, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := p.sb.
		Select(productColumns).
		From("catalog_products").
		Where(sq.Eq{"published": true, "brand_active": true}).
		Where("id = ANY(?)", pq.Array(ids)).
		OrderBy("hero DESC", "priority DESC", "created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ids query: %w", err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find by ids: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]domain.CatalogProduct, error) {
	var out []domain.CatalogProduct
	for rows.Next() {
		var p domain.CatalogProduct
		var skinTypes, ingredients []string
		err := rows.Scan(
			&p.ID, &p.Name, &p.RawStep, &p.RawCategory,
			pq.Array(&skinTypes), pq.Array(&ingredients),
			&p.Strength, &p.PriceTier, &p.Hero, &p.Priority,
			&p.Published, &p.BrandActive, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		for _, st := range skinTypes {
			p.SkinTypes = append(p.SkinTypes, domain.SkinType(st))
		}
		for _, ing := range ingredients {
			if domain.IsValidIngredient(ing) {
				p.Ingredients = append(p.Ingredients, domain.ActiveIngredient(ing))
			}
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}
