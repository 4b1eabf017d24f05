package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/intechds/storefront/internal/domain"
)

// CatalogUC filters, sorts and mutates the product collection. All queries
// run over the full in-memory slice on every call; there is no index.
type CatalogUC struct {
	Products domain.ProductRepo
}

// Search applies the AND-composed filter and then the requested sort.
func (uc *CatalogUC) Search(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	products, err := uc.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		matched := products[:0:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Category), q) ||
				(p.SKU != "" && strings.Contains(strings.ToLower(p.SKU), q)) ||
				(p.Brand != "" && strings.Contains(strings.ToLower(p.Brand), q)) {
				matched = append(matched, p)
			}
		}
		products = matched
	}
	if f.Category != "" {
		matched := products[:0:0]
		for _, p := range products {
			if p.Category == f.Category {
				matched = append(matched, p)
			}
		}
		products = matched
	}
	if f.Featured != nil {
		matched := products[:0:0]
		for _, p := range products {
			if p.Featured == *f.Featured {
				matched = append(matched, p)
			}
		}
		products = matched
	}
	sortProducts(products, f.Sort)
	return products, nil
}

func sortProducts(products []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case domain.SortName:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	case domain.SortLatest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	}
}

// Create assigns max(existing id)+1 and timestamps the record. The id scan
// and the append happen inside one locked update, so concurrent creates in
// this process cannot collide.
func (uc *CatalogUC) Create(ctx context.Context, p *domain.Product) error {
	return uc.Products.Update(ctx, func(products []domain.Product) ([]domain.Product, error) {
		maxID := 0
		for _, existing := range products {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		p.ID = maxID + 1
		now := domain.Timestamp(time.Now())
		p.CreatedAt = now
		p.UpdatedAt = now
		return append(products, *p), nil
	})
}

// Replace overwrites the stored record with p wholesale (matched by p.ID)
// and refreshes updatedAt. Unlike order updates this is not a merge.
func (uc *CatalogUC) Replace(ctx context.Context, p *domain.Product) error {
	err := uc.Products.Update(ctx, func(products []domain.Product) ([]domain.Product, error) {
		for i := range products {
			if products[i].ID == p.ID {
				p.UpdatedAt = domain.Timestamp(time.Now())
				products[i] = *p
				return products, nil
			}
		}
		return nil, domain.ErrNotFound
	})
	return err
}

// Delete removes the record if present. Removing an unknown id is not an
// error; the collection is simply rewritten without it.
func (uc *CatalogUC) Delete(ctx context.Context, id int) error {
	return uc.Products.Update(ctx, func(products []domain.Product) ([]domain.Product, error) {
		kept := products[:0:0]
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept, nil
	})
}
