package repositories

import (
	"context"
	"fmt"
	"time"

	"storefront/config"
	"storefront/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

type ProductFilter struct {
	Search    string
	Category  string
	SortName  string
	SortPrice string
	MinPrice  float64
	MaxPrice  float64
	OnSale    bool
	Featured  bool
}

const productColumns = `id, name, description, category_id, price, stock,
	COALESCE(image_url, ''), COALESCE(is_on_sale, false), COALESCE(is_featured, false),
	is_active, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }, p *models.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Price, &p.Stock,
		&p.ImageURL, &p.IsOnSale, &p.IsFeatured, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := config.DB.Query(ctx, `SELECT id, name, is_active, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.IsActive, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *ProductRepository) GetAllProducts(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active=true`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM products WHERE is_active=true ORDER BY created_at DESC LIMIT $1 OFFSET $2`, productColumns)
	rows, err := config.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) FilterProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE is_active=true`, productColumns)
	args := []interface{}{}
	paramIndex := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND LOWER(name) LIKE LOWER($%d)", paramIndex)
		args = append(args, "%"+filter.Search+"%")
		paramIndex++
	}

	if filter.Category != "" {
		query += fmt.Sprintf(" AND category_id IN (SELECT id FROM categories WHERE LOWER(name)=LOWER($%d))", paramIndex)
		args = append(args, filter.Category)
		paramIndex++
	}

	if filter.MinPrice > 0 {
		query += fmt.Sprintf(" AND price >= $%d", paramIndex)
		args = append(args, filter.MinPrice)
		paramIndex++
	}

	if filter.MaxPrice > 0 {
		query += fmt.Sprintf(" AND price <= $%d", paramIndex)
		args = append(args, filter.MaxPrice)
		paramIndex++
	}

	if filter.OnSale {
		query += " AND is_on_sale=true"
	}
	if filter.Featured {
		query += " AND is_featured=true"
	}

	switch {
	case filter.SortName == "asc":
		query += " ORDER BY name ASC"
	case filter.SortName == "desc":
		query += " ORDER BY name DESC"
	case filter.SortPrice == "asc":
		query += " ORDER BY price ASC"
	case filter.SortPrice == "desc":
		query += " ORDER BY price DESC"
	default:
		query += " ORDER BY created_at DESC"
	}

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id=$1`, productColumns)

	var p models.Product
	if err := scanProduct(config.DB.QueryRow(ctx, query, id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) CategoryExists(ctx context.Context, id int) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE id=$1`, id).Scan(&count)
	return count > 0, err
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	now := time.Now()
	return config.DB.QueryRow(ctx,
		`INSERT INTO products (name, description, category_id, price, stock, image_url, is_on_sale, is_featured, is_active, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,true,$9,$10) RETURNING id, created_at, updated_at`,
		product.Name, product.Description, product.CategoryID, product.Price, product.Stock,
		product.ImageURL, product.IsOnSale, product.IsFeatured, now, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	_, err := config.DB.Exec(ctx,
		`UPDATE products SET name=$1, description=$2, category_id=$3, price=$4, stock=$5,
		 image_url=$6, is_on_sale=$7, is_featured=$8, is_active=$9, updated_at=$10 WHERE id=$11`,
		product.Name, product.Description, product.CategoryID, product.Price, product.Stock,
		product.ImageURL, product.IsOnSale, product.IsFeatured, product.IsActive, time.Now(), product.ID)
	return err
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	return err
}
