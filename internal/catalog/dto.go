package catalog

import (
	"time"

	"atelier/internal/domain"
)

type ProductDTO struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images"`
	CategoryID  int       `json:"categoryId"`
	Gender      string    `json:"gender"`
	Sizes       []string  `json:"sizes"`
	Materials   []string  `json:"materials"`
	InStock     bool      `json:"inStock"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductRequest struct {
	ID          int      `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	CategoryID  int      `json:"categoryId"`
	Gender      string   `json:"gender"`
	Sizes       []string `json:"sizes"`
	Materials   []string `json:"materials"`
	InStock     bool     `json:"inStock"`
	Featured    bool     `json:"featured"`
}

type CategoryDTO struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductCount int    `json:"productCount"`
}

type CategoryRequest struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toProductDTO(p domain.Product) ProductDTO {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	materials := p.Materials
	if materials == nil {
		materials = []string{}
	}
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Images:      images,
		CategoryID:  p.CategoryID,
		Gender:      string(p.Gender),
		Sizes:       sizes,
		Materials:   materials,
		InStock:     p.InStock,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
	}
}

func toCategoryDTO(c domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		ProductCount: c.ProductCount,
	}
}
