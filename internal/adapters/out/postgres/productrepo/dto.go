// Package productrepo provides data transfer objects and mapping functions
// for product persistence. Products are matched to order lines by
// reference; the image URL column stores an opaque string.
package productrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID          int     `gorm:"primaryKey;autoIncrement:false"`
	Reference   string  `gorm:"type:varchar(100);uniqueIndex"`
	Description string  `gorm:"type:varchar(255)"`
	ImageURL    *string `gorm:"type:varchar(500);column:image_url"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database
// representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Int(),
		Reference:   aggregate.Reference(),
		Description: aggregate.Description(),
		ImageURL:    aggregate.ImageURL(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewProductID(dto.ID)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Reference, dto.Description, dto.ImageURL)
}
