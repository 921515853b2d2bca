package service

import (
	"fmt"
	"strings"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/repository"
)

// CatalogService handles section and product management
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// CreateSection creates a section at the next free position
func (s *CatalogService) CreateSection(name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: section name cannot be empty", domain.ErrValidation)
	}
	return s.catalogRepo.CreateSection(name)
}

// Sections lists sections, optionally hidden ones too
func (s *CatalogService) Sections(onlyVisible bool) ([]domain.Section, error) {
	return s.catalogRepo.ListSections(onlyVisible)
}

// Section returns a section or ErrNotFound
func (s *CatalogService) Section(sectionID int64) (*domain.Section, error) {
	section, err := s.catalogRepo.GetSection(sectionID)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, fmt.Errorf("section %d: %w", sectionID, domain.ErrNotFound)
	}
	return section, nil
}

// DeleteSection removes the section together with its products
func (s *CatalogService) DeleteSection(sectionID int64) error {
	return s.catalogRepo.DeleteSection(sectionID)
}

// AddProduct creates a product in the given section
func (s *CatalogService) AddProduct(sectionID int64, name string, price int64, description string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: product name cannot be empty", domain.ErrValidation)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	return s.catalogRepo.CreateProduct(domain.Product{
		SectionID:   sectionID,
		Name:        name,
		Price:       price,
		Description: description,
		ButtonsJSON: "[]",
		Visible:     true,
	})
}

// Products lists a section's products, optionally hidden ones too
func (s *CatalogService) Products(sectionID int64, onlyVisible bool) ([]domain.Product, error) {
	return s.catalogRepo.ListProducts(sectionID, onlyVisible)
}

// Product returns a product or ErrNotFound
func (s *CatalogService) Product(productID int64) (*domain.Product, error) {
	product, err := s.catalogRepo.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
	}
	return product, nil
}

// DeleteProduct removes the product
func (s *CatalogService) DeleteProduct(productID int64) error {
	return s.catalogRepo.DeleteProduct(productID)
}

// RenameProduct changes the product name
func (s *CatalogService) RenameProduct(productID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: product name cannot be empty", domain.ErrValidation)
	}
	return s.catalogRepo.UpdateProductName(productID, name)
}

// RepriceProduct changes the product price
func (s *CatalogService) RepriceProduct(productID int64, price int64) error {
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	return s.catalogRepo.UpdateProductPrice(productID, price)
}
