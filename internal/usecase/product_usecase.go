package usecase

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
)

type ProductUseCase struct {
	productRepo     repository.ProductRepository
	vendorRepo      repository.VendorRepository
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	reviewRepo      repository.ReviewRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	vendorRepo repository.VendorRepository,
	categoryRepo repository.CategoryRepository,
	subCategoryRepo repository.SubCategoryRepository,
	reviewRepo repository.ReviewRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:     productRepo,
		vendorRepo:      vendorRepo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		reviewRepo:      reviewRepo,
	}
}

type CreateProductInput struct {
	Name               string
	Description        string
	Price              float64
	Quantity           int
	VendorID           string
	CategoryID         string
	SubCategoryID      string
	Images             []string
	Color              string
	Size               string
	Weight             string
	IsFeatured         bool
	DiscountPercentage float64
	Delivery           string
	DeliveryCharge     float64
	MaxOrderQuantity   int
	RestockDate        string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	vendor, err := uc.vendorRepo.GetByIDOrEmail(ctx, input.VendorID, "", entity.Anonymous)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:               input.Name,
		Description:        input.Description,
		Price:              input.Price,
		Quantity:           input.Quantity,
		VendorID:           vendor.ID,
		Images:             input.Images,
		Color:              input.Color,
		Size:               input.Size,
		Weight:             input.Weight,
		IsFeatured:         input.IsFeatured,
		IsActive:           true,
		OutOfStock:         input.Quantity == 0,
		RestockDate:        input.RestockDate,
		DiscountPercentage: input.DiscountPercentage,
		Delivery:           input.Delivery,
		DeliveryCharge:     input.DeliveryCharge,
		MaxOrderQuantity:   input.MaxOrderQuantity,
		Reviews:            []primitive.ObjectID{},
	}
	if product.Delivery == "" {
		product.Delivery = "Free"
	}
	if product.Delivery == "Pay" && product.DeliveryCharge <= 0 {
		return nil, errors.Validation("deliveryCharge must be positive for paid delivery", nil)
	}

	if input.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = &category.ID
	}
	if input.SubCategoryID != "" {
		subCategory, err := uc.subCategoryRepo.GetByID(ctx, input.SubCategoryID)
		if err != nil {
			return nil, err
		}
		product.SubCategoryID = &subCategory.ID
	}

	if discounted := discountedPrice(product.Price, product.DiscountPercentage); discounted != nil {
		product.DiscountedPrice = discounted
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct returns the product together with its reviews.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, []*entity.Review, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	active := true
	reviews, err := uc.reviewRepo.List(ctx, repository.ReviewFilter{ProductID: id, IsActive: &active})
	if err != nil {
		return nil, nil, err
	}

	return product, reviews, nil
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, params map[string]string, page repository.Page) ([]*entity.Product, int64, error) {
	query, err := ParseProductQuery(params)
	if err != nil {
		return nil, 0, err
	}
	return uc.productRepo.List(ctx, query, ParseSort(params), page)
}

func (uc *ProductUseCase) ListByFlag(ctx context.Context, flag string, value bool, page repository.Page) ([]*entity.Product, int64, error) {
	query := repository.ProductQuery{}
	switch flag {
	case "isBestProduct":
		query.IsBestProduct = &value
	case "isFeatured":
		query.IsFeatured = &value
	case "isActive":
		query.IsActive = &value
	default:
		return nil, 0, errors.BadRequest("Unknown product flag", nil)
	}
	return uc.productRepo.List(ctx, query, repository.Sort{Field: "createdAt", Desc: true}, page)
}

func (uc *ProductUseCase) ListVendorProducts(ctx context.Context, vendorID string, page repository.Page) ([]*entity.Product, int64, error) {
	if _, err := objectIDFromHex(vendorID); err != nil {
		return nil, 0, err
	}
	query := repository.ProductQuery{VendorID: vendorID}
	return uc.productRepo.List(ctx, query, repository.Sort{Field: "createdAt", Desc: true}, page)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, payload map[string]interface{}) (*entity.Product, error) {
	if len(payload) == 0 {
		return nil, errors.BadRequest("Nothing to update", nil)
	}

	// Ratings and review refs are owned by the aggregation engine.
	for _, owned := range []string{"ratings", "reviews"} {
		if _, ok := payload[owned]; ok {
			return nil, errors.PermissionDenied(owned)
		}
	}

	set := flattenUpdate(payload)

	// Keep the derived discount price in step when price or percentage move.
	price, priceChanged := toFloat(payload["price"])
	percentage, pctChanged := toFloat(payload["discountPercentage"])
	if priceChanged || pctChanged {
		current, err := uc.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !priceChanged {
			price = current.Price
		}
		if !pctChanged {
			percentage = current.DiscountPercentage
		}
		set["discountedPrice"] = discountedPrice(price, percentage)
	}

	return uc.productRepo.Update(ctx, id, set)
}

func (uc *ProductUseCase) ToggleProductStatus(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.productRepo.Update(ctx, id, map[string]interface{}{"isActive": !product.IsActive})
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	return uc.productRepo.Delete(ctx, id)
}

func discountedPrice(price, percentage float64) *float64 {
	if percentage <= 0 || percentage > 100 {
		return nil
	}
	v := math.Round(price*(1-percentage/100)*100) / 100
	return &v
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
