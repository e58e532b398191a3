package service

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Phone    string `yaml:"phone"`
}

type SeedProduct struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Price       decimal.Decimal `yaml:"price"`
	Category    string          `yaml:"category"`
	Brand       string          `yaml:"brand"`
	Stock       int             `yaml:"stock"`
	IsFeatured  bool            `yaml:"featured"`
	Images      []string        `yaml:"images"`
}

// SeedData seed檔內容, admin 只在系統內沒有admin時建立
type SeedData struct {
	Admin    *SeedUser     `yaml:"admin"`
	Users    []SeedUser    `yaml:"users"`
	Products []SeedProduct `yaml:"products"`
}

type SeedResult struct {
	Users    int
	Products int
	Skipped  int
}

// LoadSeedData 解析yaml seed檔
func LoadSeedData(r io.Reader) (*SeedData, error) {
	var data SeedData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	for i, p := range data.Products {
		if strings.TrimSpace(p.Name) == "" || p.Category == "" {
			return nil, fmt.Errorf("product #%d: name and category are required", i+1)
		}
		if p.Price.IsNegative() || p.Stock < 0 {
			return nil, fmt.Errorf("product %q: price and stock cannot be negative", p.Name)
		}
	}
	return &data, nil
}

type ISeedService interface {
	// Seed 重複執行時已存在的使用者(email)與商品(name)會略過
	Seed(ctx context.Context, data *SeedData) (*SeedResult, error)
}

type SeedService struct {
	store          db.IStore
	authService    IAuthService
	productService IProductService
	logger         *zerolog.Logger
}

func NewSeedService(store db.IStore, authService IAuthService, productService IProductService, logger *zerolog.Logger) ISeedService {
	if reflect.ValueOf(store).IsNil() {
		panic("seed service initialization failed: store cannot be nil")
	}
	if reflect.ValueOf(authService).IsNil() {
		panic("seed service initialization failed: authService cannot be nil")
	}
	if reflect.ValueOf(productService).IsNil() {
		panic("seed service initialization failed: productService cannot be nil")
	}
	if logger == nil {
		panic("seed service initialization failed: logger cannot be nil")
	}
	return &SeedService{store: store, authService: authService, productService: productService, logger: logger}
}

func (s *SeedService) productExists(ctx context.Context, name string) (bool, error) {
	products, _, err := s.store.ListProducts(ctx, db.ProductFilter{
		Search:    name,
		PageQuery: util.PageQuery{Page: 1, Limit: 50},
	})
	if err != nil {
		return false, err
	}
	for _, p := range products {
		if strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *SeedService) Seed(ctx context.Context, data *SeedData) (*SeedResult, error) {
	result := &SeedResult{}

	if data.Admin != nil {
		if err := s.authService.EnsureAdmin(ctx, data.Admin.Name, data.Admin.Email, data.Admin.Password); err != nil {
			return nil, err
		}
	}

	for _, u := range data.Users {
		_, err := s.authService.Register(ctx, RegisterParams{Name: u.Name, Email: u.Email, Password: u.Password, Phone: u.Phone})
		if err != nil {
			if apperr.Is(err, apperr.ConflictCode) {
				result.Skipped++
				continue
			}
			return nil, err
		}
		result.Users++
	}

	for _, p := range data.Products {
		exists, err := s.productExists(ctx, p.Name)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if exists {
			result.Skipped++
			continue
		}
		images := make([]model.ProductImage, 0, len(p.Images))
		for _, url := range p.Images {
			images = append(images, model.ProductImage{URL: url})
		}
		_, err = s.productService.CreateProduct(ctx, ProductParams{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
			Brand:       p.Brand,
			Stock:       p.Stock,
			IsFeatured:  p.IsFeatured,
			Images:      images,
		})
		if err != nil {
			return nil, err
		}
		result.Products++
	}

	s.logger.Info().
		Int("users", result.Users).
		Int("products", result.Products).
		Int("skipped", result.Skipped).
		Msg("seed finished")
	return result, nil
}
