package repo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	domain "github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/models/m_product"
	"github.com/murkotick/product-catalog-manager/internal/pkg/committer"
)

// ErrUnreadable wraps an I/O failure other than a missing catalog file.
var ErrUnreadable = errors.New("catalog file unreadable")

// ProductRepo is the JSON file implementation of the catalog store.
// It builds write operations but never applies them.
type ProductRepo struct {
	path   string
	logger *zap.Logger
}

func NewProductRepo(path string, logger *zap.Logger) *ProductRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductRepo{path: path, logger: logger}
}

// Path returns the catalog file location.
func (r *ProductRepo) Path() string {
	return r.path
}

// Load reads the catalog file. A missing, empty or malformed file yields an
// empty catalog: the form must open even when the data is unusable.
func (r *ProductRepo) Load() []*domain.Product {
	log := r.logger.With(zap.String("path", r.path))

	products, err := r.Read()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("catalog file not found, starting empty")
		return []*domain.Product{}
	case errors.Is(err, ErrUnreadable):
		log.Warn("catalog file unreadable, starting empty", zap.Error(err))
		return []*domain.Product{}
	case err != nil:
		log.Warn("catalog file malformed, starting empty", zap.Error(err))
		return []*domain.Product{}
	}

	log.Info("catalog loaded", zap.Int("products", len(products)))
	return products
}

// Read decodes the catalog file and reports every problem instead of
// degrading to an empty catalog. Tools that rewrite an existing file use it.
func (r *ProductRepo) Read() ([]*domain.Product, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	records, err := m_product.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}

	products := make([]*domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, toDomain(rec))
	}
	return products, nil
}

// SaveOp serializes the whole catalog into a single overwrite of the file.
// Image paths are normalized again so the file stays canonical whatever
// produced the records.
func (r *ProductRepo) SaveOp(products []*domain.Product) (*committer.Op, error) {
	records := make([]m_product.Record, 0, len(products))
	for _, p := range products {
		records = append(records, buildRecord(p))
	}
	data, err := m_product.Encode(records)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return &committer.Op{Path: r.path, Data: data}, nil
}

// buildRecord maps a product onto its file representation.
// It's unexported so tests in the same package can inspect the record.
func buildRecord(p *domain.Product) m_product.Record {
	return m_product.Record{
		ID:            p.ID(),
		Slug:          p.Slug(),
		Title:         p.Title(),
		Short:         p.Short(),
		Category:      p.Category(),
		Boutique:      p.Boutique(),
		Price:         p.Price(),
		PriceBoutique: p.PriceBoutique(),
		OldPrice:      p.OldPrice(),
		Stock:         p.Stock(),
		Rating:        p.Rating(),
		Images:        domain.NormalizePaths(p.Images()),
		Features:      p.Features(),
		Description:   p.Description(),
	}
}

func toDomain(rec m_product.Record) *domain.Product {
	return domain.ReconstructProduct(rec.ID, domain.Details{
		Slug:          rec.Slug,
		Title:         rec.Title,
		Short:         rec.Short,
		Category:      rec.Category,
		Boutique:      rec.Boutique,
		Price:         rec.Price,
		PriceBoutique: rec.PriceBoutique,
		OldPrice:      rec.OldPrice,
		Stock:         rec.Stock,
		Rating:        rec.Rating,
		Images:        rec.Images,
		Features:      rec.Features,
		Description:   rec.Description,
	})
}
