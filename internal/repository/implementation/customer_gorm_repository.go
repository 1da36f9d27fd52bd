package implementation

import (
	"context"
	"fmt"

	"github.com/marcosalmeidaedp/bot-cliente/internal/entity"
	"github.com/marcosalmeidaedp/bot-cliente/internal/repository/contract"

	"gorm.io/gorm"
)

// GormCustomerRepository loads customers from a `customers` table. It is the
// alternate record source for installations that keep the dataset in Postgres
// instead of a spreadsheet; the schema contract is identical.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Source() string {
	return "postgres:customers"
}

func (r *GormCustomerRepository) Load(ctx context.Context) ([]entity.Customer, error) {
	if !r.db.Migrator().HasTable(&entity.Customer{}) {
		return nil, fmt.Errorf("%w: table customers does not exist", contract.ErrMissingColumn)
	}

	var customers []entity.Customer
	if err := r.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", contract.ErrSourceUnavailable, err)
	}
	return customers, nil
}
