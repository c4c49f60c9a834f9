package infrastructure

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
	appErrors "github.com/reimbazz/GF-Innovation-service/internal/errors"
)

type InvestmentRepository struct {
	DB *gorm.DB
}

var _ investment.Repository = (*InvestmentRepository)(nil)

type investmentRow struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Type      string    `gorm:"type:varchar(20);not null;index:idx_investments_type"`
	Amount    float64   `gorm:"not null"`
	Date      time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (investmentRow) TableName() string {
	return "investments"
}

func toDomainInvestment(row *investmentRow) *investment.Investment {
	return &investment.Investment{
		Id:        row.Id,
		Name:      row.Name,
		Type:      investment.Types(row.Type),
		Amount:    row.Amount,
		Date:      investment.NewDate(row.Date),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toRowInvestment(inv *investment.Investment) *investmentRow {
	return &investmentRow{
		Id:        inv.Id,
		Name:      inv.Name,
		Type:      string(inv.Type),
		Amount:    inv.Amount,
		Date:      inv.Date.Time,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *investment.Investment) error {
	row := toRowInvestment(inv)
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		return appErrors.ErrDatabase.WithError(err)
	}
	return nil
}

func (r *InvestmentRepository) List(ctx context.Context) ([]*investment.Investment, error) {
	var rows []investmentRow
	err := r.DB.WithContext(ctx).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, appErrors.ErrDatabase.WithError(err)
	}

	out := make([]*investment.Investment, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainInvestment(&rows[i]))
	}
	return out, nil
}

func (r *InvestmentRepository) GetByID(ctx context.Context, id string) (*investment.Investment, error) {
	var row investmentRow
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrInvestmentNotFound
		}
		return nil, appErrors.ErrDatabase.WithError(err)
	}
	return toDomainInvestment(&row), nil
}

func (r *InvestmentRepository) Update(ctx context.Context, inv *investment.Investment) error {
	row := toRowInvestment(inv)
	err := r.DB.WithContext(ctx).
		Model(&investmentRow{}).
		Where("id = ?", row.Id).
		Select("name", "type", "amount", "date", "updated_at").
		Updates(row).Error
	if err != nil {
		return appErrors.ErrDatabase.WithError(err)
	}
	return nil
}

func (r *InvestmentRepository) Delete(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&investmentRow{})
	if result.Error != nil {
		return appErrors.ErrDatabase.WithError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrInvestmentNotFound
	}
	return nil
}
