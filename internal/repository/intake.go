package repository

import (
	"context"

	constant "github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/model"
	"gorm.io/gorm"
)

type IntakeRepository struct {
	*baseRepository
}

func (ir IntakeRepository) Create(ctx context.Context, tx *gorm.DB, intake *model.Intake) (*model.Intake, error) {
	ir.logger.Debugf("Create intake with data: %+v \n", intake)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Intake{}).Omit("Supplier").Create(intake).Error; err != nil {
		return nil, err
	}

	return intake, nil
}

func (ir IntakeRepository) Update(ctx context.Context, tx *gorm.DB, intake *model.Intake) (*model.Intake, error) {
	ir.logger.Debugf("Update intake id: %d with data: %+v \n", intake.ID, intake)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(intake).
		Select("fecha_ingreso", "proveedor_id", "producto", "cantidad_kg", "lote_proveedor", "observaciones", "updated_at").
		Updates(intake).Error; err != nil {
		return nil, err
	}

	return intake, nil
}

func (ir IntakeRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Intake, error) {
	ir.logger.Debugf("Get intake by id: %d \n", id)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var intake model.Intake
	if err := db.WithContext(ctx).Model(&model.Intake{}).Preload("Supplier").Where("id = ?", id).First(&intake).Error; err != nil {
		return nil, err
	}

	return &intake, nil
}

func (ir IntakeRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	ir.logger.Debugf("Delete intake id: %d \n", id)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Intake{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (ir IntakeRepository) List(ctx context.Context, tx *gorm.DB, filter IntakeFilter, page, pageSize uint) ([]model.Intake, int64, error) {
	ir.logger.Debugf("List intakes with filter: %+v page: %d pageSize: %d \n", filter, page, pageSize)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var total int64
	if err := db.WithContext(ctx).Model(&model.Intake{}).Scopes(filter.Scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	intakes := []model.Intake{}
	if err := db.WithContext(ctx).Model(&model.Intake{}).Preload("Supplier").Scopes(filter.Scope, intakeOrder).
		Offset(offset(page, pageSize)).Limit(int(pageSize)).Find(&intakes).Error; err != nil {
		return nil, 0, err
	}

	return intakes, total, nil
}

func (ir IntakeRepository) ListAll(ctx context.Context, tx *gorm.DB, filter IntakeFilter, limit int) ([]model.Intake, error) {
	ir.logger.Debugf("List all intakes with filter: %+v limit: %d \n", filter, limit)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	intakes := []model.Intake{}
	if err := db.WithContext(ctx).Model(&model.Intake{}).Preload("Supplier").Scopes(filter.Scope, intakeOrder).
		Limit(limit).Find(&intakes).Error; err != nil {
		return nil, err
	}

	return intakes, nil
}
