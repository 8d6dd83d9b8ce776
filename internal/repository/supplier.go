package repository

import (
	"context"
	"errors"

	constant "github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/model"
	"gorm.io/gorm"
)

var ErrSupplierHasIntakes = errors.New("supplier has intake records")

type SupplierRepository struct {
	*baseRepository
}

func (sr SupplierRepository) Create(ctx context.Context, tx *gorm.DB, supplier *model.Supplier) (*model.Supplier, error) {
	sr.logger.Debugf("Create supplier with data: %+v \n", supplier)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Supplier{}).Create(supplier).Error; err != nil {
		return nil, err
	}

	return supplier, nil
}

func (sr SupplierRepository) Update(ctx context.Context, tx *gorm.DB, supplier *model.Supplier) (*model.Supplier, error) {
	sr.logger.Debugf("Update supplier id: %d with data: %+v \n", supplier.ID, supplier)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(supplier).
		Select("nombre", "nit", "contacto", "telefono", "email", "direccion", "activo", "updated_at").
		Updates(supplier).Error; err != nil {
		return nil, err
	}

	return supplier, nil
}

func (sr SupplierRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Supplier, error) {
	sr.logger.Debugf("Get supplier by id: %d \n", id)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var supplier model.Supplier
	if err := db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", id).First(&supplier).Error; err != nil {
		return nil, err
	}

	return &supplier, nil
}

func (sr SupplierRepository) HasIntakes(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	sr.logger.Debugf("Check intakes of supplier id: %d \n", id)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Intake{}).Where("proveedor_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a supplier that no intake refers to.
func (sr SupplierRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	sr.logger.Debugf("Delete supplier id: %d \n", id)

	db := sr.getDB(tx)
	return sr.withTx(db, func(tx *gorm.DB) error {
		if _, err := sr.GetById(ctx, tx, id); err != nil {
			return err
		}

		used, err := sr.HasIntakes(ctx, tx, id)
		if err != nil {
			return err
		}
		if used {
			return ErrSupplierHasIntakes
		}

		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		return tx.WithContext(ctx).Where("id = ?", id).Delete(&model.Supplier{}).Error
	})
}

func (sr SupplierRepository) List(ctx context.Context, tx *gorm.DB, filter SupplierFilter, page, pageSize uint) ([]model.Supplier, int64, error) {
	sr.logger.Debugf("List suppliers with filter: %+v page: %d pageSize: %d \n", filter, page, pageSize)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var total int64
	if err := db.WithContext(ctx).Model(&model.Supplier{}).Scopes(filter.Scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	suppliers := []model.Supplier{}
	if err := db.WithContext(ctx).Model(&model.Supplier{}).Scopes(filter.Scope, supplierOrder).
		Offset(offset(page, pageSize)).Limit(int(pageSize)).Find(&suppliers).Error; err != nil {
		return nil, 0, err
	}

	return suppliers, total, nil
}
