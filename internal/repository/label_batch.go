package repository

import (
	"context"

	constant "github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/model"
	"gorm.io/gorm"
)

type LabelBatchRepository struct {
	*baseRepository
}

func (lr LabelBatchRepository) Create(ctx context.Context, tx *gorm.DB, batch *model.LabelBatch) (*model.LabelBatch, error) {
	lr.logger.Debugf("Create label batch with data: %+v \n", batch)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.LabelBatch{}).Omit("pdf_path").Create(batch).Error; err != nil {
		return nil, err
	}

	return batch, nil
}

func (lr LabelBatchRepository) UpdatePdfPath(ctx context.Context, tx *gorm.DB, id uint, path string) error {
	lr.logger.Debugf("Update label batch id: %d pdf path: %s \n", id, path)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.LabelBatch{}).Where("id = ?", id).Update("pdf_path", path).Error
}

func (lr LabelBatchRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.LabelBatch, error) {
	lr.logger.Debugf("Get label batch by id: %d \n", id)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var batch model.LabelBatch
	if err := db.WithContext(ctx).Model(&model.LabelBatch{}).Where("id = ?", id).First(&batch).Error; err != nil {
		return nil, err
	}

	return &batch, nil
}

func (lr LabelBatchRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	lr.logger.Debugf("Delete label batch id: %d \n", id)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.LabelBatch{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (lr LabelBatchRepository) List(ctx context.Context, tx *gorm.DB, filter LabelBatchFilter, page, pageSize uint) ([]model.LabelBatch, int64, error) {
	lr.logger.Debugf("List label batches with filter: %+v page: %d pageSize: %d \n", filter, page, pageSize)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var total int64
	if err := db.WithContext(ctx).Model(&model.LabelBatch{}).Scopes(filter.Scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	batches := []model.LabelBatch{}
	if err := db.WithContext(ctx).Model(&model.LabelBatch{}).Scopes(filter.Scope, labelBatchOrder).
		Offset(offset(page, pageSize)).Limit(int(pageSize)).Find(&batches).Error; err != nil {
		return nil, 0, err
	}

	return batches, total, nil
}

func (lr LabelBatchRepository) ListAll(ctx context.Context, tx *gorm.DB, filter LabelBatchFilter, limit int) ([]model.LabelBatch, error) {
	lr.logger.Debugf("List all label batches with filter: %+v limit: %d \n", filter, limit)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	batches := []model.LabelBatch{}
	if err := db.WithContext(ctx).Model(&model.LabelBatch{}).Scopes(filter.Scope, labelBatchOrder).
		Limit(limit).Find(&batches).Error; err != nil {
		return nil, err
	}

	return batches, nil
}

func (lr LabelBatchRepository) DistinctProducts(ctx context.Context, tx *gorm.DB) ([]string, error) {
	lr.logger.Debug("Get distinct label batch products \n")

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	products := []string{}
	if err := db.WithContext(ctx).Model(&model.LabelBatch{}).Distinct("producto").
		Order("producto ASC").Limit(constant.DistinctProductLimit).Pluck("producto", &products).Error; err != nil {
		return nil, err
	}

	return products, nil
}
