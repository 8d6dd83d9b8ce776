package repository

import (
	"context"

	constant "github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/model"
	"gorm.io/gorm"
)

type CertificateRepository struct {
	*baseRepository
}

func (cr CertificateRepository) Create(ctx context.Context, tx *gorm.DB, cert *model.Certificate) (*model.Certificate, error) {
	cr.logger.Debugf("Create certificate with data: %+v \n", cert)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	// pdf_path is only written once the document exists
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Omit("pdf_path").Create(cert).Error; err != nil {
		return nil, err
	}

	return cert, nil
}

func (cr CertificateRepository) Update(ctx context.Context, tx *gorm.DB, cert *model.Certificate) (*model.Certificate, error) {
	cr.logger.Debugf("Update certificate id: %d with data: %+v \n", cert.ID, cert)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(cert).
		Select("fecha_elaboracion", "producto", "origen_cultivo", "numero_batch", "cantidad_cubetas",
			"peso_por_cubeta", "color", "olor", "apariencia", "sabor", "kilogramos_total", "pdf_path", "updated_at").
		Updates(cert).Error; err != nil {
		return nil, err
	}

	return cert, nil
}

func (cr CertificateRepository) UpdatePdfPath(ctx context.Context, tx *gorm.DB, id uint, path string) error {
	cr.logger.Debugf("Update certificate id: %d pdf path: %s \n", id, path)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Certificate{}).Where("id = ?", id).Update("pdf_path", path).Error
}

func (cr CertificateRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Certificate, error) {
	cr.logger.Debugf("Get certificate by id: %d \n", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var cert model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Where("id = ?", id).First(&cert).Error; err != nil {
		return nil, err
	}

	return &cert, nil
}

func (cr CertificateRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	cr.logger.Debugf("Delete certificate id: %d \n", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Certificate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// List returns one page of certificates matching filter and the total match count.
func (cr CertificateRepository) List(ctx context.Context, tx *gorm.DB, filter CertificateFilter, page, pageSize uint) ([]model.Certificate, int64, error) {
	cr.logger.Debugf("List certificates with filter: %+v page: %d pageSize: %d \n", filter, page, pageSize)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var total int64
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Scopes(filter.Scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	certs := []model.Certificate{}
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Scopes(filter.Scope, certificateOrder).
		Offset(offset(page, pageSize)).Limit(int(pageSize)).Find(&certs).Error; err != nil {
		return nil, 0, err
	}

	return certs, total, nil
}

// ListAll returns up to limit matching certificates in list order, for exports and merges.
func (cr CertificateRepository) ListAll(ctx context.Context, tx *gorm.DB, filter CertificateFilter, limit int) ([]model.Certificate, error) {
	cr.logger.Debugf("List all certificates with filter: %+v limit: %d \n", filter, limit)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	certs := []model.Certificate{}
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Scopes(filter.Scope, certificateOrder).
		Limit(limit).Find(&certs).Error; err != nil {
		return nil, err
	}

	return certs, nil
}

func (cr CertificateRepository) DistinctProducts(ctx context.Context, tx *gorm.DB) ([]string, error) {
	cr.logger.Debug("Get distinct certificate products \n")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	products := []string{}
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Distinct("producto").
		Order("producto ASC").Limit(constant.DistinctProductLimit).Pluck("producto", &products).Error; err != nil {
		return nil, err
	}

	return products, nil
}
