package repository

import (
	"github.com/dipii/backoffice/internal/auth"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db         *gorm.DB
	logger     *zap.SugaredLogger
	jwtService auth.JWTInterface
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB          *gorm.DB
	User        *UserRepository
	JWT         *JWTRepository
	Supplier    *SupplierRepository
	Intake      *IntakeRepository
	Certificate *CertificateRepository
	LabelBatch  *LabelBatchRepository
	Dashboard   *DashboardRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface) *baseRepository {
	return &baseRepository{db: db, logger: logger, jwtService: jwtService}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface) *Repository {
	br := newBaseRepository(db, logger, jwtService)
	_userRepo := &UserRepository{baseRepository: br}

	return &Repository{
		DB:          db,
		User:        _userRepo,
		JWT:         &JWTRepository{baseRepository: br, user: _userRepo},
		Supplier:    &SupplierRepository{baseRepository: br},
		Intake:      &IntakeRepository{baseRepository: br},
		Certificate: &CertificateRepository{baseRepository: br},
		LabelBatch:  &LabelBatchRepository{baseRepository: br},
		Dashboard:   &DashboardRepository{baseRepository: br},
	}
}

// Note: GORM perform write (create/update/delete) operations run inside a transaction to ensure data consistency | So this function is helpful only when several writes must succeed together
// Docs: https://gorm.io/docs/transactions.html
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx Transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}

func offset(page, pageSize uint) int {
	if page == 0 {
		page = 1
	}
	return int((page - 1) * pageSize)
}
