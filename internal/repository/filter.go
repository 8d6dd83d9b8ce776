package repository

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dipii/backoffice/pkg/dipii"
	"gorm.io/gorm"
)

/*
 * List filters are bound straight from the query string. Every criterion is
 * optional and they are combined with AND. A criterion that cannot be parsed
 * is ignored rather than rejected, the same way an empty one is.
 */

type CertificateFilter struct {
	Q       string `json:"q" form:"q"`
	Product string `json:"producto" form:"producto"`
	Batch   string `json:"batch" form:"batch"`
	From    string `json:"f_from" form:"f_from"`
	To      string `json:"f_to" form:"f_to"`
	Pdf     string `json:"pdf" form:"pdf"`
}

type LabelBatchFilter struct {
	Q            string `json:"q" form:"q"`
	Product      string `json:"producto" form:"producto"`
	ElaboratedOn string `json:"elab_from" form:"elab_from"`
	ElaboratedTo string `json:"elab_to" form:"elab_to"`
	ExpiresFrom  string `json:"ven_from" form:"ven_from"`
	ExpiresTo    string `json:"ven_to" form:"ven_to"`
	Pdf          string `json:"pdf" form:"pdf"`
}

type SupplierFilter struct {
	Q      string `json:"q" form:"q"`
	Active string `json:"activo" form:"activo"`
}

type IntakeFilter struct {
	Q          string `json:"q" form:"q"`
	SupplierID string `json:"proveedor_id" form:"proveedor_id"`
	From       string `json:"f_from" form:"f_from"`
	To         string `json:"f_to" form:"f_to"`
}

// asID returns s as a number when it is made only of digits and fits an
// integer column.
func asID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n > math.MaxInt32 {
		return 0, false
	}
	return n, true
}

func asDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	d, err := dipii.ParseDate(s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func contains(s string) string {
	return "%" + strings.TrimSpace(s) + "%"
}

// group returns a fresh condition builder used for parenthesized OR groups.
func group(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true})
}

func dateRange(db *gorm.DB, column, from, to string) *gorm.DB {
	if d, ok := asDate(from); ok {
		db = db.Where(column+" >= ?", d)
	}
	if d, ok := asDate(to); ok {
		db = db.Where(column+" <= ?", d)
	}
	return db
}

func hasPdf(db *gorm.DB, flag string) *gorm.DB {
	switch strings.TrimSpace(flag) {
	case "1":
		return db.Where("pdf_path IS NOT NULL")
	case "0":
		return db.Where("pdf_path IS NULL")
	default:
		return db
	}
}

func (f CertificateFilter) Scope(db *gorm.DB) *gorm.DB {
	if strings.TrimSpace(f.Q) != "" {
		cond := group(db).Where("producto ILIKE ?", contains(f.Q))
		if n, ok := asID(f.Q); ok {
			cond = cond.Or("numero_batch = ?", n).Or("id = ?", n)
		}
		db = db.Where(cond)
	}
	if strings.TrimSpace(f.Product) != "" {
		db = db.Where("producto ILIKE ?", contains(f.Product))
	}
	if n, ok := asID(f.Batch); ok {
		db = db.Where("numero_batch = ?", n)
	}
	db = dateRange(db, "fecha_elaboracion", f.From, f.To)
	return hasPdf(db, f.Pdf)
}

func certificateOrder(db *gorm.DB) *gorm.DB {
	return db.Order("fecha_elaboracion DESC, id DESC")
}

func (f LabelBatchFilter) Scope(db *gorm.DB) *gorm.DB {
	if strings.TrimSpace(f.Q) != "" {
		cond := group(db).Where("producto ILIKE ?", contains(f.Q))
		if n, ok := asID(f.Q); ok {
			cond = cond.Or("id = ?", n)
		}
		db = db.Where(cond)
	}
	if strings.TrimSpace(f.Product) != "" {
		db = db.Where("producto ILIKE ?", contains(f.Product))
	}
	db = dateRange(db, "fecha_elaboracion", f.ElaboratedOn, f.ElaboratedTo)
	db = dateRange(db, "fecha_vencimiento", f.ExpiresFrom, f.ExpiresTo)
	return hasPdf(db, f.Pdf)
}

func labelBatchOrder(db *gorm.DB) *gorm.DB {
	return db.Order("id DESC")
}

func (f SupplierFilter) Scope(db *gorm.DB) *gorm.DB {
	if strings.TrimSpace(f.Q) != "" {
		cond := group(db).Where("nombre ILIKE ?", contains(f.Q)).Or("nit ILIKE ?", contains(f.Q))
		if n, ok := asID(f.Q); ok {
			cond = cond.Or("id = ?", n)
		}
		db = db.Where(cond)
	}
	switch strings.TrimSpace(f.Active) {
	case "1":
		db = db.Where("activo = ?", true)
	case "0":
		db = db.Where("activo = ?", false)
	}
	return db
}

func supplierOrder(db *gorm.DB) *gorm.DB {
	return db.Order("nombre ASC, id ASC")
}

func (f IntakeFilter) Scope(db *gorm.DB) *gorm.DB {
	if strings.TrimSpace(f.Q) != "" {
		cond := group(db).Where("producto ILIKE ?", contains(f.Q))
		if n, ok := asID(f.Q); ok {
			cond = cond.Or("id = ?", n)
		}
		db = db.Where(cond)
	}
	if n, ok := asID(f.SupplierID); ok {
		db = db.Where("proveedor_id = ?", n)
	}
	return dateRange(db, "fecha_ingreso", f.From, f.To)
}

func intakeOrder(db *gorm.DB) *gorm.DB {
	return db.Order("fecha_ingreso DESC, id DESC")
}
