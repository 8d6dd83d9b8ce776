package repository

import (
	"context"
	"time"

	constant "github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/model"
	"github.com/dipii/backoffice/pkg/dipii"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	*baseRepository
}

type DashboardSummary struct {
	Suppliers       int64  `json:"proveedores"`
	ActiveSuppliers int64  `json:"proveedores_activos"`
	Intakes         int64  `json:"ingresos"`
	Certificates    int64  `json:"certificados"`
	LabelBatches    int64  `json:"lotes_etiquetas"`
	LabelsPrinted   int64  `json:"etiquetas_impresas"`
	KilogramsMonth  string `json:"kilogramos_mes"`
}

type DailyActivity struct {
	Date         string `json:"fecha"`
	Certificates int64  `json:"certificados"`
	LabelBatches int64  `json:"lotes_etiquetas"`
}

type dayCount struct {
	Day   time.Time
	Total int64
}

func (dr DashboardRepository) Summary(ctx context.Context, tx *gorm.DB, now time.Time) (*DashboardSummary, error) {
	dr.logger.Debugf("Get dashboard summary at: %v \n", now)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var s DashboardSummary
	counts := []struct {
		model interface{}
		dest  *int64
		where string
		args  []interface{}
	}{
		{model: &model.Supplier{}, dest: &s.Suppliers},
		{model: &model.Supplier{}, dest: &s.ActiveSuppliers, where: "activo = ?", args: []interface{}{true}},
		{model: &model.Intake{}, dest: &s.Intakes},
		{model: &model.Certificate{}, dest: &s.Certificates},
		{model: &model.LabelBatch{}, dest: &s.LabelBatches},
	}
	for _, c := range counts {
		q := db.WithContext(ctx).Model(c.model)
		if c.where != "" {
			q = q.Where(c.where, c.args...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := db.WithContext(ctx).Model(&model.LabelBatch{}).
		Select("COALESCE(SUM(cantidad), 0)").Scan(&s.LabelsPrinted).Error; err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	var kg decimal.NullDecimal
	if err := db.WithContext(ctx).Model(&model.Certificate{}).
		Select("SUM(kilogramos_total)").
		Where("fecha_elaboracion >= ? AND fecha_elaboracion < ?", monthStart, monthStart.AddDate(0, 1, 0)).
		Scan(&kg).Error; err != nil {
		return nil, err
	}
	s.KilogramsMonth = decimal.Zero.StringFixed(3)
	if kg.Valid {
		s.KilogramsMonth = kg.Decimal.StringFixed(3)
	}

	return &s, nil
}

// Daily returns one entry per calendar day from days-1 days before now up to
// now, oldest first, including days without activity.
func (dr DashboardRepository) Daily(ctx context.Context, tx *gorm.DB, now time.Time, days int) ([]DailyActivity, error) {
	dr.logger.Debugf("Get dashboard daily activity for %d days \n", days)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -(days - 1))

	var certs, batches []dayCount
	if err := db.WithContext(ctx).Model(&model.Certificate{}).
		Select("fecha_elaboracion AS day, COUNT(*) AS total").
		Where("fecha_elaboracion >= ? AND fecha_elaboracion <= ?", from, today).
		Group("fecha_elaboracion").Scan(&certs).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&model.LabelBatch{}).
		Select("fecha_elaboracion AS day, COUNT(*) AS total").
		Where("fecha_elaboracion >= ? AND fecha_elaboracion <= ?", from, today).
		Group("fecha_elaboracion").Scan(&batches).Error; err != nil {
		return nil, err
	}

	return fillDays(from, days, certs, batches), nil
}

func fillDays(from time.Time, days int, certs, batches []dayCount) []DailyActivity {
	key := func(t time.Time) string { return t.UTC().Format(dipii.InputDateLayout) }

	index := make(map[string]int, days)
	out := make([]DailyActivity, days)
	for i := 0; i < days; i++ {
		d := key(from.AddDate(0, 0, i))
		out[i] = DailyActivity{Date: d}
		index[d] = i
	}

	for _, c := range certs {
		if i, ok := index[key(c.Day)]; ok {
			out[i].Certificates = c.Total
		}
	}
	for _, b := range batches {
		if i, ok := index[key(b.Day)]; ok {
			out[i].LabelBatches = b.Total
		}
	}

	return out
}
