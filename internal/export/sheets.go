package export

import (
	"github.com/dipii/backoffice/internal/model"
	"github.com/dipii/backoffice/pkg/dipii"
)

func yesNo(b bool) string {
	if b {
		return "SI"
	}
	return "NO"
}

func CertificateSheet(certificates []model.Certificate) Sheet {
	s := Sheet{
		Name: "Certificados",
		Headers: []string{
			"ID", "Fecha elaboración", "Producto", "Origen cultivo", "No. batch",
			"Cubetas", "Peso por cubeta (kg)", "Kilogramos total", "Color", "Olor",
			"Apariencia", "Sabor", "PDF",
		},
	}

	for _, c := range certificates {
		s.Rows = append(s.Rows, []interface{}{
			c.ID,
			c.ElaboratedOn.Format(dipii.InputDateLayout),
			c.Product,
			c.CropOrigin,
			c.BatchNumber,
			c.CubetteCount,
			dipii.FormatWeight(c.WeightPerCubette),
			c.TotalKilograms.StringFixed(3),
			c.Color,
			c.Odor,
			c.Appearance,
			c.Flavor,
			yesNo(c.HasPdf()),
		})
	}

	return s
}

func LabelBatchSheet(batches []model.LabelBatch) Sheet {
	s := Sheet{
		Name: "Etiquetas",
		Headers: []string{
			"ID", "Fecha elaboración", "Fecha vencimiento", "Producto", "Peso (kg)",
			"No. inicial", "No. final", "Cantidad", "PDF",
		},
	}

	for _, b := range batches {
		s.Rows = append(s.Rows, []interface{}{
			b.ID,
			b.ElaboratedOn.Format(dipii.InputDateLayout),
			b.ExpiresOn.Format(dipii.InputDateLayout),
			b.Product,
			dipii.FormatWeight(b.WeightKg),
			b.StartNumber,
			b.ToDocument().LastNumber(),
			b.Count,
			yesNo(b.HasPdf()),
		})
	}

	return s
}

func IntakeSheet(intakes []model.Intake) Sheet {
	s := Sheet{
		Name: "Ingresos",
		Headers: []string{
			"ID", "Fecha ingreso", "Proveedor", "Producto", "Cantidad (kg)",
			"Lote proveedor", "Observaciones",
		},
	}

	for _, i := range intakes {
		supplier := ""
		if i.Supplier != nil {
			supplier = i.Supplier.Name
		}
		s.Rows = append(s.Rows, []interface{}{
			i.ID,
			i.ReceivedOn.Format(dipii.InputDateLayout),
			supplier,
			i.Product,
			dipii.FormatWeight(i.QuantityKg),
			i.SupplierBatch,
			i.Notes,
		})
	}

	return s
}
