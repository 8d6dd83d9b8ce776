package dipii

type Config struct {
	// PNG logo printed on every document. Empty or missing means a generated
	// mark is used instead.
	LogoPath string
	// When set, certificates carry a QR code pointing to
	// <PublicURL>/api/v1/certificates/<id>/download.
	PublicURL string
	// Grid of label cards per letter page.
	LabelColumns int
	LabelRows    int
}

func NewDefaultConfig() Config {
	return Config{
		LabelColumns: 2,
		LabelRows:    5,
	}
}

func (c Config) labelsPerPage() int {
	return c.LabelColumns * c.LabelRows
}
