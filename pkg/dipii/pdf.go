package dipii

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func init() {
	// pdfcpu would otherwise create a config dir under the user's home
	api.DisableConfigDir()
}

// ValidatePdf checks that data is a well formed PDF.
func ValidatePdf(data []byte) error {
	if err := api.Validate(bytes.NewReader(data), nil); err != nil {
		return fmt.Errorf("invalid pdf: %w", err)
	}
	return nil
}

// GetPageCount returns the number of pages of the PDF in data.
func GetPageCount(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return n, nil
}

// MergePdfs concatenates documents in order into a single PDF.
func MergePdfs(docs [][]byte) ([]byte, error) {
	if len(docs) == 0 {
		return nil, errors.New("nothing to merge")
	}
	if len(docs) == 1 {
		return docs[0], nil
	}

	readers := make([]io.ReadSeeker, len(docs))
	for i, d := range docs {
		readers[i] = bytes.NewReader(d)
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, nil); err != nil {
		return nil, fmt.Errorf("failed to merge pdf: %w", err)
	}

	return out.Bytes(), nil
}
