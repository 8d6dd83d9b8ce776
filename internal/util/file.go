package util

import (
	"fmt"
	"mime"
	"path"
	"path/filepath"
)

const (
	CertificateDirectory = "certificados"
	LabelBatchDirectory  = "etiquetas"
)

// Example output for 15: "certificados/certificado-15.pdf"
func CertificateDocumentPath(id uint) string {
	return path.Join(CertificateDirectory, fmt.Sprintf("certificado-%d.pdf", id))
}

// Example output for 3: "etiquetas/lote_3.pdf"
func LabelBatchDocumentPath(id uint) string {
	return path.Join(LabelBatchDirectory, fmt.Sprintf("lote_%d.pdf", id))
}

// Determines the content type of a stored file from its extension
func ContentTypeByPath(p string) string {
	contentType := mime.TypeByExtension(filepath.Ext(p))
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}
