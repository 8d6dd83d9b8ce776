package util

import (
	"testing"
)

func TestDocumentPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Certificate", CertificateDocumentPath(15), "certificados/certificado-15.pdf"},
		{"Label batch", LabelBatchDocumentPath(3), "etiquetas/lote_3.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, tt.got)
			}
		})
	}
}

func TestContentTypeByPath(t *testing.T) {
	if got := ContentTypeByPath("etiquetas/lote_3.pdf"); got != "application/pdf" {
		t.Errorf("Expected application/pdf, got %s", got)
	}
	if got := ContentTypeByPath("no-extension"); got != "application/octet-stream" {
		t.Errorf("Expected application/octet-stream, got %s", got)
	}
}
