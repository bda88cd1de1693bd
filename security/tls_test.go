package security

import (
	"crypto/tls"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTLSConfig_Build_NilAndZero(t *testing.T) {
	var nilCfg *TLSConfig
	if got, err := nilCfg.Build(); err != nil || got != nil {
		t.Fatalf("expected nil config, got %v, %v", got, err)
	}
	if got, err := (&TLSConfig{}).Build(); err != nil || got != nil {
		t.Fatalf("expected nil config for zero value, got %v, %v", got, err)
	}
}

func TestTLSConfig_Build_Defaults(t *testing.T) {
	got, err := (&TLSConfig{SkipVerify: true, ServerName: "example.com"}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.InsecureSkipVerify || got.ServerName != "example.com" {
		t.Errorf("unexpected config %+v", got)
	}
	if got.MinVersion != tls.VersionTLS12 {
		t.Errorf("expected TLS 1.2 minimum, got %x", got.MinVersion)
	}
}

func TestTLSConfig_Build_MinVersion13(t *testing.T) {
	got, err := (&TLSConfig{MinVersion: "1.3"}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MinVersion != tls.VersionTLS13 {
		t.Errorf("expected TLS 1.3 minimum, got %x", got.MinVersion)
	}
}

func TestTLSConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    TLSConfig
		errMsg string
	}{
		{"cert without key", TLSConfig{CertFile: "c.pem"}, "cert_file and key_file"},
		{"key without cert", TLSConfig{KeyFile: "k.pem"}, "cert_file and key_file"},
		{"bad version", TLSConfig{MinVersion: "1.0"}, "unsupported min_version"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("expected error containing %q, got %v", tc.errMsg, err)
			}
		})
	}
}

func TestTLSConfig_Build_CAFile(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	caPath := filepath.Join(t.TempDir(), "ca.pem")
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	if err := os.WriteFile(caPath, pemBytes, 0o600); err != nil {
		t.Fatalf("write CA: %v", err)
	}

	tlsCfg, err := (&TLSConfig{CAFile: caPath}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client := &http.Client{Transport: &http.Transport{TLSClientConfig: tlsCfg}}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request with CA pool failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}
}

func TestTLSConfig_Build_BadCAFile(t *testing.T) {
	caPath := filepath.Join(t.TempDir(), "ca.pem")
	if err := os.WriteFile(caPath, []byte("not pem"), 0o600); err != nil {
		t.Fatalf("write CA: %v", err)
	}
	if _, err := (&TLSConfig{CAFile: caPath}).Build(); err == nil {
		t.Error("expected error for invalid CA file")
	}
	if _, err := (&TLSConfig{CAFile: filepath.Join(t.TempDir(), "missing.pem")}).Build(); err == nil {
		t.Error("expected error for missing CA file")
	}
}
