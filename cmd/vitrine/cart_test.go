package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T, upstreamURL string) string {
	t.Helper()
	dir := t.TempDir()
	cfg := fmt.Sprintf(`authBaseURL: %[1]s
catalogBaseURL: %[1]s
sellerBaseURL: %[1]s
dataDir: %[2]s
cloudinaryCloudName: demo
cloudinaryUploadPreset: unsigned
`, upstreamURL, dir)
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestCartSessionRemoveFeedback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products/brl", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte(`[{"id":1,"title":"Mouse Gamer","price":120}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	root := newRootCmd()
	root.SetArgs([]string{"cart", "--config", writeTestConfig(t, srv.URL)})
	root.SetIn(strings.NewReader("add 1\nremove 1\nremove 1\nquit\n"))
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)

	if err := root.Execute(); err != nil {
		t.Fatalf("cart session: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Mouse Gamer adicionado.") {
		t.Fatalf("missing add confirmation:\n%s", out)
	}
	removed := strings.Index(out, "Removido.")
	missing := strings.Index(out, "não estava no carrinho")
	if removed == -1 {
		t.Fatalf("missing remove confirmation:\n%s", out)
	}
	if missing == -1 || missing < removed {
		t.Fatalf("second remove should report an absent entry:\n%s", out)
	}
}
