package sellerclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMyProductsToleratesBothShapes(t *testing.T) {
	payloads := map[string]string{
		"flat":     `[{"id":5,"name":"Fonte","price":400,"stock":3}]`,
		"envelope": `{"content":[{"id":5,"name":"Fonte","price":400,"stock":3}]}`,
	}
	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/ws/product/myproducts" {
					t.Errorf("path = %q", r.URL.Path)
				}
				if r.Header.Get("Authorization") != "Bearer tok" {
					t.Errorf("authorization = %q", r.Header.Get("Authorization"))
				}
				w.Write([]byte(payload))
			}))
			defer srv.Close()

			products, err := NewClient(srv.URL).MyProducts(context.Background(), "tok")
			if err != nil {
				t.Fatalf("my products: %v", err)
			}
			if len(products) != 1 || products[0].Title != "Fonte" || products[0].Stock != 3 {
				t.Fatalf("products = %+v", products)
			}
		})
	}
}

func TestCreateSendsNumericPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/ws/product" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Create(context.Background(), "tok", "Teclado", "Periféricos", 199.9, 12, "mecânico", "https://img.example/t.png")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got["price"] != 199.9 {
		t.Fatalf("price = %v, want 199.9", got["price"])
	}
	if got["stock"] != float64(12) {
		t.Fatalf("stock = %v, want 12", got["stock"])
	}
	if got["imageUrl"] != "https://img.example/t.png" {
		t.Fatalf("imageUrl = %v", got["imageUrl"])
	}
}

func TestUpdateAndDeleteHitIDPath(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.Update(context.Background(), "tok", 7, "Fonte", "", 400, 3, "", ""); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := client.Delete(context.Background(), "tok", 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(paths) != 2 || paths[0] != "PUT /ws/product/7" || paths[1] != "DELETE /ws/product/7" {
		t.Fatalf("paths = %v", paths)
	}
}

func TestErrorResponsesBecomeAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"nome em uso"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Delete(context.Background(), "tok", 1)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity || apiErr.Message != "nome em uso" {
		t.Fatalf("apiErr = %+v", apiErr)
	}
}
