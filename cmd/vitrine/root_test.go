package main

import (
	"errors"
	"strings"
	"testing"

	"vitrine/internal/app"
	"vitrine/internal/authclient"
	"vitrine/pkg/cart"
	"vitrine/pkg/session"
)

func TestRequireSessionSignedOut(t *testing.T) {
	storage, err := session.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}
	sess := session.NewStore(storage, authclient.NewClient("http://127.0.0.1:0"))
	if err := sess.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	a := app.New(app.Config{Session: sess, Cart: cart.New()})

	err = requireSession(a)
	if !errors.Is(err, app.ErrNotSignedIn) {
		t.Fatalf("err = %v, want ErrNotSignedIn", err)
	}
	if !strings.Contains(err.Error(), "vitrine login") {
		t.Fatalf("missing login hint: %v", err)
	}
}
