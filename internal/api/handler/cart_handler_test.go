package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestCartHandler_Add(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "secret", "client")
	mug := ts.seedProduct(t, "mug", 4.5, true)

	body := fmt.Sprintf(`{"username":"alice","password":"secret","product_id":"%s","quantity":2}`, mug.ID)
	rec := ts.request(http.MethodPost, "/cart", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp messageResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "product added to cart" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestCartHandler_Add_Validation(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "secret", "client")
	mug := ts.seedProduct(t, "mug", 4.5, true)

	cases := []struct {
		name string
		body string
	}{
		{"zero quantity", fmt.Sprintf(`{"username":"alice","password":"secret","product_id":"%s","quantity":0}`, mug.ID)},
		{"negative quantity", fmt.Sprintf(`{"username":"alice","password":"secret","product_id":"%s","quantity":-1}`, mug.ID)},
		{"missing product id", `{"username":"alice","password":"secret","quantity":1}`},
		{"missing credentials", fmt.Sprintf(`{"product_id":"%s","quantity":1}`, mug.ID)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := ts.request(http.MethodPost, "/cart", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCartHandler_Add_BadAccount(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "secret", "client")
	mug := ts.seedProduct(t, "mug", 4.5, true)

	body := fmt.Sprintf(`{"username":"alice","password":"wrong","product_id":"%s","quantity":1}`, mug.ID)
	rec := ts.request(http.MethodPost, "/cart", body)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "user not found or account not active") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestCartHandler_Add_UnavailableProduct(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "secret", "client")
	delisted := ts.seedProduct(t, "kettle", 20, false)

	for _, id := range []string{"missing", delisted.ID} {
		body := fmt.Sprintf(`{"username":"alice","password":"secret","product_id":"%s","quantity":1}`, id)
		rec := ts.request(http.MethodPost, "/cart", body)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("product %s: want 404, got %d: %s", id, rec.Code, rec.Body.String())
		}
	}
}

func TestCartHandler_View_QueryParams(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "secret", "client")
	mug := ts.seedProduct(t, "mug", 10, true)

	add := fmt.Sprintf(`{"username":"alice","password":"secret","product_id":"%s","quantity":2}`, mug.ID)
	if rec := ts.request(http.MethodPost, "/cart", add); rec.Code != http.StatusOK {
		t.Fatalf("add failed: %d %s", rec.Code, rec.Body.String())
	}

	q := url.Values{"username": {"alice"}, "password": {"secret"}}
	rec := ts.request(http.MethodGet, "/cart?"+q.Encode(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp viewCartResponse
	decodeBody(t, rec, &resp)
	if len(resp.Cart) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(resp.Cart))
	}
	entry := resp.Cart[0]
	if entry.ProductID != mug.ID || entry.ProductName != "mug" || entry.Quantity != 2 || entry.Subtotal != 20 {
		t.Errorf("unexpected entry %+v", entry)
	}
	if resp.TotalPrice != 20 {
		t.Errorf("expected total 20, got %v", resp.TotalPrice)
	}
}

func TestCartHandler_View_JSONBody(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "secret", "client")

	// The inherited wire contract: GET with credentials in the JSON body.
	rec := ts.request(http.MethodGet, "/cart", `{"username":"alice","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp viewCartResponse
	decodeBody(t, rec, &resp)
	if resp.Cart == nil {
		t.Error("cart must serialize as an empty array, not null")
	}
	if len(resp.Cart) != 0 || resp.TotalPrice != 0 {
		t.Errorf("expected empty cart, got %+v", resp)
	}
}

func TestCartHandler_View_SkipsDeletedProduct(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "secret", "client")
	mug := ts.seedProduct(t, "mug", 10, true)
	kettle := ts.seedProduct(t, "kettle", 20, true)

	for _, add := range []string{
		fmt.Sprintf(`{"username":"alice","password":"secret","product_id":"%s","quantity":2}`, mug.ID),
		fmt.Sprintf(`{"username":"alice","password":"secret","product_id":"%s","quantity":1}`, kettle.ID),
	} {
		if rec := ts.request(http.MethodPost, "/cart", add); rec.Code != http.StatusOK {
			t.Fatalf("add failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	if err := ts.products.Delete(context.Background(), kettle.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	rec := ts.request(http.MethodGet, "/cart", `{"username":"alice","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp viewCartResponse
	decodeBody(t, rec, &resp)
	if len(resp.Cart) != 1 || resp.Cart[0].ProductID != mug.ID {
		t.Fatalf("expected only the surviving product, got %+v", resp.Cart)
	}
	if resp.TotalPrice != 20 {
		t.Errorf("expected total 20, got %v", resp.TotalPrice)
	}
}

func TestCartHandler_View_BadAccount(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/cart", `{"username":"ghost","password":"pw"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d: %s", rec.Code, rec.Body.String())
	}
}
