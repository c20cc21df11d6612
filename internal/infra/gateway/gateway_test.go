package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/totegamma/council-reports/client"
	"github.com/totegamma/council-reports/internal/domain"
)

func TestRecordGatewayFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/councils", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"records":[{"id":"recE1","fields":{"issuingCouncil":"Leeds"}}]}`))
	})
	mux.HandleFunc("/loans", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"recL1","investmentName":"Bond"}]`))
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := NewRecordGateway(client.New("test", 0), Endpoints{
		Entities:  srv.URL + "/councils",
		Offerings: srv.URL + "/loans",
		Projects:  srv.URL + "/projects",
	})
	ctx := context.Background()

	councils, err := g.Fetch(ctx, domain.CollectionEntities)
	if err != nil {
		t.Fatalf("fetch councils failed: %v", err)
	}
	if len(councils) != 1 || councils[0].ID != "recE1" {
		t.Fatalf("unexpected councils %+v", councils)
	}

	loans, err := g.Fetch(ctx, domain.CollectionOfferings)
	if err != nil {
		t.Fatalf("fetch loans failed: %v", err)
	}
	if loans[0].Text(domain.FieldInvestmentName) != "Bond" {
		t.Fatalf("flat record not normalized")
	}

	if _, err := g.Fetch(ctx, domain.CollectionProjects); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRecordGatewayMissingEndpoint(t *testing.T) {
	g := NewRecordGateway(client.New("test", 0), Endpoints{})
	if _, err := g.Fetch(context.Background(), domain.CollectionEntities); err == nil {
		t.Fatalf("expected error for missing endpoint")
	}
}

func TestDirectorySource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "councils.json"), []byte(`[{"id":"a"},{"id":"b"}]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	src := NewDirectorySource(dir)

	recs, err := src.Fetch(context.Background(), domain.CollectionEntities)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if _, err := src.Fetch(context.Background(), domain.CollectionProjects); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
