package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/RW482/vora/entities"
)

type fakeBranchRepo struct{ branches []entities.Branch }

func (f *fakeBranchRepo) Create(b *entities.Branch) error {
	f.branches = append(f.branches, *b)
	return nil
}

func (f *fakeBranchRepo) List() ([]entities.Branch, error) { return f.branches, nil }

func postJSON(h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/branches", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	h(e.NewContext(req, rec))
	return rec
}

func TestBranchCreate(t *testing.T) {
	t.Run("created branch appears in list", func(t *testing.T) {
		repo := &fakeBranchRepo{}
		h := New(repo, nil)

		rec := postJSON(h.Create, `{"name":"Sangli Depot","location":"Sangli"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %d, want 201: %s", rec.Code, rec.Body.String())
		}
		var got entities.Branch
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.ID == "" {
			t.Error("id should be generated")
		}

		list, _ := repo.List()
		if len(list) != 1 || list[0].Name != "Sangli Depot" {
			t.Errorf("list = %+v, want the new branch", list)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		h := New(&fakeBranchRepo{}, nil)
		rec := postJSON(h.Create, `{"name":"  "}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", rec.Code)
		}
	})
}
