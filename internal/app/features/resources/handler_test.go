package resources

import (
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/blocks"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/testutil"
)

func TestServeResources(t *testing.T) {
	spy := &testutil.RenderSpy{}
	h := NewHandler(testutil.Catalog(), spy, seo.NewBuilder("https://example.com"), nil, zap.NewNop())

	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))

	rec.AssertStatus(t, http.StatusOK)
	call := spy.Last()
	if call.Name != "resources" {
		t.Fatalf("template = %q", call.Name)
	}
	data := call.Data.(pageData)
	if len(data.Categories) != 1 || data.Categories[0].Glyph != blocks.IconBookOpen {
		t.Errorf("categories = %+v", data.Categories)
	}
	if len(data.Tools) != 1 || data.Tools[0].CTAURL != "/pricing#calculator" {
		t.Errorf("tools = %+v", data.Tools)
	}
	if len(data.Articles) != 1 || len(data.QuickStats) != 1 {
		t.Errorf("articles = %d, stats = %d", len(data.Articles), len(data.QuickStats))
	}
	if data.Support.Secondary.Href != "mailto:"+data.SupportEmail {
		t.Errorf("support link = %q", data.Support.Secondary.Href)
	}
}
