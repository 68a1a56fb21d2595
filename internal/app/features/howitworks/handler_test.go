package howitworks

import (
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/domain/models"
	"github.com/dalemusser/balesite/internal/testutil"
)

func TestServeHowItWorks(t *testing.T) {
	spy := &testutil.RenderSpy{}
	h := NewHandler(testutil.Catalog(), spy, seo.NewBuilder("https://example.com"), nil, zap.NewNop())

	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))

	rec.AssertStatus(t, http.StatusOK)
	call := spy.Last()
	if call.Name != "how_it_works" {
		t.Fatalf("template = %q", call.Name)
	}
	data := call.Data.(pageData)
	if data.Meta.Canonical != "https://example.com/how-it-works" {
		t.Errorf("canonical = %q", data.Meta.Canonical)
	}
	if len(data.Steps) != 1 {
		t.Errorf("steps = %d", len(data.Steps))
	}
}

func TestSteps_Alternate(t *testing.T) {
	got := steps([]models.ProcessStep{{Number: 1}, {Number: 2}, {Number: 3}, {Number: 4, Icon: "Phone"}})
	for i, s := range got {
		if s.Reverse != (i%2 == 1) {
			t.Errorf("step %d Reverse = %v", s.Number, s.Reverse)
		}
	}
	if got[3].Glyph != "phone" {
		t.Errorf("glyph = %q", got[3].Glyph)
	}
}
