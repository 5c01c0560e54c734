package query_test

import (
	"errors"
	"reflect"
	"testing"

	"eventscout/internal/query"
	"eventscout/pkg/e"
)

func TestParams_EmptyFilter_EmptyMap(t *testing.T) {
	t.Parallel()

	got := query.Filter{}.Params()
	if len(got) != 0 {
		t.Fatalf("expected empty params got %v", got)
	}
}

func TestParams_WhitespaceTextNotEmitted(t *testing.T) {
	t.Parallel()

	got := query.Filter{Text: "   "}.Params()
	if _, ok := got["q"]; ok {
		t.Fatalf("whitespace-only text must not emit q: %v", got)
	}
}

func TestParams_TrimsText(t *testing.T) {
	t.Parallel()

	got := query.Filter{Text: " jazz ", Category: "Music & Nightlife"}.Params()
	want := map[string]string{"q": "jazz", "category": "Music & Nightlife"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestParams_CategoryOnly(t *testing.T) {
	t.Parallel()

	got := query.Filter{Category: "Food & Drink"}.Params()
	want := map[string]string{"category": "Food & Drink"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestValidate_AllCategoriesSentinelOK(t *testing.T) {
	t.Parallel()

	if err := (query.Filter{Text: "fado"}).Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidate_UnknownCategory(t *testing.T) {
	t.Parallel()

	err := query.Filter{Category: "Astronomy"}.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
}
