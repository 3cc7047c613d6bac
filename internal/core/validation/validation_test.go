package validation

import (
	"errors"
	"testing"

	"github.com/familyhub/dashboard/internal/core/domain"
)

type sample struct {
	Name  string `json:"name"  validate:"notblank"`
	Count int    `json:"count" validate:"gte=1"`
	Kind  string `json:"kind"  validate:"omitempty,oneof=a b"`
	Skip  string `json:"-"     validate:"required"`
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(sample{Name: "x", Count: 1, Skip: "y"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_FieldErrorsUseJSONNames(t *testing.T) {
	err := Struct(sample{Name: "  ", Count: 0, Kind: "c"})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"name", "count", "kind", "Skip"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Errorf("missing field %q in %v", field, ve.Fields)
		}
	}
	if ve.Fields["name"] != "name is required" {
		t.Errorf("name message = %q", ve.Fields["name"])
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("must match ErrValidation")
	}
}
