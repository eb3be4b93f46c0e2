// internal/core/fields_test.go
package core

import (
	"errors"
	"testing"

	"github.com/foxonlabs/foxon-backend/internal/domain"
)

func TestNormalizeFieldType(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantType domain.FieldType
		wantOk   bool
	}{
		{"short text", "text", domain.FieldTypeShortText, true},
		{"long text", "textarea", domain.FieldTypeLongText, true},
		{"uppercase", "TEXTAREA", domain.FieldTypeLongText, true},
		{"empty defaults to short", "", domain.FieldTypeShortText, true},
		{"invalid", "dropdown", "", false},
		{"invalid free-form", "short-text-ish", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotType, gotOk := NormalizeFieldType(tc.input)
			if gotOk != tc.wantOk {
				t.Errorf("NormalizeFieldType(%q): gotOk = %v; wantOk %v", tc.input, gotOk, tc.wantOk)
			}
			if gotOk && gotType != tc.wantType {
				t.Errorf("NormalizeFieldType(%q): gotType = %q; wantType %q", tc.input, gotType, tc.wantType)
			}
		})
	}
}

func TestNormalizeUsername(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"Maria Silva", "mariasilva"},
		{"  joao  ", "joao"},
		{"CLIENTE01", "cliente01"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := NormalizeUsername(tc.input); got != tc.want {
			t.Errorf("NormalizeUsername(%q) = %q; want %q", tc.input, got, tc.want)
		}
	}
}

func TestValidateModel(t *testing.T) {
	valid := func() *domain.ScriptModel {
		return &domain.ScriptModel{
			ID:                "m1",
			Name:              "Roteiro",
			SystemInstruction: "Você é um roteirista.",
			Fields: []domain.FormField{
				{ID: "f1", Label: "Tema", Type: domain.FieldTypeShortText},
			},
		}
	}

	t.Run("valid model passes", func(t *testing.T) {
		if err := ValidateModel(valid()); err != nil {
			t.Errorf("expected valid model, got %v", err)
		}
	})

	t.Run("zero fields is valid", func(t *testing.T) {
		m := valid()
		m.Fields = nil
		if err := ValidateModel(m); err != nil {
			t.Errorf("model without fields should be valid, got %v", err)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		m := valid()
		m.Name = "   "
		if err := ValidateModel(m); !errors.Is(err, ErrModelInvalid) {
			t.Errorf("expected ErrModelInvalid, got %v", err)
		}
	})

	t.Run("empty system instruction rejected", func(t *testing.T) {
		m := valid()
		m.SystemInstruction = ""
		if err := ValidateModel(m); !errors.Is(err, ErrModelInvalid) {
			t.Errorf("expected ErrModelInvalid, got %v", err)
		}
	})

	t.Run("invalid field type rejected", func(t *testing.T) {
		m := valid()
		m.Fields[0].Type = "dropdown"
		if err := ValidateModel(m); !errors.Is(err, ErrModelInvalid) {
			t.Errorf("expected ErrModelInvalid, got %v", err)
		}
	})

	t.Run("duplicate field ids rejected", func(t *testing.T) {
		m := valid()
		m.Fields = append(m.Fields, domain.FormField{ID: "f1", Label: "Tom", Type: domain.FieldTypeShortText})
		if err := ValidateModel(m); !errors.Is(err, ErrModelInvalid) {
			t.Errorf("expected ErrModelInvalid, got %v", err)
		}
	})

	t.Run("missing field id is minted", func(t *testing.T) {
		m := valid()
		m.Fields[0].ID = ""
		if err := ValidateModel(m); err != nil {
			t.Fatalf("expected valid model, got %v", err)
		}
		if m.Fields[0].ID == "" {
			t.Error("expected a minted field id")
		}
	})
}

func TestValidateClient(t *testing.T) {
	valid := func() *domain.ClientUser {
		return &domain.ClientUser{Username: "Maria Silva", Password: "s3cret", FullName: "Maria Silva"}
	}

	t.Run("valid client normalizes username", func(t *testing.T) {
		c := valid()
		if err := ValidateClient(c); err != nil {
			t.Fatalf("expected valid client, got %v", err)
		}
		if c.Username != "mariasilva" {
			t.Errorf("username not normalized, got %q", c.Username)
		}
	})

	testCases := []struct {
		name   string
		mutate func(*domain.ClientUser)
	}{
		{"missing username", func(c *domain.ClientUser) { c.Username = "" }},
		{"missing password", func(c *domain.ClientUser) { c.Password = "" }},
		{"missing full name", func(c *domain.ClientUser) { c.FullName = "  " }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			if err := ValidateClient(c); !errors.Is(err, ErrClientInvalid) {
				t.Errorf("expected ErrClientInvalid, got %v", err)
			}
		})
	}
}

func TestValidateSubmission(t *testing.T) {
	model := &domain.ScriptModel{
		Fields: []domain.FormField{
			{ID: "a", Label: "Tema", Required: true},
			{ID: "b", Label: "Tom", Required: false},
		},
	}

	t.Run("required present", func(t *testing.T) {
		if err := ValidateSubmission(model, map[string]string{"a": "gatos"}); err != nil {
			t.Errorf("expected valid submission, got %v", err)
		}
	})
	t.Run("required missing", func(t *testing.T) {
		if err := ValidateSubmission(model, map[string]string{"b": "calmo"}); !errors.Is(err, ErrSubmissionInvalid) {
			t.Errorf("expected ErrSubmissionInvalid, got %v", err)
		}
	})
	t.Run("required blank", func(t *testing.T) {
		if err := ValidateSubmission(model, map[string]string{"a": "   "}); !errors.Is(err, ErrSubmissionInvalid) {
			t.Errorf("expected ErrSubmissionInvalid, got %v", err)
		}
	})
}

func TestDraftFieldOps(t *testing.T) {
	m := &domain.ScriptModel{}

	first := AddField(m)
	second := AddField(m)
	if len(m.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(m.Fields))
	}
	if first.ID == second.ID {
		t.Error("added fields must have unique ids")
	}
	if first.Label != "Novo Campo" || first.Type != domain.FieldTypeShortText || first.Required {
		t.Errorf("unexpected defaults: %+v", first)
	}

	ok := UpdateField(m, first.ID, domain.FormField{Label: "Tema", Type: domain.FieldTypeLongText, Required: true})
	if !ok {
		t.Fatal("UpdateField should find the field")
	}
	if m.Fields[0].ID != first.ID {
		t.Error("UpdateField must preserve the field id")
	}
	if m.Fields[0].Label != "Tema" || !m.Fields[0].Required {
		t.Errorf("UpdateField did not apply attributes: %+v", m.Fields[0])
	}

	if UpdateField(m, "missing", domain.FormField{}) {
		t.Error("UpdateField on unknown id should report false")
	}

	RemoveField(m, first.ID)
	if len(m.Fields) != 1 || m.Fields[0].ID != second.ID {
		t.Errorf("RemoveField left unexpected fields: %+v", m.Fields)
	}

	RemoveField(m, "missing")
	if len(m.Fields) != 1 {
		t.Errorf("RemoveField on unknown id should be a no-op, got %+v", m.Fields)
	}
}
