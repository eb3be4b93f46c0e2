// internal/storage/storage_test.go
package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/foxonlabs/foxon-backend/config"
	"github.com/foxonlabs/foxon-backend/internal/domain"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.Config{
		DatabaseDir:   t.TempDir(),
		DatabaseFile:  "test_storage.db",
		AdminUsername: "admin",
		AdminPassword: "admin",
	}

	db, health, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if !health.Connected {
		t.Fatal("expected connected health result")
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFindModelNotFound(t *testing.T) {
	db := testDB(t)

	if _, err := FindModel(context.Background(), db, "missing"); err != ErrModelNotFound {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}
}

func TestFindModelExcludesInactive(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	m := &domain.ScriptModel{ID: "m1", Name: "Roteiro", SystemInstruction: "Você é um roteirista."}
	if err := SaveModel(ctx, db, m); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}
	if err := SoftDeleteModel(ctx, db, "m1"); err != nil {
		t.Fatalf("SoftDeleteModel failed: %v", err)
	}

	if _, err := FindModel(ctx, db, "m1"); err != ErrModelNotFound {
		t.Errorf("soft-deleted model must not be findable, got %v", err)
	}

	// The row survives the soft delete; a save resurrects it.
	if err := SaveModel(ctx, db, m); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}
	if _, err := FindModel(ctx, db, "m1"); err != nil {
		t.Errorf("saved model should be findable again, got %v", err)
	}
}

func TestMalformedFieldSchemaDegradesToEmpty(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	insertSQL := `INSERT INTO models (id, name, system_instruction, fields, is_active)
		VALUES ('broken', 'Quebrado', 'instrução', '{not json', 1)`
	if _, err := db.ExecContext(ctx, insertSQL); err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	m, err := FindModel(ctx, db, "broken")
	if err != nil {
		t.Fatalf("FindModel failed: %v", err)
	}
	if m.Fields == nil || len(m.Fields) != 0 {
		t.Errorf("malformed schema should decode to an empty slice, got %+v", m.Fields)
	}
}

func TestAppendHistoryMintsIDAndTimestamp(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	e := &domain.GeneratedScript{Content: "CENA 1", Topic: "gatos", ModelName: "Roteiro"}
	if err := AppendHistory(ctx, db, e); err != nil {
		t.Fatalf("AppendHistory failed: %v", err)
	}
	if e.ID == "" {
		t.Error("expected a minted entry id")
	}
	if e.Timestamp == 0 {
		t.Error("expected a minted timestamp")
	}

	entries, err := ListHistory(ctx, db)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != e.ID {
		t.Errorf("unexpected ledger contents: %+v", entries)
	}
}

func TestDeleteClientUnknownProfileFallsBackToUserID(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	id, err := SaveClient(ctx, db, &domain.ClientUser{FullName: "João", Username: "joao", Password: "senha"})
	if err != nil {
		t.Fatalf("SaveClient failed: %v", err)
	}

	// Delete by the credential id directly (no matching profile row id).
	if err := DeleteClient(ctx, db, id); err != nil {
		t.Fatalf("DeleteClient failed: %v", err)
	}

	if _, err := FindClientByUsername(ctx, db, "joao"); err != ErrClientNotFound {
		t.Errorf("expected ErrClientNotFound after delete, got %v", err)
	}
}
