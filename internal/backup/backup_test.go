package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/redchainhq/redchain/internal/constants"
)

func writeDoc(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "redchain.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	return path
}

func TestCreateBacksUpDocument(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, `{"habits":[]}`)
	mgr := NewManager(doc, filepath.Join(dir, constants.VaultFileName))

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(data) != `{"habits":[]}` {
		t.Errorf("backup content = %q", data)
	}
}

func TestCreateWithoutDocumentFails(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(filepath.Join(dir, "missing.json"), filepath.Join(dir, "vault.db"))
	if _, err := mgr.Create(); err == nil {
		t.Fatal("expected error for missing document")
	}
}

func TestCreateSkipsMissingVault(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, `{}`)
	mgr := NewManager(doc, filepath.Join(dir, constants.VaultFileName))

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
	entries, err := os.ReadDir(mgr.Dir())
	if err != nil {
		t.Fatalf("read backup dir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".db" {
			t.Errorf("unexpected vault backup %s", e.Name())
		}
	}
}

func TestCreateRejectsCorruptVault(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, `{}`)
	vault := filepath.Join(dir, constants.VaultFileName)
	if err := os.WriteFile(vault, []byte("not a database"), 0600); err != nil {
		t.Fatalf("write vault: %v", err)
	}
	mgr := NewManager(doc, vault)
	if _, err := mgr.Create(); err == nil {
		t.Fatal("expected integrity error for corrupt vault")
	}
}

func TestListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, `{}`)
	mgr := NewManager(doc, filepath.Join(dir, "vault.db"))

	for i := 0; i < 3; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("len = %d, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("backups not sorted newest first")
		}
	}
}

func TestListEmptyDir(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(filepath.Join(dir, "doc.json"), filepath.Join(dir, "vault.db"))
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("len = %d, want 0", len(backups))
	}
}

func TestRotateKeepsMaxBackups(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, `{}`)
	mgr := NewManager(doc, filepath.Join(dir, "vault.db"))

	// Seed more than MaxBackups with distinct names so Create's rotation
	// has something to trim.
	if err := os.MkdirAll(mgr.Dir(), 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for i := 0; i < constants.MaxBackups+5; i++ {
		name := fmt.Sprintf("%s2024010%d-000%d.json", constants.BackupFilePrefix, i%9, i)
		if err := os.WriteFile(filepath.Join(mgr.Dir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("seed backup: %v", err)
		}
	}

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("len = %d, want %d", len(backups), constants.MaxBackups)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, `{"version":1}`)
	mgr := NewManager(doc, filepath.Join(dir, "vault.db"))

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := os.WriteFile(doc, []byte(`{"version":2}`), 0600); err != nil {
		t.Fatalf("overwrite doc: %v", err)
	}
	if err := mgr.Restore(path); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	data, err := os.ReadFile(doc)
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("restored content = %q", data)
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(filepath.Join(dir, "doc.json"), filepath.Join(dir, "vault.db"))
	if err := mgr.Restore(filepath.Join(dir, "nope.json")); err == nil {
		t.Fatal("expected error for missing backup")
	}
}
