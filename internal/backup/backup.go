package backup

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/redchainhq/redchain/internal/constants"
)

// Info describes one backup on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots the GameState document and the proof vault into a
// rotating backup directory next to the document.
type Manager struct {
	docPath   string
	vaultPath string
	backupDir string
}

func NewManager(docPath, vaultPath string) *Manager {
	configDir := filepath.Dir(docPath)
	return &Manager{
		docPath:   docPath,
		vaultPath: vaultPath,
		backupDir: filepath.Join(configDir, constants.BackupDirName),
	}
}

// Dir returns the backup directory path.
func (m *Manager) Dir() string {
	return m.backupDir
}

// Create writes a timestamped snapshot of the document (and the vault when it
// exists) and rotates old snapshots out. Returns the document backup path.
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.docPath); os.IsNotExist(err) {
		return "", fmt.Errorf("nothing to back up: %s does not exist", m.docPath)
	}

	stamp, err := m.uniqueStamp()
	if err != nil {
		return "", err
	}

	docBackup := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+".json")
	if err := copyFile(m.docPath, docBackup); err != nil {
		return "", fmt.Errorf("failed to back up document: %w", err)
	}

	// The vault may not exist yet (no proofs recorded); skip it silently.
	if _, err := os.Stat(m.vaultPath); err == nil {
		if err := m.checkVault(); err != nil {
			return "", fmt.Errorf("vault integrity check failed: %w", err)
		}
		vaultBackup := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+".db")
		if err := copyFile(m.vaultPath, vaultBackup); err != nil {
			return "", fmt.Errorf("failed to back up vault: %w", err)
		}
	}

	if err := m.rotate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}
	return docBackup, nil
}

// uniqueStamp picks a timestamp that doesn't collide with existing backups,
// adding second precision and then a counter when needed.
func (m *Manager) uniqueStamp() (string, error) {
	stamp := time.Now().Format("20060102-1504")
	if !m.stampTaken(stamp) {
		return stamp, nil
	}
	stamp = time.Now().Format("20060102-150405")
	if !m.stampTaken(stamp) {
		return stamp, nil
	}
	for counter := 1; counter <= 100; counter++ {
		candidate := fmt.Sprintf("%s-%d", stamp, counter)
		if !m.stampTaken(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup name")
}

func (m *Manager) stampTaken(stamp string) bool {
	_, err := os.Stat(filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+".json"))
	return err == nil
}

// checkVault verifies the vault opens and reads as a SQLite database before
// its bytes get copied.
func (m *Manager) checkVault() error {
	db, err := sql.Open("sqlite", "file:"+m.vaultPath+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

// List returns document backups, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: info.ModTime(),
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// Restore copies a backup pair back over the live document and vault. The
// current state is backed up first so a bad restore can be undone.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup not found: %w", err)
	}

	if _, err := m.Create(); err != nil {
		return fmt.Errorf("failed to snapshot current state before restore: %w", err)
	}

	if err := copyFile(backupPath, m.docPath); err != nil {
		return fmt.Errorf("failed to restore document: %w", err)
	}

	vaultBackup := strings.TrimSuffix(backupPath, ".json") + ".db"
	if _, err := os.Stat(vaultBackup); err == nil {
		if err := copyFile(vaultBackup, m.vaultPath); err != nil {
			return fmt.Errorf("failed to restore vault: %w", err)
		}
	}
	return nil
}

// rotate deletes the oldest backup pairs beyond MaxBackups.
func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	if len(backups) <= constants.MaxBackups {
		return nil
	}
	for _, old := range backups[constants.MaxBackups:] {
		if err := os.Remove(old.Path); err != nil {
			return err
		}
		vault := strings.TrimSuffix(old.Path, ".json") + ".db"
		if _, err := os.Stat(vault); err == nil {
			if err := os.Remove(vault); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
