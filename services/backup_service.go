package services

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/TheGodAnnihilator/TheSchedulePlus/config"
)

// BackupService produces an on-demand full-database dump by shelling out to
// mysqldump and writing its stdout verbatim to a user-chosen path. Failures
// are reported, never retried.
type BackupService struct{}

func NewBackupService() *BackupService {
	return &BackupService{}
}

// Dump writes the dump to path and returns the number of bytes written.
func (s *BackupService) Dump(path string) (int64, error) {
	cfg, err := config.Load()
	if err != nil {
		return 0, err
	}

	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("cannot create backup file: %w", err)
	}
	defer out.Close()

	cmd := exec.Command("mysqldump",
		"--host="+cfg.Host,
		"--port="+cfg.Port,
		"--user="+cfg.User,
		"--password="+cfg.Password,
		cfg.Name,
	)
	cmd.Stdout = out
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(path)
		if stderr.Len() > 0 {
			return 0, fmt.Errorf("mysqldump failed: %v: %s", err, stderr.String())
		}
		return 0, fmt.Errorf("mysqldump failed: %w", err)
	}

	info, err := out.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
