package cmd

import (
	"path/filepath"
	"strings"

	"dominik/internal/appdirs"
)

func defaultLogsDir() string {
	dir, err := appdirs.LogsDir()
	if err != nil || strings.TrimSpace(dir) == "" {
		return filepath.Join("user_data", "logs")
	}
	return dir
}

func defaultDownloadsDir() string {
	dir, err := appdirs.DownloadsDir()
	if err != nil || strings.TrimSpace(dir) == "" {
		return filepath.Join("user_data", "downloads")
	}
	return dir
}
