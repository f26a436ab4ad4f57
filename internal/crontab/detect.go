package crontab

import (
	"os"
	"path/filepath"
)

// Detect resolves the cron file to write to when the user gave no --file.
//
// Resolution order:
//  1. $CRONTAB, verbatim
//  2. the first of /var/spool/cron/crontabs/<user>, /var/spool/cron/<user>,
//     /etc/cron.d/<user> whose file or parent directory exists
//  3. ~/.crontab
func Detect() string {
	return detect(os.Getenv, pathExists)
}

func detect(getenv func(string) string, exists func(string) bool) string {
	if path := getenv("CRONTAB"); path != "" {
		return path
	}

	user := getenv("USER")
	if user == "" {
		user = getenv("USERNAME")
	}
	if user == "" {
		user = "user"
	}

	candidates := []string{
		filepath.Join("/var/spool/cron/crontabs", user),
		filepath.Join("/var/spool/cron", user),
		filepath.Join("/etc/cron.d", user),
	}
	for _, candidate := range candidates {
		if exists(candidate) || exists(filepath.Dir(candidate)) {
			return candidate
		}
	}

	home := getenv("HOME")
	if home == "" {
		home = getenv("USERPROFILE")
	}
	if home == "" {
		home = "."
	}
	return filepath.Join(home, ".crontab")
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
