package crontab

import (
	"fmt"
	"os"
	"path/filepath"
)

// Append writes block to path, creating parent directories as needed.
//
// If the file already has content that does not end in a newline, one is
// inserted first so the new entry never runs onto the previous line. The
// block itself is newline-terminated.
func Append(path, block string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	payload := ""
	ends, err := endsWithNewline(path)
	if err != nil {
		return err
	}
	if !ends {
		payload = "\n"
	}
	payload += block + "\n"

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := f.WriteString(payload); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// endsWithNewline reports whether the last byte of path is '\n'.
// Missing and empty files count as newline-terminated.
func endsWithNewline(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("inspecting %s: %w", path, err)
	}
	if info.Size() == 0 {
		return true, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 1)
	if _, err := f.ReadAt(buf, info.Size()-1); err != nil {
		return false, fmt.Errorf("reading tail of %s: %w", path, err)
	}
	return buf[0] == '\n', nil
}
