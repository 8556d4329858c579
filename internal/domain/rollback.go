package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mouse-blink/splicer/internal/adapter"
	m "github.com/mouse-blink/splicer/internal/model"
)

const rollbackTimeLayout = "2006-01-02 15:04:05"

// GenerateRollback renders a POSIX shell script that copies every backup over
// its original. It reads nothing but records, so it can be regenerated from a
// session manifest at any time. Zero records yield a script that only reports
// completion.
func GenerateRollback(records []m.BackupRecord) string {
	var b strings.Builder

	b.WriteString("#!/bin/sh\n")
	b.WriteString("# Rollback script generated by splicer\n")

	if len(records) > 0 {
		fmt.Fprintf(&b, "# Backups taken %s\n", records[0].CreatedAt.Format(rollbackTimeLayout))
	}

	b.WriteString("\necho 'Rolling back patches...'\n")

	for _, record := range records {
		backup := shellQuote(string(record.Backup))
		original := shellQuote(string(record.Original))

		fmt.Fprintf(&b, "\nif [ -f %s ]; then\n", backup)
		fmt.Fprintf(&b, "    cp -p %s %s\n", backup, original)
		fmt.Fprintf(&b, "    echo 'Restored' %s\n", original)
		b.WriteString("else\n")
		fmt.Fprintf(&b, "    echo 'Backup not found:' %s\n", backup)
		b.WriteString("fi\n")
	}

	b.WriteString("\necho 'Rollback complete'\n")

	return b.String()
}

// shellQuote wraps s in single quotes, escaping embedded single quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Restore performs the rollback script's copy-back in process. Missing backups
// are reported and skipped like the script does; the joined error covers copy
// failures only.
func Restore(fs adapter.TargetFSAdapter, records []m.BackupRecord) ([]m.RestoreResult, error) {
	results := make([]m.RestoreResult, 0, len(records))

	var errs []error

	for _, record := range records {
		result := m.RestoreResult{Record: record}

		info, err := fs.FileInfo(record.Backup)
		if err != nil || info.IsDir() {
			result.Err = fmt.Errorf("backup not found: %s", record.Backup)
			results = append(results, result)

			continue
		}

		if err := fs.CopyFile(record.Backup, record.Original, false); err != nil {
			result.Err = fmt.Errorf("failed to restore %s: %w", record.Original, err)
			errs = append(errs, result.Err)
		} else {
			result.Restored = true
		}

		results = append(results, result)
	}

	return results, errors.Join(errs...)
}
