// Package export writes report tables to CSV files for download.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	perr "tilltalk/internal/platform/errors"
	"tilltalk/internal/platform/logger"
)

// Writer renders tabular report data to files on disk
type Writer interface {
	// WriteCSV writes header plus rows under a timestamped name derived
	// from stem, returning the absolute path of the file
	WriteCSV(stem string, header []string, rows [][]string) (string, error)
}

// CSV writes files into a fixed directory
type CSV struct {
	dir string
	log logger.Logger
	now func() time.Time
}

// NewCSV returns a Writer targeting dir, creating it on first use
func NewCSV(dir string) *CSV {
	if dir == "" {
		dir = os.TempDir()
	}
	return &CSV{dir: dir, log: *logger.Named("export"), now: time.Now}
}

// WriteCSV implements Writer
func (c *CSV) WriteCSV(stem string, header []string, rows [][]string) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "export dir %s", c.dir)
	}
	name := fmt.Sprintf("%s-%s.csv", slug(stem), c.now().Format("20060102-150405"))
	path := filepath.Join(c.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "export create %s", path)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "export header")
	}
	if err := w.WriteAll(rows); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "export rows")
	}
	c.log.Debug().Str("path", path).Int("rows", len(rows)).Msg("report exported")
	return path, nil
}

// slug lowercases the stem and keeps it filesystem safe
func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "report"
	}
	return b.String()
}
