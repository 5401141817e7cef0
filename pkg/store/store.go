// Package store reads and writes the flat comma-delimited record files the
// system persists to. Each save is a full overwrite of one file; there is no
// cross-file atomicity.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

const (
	membersFile    = "members.txt"
	paymentsFile   = "payments.txt"
	attendanceFile = "attendance.txt"
)

type Store struct {
	dir string
}

// New binds a store to the given data directory. The directory is created
// lazily on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) LoadMembers() ([]models.Member, error) {
	members := []models.Member{}
	err := s.loadLines(membersFile, func(line string) {
		if m, ok := parseMemberLine(line); ok {
			members = append(members, m)
		}
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (s *Store) SaveMembers(members []models.Member) error {
	lines := make([]string, 0, len(members))
	for _, m := range members {
		lines = append(lines, formatMemberLine(m))
	}
	return s.saveLines(membersFile, lines)
}

func (s *Store) LoadPayments() ([]models.Payment, error) {
	payments := []models.Payment{}
	err := s.loadLines(paymentsFile, func(line string) {
		if p, ok := parsePaymentLine(line); ok {
			payments = append(payments, p)
		}
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Store) SavePayments(payments []models.Payment) error {
	lines := make([]string, 0, len(payments))
	for _, p := range payments {
		lines = append(lines, formatPaymentLine(p))
	}
	return s.saveLines(paymentsFile, lines)
}

func (s *Store) LoadAttendance() ([]models.Attendance, error) {
	records := []models.Attendance{}
	err := s.loadLines(attendanceFile, func(line string) {
		if a, ok := parseAttendanceLine(line); ok {
			records = append(records, a)
		}
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) SaveAttendance(records []models.Attendance) error {
	lines := make([]string, 0, len(records))
	for _, a := range records {
		lines = append(lines, formatAttendanceLine(a))
	}
	return s.saveLines(attendanceFile, lines)
}

// loadLines streams non-blank lines of the named file to fn. A missing file
// is an empty collection, not an error.
func (s *Store) loadLines(name string, fn func(line string)) error {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fn(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

func (s *Store) saveLines(name string, lines []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
