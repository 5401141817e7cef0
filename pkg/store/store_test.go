package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/gymdesk-backend/pkg/enums"
	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

func TestLoadMissingFilesReturnEmpty(t *testing.T) {
	s := New(t.TempDir())

	members, err := s.LoadMembers()
	require.NoError(t, err)
	require.Empty(t, members)

	payments, err := s.LoadPayments()
	require.NoError(t, err)
	require.Empty(t, payments)

	records, err := s.LoadAttendance()
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestMembersRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	members := []models.Member{
		{
			ID:             "M001",
			Name:           "Alice Tan",
			Age:            34,
			Phone:          "555-0101",
			MembershipType: "Monthly",
			StartDate:      "2024-01-01",
			EndDate:        "2024-02-01",
			Status:         enums.MemberStatusActive,
			Trainer:        "Jordan",
			Schedule:       "Mon/Wed 6-8pm",
		},
		{
			ID:             "M002",
			Name:           "Ben Ong",
			Age:            52,
			Phone:          "555-0102",
			MembershipType: "Yearly",
			StartDate:      "2024-03-15",
			EndDate:        "2025-03-15",
			Status:         enums.MemberStatus("Pending"), // legacy files mix case
			Trainer:        "Casey",
			Schedule:       "Sat 9-11am",
		},
	}

	require.NoError(t, s.SaveMembers(members))
	got, err := s.LoadMembers()
	require.NoError(t, err)
	require.Equal(t, members, got)
}

func TestPaymentsRoundTripKeepsTwoDecimals(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	payments := []models.Payment{
		{ID: "P001", MemberID: "M001", DatePaid: "2024-01-05", Amount: decimal.RequireFromString("50.00"), Method: "Cash", MembershipType: "Monthly"},
		{ID: "P002", MemberID: "M002", DatePaid: "2024-01-20", Amount: decimal.RequireFromString("600.00"), Method: "Card", MembershipType: "Yearly"},
	}

	require.NoError(t, s.SavePayments(payments))

	raw, err := os.ReadFile(filepath.Join(dir, "payments.txt"))
	require.NoError(t, err)
	require.Equal(t, "P001,M001,2024-01-05,50.00,Cash,Monthly\nP002,M002,2024-01-20,600.00,Card,Yearly\n", string(raw))

	got, err := s.LoadPayments()
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range payments {
		require.True(t, payments[i].Amount.Equal(got[i].Amount), "amount mismatch at %d", i)
	}
}

func TestAttendanceRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	records := []models.Attendance{
		{ID: "A001", MemberID: "M001", Date: "2024-01-08", CheckIn: "18:30", CheckOut: "19:45"},
		{ID: "A002", MemberID: "M404", Date: "2024-01-09", CheckIn: "07:00", CheckOut: "08:00"},
	}

	require.NoError(t, s.SaveAttendance(records))
	got, err := s.LoadAttendance()
	require.NoError(t, err)
	require.Equal(t, records, got)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	memberLines := "M001,Alice,34,555,Monthly,2024-01-01,2024-02-01,active,Jordan,MWF\n" +
		"\n" + // blank
		"M002,too,short\n" + // missing fields
		"M003,Bob,not-a-number,555,Monthly,2024-01-01,2024-02-01,active,Jordan,MWF\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "members.txt"), []byte(memberLines), 0o644))

	paymentLines := "P001,M001,2024-01-05,50.00,Cash,Monthly\n" +
		"P002,M001,2024-01-06,not-money,Cash,Monthly\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "payments.txt"), []byte(paymentLines), 0o644))

	s := New(dir)

	members, err := s.LoadMembers()
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, "M001", members[0].ID)

	payments, err := s.LoadPayments()
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, "P001", payments[0].ID)
}

func TestSaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir)
	require.NoError(t, s.SaveMembers(nil))
	_, err := os.Stat(filepath.Join(dir, "members.txt"))
	require.NoError(t, err)
}
