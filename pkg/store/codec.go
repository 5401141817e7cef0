package store

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/gymdesk-backend/pkg/enums"
	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

// Field orders are the legacy file contract and must not change:
// members:    member_id,name,age,phone,membership_type,start_date,end_date,status,trainer,schedule
// payments:   payment_id,member_id,date_paid,amount,method,membership_type
// attendance: attendance_id,member_id,date,checkin,checkout
const (
	memberFieldCount     = 10
	paymentFieldCount    = 6
	attendanceFieldCount = 5

	fieldSep = ","
)

func parseMemberLine(line string) (models.Member, bool) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < memberFieldCount {
		return models.Member{}, false
	}
	age, err := strconv.Atoi(fields[2])
	if err != nil {
		return models.Member{}, false
	}
	return models.Member{
		ID:             fields[0],
		Name:           fields[1],
		Age:            age,
		Phone:          fields[3],
		MembershipType: fields[4],
		StartDate:      fields[5],
		EndDate:        fields[6],
		Status:         enums.MemberStatus(fields[7]),
		Trainer:        fields[8],
		Schedule:       fields[9],
	}, true
}

func formatMemberLine(m models.Member) string {
	return strings.Join([]string{
		m.ID,
		m.Name,
		strconv.Itoa(m.Age),
		m.Phone,
		m.MembershipType,
		m.StartDate,
		m.EndDate,
		string(m.Status),
		m.Trainer,
		m.Schedule,
	}, fieldSep)
}

func parsePaymentLine(line string) (models.Payment, bool) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < paymentFieldCount {
		return models.Payment{}, false
	}
	amount, err := decimal.NewFromString(fields[3])
	if err != nil {
		return models.Payment{}, false
	}
	return models.Payment{
		ID:             fields[0],
		MemberID:       fields[1],
		DatePaid:       fields[2],
		Amount:         amount,
		Method:         fields[4],
		MembershipType: fields[5],
	}, true
}

func formatPaymentLine(p models.Payment) string {
	return strings.Join([]string{
		p.ID,
		p.MemberID,
		p.DatePaid,
		p.Amount.StringFixed(2),
		p.Method,
		p.MembershipType,
	}, fieldSep)
}

func parseAttendanceLine(line string) (models.Attendance, bool) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < attendanceFieldCount {
		return models.Attendance{}, false
	}
	return models.Attendance{
		ID:       fields[0],
		MemberID: fields[1],
		Date:     fields[2],
		CheckIn:  fields[3],
		CheckOut: fields[4],
	}, true
}

func formatAttendanceLine(a models.Attendance) string {
	return strings.Join([]string{
		a.ID,
		a.MemberID,
		a.Date,
		a.CheckIn,
		a.CheckOut,
	}, fieldSep)
}
