package record

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/mduval/wedding-rsvp/model"
	"github.com/mduval/wedding-rsvp/utils/identity"
)

// ValuesAPI is the narrow slice of the spreadsheet values surface the
// repository needs. The real implementation lives in thirdparty/gsheets;
// tests substitute an in-memory fake.
type ValuesAPI interface {
	GetAll(ctx context.Context) ([][]interface{}, error)
	Append(ctx context.Context, row []interface{}) error
	Update(ctx context.Context, rowIndex1Based int, row []interface{}) error
}

// Column layout, fixed: A=id B=createdAt C=updatedAt D=code E=name F=email
// G=phone H=attending I=adultPartner J=kids_0_3 K=kids_4_10 L=kids_11_17
// M=kids_total N=message. Row 1 is the header.
var sheetHeader = []interface{}{
	"id", "createdAt", "updatedAt", "code", "name", "email", "phone",
	"attending", "adultPartner", "kids_0_3", "kids_4_10", "kids_11_17",
	"kids_total", "message",
}

// SheetRepository stores one record per data row in a remote spreadsheet.
type SheetRepository struct {
	api ValuesAPI
}

func NewSheetRepository(api ValuesAPI) *SheetRepository {
	return &SheetRepository{api: api}
}

func (r *SheetRepository) ReadAll(ctx context.Context) ([]model.Record, error) {
	rows, err := r.api.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		records = append(records, rowToRecord(row))
	}

	// Fixed-width timestamps sort lexicographically, newest first.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UpdatedAt > records[j].UpdatedAt
	})
	return records, nil
}

func (r *SheetRepository) FindMatch(ctx context.Context, email, phone string) (*model.Record, error) {
	rows, err := r.api.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if idx := r.matchRowIndex(rows, "", email, phone); idx > 0 {
		rec := rowToRecord(rows[idx])
		return &rec, nil
	}
	return nil, nil
}

func (r *SheetRepository) Upsert(ctx context.Context, rec model.Record) error {
	rows, err := r.api.GetAll(ctx)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		if err := r.api.Append(ctx, sheetHeader); err != nil {
			return err
		}
	}

	email := identity.NormalizeEmail(rec.Email)
	phone := identity.NormalizePhone(rec.Phone)
	if idx := r.matchRowIndex(rows, rec.ID, email, phone); idx > 0 {
		// Sheet rows are 1-based and include the header.
		return r.api.Update(ctx, idx+1, recordToRow(rec))
	}
	return r.api.Append(ctx, recordToRow(rec))
}

// matchRowIndex returns the slice index of the row matching by id first,
// then by normalized identity; 0 means no match (row 0 is the header).
func (r *SheetRepository) matchRowIndex(rows [][]interface{}, id, email, phone string) int {
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if id != "" && cell(row, 0) == id {
			return i
		}
		re := identity.NormalizeEmail(cell(row, 5))
		rp := identity.NormalizePhone(cell(row, 6))
		if (email != "" && re == email) || (phone != "" && rp == phone) {
			return i
		}
	}
	return 0
}

func recordToRow(rec model.Record) []interface{} {
	return []interface{}{
		rec.ID,
		rec.CreatedAt,
		rec.UpdatedAt,
		rec.Code,
		rec.Name,
		rec.Email,
		rec.Phone,
		yesNo(rec.Attending),
		yesNo(rec.AdultPartner),
		strconv.Itoa(rec.Children.AgeRanges.Age0to3),
		strconv.Itoa(rec.Children.AgeRanges.Age4to10),
		strconv.Itoa(rec.Children.AgeRanges.Age11to17),
		strconv.Itoa(rec.Children.Count),
		rec.Message,
	}
}

// rowToRecord maps a sheet row positionally, tolerating short rows: a
// missing trailing cell reads as empty or zero.
func rowToRecord(row []interface{}) model.Record {
	ages := model.AgeRanges{
		Age0to3:   cellInt(row, 9),
		Age4to10:  cellInt(row, 10),
		Age11to17: cellInt(row, 11),
	}
	return model.Record{
		ID:           cell(row, 0),
		CreatedAt:    cell(row, 1),
		UpdatedAt:    cell(row, 2),
		Code:         cell(row, 3),
		Name:         cell(row, 4),
		Email:        cell(row, 5),
		Phone:        cell(row, 6),
		Attending:    truthy(cell(row, 7)),
		AdultPartner: truthy(cell(row, 8)),
		Children: model.Children{
			Count:     cellInt(row, 12),
			AgeRanges: ages,
		},
		Message: cell(row, 13),
	}
}

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

func cellInt(row []interface{}, i int) int {
	n, _ := strconv.Atoi(cell(row, i))
	return n
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// truthy accepts yes, true, 1 and the French "oui" (legacy rows were
// filled in by hand); everything else is false.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "oui":
		return true
	}
	return false
}
