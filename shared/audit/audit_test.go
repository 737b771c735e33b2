package audit

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emazahmed/edu-hotel/internal/access"
	"github.com/emazahmed/edu-hotel/internal/catalog"
	"github.com/emazahmed/edu-hotel/internal/ledger"
	"github.com/emazahmed/edu-hotel/internal/seed"
	"github.com/emazahmed/edu-hotel/internal/session"
)

// sheetRecorder captures what the service writes, sheet by sheet.
type sheetRecorder struct {
	sheets  []string
	headers map[string][]string
	rows    map[string][][]any
	current string
	saved   bool
}

func newSheetRecorder() *sheetRecorder {
	return &sheetRecorder{headers: map[string][]string{}, rows: map[string][][]any{}}
}

func (r *sheetRecorder) AddSheet(name string) error {
	r.sheets = append(r.sheets, name)
	r.current = name
	return nil
}

func (r *sheetRecorder) WriteHeader(columns []string) error {
	r.headers[r.current] = columns
	return nil
}

func (r *sheetRecorder) WriteRow(row []any) error {
	r.rows[r.current] = append(r.rows[r.current], row)
	return nil
}

func (r *sheetRecorder) Save(io.Writer) error {
	r.saved = true
	return nil
}

func newTestService(t *testing.T, writer func() ExcelWriter) (*Service, access.Actor) {
	t.Helper()
	logger := zerolog.New(io.Discard)
	d := seed.Default()

	cat, err := catalog.New(d.Hotels, d.Rooms)
	require.NoError(t, err)
	sessions := session.NewStore(d.Users, nil, session.Options{}, logger)
	l := ledger.New(d.Bookings, nil, logger)

	return NewService(l, sessions, cat, writer, logger), access.Actor{ID: "admin", Admin: true}
}

func TestExportReport(t *testing.T) {
	rec := newSheetRecorder()
	svc, admin := newTestService(t, func() ExcelWriter { return rec })

	require.NoError(t, svc.ExportReport(admin, io.Discard))

	assert.Equal(t, []string{"Bookings", "Users", "Hotels"}, rec.sheets)
	assert.True(t, rec.saved)

	require.Len(t, rec.rows["Bookings"], 2)
	first := rec.rows["Bookings"][0]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "Confirmed", first[1])
	assert.Equal(t, "John Doe", first[2])
	assert.Equal(t, "2024-01-15", first[6])
	assert.Equal(t, 3, first[8])

	assert.Len(t, rec.rows["Users"], 2)
	assert.Len(t, rec.rows["Hotels"], 3)
	assert.Equal(t, bookingColumns, rec.headers["Bookings"])
}

func TestExportReport_RequiresAdmin(t *testing.T) {
	rec := newSheetRecorder()
	svc, _ := newTestService(t, func() ExcelWriter { return rec })

	err := svc.ExportReport(access.Actor{ID: "1"}, io.Discard)
	require.Error(t, err)
	assert.True(t, access.IsAccessDenied(err))
	assert.Empty(t, rec.sheets)
}

func TestExportReport_RealWorkbook(t *testing.T) {
	svc, admin := newTestService(t, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportReport(admin, &buf))
	// xlsx files are zip archives; check the magic bytes.
	require.Greater(t, buf.Len(), 4)
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}

func TestGenerateFilename(t *testing.T) {
	ts := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "bookings_report_2026-08.xlsx", GenerateFilename(ts))
}

func TestExcelizeWriter_RequiresSheet(t *testing.T) {
	w := NewExcelizeWriter()
	assert.Error(t, w.WriteHeader([]string{"A"}))
	assert.Error(t, w.WriteRow([]any{"a"}))

	require.NoError(t, w.AddSheet("Data"))
	require.NoError(t, w.WriteHeader([]string{"A", "B"}))
	require.NoError(t, w.WriteRow([]any{"a", 1}))

	var buf bytes.Buffer
	require.NoError(t, w.Save(&buf))
	assert.NotZero(t, buf.Len())
}
