package sheets

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Queue column layout. Row 1 of the tab holds these headers; data rows
// follow.
var headers = []string{
	"id",
	"topic",
	"format",
	"status",
	"youtube_title",
	"youtube_description",
	"script",
	"youtube_url",
	"created_at",
	"processed_at",
	"error",
}

// Row statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusError      = "error"
)

const (
	colID = iota
	colTopic
	colFormat
	colStatus
	colTitle
	colDescription
	colScript
	colURL
	colCreatedAt
	colProcessedAt
	colError
)

// Row is one topics-queue entry. Index is the 1-based sheet row number
// (row 1 is the header, so data starts at 2).
type Row struct {
	Index       int
	ID          string
	Topic       string
	Format      string
	Status      string
	Title       string
	Description string
	Script      string
	URL         string
}

// Queue is a spreadsheet-backed job queue of video topics.
type Queue struct {
	service *sheets.Service
	sheetID string
	tab     string
}

// NewQueue authenticates with a service-account JSON key and binds to one
// spreadsheet tab.
func NewQueue(ctx context.Context, serviceAccountJSON []byte, sheetID, tab string) (*Queue, error) {
	cfg, err := google.JWTConfigFromJSON(serviceAccountJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}

	return &Queue{service: service, sheetID: sheetID, tab: tab}, nil
}

// List returns all data rows in sheet order.
func (q *Queue) List(ctx context.Context) ([]Row, error) {
	rng := fmt.Sprintf("%s!A2:%s", q.tab, colLetter(len(headers)-1))
	resp, err := q.service.Spreadsheets.Values.Get(q.sheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read queue: %w", err)
	}

	rows := make([]Row, 0, len(resp.Values))
	for i, values := range resp.Values {
		rows = append(rows, rowFromValues(i+2, values))
	}
	return rows, nil
}

// NextPending returns the first row awaiting processing, or nil when the
// queue is drained.
func (q *Queue) NextPending(ctx context.Context) (*Row, error) {
	rows, err := q.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Topic == "" {
			continue
		}
		if row.Status == "" || row.Status == StatusPending {
			r := row
			return &r, nil
		}
	}
	return nil, nil
}

// Append adds a pending topic row at the bottom of the queue.
func (q *Queue) Append(ctx context.Context, id, topic, format string) error {
	values := make([]interface{}, len(headers))
	for i := range values {
		values[i] = ""
	}
	values[colID] = id
	values[colTopic] = topic
	values[colFormat] = format
	values[colStatus] = StatusPending
	values[colCreatedAt] = utcNow()

	_, err := q.service.Spreadsheets.Values.Append(
		q.sheetID,
		fmt.Sprintf("%s!A1", q.tab),
		&sheets.ValueRange{Values: [][]interface{}{values}},
	).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append topic: %w", err)
	}
	return nil
}

// MarkProcessing claims a row for this run.
func (q *Queue) MarkProcessing(ctx context.Context, row *Row) error {
	return q.setCells(ctx, row.Index, map[int]string{
		colStatus: StatusProcessing,
	})
}

// MarkDone records the published artifact and stamps the row processed.
func (q *Queue) MarkDone(ctx context.Context, row *Row, content map[int]string, url string) error {
	cells := map[int]string{
		colStatus:      StatusDone,
		colURL:         url,
		colProcessedAt: utcNow(),
		colError:       "",
	}
	for col, v := range content {
		cells[col] = v
	}
	return q.setCells(ctx, row.Index, cells)
}

// MarkError stamps the row failed with a diagnostic message.
func (q *Queue) MarkError(ctx context.Context, row *Row, msg string) error {
	return q.setCells(ctx, row.Index, map[int]string{
		colStatus:      StatusError,
		colProcessedAt: utcNow(),
		colError:       msg,
	})
}

// ContentCells maps a generated package onto queue columns for MarkDone.
func ContentCells(title, description, script string) map[int]string {
	return map[int]string{
		colTitle:       title,
		colDescription: description,
		colScript:      script,
	}
}

func (q *Queue) setCells(ctx context.Context, rowIndex int, cells map[int]string) error {
	for col, value := range cells {
		rng := fmt.Sprintf("%s!%s%d", q.tab, colLetter(col), rowIndex)
		_, err := q.service.Spreadsheets.Values.Update(
			q.sheetID,
			rng,
			&sheets.ValueRange{Values: [][]interface{}{{value}}},
		).ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("update %s: %w", rng, err)
		}
	}
	return nil
}

func rowFromValues(index int, values []interface{}) Row {
	get := func(col int) string {
		if col >= len(values) {
			return ""
		}
		s, _ := values[col].(string)
		return s
	}
	return Row{
		Index:       index,
		ID:          get(colID),
		Topic:       get(colTopic),
		Format:      get(colFormat),
		Status:      get(colStatus),
		Title:       get(colTitle),
		Description: get(colDescription),
		Script:      get(colScript),
		URL:         get(colURL),
	}
}

// colLetter converts a 0-based column index to A1 letters (A..Z, AA, AB...).
func colLetter(col int) string {
	col++
	s := ""
	for col > 0 {
		col--
		s = string(rune('A'+col%26)) + s
		col /= 26
	}
	return s
}

func utcNow() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}
