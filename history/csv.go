package history

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"burnout/models"
)

// Header 历史文件表头
var Header = []string{"date", "text_preview", "screen_hours", "sleep_hours", "burnout_score"}

// legacyTimeLayout 早期版本写入的分钟精度时间格式
const legacyTimeLayout = "2006-01-02 15:04"

// CSVStore 基于 CSV 平面文件的历史存储
type CSVStore struct {
	path string
	mu   sync.Mutex
}

// NewCSVStore 创建 CSV 存储，文件和目录在首次写入时创建
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path 文件路径
func (s *CSVStore) Path() string {
	return s.path
}

// Append 追加一行并落盘（fsync）后返回
func (s *CSVStore) Append(_ context.Context, rec *models.PredictionRecord) error {
	if rec == nil {
		return errors.New("append: record is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("append: mkdir: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("append: open: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("append: stat: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("append: write header: %w", err)
		}
	} else if err := terminateLastLine(f, info.Size()); err != nil {
		return fmt.Errorf("append: %w", err)
	}

	if err := w.Write(encodeRow(rec)); err != nil {
		return fmt.Errorf("append: write row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("append: flush: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("append: sync: %w", err)
	}
	return nil
}

// terminateLastLine 上次写入中断时补一个换行，避免新行拼接到残缺行上
func terminateLastLine(f *os.File, size int64) error {
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, size-1); err != nil {
		return fmt.Errorf("read tail: %w", err)
	}
	if last[0] == '\n' {
		return nil
	}
	if _, err := f.Write([]byte{'\n'}); err != nil {
		return fmt.Errorf("terminate line: %w", err)
	}
	return nil
}

// LoadAll 读取全部记录
// 文件不存在或内容损坏时返回空历史；仅在文件无法打开时返回错误
func (s *CSVStore) LoadAll(_ context.Context) ([]models.PredictionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.PredictionRecord{}, nil
		}
		return nil, fmt.Errorf("load: open: %w", err)
	}
	defer f.Close()

	recs, err := decode(f)
	if err != nil {
		log.Printf("警告: 历史文件 %s 无法解析，按空历史处理: %v", s.path, err)
		return []models.PredictionRecord{}, nil
	}
	return recs, nil
}

// WriteCSV 以历史文件格式（含表头）写出记录
func WriteCSV(w io.Writer, records []models.PredictionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for i := range records {
		if err := cw.Write(encodeRow(&records[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeRow(rec *models.PredictionRecord) []string {
	return []string{
		rec.Timestamp.Format(models.TimeLayout),
		rec.TextPreview,
		strconv.FormatFloat(rec.ScreenHours, 'f', -1, 64),
		strconv.FormatFloat(rec.SleepHours, 'f', -1, 64),
		strconv.FormatFloat(rec.BurnoutScore, 'f', -1, 64),
	}
}

// decode 解析 CSV 内容，列按表头名称定位
// 引号字段内的 \r\n 会被 encoding/csv 规整为 \n，预览文本仅用于展示
func decode(r io.Reader) ([]models.PredictionRecord, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []models.PredictionRecord{}, nil
	}

	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimPrefix(name, "\xEF\xBB\xBF")
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range Header {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	recs := make([]models.PredictionRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec, err := decodeRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func decodeRow(row []string, idx map[string]int) (models.PredictionRecord, error) {
	var rec models.PredictionRecord

	ts, err := parseTime(row[idx["date"]])
	if err != nil {
		return rec, err
	}
	rec.Timestamp = ts
	rec.TextPreview = row[idx["text_preview"]]

	fields := []struct {
		name string
		dst  *float64
	}{
		{"screen_hours", &rec.ScreenHours},
		{"sleep_hours", &rec.SleepHours},
		{"burnout_score", &rec.BurnoutScore},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx[f.name]]), 64)
		if err != nil {
			return rec, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = v
	}
	return rec, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(models.TimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(legacyTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, err)
	}
	return t, nil
}
