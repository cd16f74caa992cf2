package ingest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/valyala/fastjson"

	"github.com/logwise-app/logwise/internal/domain"
)

// Format declares how uploaded content is interpreted.
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
)

var (
	ErrBadFormat     = errors.New("content is not decodable as text")
	ErrUnknownFormat = errors.New("unknown log format")
)

// Timestamp layouts accepted for the "<ts> - <LEVEL> - <message>" shape.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006/01/02 15:04:05",
}

var jsonParserPool fastjson.ParserPool

// Parse normalizes raw uploaded content into LogRecords in file order.
// Gzip content is detected and decompressed transparently. Blank lines
// are skipped; every other line yields exactly one record with a
// strictly increasing sequence index starting at 0.
func Parse(content []byte, format Format) ([]domain.LogRecord, error) {
	content, err := maybeGunzip(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	if !utf8.Valid(content) {
		return nil, ErrBadFormat
	}

	switch format {
	case FormatPlain, "":
		return parsePlain(content)
	case FormatJSON:
		return parseJSON(content)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func maybeGunzip(content []byte) ([]byte, error) {
	if len(content) < 2 || content[0] != 0x1f || content[1] != 0x8b {
		return content, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return io.ReadAll(zr)
}

func parsePlain(content []byte) ([]domain.LogRecord, error) {
	records := []domain.LogRecord{}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec := domain.LogRecord{
			Seq:     len(records),
			Raw:     line,
			Message: line,
		}

		// "<timestamp> - <LEVEL> - <message>" lines get split out,
		// anything else stays a raw-message record.
		if parts := strings.SplitN(line, " - ", 3); len(parts) == 3 {
			rec.Level = strings.TrimSpace(parts[1])
			rec.Message = parts[2]
			rec.Timestamp = parseTimestamp(strings.TrimSpace(parts[0]))
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	return records, nil
}

func parseJSON(content []byte) ([]domain.LogRecord, error) {
	records := []domain.LogRecord{}

	parser := jsonParserPool.Get()
	defer jsonParserPool.Put(parser)

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, err := parser.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadFormat, len(records), err)
		}

		rec := domain.LogRecord{
			Seq:     len(records),
			Raw:     line,
			Level:   strings.ToUpper(string(v.GetStringBytes("level"))),
			Message: string(v.GetStringBytes("message")),
		}
		if rec.Message == "" {
			rec.Message = string(v.GetStringBytes("msg"))
		}
		if ts := string(v.GetStringBytes("timestamp")); ts != "" {
			rec.Timestamp = parseTimestamp(ts)
		} else if ts := string(v.GetStringBytes("time")); ts != "" {
			rec.Timestamp = parseTimestamp(ts)
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	return records, nil
}

func parseTimestamp(value string) time.Time {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
