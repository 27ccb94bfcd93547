package xlstyler

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	}
	if EncName == "" {
		EncName = "utf-8"
	}
}

func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

type csvReadCloser struct {
	*csv.Reader
	io.Closer
}

// OpenCsv opens fn (stdin for "" or "-") as CSV, decoding it from encName.
// Files ending with ".gz" are decompressed.
// The separator is guessed from the first non-word character.
func OpenCsv(fn, encName string) (csvReadCloser, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return csvReadCloser{}, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return csvReadCloser{}, err
		}
	}
	r := io.ReadCloser(fh)
	if strings.HasSuffix(fn, ".gz") {
		zr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return csvReadCloser{}, fmt.Errorf("%s: %w", fn, err)
		}
		r = struct {
			io.Reader
			io.Closer
		}{zr, multiCloser{zr, fh}}
	}
	if enc != nil {
		r = struct {
			io.Reader
			io.Closer
		}{enc.NewDecoder().Reader(r), r}
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		r.Close()
		return csvReadCloser{}, err
	}
	sep := rune(',')
	for _, r := range string(b) {
		if r == '"' || r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		sep = r
		break
	}

	cr := csv.NewReader(br)
	cr.ReuseRecord = true
	cr.Comma = sep
	return csvReadCloser{cr, r}, nil
}

type multiCloser []io.Closer

func (mc multiCloser) Close() error {
	var errs []error
	for _, c := range mc {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// CopyCsv appends the CSV file fn as a new sheet of w.
// The first record is the header, styled with header.
func CopyCsv(w Writer, sheetName, fn, encName string, header CellStyle) error {
	cr, err := OpenCsv(fn, encName)
	if err != nil {
		return err
	}
	defer cr.Close()

	row, err := cr.Read()
	if err != nil {
		return err
	}
	cols := make([]Column, len(row))
	for i, r := range row {
		cols[i].Name = r
		cols[i].Header = header
	}
	sheet, err := w.NewSheet(sheetName, cols)
	if err != nil {
		return err
	}

	var rowI []any
	for {
		if row, err = cr.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		rowI = rowI[:0]
		for _, s := range row {
			rowI = append(rowI, s)
		}
		if err = sheet.AppendRow(rowI...); err != nil {
			return err
		}
	}
	return sheet.Close()
}
