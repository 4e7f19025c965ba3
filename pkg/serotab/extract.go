package serotab

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ukaji3/serotab-go/pkg/serotab/models"
	"github.com/ukaji3/serotab-go/pkg/serotab/parser"
	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
)

var (
	delimitedExtensions = []string{".csv", ".tsv", ".tab", ".txt"}
	workbookExtensions  = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}
)

// Extract reads a delimited text file or an xlsx workbook and builds one
// sheet report per sheet.
//
// A cell addressed outside its sheet while processing the file is reported
// as ErrIndexFault, and any other panic as ErrInternal, rather than crashing
// the caller.
func Extract(path string, opts Options) (*models.WorkbookReport, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	sheets, err := ReadSheets(path, opts)
	if err != nil {
		return nil, err
	}

	bookName := filepath.Base(path)
	wb := &models.WorkbookReport{BookName: bookName}
	for _, ns := range sheets {
		report, err := ExtractSheet(bookName, ns, opts)
		if err != nil {
			return nil, err
		}
		wb.Sheets = append(wb.Sheets, report)
	}
	return wb, nil
}

// ReadSheets loads the sheets of path, choosing the reader from the file
// extension.
func ReadSheets(path string, opts Options) ([]parser.NamedSheet, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case slices.Contains(delimitedExtensions, ext):
		grid, err := parser.ReadDelimited(path, opts.Separator, opts.Encoding)
		if err != nil {
			return nil, NewExtractionError("", "read", err)
		}
		var s sheet.Sheet = grid
		if opts.ShouldInferTypes() {
			s = sheet.InferTypes(grid)
		}
		return []parser.NamedSheet{{Sheet: s}}, nil
	case slices.Contains(workbookExtensions, ext):
		sheets, err := parser.ReadWorkbook(path, opts.SheetName, opts.UsePrintArea)
		if err != nil {
			return nil, NewExtractionError(opts.SheetName, "read", err)
		}
		return sheets, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// recovered turns a panic value into an error. Out-of-range cell access
// becomes ErrIndexFault, anything else ErrInternal.
func recovered(r any) error {
	var ie *sheet.IndexError
	if e, ok := r.(error); ok && errors.As(e, &ie) {
		return fmt.Errorf("%w: %v", ErrIndexFault, ie)
	}
	return fmt.Errorf("%w: %v", ErrInternal, r)
}

// ExtractSheet runs the extractor over one sheet and builds its report.
func ExtractSheet(file string, ns parser.NamedSheet, opts Options) (report models.SheetReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewExtractionError(ns.Name, "extract", recovered(r))
		}
	}()

	log := opts.logger().With("file", file)
	if ns.Name != "" {
		log = log.With("sheet", ns.Name)
	}
	b := reportBuilder{opts: opts, file: file, ns: ns, log: log}
	report = b.build()
	log.Info("sheet extracted",
		"extractor", report.Extractor,
		"antigens", len(report.AntigenRows)+len(report.Antigens),
		"warnings", len(report.Warnings))
	return report, nil
}
