package importer

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/MrNetsudo/NetAssets/internal/model"
)

// ReadWorkbook loads every sheet of an XLSX workbook into device records.
// Each record carries its sheet name, which the analyzer treats as ground
// truth. Sheets without a recognizable device-name column are skipped with a
// warning rather than failing the whole import.
func ReadWorkbook(path string) ([]model.DeviceRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "importer: open workbook")
	}

	var devices []model.DeviceRecord
	for _, sheet := range f.Sheets {
		if len(sheet.Rows) == 0 {
			continue
		}

		headers := rowToStrings(sheet.Rows[0])
		cols := resolveColumns(headers)
		if cols.name < 0 {
			zap.L().Warn("skipping sheet without device name column",
				zap.String("sheet", sheet.Name),
				zap.Strings("headers", headers),
			)
			continue
		}

		for _, row := range sheet.Rows[1:] {
			cells := rowToStrings(row)
			d := recordFromRow(sheet.Name, cells, cols)
			if d.DeviceName == "" {
				continue
			}
			devices = append(devices, d)
		}
	}

	if len(devices) == 0 {
		return nil, eris.Errorf("importer: no device rows found in %s", path)
	}
	return devices, nil
}

// ReadCSV loads a single CSV export. CSV files have no tab structure, so the
// caller supplies the sheet name (usually derived from the file name); pass
// "" when the source carries no ground-truth label.
func ReadCSV(path, sheetName string) ([]model.DeviceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "importer: open csv")
	}
	defer f.Close()

	devices, err := readCSVRows(f, sheetName)
	if err != nil {
		return nil, eris.Wrapf(err, "importer: read csv %s", path)
	}
	if len(devices) == 0 {
		return nil, eris.Errorf("importer: no device rows found in %s", path)
	}
	return devices, nil
}

func readCSVRows(r io.Reader, sheetName string) ([]model.DeviceRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "read header")
	}

	cols := resolveColumns(headers)
	if cols.name < 0 {
		return nil, eris.New("no device name column in header")
	}

	var devices []model.DeviceRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "read row")
		}
		d := recordFromRow(sheetName, row, cols)
		if d.DeviceName == "" {
			continue
		}
		devices = append(devices, d)
	}
	return devices, nil
}

func recordFromRow(sheetName string, row []string, cols columnMap) model.DeviceRecord {
	return model.DeviceRecord{
		SheetName:      sheetName,
		DeviceName:     cell(row, cols.name),
		SystemLocation: cell(row, cols.location),
		Tenant:         cell(row, cols.tenant),
		Region:         cell(row, cols.region),
		ManagementIP:   cell(row, cols.ip),
	}
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, c := range row.Cells {
		cells[j] = c.String()
	}
	return cells
}
