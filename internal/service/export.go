package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/naodalemu/SSRS-Admin/internal/models"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Заголовки колонок двух схем экспорта
var (
	currentExportHeader = []string{
		"Staff", "Assigned Days", "Daily Salary", "Regular Pay", "Overtime Pay",
		"Gross Pay", "Tax", "Tips", "Net Pay",
	}
	historyExportHeader = []string{
		"ID", "Staff ID", "Staff Name", "Period", "Assigned Days",
		"Total Salary", "Total Earned", "Tax", "Tips", "Net Salary",
	}
)

var currencyPrinter = message.NewPrinter(language.English)

// formatCurrency форматирует денежное поле с группировкой разрядов и кодом
// валюты. Неразбираемые значения возвращаются как есть.
func formatCurrency(raw string) string {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return currencyPrinter.Sprintf("%.2f ETB", value)
}

func formatCurrencyValue(value float64) string {
	return currencyPrinter.Sprintf("%.2f ETB", value)
}

// currentExportRow превращает строку текущего расчета в ячейки экспорта
func currentExportRow(row *models.PayrollRow) []string {
	return []string{
		row.Staff,
		strconv.Itoa(row.AssignedDays),
		formatCurrency(row.DailySalary),
		formatCurrency(row.NormalEarned),
		formatCurrency(row.OvertimeEarned),
		formatCurrency(row.TotalEarned),
		formatCurrency(row.Tax),
		formatCurrency(row.Tips),
		formatCurrency(row.NetSalaryWithTips),
	}
}

// historyExportRow превращает строку журнала в ячейки экспорта
func historyExportRow(row *models.HistoricalPayroll) []string {
	return []string{
		strconv.FormatUint(uint64(row.ID), 10),
		strconv.FormatUint(uint64(row.StaffID), 10),
		row.StaffName,
		fmt.Sprintf("%s to %s", row.StartDate, row.EndDate),
		strconv.Itoa(row.AssignedDays),
		formatCurrency(row.TotalSalary),
		formatCurrency(row.TotalEarned),
		formatCurrency(row.Tax),
		formatCurrency(row.Tips),
		formatCurrency(row.NetSalaryWithTips),
	}
}

// exportTable собирает заголовок, строки, название и период для любого из
// форматов экспорта. Оба варианта отчета разбираются явно.
func exportTable(report Report, startDate, endDate string) (title, period string, header []string, rows [][]string, err error) {
	switch report.Kind {
	case TabCurrent:
		title = "Payroll Report"
		period = fmt.Sprintf("Period: %s to %s", startDate, endDate)
		header = currentExportHeader
		for i := range report.Current {
			rows = append(rows, currentExportRow(&report.Current[i]))
		}
		return title, period, header, rows, nil
	case TabHistory:
		title = "Full Payroll History Report"
		period = "Period: Everything"
		header = historyExportHeader
		for i := range report.History {
			rows = append(rows, historyExportRow(&report.History[i]))
		}
		return title, period, header, rows, nil
	default:
		return "", "", nil, nil, fmt.Errorf("неизвестный вид отчета: %q", report.Kind)
	}
}

var printTemplate = template.Must(template.New("payroll_print").Parse(`<html>
<head>
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
h1 { text-align: center; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; }
.summary { margin-top: 30px; }
.footer { margin-top: 50px; text-align: center; font-size: 12px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Period}}</p>
<table>
<thead>
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{if .Summary}}<div class="summary">
<h2>Summary</h2>
<p>Total Staff: {{.Summary.TotalStaff}}</p>
<p>Total Gross Salary: {{.Summary.TotalGrossSalary}}</p>
<p>Total Tax: {{.Summary.TotalTax}}</p>
<p>Total Net Salary: {{.Summary.TotalNetSalary}}</p>
</div>
{{end}}<div class="footer">
<p>Generated on {{.GeneratedAt}}</p>
</div>
</body>
</html>
`))

type printSummary struct {
	TotalStaff       int
	TotalGrossSalary string
	TotalTax         string
	TotalNetSalary   string
}

// ExportPrintable строит автономный печатный документ по видимому набору
// строк. Блок сводки добавляется только для текущего расчета.
func ExportPrintable(report Report, startDate, endDate string, summary *models.PayrollSummary) (string, error) {
	title, period, header, rows, err := exportTable(report, startDate, endDate)
	if err != nil {
		return "", err
	}

	data := struct {
		Title       string
		Period      string
		Header      []string
		Rows        [][]string
		Summary     *printSummary
		GeneratedAt string
	}{
		Title:       title,
		Period:      period,
		Header:      header,
		Rows:        rows,
		GeneratedAt: time.Now().Format("02.01.2006 15:04:05"),
	}

	if report.Kind == TabCurrent && summary != nil {
		data.Summary = &printSummary{
			TotalStaff:       summary.TotalStaff,
			TotalGrossSalary: formatCurrencyValue(summary.TotalGrossSalary),
			TotalTax:         formatCurrencyValue(summary.TotalTax),
			TotalNetSalary:   formatCurrencyValue(summary.TotalNetSalary),
		}
	}

	var buf strings.Builder
	if err := printTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportCSV строит CSV с фиксированной строкой заголовка, совпадающей со
// схемой активной вкладки. В CSV уходят сырые значения, без валютного
// форматирования - как в исходном экспорте.
func ExportCSV(report Report) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	switch report.Kind {
	case TabCurrent:
		if err := writer.Write(currentExportHeader); err != nil {
			return "", err
		}
		for i := range report.Current {
			row := &report.Current[i]
			record := []string{
				row.Staff,
				strconv.Itoa(row.AssignedDays),
				row.DailySalary,
				row.NormalEarned,
				row.OvertimeEarned,
				row.TotalEarned,
				row.Tax,
				row.Tips,
				row.NetSalaryWithTips,
			}
			if err := writer.Write(record); err != nil {
				return "", err
			}
		}
	case TabHistory:
		if err := writer.Write(historyExportHeader); err != nil {
			return "", err
		}
		for i := range report.History {
			row := &report.History[i]
			record := []string{
				strconv.FormatUint(uint64(row.ID), 10),
				strconv.FormatUint(uint64(row.StaffID), 10),
				row.StaffName,
				fmt.Sprintf("%s to %s", row.StartDate, row.EndDate),
				strconv.Itoa(row.AssignedDays),
				row.TotalSalary,
				row.TotalEarned,
				row.Tax,
				row.Tips,
				row.NetSalaryWithTips,
			}
			if err := writer.Write(record); err != nil {
				return "", err
			}
		}
	default:
		return "", fmt.Errorf("неизвестный вид отчета: %q", report.Kind)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportWorkbook строит табличный документ (XLSX): заголовок, строка
// периода, таблица и отметка времени в подвале
func ExportWorkbook(report Report, startDate, endDate string) ([]byte, error) {
	title, period, header, rows, err := exportTable(report, startDate, endDate)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)

	if err := file.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	if err := file.SetCellValue(sheet, "A2", period); err != nil {
		return nil, err
	}

	headerRow := 4
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, headerRow+1+i)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	footerCell, err := excelize.CoordinatesToCellName(1, headerRow+len(rows)+2)
	if err != nil {
		return nil, err
	}
	footer := "Generated on " + time.Now().Format("02.01.2006 15:04:05")
	if err := file.SetCellValue(sheet, footerCell, footer); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFileName строит имя файла выгрузки для активной вкладки
func ExportFileName(report Report, startDate, endDate, extension string) string {
	if report.Kind == TabHistory {
		return fmt.Sprintf("full_payroll_history_%s.%s", time.Now().Format("2006-01-02"), extension)
	}
	return fmt.Sprintf("payroll_%s_to_%s.%s", startDate, endDate, extension)
}
