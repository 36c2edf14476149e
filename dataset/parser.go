package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"loan-advisor/domain"
)

// Dataset header columns.
const (
	ColumnBankName      = "Bank Name"
	ColumnLoanType      = "Loan Type"
	ColumnLoanAmount    = "Loan Amount (INR)"
	ColumnInterestRate  = "Interest Rate (%)"
	ColumnProcessingFee = "Processing Fee (INR)"
	ColumnEMI           = "EMI (INR)"
	ColumnTenure        = "Loan Tenure (years)"
	ColumnStatus        = "Loan Status"
)

var requiredColumns = []string{
	ColumnBankName,
	ColumnLoanType,
	ColumnLoanAmount,
	ColumnInterestRate,
	ColumnProcessingFee,
	ColumnEMI,
	ColumnTenure,
	ColumnStatus,
}

var (
	errMissingColumn = errors.New("missing column")
	errEmptyValue    = errors.New("empty value")
	errUnknownStatus = errors.New("unknown loan status")
	errNotFinite     = errors.New("value is not a finite number")
)

// Parse decodes the loan CSV. Header problems are fatal and returned as a
// *domain.ParseError. Rows that do not fit the expected shape are skipped and
// reported in skipped, so one bad row does not take the dataset offline.
func Parse(r io.Reader) (records []domain.LoanRecord, skipped []*domain.ParseError, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, &domain.ParseError{Line: 1, Err: fmt.Errorf("read header: %w", err)}
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, nil, err
	}

	records = []domain.LoanRecord{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				skipped = append(skipped, &domain.ParseError{Line: csvErr.Line, Err: csvErr.Err})
				continue
			}
			return nil, nil, fmt.Errorf("read row: %w", err)
		}

		record, perr := decodeRow(row, index)
		if perr != nil {
			perr.Line, _ = reader.FieldPos(0)
			skipped = append(skipped, perr)
			continue
		}
		records = append(records, record)
	}
	return records, skipped, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &domain.ParseError{Line: 1, Column: col, Err: errMissingColumn}
		}
	}
	return index, nil
}

func decodeRow(row []string, index map[string]int) (domain.LoanRecord, *domain.ParseError) {
	var (
		rec  domain.LoanRecord
		perr *domain.ParseError
	)

	text := func(col string) string {
		if perr != nil {
			return ""
		}
		i := index[col]
		if i >= len(row) {
			perr = &domain.ParseError{Column: col, Err: errMissingColumn}
			return ""
		}
		v := strings.TrimSpace(row[i])
		if v == "" {
			perr = &domain.ParseError{Column: col, Err: errEmptyValue}
		}
		return v
	}
	number := func(col string) float64 {
		v := text(col)
		if perr != nil {
			return 0
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			perr = &domain.ParseError{Column: col, Err: err}
			return 0
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			perr = &domain.ParseError{Column: col, Err: errNotFinite}
			return 0
		}
		return f
	}

	rec.BankName = text(ColumnBankName)
	rec.LoanType = text(ColumnLoanType)
	rec.LoanAmount = number(ColumnLoanAmount)
	rec.InterestRate = number(ColumnInterestRate)
	rec.ProcessingFee = number(ColumnProcessingFee)
	rec.EMI = number(ColumnEMI)
	rec.TenureYears = number(ColumnTenure)
	rec.Status = domain.LoanStatus(text(ColumnStatus))

	if perr == nil && !rec.Status.Valid() {
		perr = &domain.ParseError{Column: ColumnStatus, Err: fmt.Errorf("%w %q", errUnknownStatus, rec.Status)}
	}
	if perr != nil {
		return domain.LoanRecord{}, perr
	}
	return rec, nil
}
