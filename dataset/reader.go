package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
)

// Resolve expands an input path pattern to exactly one file. Plain paths
// pass through untouched; glob patterns must match a single file.
func Resolve(pattern string) (string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return "", fmt.Errorf("resolve input pattern: %w", err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoInput, pattern)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s (%d matches)", ErrAmbiguousInput, pattern, len(matches))
	}
}

// ReadFile loads and validates every record from a CSV file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return records, nil
}

// Read loads and validates every record from CSV content. The first row
// must be a header containing all required columns; column order is free.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		rec, err := parseRow(row, idx, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string, idx map[string]int, line int) (Record, error) {
	cell := func(col string) string { return row[idx[col]] }

	var rec Record
	var err error

	if rec.UserID, err = parseInt(cell(ColUserID)); err != nil {
		return rec, &FormatError{Line: line, Column: ColUserID, Value: cell(ColUserID), Err: err}
	}
	if rec.Age, err = parseInt(cell(ColAge)); err != nil {
		return rec, &FormatError{Line: line, Column: ColAge, Value: cell(ColAge), Err: err}
	}
	if rec.SleepHours, err = parseFloat(cell(ColSleepHours)); err != nil {
		return rec, &FormatError{Line: line, Column: ColSleepHours, Value: cell(ColSleepHours), Err: err}
	}
	if rec.WorkHours, err = parseInt(cell(ColWorkHours)); err != nil {
		return rec, &FormatError{Line: line, Column: ColWorkHours, Value: cell(ColWorkHours), Err: err}
	}
	if rec.PhysicalActivityHours, err = parseInt(cell(ColPhysicalActivityHours)); err != nil {
		return rec, &FormatError{Line: line, Column: ColPhysicalActivityHours, Value: cell(ColPhysicalActivityHours), Err: err}
	}
	if rec.SocialMediaUsage, err = parseFloat(cell(ColSocialMediaUsage)); err != nil {
		return rec, &FormatError{Line: line, Column: ColSocialMediaUsage, Value: cell(ColSocialMediaUsage), Err: err}
	}

	rec.Gender = cell(ColGender)
	rec.Occupation = cell(ColOccupation)
	rec.Country = cell(ColCountry)
	rec.Condition = cell(ColCondition)
	rec.Severity = cell(ColSeverity)
	rec.Consultation = cell(ColConsultation)
	rec.StressLevel = cell(ColStressLevel)
	rec.Medication = cell(ColMedication)
	rec.DietQuality = cell(ColDietQuality)
	rec.SmokingHabit = cell(ColSmokingHabit)
	rec.AlcoholConsumption = cell(ColAlcoholConsumption)

	return rec, nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
