package sheetssql

import (
	"fmt"
	"reflect"
	"strconv"
)

// GetTableAs retrieves all rows from a table and maps them to structs of type T
// Skips the first two rows (headers and types)
func GetTableAs[T any](db *DB, tableName string) ([]T, error) {
	values, err := db.client.GetValues(db.spreadsheetID, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get table %s: %w", tableName, err)
	}

	if len(values) < 3 {
		// Need at least headers, types, and one data row
		return []T{}, nil
	}

	// Skip first two rows (headers and types)
	dataRows := values[2:]
	headers := values[0]

	var model T
	t := reflect.TypeOf(model)

	// Build mapping of column name to index
	columnIndexes := make(map[string]int)
	for i, header := range headers {
		if headerStr, ok := header.(string); ok {
			columnIndexes[headerStr] = i
		}
	}

	// Build mapping of struct fields
	fieldMap := make(map[string]reflect.StructField)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		columnName := field.Tag.Get("ssql_header")
		if columnName != "" {
			fieldMap[columnName] = field
		}
	}

	results := make([]T, 0, len(dataRows))
	for rowIdx, row := range dataRows {
		result := reflect.New(t).Elem()

		for columnName, colIdx := range columnIndexes {
			field, ok := fieldMap[columnName]
			if !ok {
				continue
			}

			if colIdx >= len(row) {
				// Column is empty in this row
				continue
			}

			cellValue := row[colIdx]
			if cellValue == nil {
				continue
			}

			if err := setFieldValue(result.FieldByName(field.Name), cellValue); err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", rowIdx+3, columnName, err)
			}
		}

		results = append(results, result.Interface().(T))
	}

	return results, nil
}

// setFieldValue converts a sheet cell value to the appropriate Go type and sets it on the field
func setFieldValue(field reflect.Value, cellValue interface{}) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	// Get the cell as a string first (sheets API returns strings)
	cellStr, ok := cellValue.(string)
	if !ok {
		return fmt.Errorf("cell value is not a string")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(cellStr)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if cellStr == "" {
			field.SetInt(0)
		} else {
			intVal, err := strconv.ParseInt(cellStr, 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse int: %w", err)
			}
			field.SetInt(intVal)
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if cellStr == "" {
			field.SetUint(0)
		} else {
			uintVal, err := strconv.ParseUint(cellStr, 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse uint: %w", err)
			}
			field.SetUint(uintVal)
		}

	case reflect.Float32, reflect.Float64:
		if cellStr == "" {
			field.SetFloat(0)
		} else {
			floatVal, err := strconv.ParseFloat(cellStr, 64)
			if err != nil {
				return fmt.Errorf("failed to parse float: %w", err)
			}
			field.SetFloat(floatVal)
		}

	case reflect.Bool:
		if cellStr == "" {
			field.SetBool(false)
		} else {
			boolVal, err := strconv.ParseBool(cellStr)
			if err != nil {
				return fmt.Errorf("failed to parse bool: %w", err)
			}
			field.SetBool(boolVal)
		}

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// rowFromModel builds a sheet row from a struct's tagged fields, in field order
func rowFromModel(v reflect.Value, t reflect.Type) []interface{} {
	row := make([]interface{}, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("ssql_header") == "" {
			continue
		}
		row = append(row, v.Field(i).Interface())
	}
	return row
}

// InsertModel appends a struct as a row to its corresponding table
func InsertModel[T any](db *DB, model T) error {
	t := reflect.TypeOf(model)
	tableName := toSnakeCase(t.Name())
	return db.InsertRow(tableName, rowFromModel(reflect.ValueOf(model), t))
}

// InsertModels appends multiple structs as rows to their corresponding table
func InsertModels[T any](db *DB, models []T) error {
	if len(models) == 0 {
		return nil
	}

	t := reflect.TypeOf(models[0])
	tableName := toSnakeCase(t.Name())

	rows := make([][]interface{}, 0, len(models))
	for _, model := range models {
		rows = append(rows, rowFromModel(reflect.ValueOf(model), t))
	}

	return db.InsertRows(tableName, rows)
}

// UpdateModelByID rewrites the data row whose first tagged column matches the
// model's own first field value. The first column of every table is its ID.
func UpdateModelByID[T any](db *DB, model T) error {
	t := reflect.TypeOf(model)
	tableName := toSnakeCase(t.Name())
	row := rowFromModel(reflect.ValueOf(model), t)
	if len(row) == 0 {
		return fmt.Errorf("struct %s has no tagged fields", t.Name())
	}

	id := fmt.Sprintf("%v", row[0])
	rowIndex, err := findRowByID(db, tableName, id)
	if err != nil {
		return err
	}

	// Sheet rows are 1-based in A1 notation
	updateRange := fmt.Sprintf("%s!A%d:%s%d", tableName, rowIndex+1, columnLetter(len(row)-1), rowIndex+1)
	if err := db.client.UpdateValues(db.spreadsheetID, updateRange, [][]interface{}{row}); err != nil {
		return fmt.Errorf("failed to update row %s in %s: %w", id, tableName, err)
	}
	return nil
}

// findRowByID returns the 0-based sheet row index whose first column equals id
func findRowByID(db *DB, tableName, id string) (int, error) {
	values, err := db.client.GetValues(db.spreadsheetID, tableName)
	if err != nil {
		return 0, fmt.Errorf("failed to get table %s: %w", tableName, err)
	}

	// Data rows start below the header and type rows
	for i := 2; i < len(values); i++ {
		row := values[i]
		if len(row) == 0 {
			continue
		}
		if cell, ok := row[0].(string); ok && cell == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no row with id %s in table %s", id, tableName)
}

// DeleteRowsMatching removes every data row the predicate matches, keyed by
// column name. Returns the number of rows deleted. Deletion happens bottom-up
// so earlier removals do not shift the indexes of later ones.
func DeleteRowsMatching(db *DB, tableName string, match func(row map[string]string) bool) (int, error) {
	values, err := db.client.GetValues(db.spreadsheetID, tableName)
	if err != nil {
		return 0, fmt.Errorf("failed to get table %s: %w", tableName, err)
	}
	if len(values) < 3 {
		return 0, nil
	}

	headers := make([]string, 0, len(values[0]))
	for _, h := range values[0] {
		if s, ok := h.(string); ok {
			headers = append(headers, s)
		}
	}

	toDelete := make([]int, 0)
	for i := 2; i < len(values); i++ {
		row := make(map[string]string, len(headers))
		for c, name := range headers {
			if c < len(values[i]) {
				if s, ok := values[i][c].(string); ok {
					row[name] = s
				}
			}
		}
		if match(row) {
			toDelete = append(toDelete, i)
		}
	}

	for i := len(toDelete) - 1; i >= 0; i-- {
		rowIdx := int64(toDelete[i])
		if err := db.client.DeleteRows(db.spreadsheetID, tableName, rowIdx, rowIdx+1); err != nil {
			return len(toDelete) - 1 - i, fmt.Errorf("failed to delete row %d from %s: %w", toDelete[i], tableName, err)
		}
	}

	return len(toDelete), nil
}
