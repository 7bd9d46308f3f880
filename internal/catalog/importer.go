package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Products []model.Product
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	ID         int
	Retailer   int
	ExternalID int
	Name       int
	Category   int
	Price      int
	Currency   int
	Width      int
	Depth      int
	Height     int
	Styles     int
	RoomTypes  int
	Color      int
	URL        int
}

// positionalMapping is the column order used when a file has no header row.
// It matches the order of the built-in catalog.
var positionalMapping = ColumnMapping{
	ID:         0,
	Retailer:   1,
	ExternalID: 2,
	Name:       3,
	Category:   4,
	Price:      5,
	Currency:   6,
	Width:      7,
	Depth:      8,
	Height:     9,
	Styles:     10,
	RoomTypes:  11,
	Color:      12,
	URL:        13,
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"id":          {"id", "sku", "product id", "product_id"},
	"retailer":    {"retailer", "store", "vendor", "shop"},
	"external id": {"external id", "external_id", "article", "article number", "item number"},
	"name":        {"name", "product", "product name", "title", "description", "item"},
	"category":    {"category", "cat", "kind", "type"},
	"price":       {"price", "cost", "amount"},
	"currency":    {"currency", "cur"},
	"width":       {"width", "w", "width (in)", "width_in"},
	"depth":       {"depth", "d", "length", "depth (in)", "depth_in"},
	"height":      {"height", "h", "height (in)", "height_in"},
	"styles":      {"styles", "style"},
	"room types":  {"room types", "room_types", "room type", "rooms", "room"},
	"color":       {"color", "colour", "finish"},
	"url":         {"url", "link", "product url", "product_url"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or the positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		ID: -1, Retailer: -1, ExternalID: -1, Name: -1, Category: -1, Price: -1, Currency: -1,
		Width: -1, Depth: -1, Height: -1, Styles: -1, RoomTypes: -1, Color: -1, URL: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					setColumn(&mapping, role, i)
				}
			}
		}
	}

	if !isHeader {
		return positionalMapping, false
	}
	return mapping, true
}

// setColumn records the first column index seen for role.
func setColumn(m *ColumnMapping, role string, i int) {
	var target *int
	switch role {
	case "id":
		target = &m.ID
	case "retailer":
		target = &m.Retailer
	case "external id":
		target = &m.ExternalID
	case "name":
		target = &m.Name
	case "category":
		target = &m.Category
	case "price":
		target = &m.Price
	case "currency":
		target = &m.Currency
	case "width":
		target = &m.Width
	case "depth":
		target = &m.Depth
	case "height":
		target = &m.Height
	case "styles":
		target = &m.Styles
	case "room types":
		target = &m.RoomTypes
	case "color":
		target = &m.Color
	case "url":
		target = &m.URL
	default:
		return
	}
	if *target == -1 {
		*target = i
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parsePrice accepts plain numbers as well as "$1,299.00".
func parsePrice(s string) (float64, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// splitList splits a multi-value cell on semicolons or pipes.
func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == '|'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseStyles(s, rowLabel string) ([]model.Style, []string) {
	var styles []model.Style
	var warnings []string
	for _, v := range splitList(s) {
		st := model.Style(v)
		if !knownStyle(st) {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown style '%s', ignored", rowLabel, v))
			continue
		}
		styles = append(styles, st)
	}
	return styles, warnings
}

func parseRoomTypes(s, rowLabel string) ([]model.RoomType, []string) {
	var rooms []model.RoomType
	var warnings []string
	for _, v := range splitList(s) {
		rt := model.RoomType(strings.ReplaceAll(v, " ", "_"))
		if !knownRoomType(rt) {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown room type '%s', ignored", rowLabel, v))
			continue
		}
		rooms = append(rooms, rt)
	}
	return rooms, warnings
}

func knownStyle(s model.Style) bool {
	for _, st := range model.Styles {
		if st == s {
			return true
		}
	}
	return false
}

func knownRoomType(rt model.RoomType) bool {
	for _, r := range model.RoomTypes {
		if r == rt {
			return true
		}
	}
	return false
}

// slug turns a product name into an id fragment: "MALM Bed" -> "malm-bed".
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// parseRow extracts a Product from a row using the given column mapping.
// Returns the product, any error message, and any warning messages.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (model.Product, string, []string) {
	var warnings []string

	name := getCell(row, mapping.Name)
	if name == "" {
		return model.Product{}, fmt.Sprintf("%s: Missing name value", rowLabel), nil
	}

	priceStr := getCell(row, mapping.Price)
	if priceStr == "" {
		return model.Product{}, fmt.Sprintf("%s: Missing price value", rowLabel), nil
	}
	price, err := parsePrice(priceStr)
	if err != nil {
		return model.Product{}, fmt.Sprintf("%s: Invalid price '%s'", rowLabel, priceStr), nil
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.Product{}, fmt.Sprintf("%s: Missing width value", rowLabel), nil
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return model.Product{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), nil
	}

	depthStr := getCell(row, mapping.Depth)
	if depthStr == "" {
		return model.Product{}, fmt.Sprintf("%s: Missing depth value", rowLabel), nil
	}
	depth, err := strconv.ParseFloat(depthStr, 64)
	if err != nil {
		return model.Product{}, fmt.Sprintf("%s: Invalid depth '%s'", rowLabel, depthStr), nil
	}

	if price < 0 || width <= 0 || depth <= 0 {
		return model.Product{}, fmt.Sprintf("%s: Width and depth must be positive and price non-negative", rowLabel), nil
	}

	var height float64
	if heightStr := getCell(row, mapping.Height); heightStr != "" {
		height, err = strconv.ParseFloat(heightStr, 64)
		if err != nil || height < 0 {
			warnings = append(warnings, fmt.Sprintf("%s: Invalid height '%s', ignored", rowLabel, heightStr))
			height = 0
		}
	}

	retailer := model.Retailer(strings.ToLower(getCell(row, mapping.Retailer)))

	rawCategory := getCell(row, mapping.Category)
	category := model.ParseCategory(rawCategory)
	if category == model.CategoryOther && rawCategory != "" && !strings.EqualFold(rawCategory, string(model.CategoryOther)) {
		warnings = append(warnings, fmt.Sprintf("%s: Unknown category '%s', using other", rowLabel, rawCategory))
	}

	id := getCell(row, mapping.ID)
	if id == "" {
		id = slug(name)
		if retailer != "" {
			id = string(retailer) + "-" + id
		}
	}

	currency := strings.ToUpper(getCell(row, mapping.Currency))
	if currency == "" {
		currency = "USD"
	}

	styles, w := parseStyles(getCell(row, mapping.Styles), rowLabel)
	warnings = append(warnings, w...)
	rooms, w := parseRoomTypes(getCell(row, mapping.RoomTypes), rowLabel)
	warnings = append(warnings, w...)

	product := model.Product{
		ID:         id,
		Retailer:   retailer,
		ExternalID: getCell(row, mapping.ExternalID),
		Name:       name,
		Category:   category,
		Price:      price,
		Currency:   currency,
		WidthIn:    width,
		DepthIn:    depth,
		HeightIn:   height,
		Styles:     styles,
		RoomTypes:  rooms,
		Color:      getCell(row, mapping.Color),
		ProductURL: getCell(row, mapping.URL),
	}
	return product, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports products from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports products from a CSV reader with a specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports products from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// ImportFile picks the CSV or Excel importer from the file extension.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into products.
// Rows repeating an earlier product id are reported and skipped.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Name == -1 {
			missing = append(missing, "Name")
		}
		if mapping.Price == -1 {
			missing = append(missing, "Price")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Depth == -1 {
			missing = append(missing, "Depth")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	seen := make(map[string]bool)
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		product, errMsg, warnings := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if seen[product.ID] {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Duplicate product id '%s'", rowLabel, product.ID))
			continue
		}
		seen[product.ID] = true
		result.Warnings = append(result.Warnings, warnings...)
		result.Products = append(result.Products, product)
	}

	return result
}
