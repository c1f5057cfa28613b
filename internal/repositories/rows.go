package repositories

// mapRows converts a raw values payload into records keyed by the header
// row. A row shorter than the header yields empty strings for the missing
// trailing cells. Rows with a blank id cell are tombstones left behind by
// Clear and are skipped.
func mapRows(rows [][]string) []map[string]string {
	if len(rows) < 2 {
		return nil
	}

	headers := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		rec := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rec[header] = row[i]
			} else {
				rec[header] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}
