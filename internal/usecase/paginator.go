package usecase

import "github.com/brandyemurray/compare-and-save/internal/domain"

// Paginate lays out valid rows followed by DNC rows in pages of pageSize.
// The final page is marked IsLast so print output can skip its page break.
// A non-positive pageSize falls back to domain.DefaultPageSize.
func Paginate(valid, dnc []domain.ClassifiedRow, pageSize int) []domain.Page {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	all := make([]domain.ClassifiedRow, 0, len(valid)+len(dnc))
	all = append(all, valid...)
	all = append(all, dnc...)
	if len(all) == 0 {
		return nil
	}

	pages := make([]domain.Page, 0, PageCount(len(all), pageSize))
	for start := 0; start < len(all); start += pageSize {
		end := min(start+pageSize, len(all))
		pages = append(pages, domain.Page{
			Number: len(pages) + 1,
			Rows:   all[start:end:end],
		})
	}
	pages[len(pages)-1].IsLast = true

	return pages
}

// PageCount returns how many pages n cards need
func PageCount(n, pageSize int) int {
	if n <= 0 {
		return 0
	}
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return (n + pageSize - 1) / pageSize
}
