package services

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// feedSize - сколько последних вакансий и стартапов показывает дашборд
	feedSize = 5
)

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
