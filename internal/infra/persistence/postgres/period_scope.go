package postgres

import (
	"fmt"
	"strings"

	"fishers/internal/domain/entity"

	"gorm.io/gorm"
)

const dialectSQLite = "sqlite"

// calendarPart renders an integer expression extracting a calendar field from
// a date column in the dialect of db. part is "YEAR" or "MONTH".
func calendarPart(db *gorm.DB, part, column string) string {
	if db.Dialector.Name() == dialectSQLite {
		format := "%Y"
		if part == "MONTH" {
			format = "%m"
		}

		return fmt.Sprintf("CAST(strftime('%s', %s) AS INTEGER)", format, column)
	}

	return fmt.Sprintf("CAST(EXTRACT(%s FROM %s) AS INTEGER)", part, column)
}

// periodCondition builds a WHERE fragment restricting column to the filter.
// An empty fragment means the filter matches everything.
func periodCondition(db *gorm.DB, column string, filter entity.PeriodFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Year != nil {
		conds = append(conds, calendarPart(db, "YEAR", column)+" = ?")
		args = append(args, *filter.Year)
	}
	if filter.Month != nil {
		conds = append(conds, calendarPart(db, "MONTH", column)+" = ?")
		args = append(args, *filter.Month)
	}

	return strings.Join(conds, " AND "), args
}

// inPeriod is a GORM scope applying periodCondition.
func inPeriod(column string, filter entity.PeriodFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		cond, args := periodCondition(db, column, filter)
		if cond == "" {
			return db
		}

		return db.Where(cond, args...)
	}
}
