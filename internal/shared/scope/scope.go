package scope

import (
	"time"

	"gorm.io/gorm"
)

func ByEmployee(employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	}
}

func ByStatus(status string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	}
}

// DateBetween filters a date column inclusively on both ends.
func DateBetween(column string, from, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
}

// TeamOf restricts rows to employees whose manager is managerID.
func TeamOf(managerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Table("employees").Select("id").Where("manager_id = ?", managerID),
		)
	}
}
