package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/techfood-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newPaginationTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:pagination_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Restaurant{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for i := 1; i <= 5; i++ {
		r := models.Restaurant{Name: fmt.Sprintf("Restaurante %02d", i)}
		if err := db.Create(&r).Error; err != nil {
			t.Fatalf("seed restaurant %d: %v", i, err)
		}
	}
	return db
}

func countRows(t *testing.T, query *gorm.DB) int {
	t.Helper()
	var rows []models.Restaurant
	if err := query.Find(&rows).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	return len(rows)
}

func TestApplyPagination(t *testing.T) {
	db := newPaginationTestDB(t)

	if got := countRows(t, applyPagination(db.Model(&models.Restaurant{}), 1, 2)); got != 2 {
		t.Fatalf("page 1 size 2: expected 2 rows, got %d", got)
	}
	if got := countRows(t, applyPagination(db.Model(&models.Restaurant{}), 3, 2)); got != 1 {
		t.Fatalf("page 3 size 2: expected 1 row, got %d", got)
	}
	// 非法页码按第一页处理
	if got := countRows(t, applyPagination(db.Model(&models.Restaurant{}), 0, 2)); got != 2 {
		t.Fatalf("page 0 size 2: expected 2 rows, got %d", got)
	}
	if got := countRows(t, applyPagination(db.Model(&models.Restaurant{}), -3, 2)); got != 2 {
		t.Fatalf("negative page: expected 2 rows, got %d", got)
	}
	// pageSize<=0 不分页
	if got := countRows(t, applyPagination(db.Model(&models.Restaurant{}), 1, 0)); got != 5 {
		t.Fatalf("zero page size: expected all 5 rows, got %d", got)
	}
	// 超上限的 pageSize 被截断，但不应漏数据
	if got := countRows(t, applyPagination(db.Model(&models.Restaurant{}), 1, maxPageSize+50)); got != 5 {
		t.Fatalf("oversized page size: expected all 5 rows, got %d", got)
	}
}
