package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
)

// InitSchema creates or migrates the catalog and order tables.
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Sim{}, &model.Order{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
