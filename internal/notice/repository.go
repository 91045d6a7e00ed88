package notice

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) CreateNotice(n *Notice) error {
	return r.DB.Create(n).Error
}

func (r *Repository) ListNotices() ([]Notice, error) {
	var notices []Notice
	err := r.DB.Order("created_at DESC").Find(&notices).Error
	return notices, err
}

func (r *Repository) UpdateNotice(n *Notice) error {
	return r.DB.Save(n).Error
}

func (r *Repository) GetNoticeByID(id uint) (*Notice, error) {
	var n Notice
	if err := r.DB.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) DeleteNotice(id uint) error {
	return r.DB.Delete(&Notice{}, id).Error
}

// UpsertSiteData writes the value for a key, inserting or updating in place.
func (r *Repository) UpsertSiteData(d *SiteData) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(d).Error
}

func (r *Repository) ListSiteData() ([]SiteData, error) {
	var data []SiteData
	err := r.DB.Order("key ASC").Find(&data).Error
	return data, err
}

func (r *Repository) DeleteSiteData(key string) error {
	return r.DB.Where("key = ?", key).Delete(&SiteData{}).Error
}
