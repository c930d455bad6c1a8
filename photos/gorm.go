package photos

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/fiorino-shop/florista-api/models"
)

// ProductPhotos is the Store over the product_photos table. Pass the
// transaction handle when the batch runs inside one.
func ProductPhotos(db *gorm.DB) Store {
	return &productPhotoStore{db: db}
}

// SliderPhotos is the Store over the slider_photos table.
func SliderPhotos(db *gorm.DB) Store {
	return &sliderPhotoStore{db: db}
}

type productPhotoStore struct {
	db *gorm.DB
}

func (s *productPhotoStore) Insert(rec *Record) error {
	row := models.ProductPhoto{ProductID: rec.ParentID, Name: rec.Name, Order: rec.Order}
	if err := s.db.Create(&row).Error; err != nil {
		return err
	}
	rec.ID = row.ID
	return nil
}

func (s *productPhotoStore) ListByParent(parentID uint) ([]Record, error) {
	var rows []models.ProductPhoto
	err := s.db.Where("product_id = ?", parentID).Order("photo_order, id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = Record{ID: row.ID, ParentID: row.ProductID, Name: row.Name, Order: row.Order}
	}
	return records, nil
}

func (s *productPhotoStore) Find(id uint) (*Record, error) {
	var row models.ProductPhoto
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &Record{ID: row.ID, ParentID: row.ProductID, Name: row.Name, Order: row.Order}, nil
}

func (s *productPhotoStore) Delete(id uint) error {
	return s.db.Delete(&models.ProductPhoto{}, id).Error
}

func (s *productPhotoStore) UpdateOrder(id uint, order int) error {
	res := s.db.Model(&models.ProductPhoto{}).Where("id = ?", id).Update("photo_order", order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type sliderPhotoStore struct {
	db *gorm.DB
}

func (s *sliderPhotoStore) Insert(rec *Record) error {
	row := models.SliderPhoto{SliderID: rec.ParentID, Name: rec.Name, Order: rec.Order}
	if err := s.db.Create(&row).Error; err != nil {
		return err
	}
	rec.ID = row.ID
	return nil
}

func (s *sliderPhotoStore) ListByParent(parentID uint) ([]Record, error) {
	var rows []models.SliderPhoto
	err := s.db.Where("slider_id = ?", parentID).Order("photo_order, id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = Record{ID: row.ID, ParentID: row.SliderID, Name: row.Name, Order: row.Order}
	}
	return records, nil
}

func (s *sliderPhotoStore) Find(id uint) (*Record, error) {
	var row models.SliderPhoto
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &Record{ID: row.ID, ParentID: row.SliderID, Name: row.Name, Order: row.Order}, nil
}

func (s *sliderPhotoStore) Delete(id uint) error {
	return s.db.Delete(&models.SliderPhoto{}, id).Error
}

func (s *sliderPhotoStore) UpdateOrder(id uint, order int) error {
	res := s.db.Model(&models.SliderPhoto{}).Where("id = ?", id).Update("photo_order", order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
