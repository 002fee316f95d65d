package repositories

import (
	"github.com/spikenet-labs/serverdesk/db"
	"github.com/spikenet-labs/serverdesk/models"
)

type RequestRepo interface {
	Create(req *models.Request) error
	Update(req *models.Request) error
	UpdateStatus(id uint, status models.RequestStatus, lastError *string) error
	// CompleteProvisioning moves a row from PROVISIONING to ACTIVE and reports
	// whether the transition happened. A row that already moved on, e.g. to
	// FAILED after a registration error, is left untouched.
	CompleteProvisioning(id uint) (bool, error)
	GetByID(id uint) (models.Request, error)
	Delete(id uint) error
	List() ([]models.Request, error)
	ListPending() ([]models.Request, error)
}

type DBRequestRepo struct{}

func (r *DBRequestRepo) Create(req *models.Request) error {
	return db.DB.Create(req).Error
}

func (r *DBRequestRepo) Update(req *models.Request) error {
	return db.DB.Save(req).Error
}

func (r *DBRequestRepo) UpdateStatus(id uint, status models.RequestStatus, lastError *string) error {
	return db.DB.Model(&models.Request{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "last_error": lastError}).Error
}

func (r *DBRequestRepo) CompleteProvisioning(id uint) (bool, error) {
	res := db.DB.Model(&models.Request{}).
		Where("id = ? AND status = ?", id, models.RequestStatusProvisioning).
		Updates(map[string]interface{}{"status": models.RequestStatusActive, "last_error": nil})
	return res.RowsAffected == 1, res.Error
}

func (r *DBRequestRepo) GetByID(id uint) (models.Request, error) {
	var req models.Request
	err := db.DB.First(&req, id).Error
	return req, err
}

func (r *DBRequestRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Request{}, id).Error
}

func (r *DBRequestRepo) List() ([]models.Request, error) {
	var reqs []models.Request
	err := db.DB.Order("id").Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) ListPending() ([]models.Request, error) {
	var reqs []models.Request
	err := db.DB.Where("status = ?", models.RequestStatusPending).Order("id").Find(&reqs).Error
	return reqs, err
}
