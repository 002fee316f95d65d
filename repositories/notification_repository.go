package repositories

import (
	"time"

	"github.com/spikenet-labs/serverdesk/db"
	"github.com/spikenet-labs/serverdesk/models"
)

type NotificationRepo interface {
	Create(n *models.Notification) error
	ListDue(now time.Time) ([]models.Notification, error)
	// Claim moves a pending notification out of the pending state and reports
	// whether this caller won the row. A claimed row is sent at most once.
	Claim(id uint) (bool, error)
	MarkSent(id uint, at time.Time) error
	MarkFailed(id uint) error
}

type DBNotificationRepo struct{}

func (r *DBNotificationRepo) Create(n *models.Notification) error {
	return db.DB.Create(n).Error
}

func (r *DBNotificationRepo) ListDue(now time.Time) ([]models.Notification, error) {
	var ns []models.Notification
	err := db.DB.Where("status = ? AND due_at <= ?", models.NotificationStatusPending, now).
		Order("due_at").Find(&ns).Error
	return ns, err
}

func (r *DBNotificationRepo) Claim(id uint) (bool, error) {
	res := db.DB.Model(&models.Notification{}).
		Where("id = ? AND status = ?", id, models.NotificationStatusPending).
		Update("status", models.NotificationStatusSent)
	return res.RowsAffected == 1, res.Error
}

func (r *DBNotificationRepo) MarkSent(id uint, at time.Time) error {
	return db.DB.Model(&models.Notification{}).Where("id = ?", id).
		Update("sent_at", at).Error
}

func (r *DBNotificationRepo) MarkFailed(id uint) error {
	return db.DB.Model(&models.Notification{}).Where("id = ?", id).
		Update("status", models.NotificationStatusFailed).Error
}
