// Package message provides operations for contact form messages.
package message

import (
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/errs"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = stderrors.New("database connection is nil")

// List retrieves all messages, newest first.
func List(db *gorm.DB) ([]models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var messages []models.Message
	if err := db.Order("created_at desc").Find(&messages).Error; err != nil {
		return nil, errs.Storage("failed to fetch messages", err)
	}

	return messages, nil
}

// Get retrieves a message by id.
func Get(db *gorm.DB, id string) (*models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var msg models.Message
	if err := db.First(&msg, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Message not found")
		}
		return nil, errs.Storage("failed to fetch message", err)
	}

	return &msg, nil
}

// Create stores a new contact form submission. Name, email and message body
// are required; nothing is persisted when validation fails.
func Create(db *gorm.DB, msg *models.Message) (*models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return nil, errs.Validation("Name, email and message are required")
	}

	if err := db.Create(msg).Error; err != nil {
		return nil, errs.Storage("failed to create message", err)
	}

	return msg, nil
}

// SetRead sets the read flag of a message. The transition is idempotent.
func SetRead(db *gorm.DB, id string, isRead bool) (*models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var msg models.Message
	if err := db.First(&msg, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Message not found")
		}
		return nil, errs.Storage("failed to fetch message", err)
	}

	if msg.IsRead == isRead {
		return &msg, nil
	}

	if err := db.Model(&msg).Update("is_read", isRead).Error; err != nil {
		return nil, errs.Storage("failed to update message", err)
	}

	return &msg, nil
}

// Delete removes a message by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Message{}, "id = ?", id)
	if result.Error != nil {
		return errs.Storage("failed to delete message", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("Message not found")
	}

	return nil
}

// CountUnread returns the number of unread messages, for the admin dashboard.
func CountUnread(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	err := db.Model(&models.Message{}).Where("is_read = ?", false).Count(&count).Error
	if err != nil {
		return 0, errs.Storage("failed to count messages", err)
	}

	return count, nil
}
