package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is referenced by nota by identity; the nota freezes nama/alamat
// at creation time so later edits here never alter issued documents.
type Customer struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nama   string    `gorm:"index;not null"`
	Alamat string    `gorm:"not null"`
	// NIK is the national identity number — unique when present.
	NIK          *string    `gorm:"uniqueIndex;column:nik"`
	TempatLahir  *string
	TanggalLahir *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
