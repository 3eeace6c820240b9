// Package reportrepo mirrors report entries into Postgres.
package reportrepo

import (
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/report"

	"github.com/google/uuid"
)

// ReportEntryDTO is one report line. Line holds the exact text written to the
// report file; WrittenAt and Text keep its parts queryable.
type ReportEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	WrittenAt time.Time `gorm:"not null;index"`
	Text      string    `gorm:"not null"`
	Line      string    `gorm:"not null"`
}

// TableName returns the table report entries are stored in.
func (ReportEntryDTO) TableName() string {
	return "report_entries"
}

func fromDomain(id kernel.UUID, entry report.Entry) ReportEntryDTO {
	return ReportEntryDTO{
		ID:        id.Bytes(),
		WrittenAt: entry.At(),
		Text:      entry.Text(),
		Line:      entry.Line(),
	}
}

func toDomain(dto ReportEntryDTO) (report.ArchivedEntry, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return report.ArchivedEntry{}, err
	}
	return report.ArchivedEntry{
		ID:    id,
		Entry: report.NewEntry(dto.WrittenAt.Local(), dto.Text),
	}, nil
}
