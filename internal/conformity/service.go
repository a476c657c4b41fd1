// Package conformity хранит акты о выполнении работ по оборудованию.
package conformity

import (
	"context"
	"io"
	"path"
	"strings"

	"refresh-tracker/internal/dashboard"
	"refresh-tracker/internal/filestore"
	"refresh-tracker/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const actaDir = "actas"

var Extensions = []string{"pdf", "msg"}

var (
	ErrNotFound          = errors.New("conformity record not found")
	ErrEquipmentRequired = errors.New("equipment serial is required")
	ErrFileMissing       = errors.New("conformity file missing on disk")
)

// EquipmentLookup находит оборудование по серийному номеру.
type EquipmentLookup interface {
	BySerial(ctx context.Context, serial string) (*models.Equipment, error)
}

type Upload struct {
	EquipmentSerial string
	FileName        string
	Notes           string
	Body            io.Reader
}

type Service struct {
	db        *gorm.DB
	files     *filestore.Store
	equipment EquipmentLookup
	maxSize   int64
	log       *logrus.Logger
}

func NewService(db *gorm.DB, files *filestore.Store, equipment EquipmentLookup, maxSize int64, log *logrus.Logger) *Service {
	return &Service{db: db, files: files, equipment: equipment, maxSize: maxSize, log: log}
}

// Upload проверяет оборудование и расширение, сохраняет файл
// в actas/<serial>/ и создаёт запись. Если запись не создана, файл удаляется.
func (s *Service) Upload(ctx context.Context, up Upload, actor string) (*models.ConformityRecord, error) {
	serial := strings.TrimSpace(up.EquipmentSerial)
	if serial == "" {
		return nil, ErrEquipmentRequired
	}
	ext, err := filestore.Extension(up.FileName, Extensions)
	if err != nil {
		return nil, err
	}
	eq, err := s.equipment.BySerial(ctx, serial)
	if err != nil {
		return nil, err
	}

	stored, err := s.files.Save(up.Body, s.maxSize, path.Join(actaDir, filestore.SafeName(serial)), serial, ext)
	if err != nil {
		return nil, err
	}

	rec := &models.ConformityRecord{
		EquipmentSerial: serial,
		EquipmentHost:   eq.Hostname,
		OwnerName:       eq.FullName,
		FileType:        strings.ToUpper(ext),
		FileName:        stored.Name,
		FilePath:        stored.Path,
		UploadedBy:      actor,
		Notes:           strings.TrimSpace(up.Notes),
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		_ = s.files.Remove(stored.Path)
		return nil, errors.Wrap(err, "create conformity record")
	}

	s.log.WithFields(logrus.Fields{"equipment": serial, "file": stored.Name, "size": stored.Size, "actor": actor}).Info("conformity uploaded")
	return rec, nil
}

// List возвращает акты, новые первыми; serial фильтрует по оборудованию.
func (s *Service) List(ctx context.Context, serial string) ([]models.ConformityRecord, error) {
	q := s.db.WithContext(ctx)
	if serial = strings.TrimSpace(serial); serial != "" {
		q = q.Where("equipo_serial = ?", serial)
	}
	var out []models.ConformityRecord
	err := q.Order("fecha_subida DESC").Order("id DESC").Find(&out).Error
	return out, errors.Wrap(err, "list conformity records")
}

func (s *Service) Get(ctx context.Context, id uint) (*models.ConformityRecord, error) {
	var rec models.ConformityRecord
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load conformity record")
	}
	return &rec, nil
}

// File возвращает запись и путь к существующему файлу для просмотра/скачивания.
func (s *Service) File(ctx context.Context, id uint) (*models.ConformityRecord, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.files.Exists(rec.FilePath) {
		return nil, ErrFileMissing
	}
	return rec, nil
}

// Delete удаляет файл (без гарантий) и запись.
func (s *Service) Delete(ctx context.Context, id uint, actor string) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.files.Remove(rec.FilePath); err != nil {
		s.log.WithError(err).WithField("path", rec.FilePath).Warn("conformity file not removed")
	}
	if err := s.db.WithContext(ctx).Delete(&models.ConformityRecord{}, id).Error; err != nil {
		return errors.Wrapf(err, "delete conformity record %d", id)
	}
	s.log.WithFields(logrus.Fields{"id": id, "equipment": rec.EquipmentSerial, "actor": actor}).Info("conformity deleted")
	return nil
}

func (s *Service) Summary(ctx context.Context) (dashboard.ConformitySummary, error) {
	var all []models.ConformityRecord
	if err := s.db.WithContext(ctx).Find(&all).Error; err != nil {
		return dashboard.ConformitySummary{}, errors.Wrap(err, "summarize conformity records")
	}
	return dashboard.SummarizeConformity(all), nil
}
