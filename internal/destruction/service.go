// Package destruction ведёт учёт уничтожения дисков: регистрация,
// видео-доказательство и сертификат.
package destruction

import (
	"context"
	"io"
	"strings"
	"time"

	"refresh-tracker/internal/dashboard"
	"refresh-tracker/internal/filestore"
	"refresh-tracker/internal/models"
	"refresh-tracker/internal/normalize"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const videoDir = "destruccion"

var VideoExtensions = []string{"mp4", "avi", "mov", "mkv", "webm"}

var (
	ErrNotFound        = errors.New("destruction record not found")
	ErrSerialRequired  = errors.New("disk serial is required")
	ErrDuplicateSerial = errors.New("disk already registered for destruction")
	ErrInvalidStatus   = errors.New("invalid destruction status")
	ErrNoVideo         = errors.New("destruction record has no video")
)

type Input struct {
	DiskSerial   string `form:"disco_serial" json:"disco_serial"`
	DiskBrand    string `form:"disco_marca" json:"disco_marca"`
	DiskModel    string `form:"disco_modelo" json:"disco_modelo"`
	DiskGB       int    `form:"disco_capacidad_gb" json:"disco_capacidad_gb"`
	DiskType     string `form:"disco_tipo" json:"disco_tipo"`
	OriginSerial string `form:"equipo_origen_serial" json:"equipo_origen_serial"`
	OriginHost   string `form:"equipo_origen_hostname" json:"equipo_origen_hostname"`

	Status            string `form:"estado" json:"estado"`
	ExtractionDate    string `form:"fecha_extraccion" json:"fecha_extraccion"`
	DestructionDate   string `form:"fecha_destruccion" json:"fecha_destruccion"`
	Method            string `form:"metodo_destruccion" json:"metodo_destruccion"`
	CertificateNumber string `form:"certificado_numero" json:"certificado_numero"`
	CertificateDate   string `form:"certificado_fecha" json:"certificado_fecha"`
	Responsible       string `form:"responsable" json:"responsable"`
	Notes             string `form:"notas" json:"notas"`
}

func (in Input) status(fallback models.DestructionStatus) (models.DestructionStatus, error) {
	raw := strings.ToUpper(strings.TrimSpace(in.Status))
	if raw == "" {
		return fallback, nil
	}
	st := models.DestructionStatus(raw)
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func optionalGB(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

type Service struct {
	db       *gorm.DB
	files    *filestore.Store
	dates    normalize.DateNormalizer
	maxVideo int64
	log      *logrus.Logger
	now      func() time.Time
}

func NewService(db *gorm.DB, files *filestore.Store, dates normalize.DateNormalizer, maxVideo int64, log *logrus.Logger) *Service {
	return &Service{db: db, files: files, dates: dates, maxVideo: maxVideo, log: log, now: time.Now}
}

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}

func (s *Service) List(ctx context.Context, status string) ([]models.DiskDestruction, error) {
	q := s.db.WithContext(ctx)
	if st := strings.ToUpper(strings.TrimSpace(status)); st != "" {
		q = q.Where("estado = ?", st)
	}
	var out []models.DiskDestruction
	err := q.Order("fecha_registro DESC").Order("id DESC").Find(&out).Error
	return out, errors.Wrap(err, "list destructions")
}

func (s *Service) Get(ctx context.Context, id uint) (*models.DiskDestruction, error) {
	var rec models.DiskDestruction
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load destruction")
	}
	return &rec, nil
}

// Register заводит диск на уничтожение; без ответственного записывается actor.
func (s *Service) Register(ctx context.Context, in Input, actor string) (*models.DiskDestruction, error) {
	serial := strings.TrimSpace(in.DiskSerial)
	if serial == "" {
		return nil, ErrSerialRequired
	}
	status, err := in.status(models.DestructionPending)
	if err != nil {
		return nil, err
	}

	rec := &models.DiskDestruction{
		DiskSerial:        serial,
		DiskBrand:         strings.TrimSpace(in.DiskBrand),
		DiskModel:         strings.TrimSpace(in.DiskModel),
		DiskGB:            optionalGB(in.DiskGB),
		DiskType:          strings.TrimSpace(in.DiskType),
		OriginSerial:      strings.TrimSpace(in.OriginSerial),
		OriginHost:        strings.TrimSpace(in.OriginHost),
		Status:            status,
		ExtractionDate:    s.dates.Normalize(in.ExtractionDate),
		DestructionDate:   s.dates.Normalize(in.DestructionDate),
		Method:            strings.TrimSpace(in.Method),
		CertificateNumber: strings.TrimSpace(in.CertificateNumber),
		CertificateDate:   s.dates.Normalize(in.CertificateDate),
		Responsible:       strings.TrimSpace(in.Responsible),
		Notes:             strings.TrimSpace(in.Notes),
	}
	if rec.Responsible == "" {
		rec.Responsible = actor
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.DiskDestruction{}).Where("disco_serial = ?", serial).Count(&n).Error; err != nil {
			return errors.Wrap(err, "check disk serial")
		}
		if n > 0 {
			return ErrDuplicateSerial
		}
		if err := tx.Create(rec).Error; err != nil {
			return errors.Wrap(err, "create destruction")
		}
		// номер по умолчанию зависит от id, поэтому дописывается после вставки
		if !rec.CompleteCertificate(s.today()) {
			return nil
		}
		return errors.Wrap(tx.Model(rec).Updates(map[string]any{
			"certificado_numero": rec.CertificateNumber,
			"certificado_fecha":  rec.CertificateDate,
		}).Error, "complete certificate")
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"disk": serial, "id": rec.ID, "actor": actor}).Info("disk registered for destruction")
	return rec, nil
}

// Edit меняет всё, кроме серийного номера диска, происхождения и видео.
// В статусе CERTIFICADO пустые номер и дата сертификата не стирают
// прежние, а если их не было, заполняются как в Certify.
func (s *Service) Edit(ctx context.Context, id uint, in Input, actor string) (*models.DiskDestruction, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	status, err := in.status(rec.Status)
	if err != nil {
		return nil, err
	}

	rec.DiskBrand = strings.TrimSpace(in.DiskBrand)
	rec.DiskModel = strings.TrimSpace(in.DiskModel)
	rec.DiskGB = optionalGB(in.DiskGB)
	rec.DiskType = strings.TrimSpace(in.DiskType)
	rec.Status = status
	rec.ExtractionDate = s.dates.Normalize(in.ExtractionDate)
	rec.DestructionDate = s.dates.Normalize(in.DestructionDate)
	rec.Method = strings.TrimSpace(in.Method)
	rec.Responsible = strings.TrimSpace(in.Responsible)
	rec.Notes = strings.TrimSpace(in.Notes)

	number := strings.TrimSpace(in.CertificateNumber)
	date := s.dates.Normalize(in.CertificateDate)
	if status == models.DestructionCertified {
		if number == "" {
			number = rec.CertificateNumber
		}
		if date == "" {
			date = rec.CertificateDate
		}
	}
	rec.CertificateNumber = number
	rec.CertificateDate = date
	rec.CompleteCertificate(s.today())

	if err := s.db.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, errors.Wrapf(err, "update destruction %d", id)
	}
	s.log.WithFields(logrus.Fields{"id": id, "status": status, "actor": actor}).Info("destruction updated")
	return rec, nil
}

// AttachVideo сохраняет видео уничтожения и заменяет предыдущее;
// старый файл удаляется только после успешной записи новой ссылки.
func (s *Service) AttachVideo(ctx context.Context, id uint, filename string, r io.Reader, actor string) (*models.DiskDestruction, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ext, err := filestore.Extension(filename, VideoExtensions)
	if err != nil {
		return nil, err
	}
	stored, err := s.files.Save(r, s.maxVideo, videoDir, rec.DiskSerial, ext)
	if err != nil {
		return nil, err
	}

	oldPath := rec.VideoPath
	rec.VideoName = stored.Name
	rec.VideoPath = stored.Path
	err = s.db.WithContext(ctx).Model(rec).Updates(map[string]any{
		"video_nombre": stored.Name,
		"video_ruta":   stored.Path,
	}).Error
	if err != nil {
		_ = s.files.Remove(stored.Path)
		return nil, errors.Wrapf(err, "attach video to destruction %d", id)
	}

	if err := s.files.Remove(oldPath); err != nil {
		s.log.WithError(err).WithField("path", oldPath).Warn("previous video not removed")
	}
	s.log.WithFields(logrus.Fields{"id": id, "video": stored.Name, "size": stored.Size, "actor": actor}).Info("destruction video attached")
	return rec, nil
}

// VideoPath возвращает путь к видео на диске для выдачи клиенту.
func (s *Service) VideoPath(ctx context.Context, id uint) (string, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !s.files.Exists(rec.VideoPath) {
		return "", ErrNoVideo
	}
	return rec.VideoPath, nil
}

// Certify переводит диск в CERTIFICADO. Пустой номер → CERT-<id из 5 цифр>,
// пустая дата → сегодня.
func (s *Service) Certify(ctx context.Context, id uint, number, date, actor string) (*models.DiskDestruction, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.Status = models.DestructionCertified
	rec.CertificateNumber = strings.TrimSpace(number)
	rec.CertificateDate = s.dates.Normalize(date)
	rec.CompleteCertificate(s.today())

	err = s.db.WithContext(ctx).Model(rec).Updates(map[string]any{
		"estado":             models.DestructionCertified,
		"certificado_numero": rec.CertificateNumber,
		"certificado_fecha":  rec.CertificateDate,
	}).Error
	if err != nil {
		return nil, errors.Wrapf(err, "certify destruction %d", id)
	}

	s.log.WithFields(logrus.Fields{"id": id, "certificate": rec.CertificateNumber, "actor": actor}).Info("disk certified")
	return rec, nil
}

// Delete удаляет запись; видео удаляется без гарантий.
func (s *Service) Delete(ctx context.Context, id uint, actor string) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.files.Remove(rec.VideoPath); err != nil {
		s.log.WithError(err).WithField("path", rec.VideoPath).Warn("destruction video not removed")
	}
	if err := s.db.WithContext(ctx).Delete(&models.DiskDestruction{}, id).Error; err != nil {
		return errors.Wrapf(err, "delete destruction %d", id)
	}
	s.log.WithFields(logrus.Fields{"id": id, "disk": rec.DiskSerial, "actor": actor}).Info("destruction deleted")
	return nil
}

func (s *Service) Summary(ctx context.Context) (dashboard.DestructionSummary, error) {
	var all []models.DiskDestruction
	if err := s.db.WithContext(ctx).Find(&all).Error; err != nil {
		return dashboard.DestructionSummary{}, errors.Wrap(err, "summarize destructions")
	}
	return dashboard.SummarizeDestructions(all), nil
}
