package handlers

import (
	"net/http"

	"refresh-tracker/internal/conformity"
	"refresh-tracker/internal/destruction"
	"refresh-tracker/internal/equipment"
	"refresh-tracker/internal/filestore"
	"refresh-tracker/internal/ingest"
	"refresh-tracker/internal/inventory"
	"refresh-tracker/internal/lifecycle"
	"refresh-tracker/internal/repotentiation"
	"refresh-tracker/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type apiError struct {
	status  int
	message string
}

// сообщения для пользователя; порядок не важен, ошибки не вкладываются друг в друга
var knownErrors = []struct {
	err error
	apiError
}{
	{ingest.ErrFormat, apiError{http.StatusBadRequest, "El archivo debe tener formato .csv"}},
	{ingest.ErrEncoding, apiError{http.StatusBadRequest, "No se pudo decodificar el archivo. Usa UTF-8."}},
	{ingest.ErrNoRecords, apiError{http.StatusBadRequest, "No se encontraron registros validos en el CSV."}},
	{ingest.ErrUnknownEntity, apiError{http.StatusNotFound, "Tipo de carga desconocido"}},

	{filestore.ErrExtension, apiError{http.StatusBadRequest, "Tipo de archivo no permitido"}},
	{filestore.ErrTooLarge, apiError{http.StatusRequestEntityTooLarge, "El archivo excede el limite permitido"}},
	{filestore.ErrEmpty, apiError{http.StatusBadRequest, "El archivo está vacío"}},

	{equipment.ErrNotFound, apiError{http.StatusNotFound, "Equipo no encontrado"}},

	{inventory.ErrNotFound, apiError{http.StatusNotFound, "Componente no encontrado"}},
	{inventory.ErrDuplicateSerial, apiError{http.StatusConflict, "Ya existe un componente con ese serial"}},
	{inventory.ErrSerialRequired, apiError{http.StatusBadRequest, "El serial es obligatorio"}},
	{inventory.ErrInvalidCapacity, apiError{http.StatusBadRequest, "Capacidad invalida"}},
	{inventory.ErrInvalidStatus, apiError{http.StatusBadRequest, "Estado invalido"}},
	{inventory.ErrUnknownKind, apiError{http.StatusNotFound, "Tipo de componente desconocido"}},

	{lifecycle.ErrComponentNotFound, apiError{http.StatusNotFound, "Componente no encontrado"}},
	{lifecycle.ErrUnknownKind, apiError{http.StatusNotFound, "Tipo de componente desconocido"}},
	{lifecycle.ErrEquipmentSerialNeeded, apiError{http.StatusBadRequest, "Debes indicar el serial del equipo"}},

	{repotentiation.ErrNotFound, apiError{http.StatusNotFound, "Registro no encontrado"}},
	{repotentiation.ErrEquipmentRequired, apiError{http.StatusBadRequest, "Debes seleccionar un equipo"}},
	{repotentiation.ErrDateRequired, apiError{http.StatusBadRequest, "La fecha de repotenciación es obligatoria"}},

	{destruction.ErrNotFound, apiError{http.StatusNotFound, "Registro no encontrado"}},
	{destruction.ErrSerialRequired, apiError{http.StatusBadRequest, "El serial del disco es obligatorio"}},
	{destruction.ErrDuplicateSerial, apiError{http.StatusConflict, "Ya existe un registro para este disco"}},
	{destruction.ErrInvalidStatus, apiError{http.StatusBadRequest, "Estado invalido"}},
	{destruction.ErrNoVideo, apiError{http.StatusNotFound, "Video no encontrado"}},

	{conformity.ErrNotFound, apiError{http.StatusNotFound, "Acta no encontrada"}},
	{conformity.ErrEquipmentRequired, apiError{http.StatusBadRequest, "Debes seleccionar un equipo"}},
	{conformity.ErrFileMissing, apiError{http.StatusNotFound, "El archivo no existe en el servidor"}},

	{users.ErrInvalidCredentials, apiError{http.StatusUnauthorized, "Usuario o contraseña incorrectos"}},
	{users.ErrUsernameRequired, apiError{http.StatusBadRequest, "El usuario es obligatorio"}},
	{users.ErrUsernameTaken, apiError{http.StatusConflict, "El usuario ya existe"}},
	{users.ErrPasswordTooShort, apiError{http.StatusBadRequest, "La contraseña debe tener al menos 8 caracteres"}},
	{users.ErrPasswordMismatch, apiError{http.StatusBadRequest, "Las contraseñas no coinciden"}},
	{users.ErrInvalidRole, apiError{http.StatusBadRequest, "Rol invalido"}},
}

func lookupError(err error) (apiError, bool) {
	for _, k := range knownErrors {
		if errors.Is(err, k.err) {
			return k.apiError, true
		}
	}
	return apiError{}, false
}

// fail отвечает известной ошибкой или 500; 500 логируется с контекстом запроса.
func (h *Handler) fail(c *gin.Context, err error) {
	if known, ok := lookupError(err); ok {
		c.JSON(known.status, gin.H{"error": known.message})
		return
	}
	h.log.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"actor":  actor(c),
	}).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
}
