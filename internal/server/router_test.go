package server

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"refresh-tracker/internal/config"
	"refresh-tracker/internal/database"
	"refresh-tracker/internal/handlers"
	"refresh-tracker/internal/reports"
	"refresh-tracker/internal/testutil"
	"refresh-tracker/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminPassword = "Admin123!"

type testApp struct {
	t      *testing.T
	router *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SessionSecret: "test-secret",
		DateOrder:     config.DateOrderDayFirst,
		UploadsDir:    t.TempDir(),
		MaxActaSize:   1 << 20,
		MaxVideoSize:  1 << 20,
		MetricsPath:   "/metrics",
	}
	log := testutil.Logger()
	db := testutil.NewDB(t)
	require.NoError(t, database.SeedAdmin(db, "admin", adminPassword, log))

	svc := NewServices(cfg, db, log)
	_, err := svc.Users.Create(context.Background(), users.NewUser{
		Username: "viewer", Password: "viewer-pass", Confirm: "viewer-pass",
	}, "test")
	require.NoError(t, err)

	return &testApp{t: t, router: NewRouter(cfg, db, handlers.New(svc, log), log)}
}

func (a *testApp) do(req *http.Request, cookie string) *httptest.ResponseRecorder {
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(username, password string) string {
	a.t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := a.do(req, "")
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())

	cookies := w.Result().Cookies()
	require.NotEmpty(a.t, cookies)
	return cookies[0].Name + "=" + cookies[0].Value
}

func (a *testApp) postForm(path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req, cookie)
}

func (a *testApp) upload(path, field, filename, body string, cookie string) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(a.t, err)
	_, err = fw.Write([]byte(body))
	require.NoError(a.t, err)
	require.NoError(a.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return a.do(req, cookie)
}

func (a *testApp) get(path, cookie string) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil), cookie)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthAndAuthGate(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	assert.Equal(t, http.StatusUnauthorized, app.get("/api/summary", "").Code)
	assert.Equal(t, http.StatusUnauthorized, app.get("/inventario/ram", "").Code)

	w = app.get("/", "")
	assert.Equal(t, false, decode(t, w)["authenticated"])
}

func TestLoginRolesAndLogout(t *testing.T) {
	app := newTestApp(t)

	w := app.postForm("/login", url.Values{"username": {"admin"}, "password": {"wrong"}}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	viewer := app.login("viewer", "viewer-pass")
	w = app.get("/me", viewer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "standard", decode(t, w)["role"])

	w = app.postForm("/inventario/ram", url.Values{"serial_num": {"R-1"}, "capacidad_gb": {"8"}}, viewer)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, http.StatusForbidden, app.get("/admin/usuarios", viewer).Code)

	admin := app.login("admin", adminPassword)
	w = app.postForm("/admin/usuarios", url.Values{
		"username": {"tech"}, "password": {"short"}, "confirm_password": {"short"},
	}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "La contraseña debe tener al menos 8 caracteres", decode(t, w)["error"])

	w = app.postForm("/admin/usuarios", url.Values{
		"username": {"tech"}, "password": {"tech-pass1"}, "confirm_password": {"tech-pass1"}, "role": {"admin"},
	}, admin)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = app.postForm("/logout", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	cleared := w.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Equal(t, http.StatusUnauthorized, app.get("/me", cleared[0].Name+"="+cleared[0].Value).Code)
}

func TestComponentLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	admin := app.login("admin", adminPassword)

	w := app.postForm("/inventario/ram", url.Values{
		"serial_num": {"R-1"}, "marca": {"Kingston"}, "capacidad_gb": {"16"}, "tipo": {"DDR4"},
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := int(decode(t, w)["id"].(float64))
	path := "/inventario/ram/" + strconv.Itoa(id)

	w = app.postForm("/inventario/ram", url.Values{"serial_num": {"R-1"}, "capacidad_gb": {"16"}}, admin)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = app.postForm(path+"/asignar", url.Values{"equipo_serial": {"PC-1"}}, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	unit := decode(t, w)
	assert.Equal(t, "INSTALADO", unit["estado"])
	assert.Equal(t, "PC-1", unit["equipo_serial"])

	w = app.postForm(path+"/desasignar", url.Values{"notas": {"retiro"}}, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "POR_ASIGNAR", decode(t, w)["estado"])

	w = app.get(path+"/historial", admin)
	require.Equal(t, http.StatusOK, w.Code)
	var history []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "DESINSTALACION", history[0]["accion"])

	assert.Equal(t, http.StatusNotFound, app.get("/inventario/ram/999", admin).Code)
	assert.Equal(t, http.StatusBadRequest, app.get("/inventario/ram/abc", admin).Code)
}

func TestBulkUploadSummaryAndExport(t *testing.T) {
	app := newTestApp(t)
	admin := app.login("admin", adminPassword)

	w := app.get("/carga-masiva/avances/plantilla", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "avances_template.csv")
	tmpl, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "id", tmpl[0][0])

	assert.Equal(t, http.StatusNotFound, app.get("/carga-masiva/otro/plantilla", admin).Code)

	w = app.upload("/carga-masiva/avances", "file", "avances.txt", "id\n1\n", admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := "ID,Nombre Completo,Serial,Categoría,Estado,Fecha Estado\n" +
		"1,Ana,PC-1,REPOTENCIACION,programado,15/01/2025\n" +
		"2,Luis,PC-2,UPGRADE,REALIZADO,2025-01-16\n" +
		",Sin id,PC-3,UPGRADE,PENDIENTE,\n"
	w = app.upload("/carga-masiva/avances", "file", "avances.csv", body, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode(t, w)
	result := res["resultado"].(map[string]any)
	assert.Equal(t, float64(2), result["inserted"])
	assert.Len(t, res["errores"], 1)

	w = app.get("/api/summary", admin)
	require.Equal(t, http.StatusOK, w.Code)
	sum := decode(t, w)
	assert.Equal(t, float64(2), sum["total"])

	w = app.get("/api/summary?fase=FASE_1", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total"])

	w = app.get("/reportes/exportar/dashboard", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "dashboard_export_")
	rows, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, reports.EquipmentHeader, rows[0])

	w = app.get("/reportes", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "fase_counts")
}

func TestDestructionAndConformityOverHTTP(t *testing.T) {
	app := newTestApp(t)
	admin := app.login("admin", adminPassword)

	w := app.upload("/carga-masiva/avances", "file", "a.csv", "id,serial_num,hostname,nombre_completo\n1,PC-1,HOST-1,Ana\n", admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.postForm("/destruccion", url.Values{"disco_serial": {"HDD-1"}}, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := strconv.Itoa(int(decode(t, w)["id"].(float64)))

	w = app.upload("/destruccion/"+id+"/video", "video", "clip.mp4", "video-bytes", admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = app.get("/destruccion/"+id+"/video", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "video-bytes", w.Body.String())

	w = app.postForm("/destruccion/"+id+"/certificar", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CERTIFICADO", decode(t, w)["registro"].(map[string]any)["estado"])

	// акт без оборудования в системе
	w = uploadActa(t, app, "PC-404", admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Equipo no encontrado", decode(t, w)["error"])

	w = uploadActa(t, app, "PC-1", admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	actaID := strconv.Itoa(int(decode(t, w)["id"].(float64)))

	w = app.get("/actas/"+actaID+"/ver", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.4", w.Body.String())

	w = app.get("/actas/api/summary", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["equipos_con_acta"])
}

func uploadActa(t *testing.T, app *testApp, serial, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("equipo_serial", serial))
	fw, err := mw.CreateFormFile("archivo", "acta.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/actas", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return app.do(req, cookie)
}
