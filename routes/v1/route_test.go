package route

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ShopOrder/config/environment"
	"ShopOrder/middleware"
	"ShopOrder/models"
	"ShopOrder/services"
	"ShopOrder/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channelSecret = "test-secret"

type pushRecorder struct {
	mu     sync.Mutex
	status int
	texts  []string
}

func (p *pushRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var req struct {
		Messages []struct {
			Text string `json:"text"`
		} `json:"messages"`
	}
	body, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(body, &req)
	for _, m := range req.Messages {
		p.texts = append(p.texts, m.Text)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(p.status)
	_, _ = w.Write([]byte(`{}`))
}

type testApp struct {
	router *gin.Engine
	store  *store.MemoryStore
	push   *pushRecorder
}

func setupApp(t *testing.T, jwtSecret string) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	push := &pushRecorder{status: http.StatusOK}
	server := httptest.NewServer(push)
	t.Cleanup(server.Close)

	st := store.NewMemoryStore([]models.MenuRow{
		{Category: "A", Name: "X", Price: "50", Size: "", Open: "true"},
		{Category: "A", Name: "Y", Price: "30", Size: "S:20/L:30", Open: "true"},
		{Category: "B", Name: "Z", Price: "10", Open: "false"},
	})

	cfg := &environment.Config{
		CORSOrigins: []string{"*"},
		Line:        environment.LineConfig{ChannelSecret: channelSecret, ChannelAccessToken: "token", UserID: "Ushop", APIBaseURL: server.URL},
		Admin:       environment.AdminConfig{JWTSecret: jwtSecret},
	}
	messenger, err := services.NewLineService(cfg.Line.APIBaseURL, cfg.Line.ChannelAccessToken, cfg.Line.UserID)
	require.NoError(t, err)

	return &testApp{router: NewRouter(cfg, st, messenger), store: st, push: push}
}

func (a *testApp) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func TestGetMenu(t *testing.T) {
	app := setupApp(t, "")
	app.store.SetRaw(store.CellInterval, "20分鐘")

	rr := app.do(http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var menu models.Menu
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &menu))
	require.Len(t, menu.Categories, 1)
	assert.Equal(t, "A", menu.Categories[0].Name)
	assert.Equal(t, 20, menu.Interval)
	assert.True(t, menu.Opened)
	assert.Equal(t, services.FixedOptions, menu.Seasoning)
	assert.Equal(t, []models.SizeOption{{Label: "S", Price: 20}, {Label: "L", Price: 30}}, menu.Categories[0].Items[1].Sizes)
}

func TestGetMenuUpstreamFailure(t *testing.T) {
	app := setupApp(t, "")
	app.store.Err = errors.New("quota exceeded")

	rr := app.do(http.MethodGet, "/menu", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "quota exceeded", body["details"])
}

func TestGetMenuBadSheetData(t *testing.T) {
	app := setupApp(t, "")
	app.store.SetRows([]models.MenuRow{{Category: "A", Name: "X", Price: "abc", Open: true}})

	rr := app.do(http.MethodGet, "/menu", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, decode(t, rr)["details"], "price")
}

func TestIntervalEndpoints(t *testing.T) {
	app := setupApp(t, "")

	rr := app.do(http.MethodPost, "/settings/time", `{"interval":30}`, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, true, decode(t, rr)["success"])

	rr = app.do(http.MethodGet, "/settings/time", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(30), decode(t, rr)["interval"])

	rr = app.do(http.MethodPost, "/settings/time", `{"interval":0}`, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestIntervalValidation(t *testing.T) {
	app := setupApp(t, "")

	for _, body := range []string{`{"interval":-1}`, `{"interval":"30"}`, `{"interval":2.5}`, `{}`, `not json`} {
		rr := app.do(http.MethodPost, "/settings/time", body, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, false, decode(t, rr)["success"], body)
	}
	assert.Equal(t, 0, app.store.Writes())
}

func TestOpenEndpoints(t *testing.T) {
	app := setupApp(t, "")

	rr := app.do(http.MethodGet, "/settings/open", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, decode(t, rr)["opened"])

	rr = app.do(http.MethodPost, "/settings/open", `{"opened":false}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = app.do(http.MethodGet, "/settings/open", "", nil)
	assert.Equal(t, false, decode(t, rr)["opened"])

	for _, body := range []string{`{"opened":"true"}`, `{"opened":1}`, `{}`} {
		rr = app.do(http.MethodPost, "/settings/open", body, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestSettingsWritesRequireAdminToken(t *testing.T) {
	app := setupApp(t, "jwt-secret")

	rr := app.do(http.MethodPost, "/settings/open", `{"opened":true}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = app.do(http.MethodGet, "/settings/open", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	token, err := middleware.SignAdminToken("jwt-secret", "owner", time.Hour)
	require.NoError(t, err)
	rr = app.do(http.MethodPost, "/settings/open", `{"opened":true}`, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateOrder(t *testing.T) {
	app := setupApp(t, "")
	order := `{
		"customer": {"name": "王"},
		"items": [{"name": "雞排", "quantity": 2}],
		"seasoning": {"spiciness": "小辣"},
		"total": 100
	}`

	rr := app.do(http.MethodPost, "/orders", order, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, true, decode(t, rr)["success"])

	require.Len(t, app.push.texts, 1)
	text := app.push.texts[0]
	assert.Contains(t, text, "名稱：王")
	assert.Contains(t, text, "雞排 x2")
	assert.Contains(t, text, "🌶️辣度：小辣")
	assert.Contains(t, text, "試算金額：$100")
}

func TestCreateOrderValidation(t *testing.T) {
	app := setupApp(t, "")

	for _, body := range []string{
		`{"customer":{},"items":[{"name":"X","quantity":1}],"seasoning":{"spiciness":"小辣"}}`,
		`{"customer":{"name":"A"},"items":[],"seasoning":{"spiciness":"小辣"}}`,
		`{"customer":{"name":"A"},"items":[{"name":"X","quantity":0}],"seasoning":{"spiciness":"小辣"}}`,
		`{"customer":{"name":"A"},"items":[{"name":"X","quantity":1}],"seasoning":{}}`,
	} {
		rr := app.do(http.MethodPost, "/orders", body, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
	assert.Empty(t, app.push.texts)
}

func TestCreateOrderPushFailure(t *testing.T) {
	app := setupApp(t, "")
	app.push.status = http.StatusUnauthorized

	rr := app.do(http.MethodPost, "/orders",
		`{"customer":{"name":"A"},"items":[{"name":"X","quantity":1}],"seasoning":{"spiciness":"小辣"},"total":"10"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["details"], "401")
}

func TestSendToLine(t *testing.T) {
	app := setupApp(t, "")

	rr := app.do(http.MethodPost, "/api/send-to-line", `{"order":"raw text"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"raw text"}, app.push.texts)

	rr = app.do(http.MethodPost, "/api/send-to-line", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWebhook(t *testing.T) {
	app := setupApp(t, "")
	body := `{"destination":"Ubot","events":[{"type":"message","source":{"type":"user","userId":"Uboss"}}]}`
	sig := services.ComputeSignature(channelSecret, []byte(body))

	rr := app.do(http.MethodPost, "/webhook", body, map[string]string{services.SignatureHeader: sig})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = app.do(http.MethodGet, "/settings/admin", "", nil)
	assert.Equal(t, "Uboss", decode(t, rr)["userId"])
}

func TestWebhookRejections(t *testing.T) {
	app := setupApp(t, "")
	body := `{"events":[]}`

	rr := app.do(http.MethodPost, "/webhook", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "missing signature", decode(t, rr)["error"])

	rr = app.do(http.MethodPost, "/webhook", body, map[string]string{services.SignatureHeader: "bm9wZQ=="})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid signature", decode(t, rr)["error"])

	broken := `{"events":`
	rr = app.do(http.MethodPost, "/webhook", broken,
		map[string]string{services.SignatureHeader: services.ComputeSignature(channelSecret, []byte(broken))})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHealthz(t *testing.T) {
	app := setupApp(t, "")
	rr := app.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, bytes.Contains(rr.Body.Bytes(), []byte("ok")))
}
