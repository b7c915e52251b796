package api

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"burnout/history"
	"burnout/models"
	"burnout/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedPredictor 预先写入按时间递增的记录
func seedPredictor(t *testing.T, scores ...float64) *service.Predictor {
	p, path := setupPredictor(t, fixedExtractor(0.5))
	store := history.NewCSVStore(path)
	base := time.Date(2024, 8, 1, 21, 0, 0, 0, time.Local)
	for i, score := range scores {
		rec := models.NewPredictionRecord("记录", 6, 7, score, base.Add(time.Duration(i)*24*time.Hour))
		require.NoError(t, store.Append(context.Background(), &rec))
	}
	return p
}

func getJSON(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHistoryHandler_List(t *testing.T) {
	p := seedPredictor(t, 10, 20, 30)

	router := gin.New()
	router.GET("/history", NewHistoryHandler(p).List)

	w := getJSON(router, "/history")
	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total"])
	list := data["list"].([]interface{})
	assert.Equal(t, float64(10), list[0].(map[string]interface{})["burnout_score"])
}

func TestHistoryHandler_List_Recent(t *testing.T) {
	p := seedPredictor(t, 10, 20, 30)

	router := gin.New()
	router.GET("/history", NewHistoryHandler(p).List)

	w := getJSON(router, "/history?recent=2")
	assert.Equal(t, 200, w.Code)
	list := decodeResponse(t, w)["data"].(map[string]interface{})["list"].([]interface{})
	require.Len(t, list, 2)
	assert.Equal(t, float64(30), list[0].(map[string]interface{})["burnout_score"])
	assert.Equal(t, float64(20), list[1].(map[string]interface{})["burnout_score"])

	w = getJSON(router, "/history?recent=abc")
	assert.Equal(t, 400, w.Code)
}

func TestHistoryHandler_List_Empty(t *testing.T) {
	p, _ := setupPredictor(t, fixedExtractor(0.5))

	router := gin.New()
	router.GET("/history", NewHistoryHandler(p).List)

	w := getJSON(router, "/history")
	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total"])
	assert.Empty(t, data["list"])
}

func TestHistoryHandler_Summary(t *testing.T) {
	p := seedPredictor(t, 10, 20, 30, 80, 90, 100)

	router := gin.New()
	router.GET("/history/summary", NewHistoryHandler(p).Summary)

	w := getJSON(router, "/history/summary")
	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(6), data["count"])
	assert.InDelta(t, 55, data["mean"], 1e-9)
	assert.Equal(t, true, data["has_trend"])
	assert.InDelta(t, 70, data["trend"], 1e-9)
	assert.Equal(t, "rising", data["trend_label"])
	assert.Equal(t, float64(3), data["high_risk_days"])
	assert.Equal(t, float64(21), data["most_common_hour"])
}
