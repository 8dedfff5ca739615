// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_4_vocab_srs/internal/handlers"
	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testServices はハンドラに注入するサービスのモック一式
type testServices struct {
	word   *mocks.WordService
	review *mocks.ReviewService
	study  *mocks.StudyService
	stats  *mocks.StatsService
}

// newTestRouter は本番と同じルーティングにモックサービスを差し込んだルーターを返す
func newTestRouter(t *testing.T) (*chi.Mux, *testServices) {
	t.Helper()
	svc := &testServices{
		word:   mocks.NewWordService(t),
		review: mocks.NewReviewService(t),
		study:  mocks.NewStudyService(t),
		stats:  mocks.NewStatsService(t),
	}
	hs := &handlers.Handlers{
		Word:   handlers.NewWordHandler(svc.word),
		Review: handlers.NewReviewHandler(svc.review),
		Study:  handlers.NewStudyHandler(svc.study),
		Stats:  handlers.NewStatsHandler(svc.stats),
	}
	r := chi.NewRouter()
	hs.Mount(r)
	return r, svc
}

// createRequest はテスト用のリクエストを作る。learnerID が指定されていれば X-Learner-ID を付ける。
func createRequest(t *testing.T, method, url string, body interface{}, learnerID *uuid.UUID) *http.Request {
	t.Helper()
	var reqBodyBytes []byte
	switch b := body.(type) {
	case nil:
	case string:
		reqBodyBytes = []byte(b)
	default:
		var err error
		reqBodyBytes, err = json.Marshal(body)
		require.NoError(t, err, "Failed to marshal request body")
	}

	req := httptest.NewRequest(method, url, bytes.NewBuffer(reqBodyBytes))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if learnerID != nil {
		req.Header.Set(middleware.LearnerIDHeader, learnerID.String())
	}
	return req
}

func executeRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスのコードを取り出す
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
