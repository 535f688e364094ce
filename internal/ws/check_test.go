package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themobileprof/symptom-checker-be/internal/analysis"
	"github.com/themobileprof/symptom-checker-be/internal/checker"
	"github.com/themobileprof/symptom-checker-be/internal/firstmeasures"
	"github.com/themobileprof/symptom-checker-be/internal/logging"
	"github.com/themobileprof/symptom-checker-be/internal/models"
	"github.com/themobileprof/symptom-checker-be/internal/recommend"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(context.Context, symptoms.Input) (*models.AnalysisResult, error) {
	return nil, analysis.ErrTimeout
}

func newTestServer(t *testing.T, messagesPerMinute, burst int) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logging.Discard()
	advisor := firstmeasures.NewAdvisor(nil, firstmeasures.Config{}, logger)
	chk := checker.New(recommend.NewEngine(), failingAnalyzer{}, advisor, logger)

	r := gin.New()
	r.GET("/ws/check", NewCheckHandler(chk, logger, messagesPerMinute, burst).HandleCheck)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/check"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readUntilDone(t *testing.T, conn *websocket.Conn) []OutgoingMessage {
	t.Helper()
	var msgs []OutgoingMessage
	for {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		var msg OutgoingMessage
		require.NoError(t, conn.ReadJSON(&msg))
		msgs = append(msgs, msg)
		if msg.Type == TypeDone || msg.Type == TypeError {
			return msgs
		}
	}
}

func TestHandleCheck_StreamsStages(t *testing.T) {
	conn := newTestServer(t, 60, 5)

	require.NoError(t, conn.WriteJSON(symptoms.Input{QuickSymptoms: []string{"Joint Pain", "Morning Stiffness"}}))
	msgs := readUntilDone(t, conn)

	require.Len(t, msgs, 4)
	assert.Equal(t, TypeRules, msgs[0].Type)
	assert.Equal(t, TypeDone, msgs[3].Type)
	assert.NotEmpty(t, msgs[3].Content)

	types := []string{msgs[1].Type, msgs[2].Type}
	assert.ElementsMatch(t, []string{TypeAnalysisUnavailable, TypeFirstMeasures}, types)

	for _, m := range msgs[1:3] {
		if m.Type == TypeAnalysisUnavailable {
			assert.Contains(t, m.Content, "longer than usual")
			assert.Equal(t, map[string]interface{}{"reason": "timeout"}, m.Data)
		}
	}

	report, ok := msgs[3].Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, msgs[3].Content, report["id"])
	assert.Equal(t, checker.SourceRules, report["source"])
}

func TestHandleCheck_InvalidInput(t *testing.T) {
	conn := newTestServer(t, 60, 5)

	require.NoError(t, conn.WriteJSON(symptoms.Input{Age: -1}))
	msgs := readUntilDone(t, conn)

	require.Len(t, msgs, 1)
	assert.Equal(t, TypeError, msgs[0].Type)

	// The connection stays usable.
	require.NoError(t, conn.WriteJSON(symptoms.Input{Symptoms: "cough"}))
	msgs = readUntilDone(t, conn)
	assert.Equal(t, TypeDone, msgs[len(msgs)-1].Type)
}

func TestHandleCheck_RateLimited(t *testing.T) {
	conn := newTestServer(t, 1, 1)

	require.NoError(t, conn.WriteJSON(symptoms.Input{Symptoms: "cough"}))
	msgs := readUntilDone(t, conn)
	assert.Equal(t, TypeDone, msgs[len(msgs)-1].Type)

	require.NoError(t, conn.WriteJSON(symptoms.Input{Symptoms: "cough"}))
	msgs = readUntilDone(t, conn)
	require.Len(t, msgs, 1)
	assert.Equal(t, TypeError, msgs[0].Type)
	assert.Contains(t, msgs[0].Content, "slow down")
}
