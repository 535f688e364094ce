// Package ws streams symptom checks over a WebSocket so the client can show
// the rule-based result before the model answers.
package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/themobileprof/symptom-checker-be/internal/api/middleware"
	"github.com/themobileprof/symptom-checker-be/internal/checker"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

// Message types sent to the client
const (
	TypeRules               = "rules"
	TypeAnalysis            = "analysis"
	TypeAnalysisUnavailable = "analysis_unavailable"
	TypeFirstMeasures       = "first_measures"
	TypeError               = "error"
	TypeDone                = "done"
)

const maxMessageBytes = 64 << 10

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // origins are enforced by the CORS middleware on /api
	},
}

// CheckHandler handles WebSocket symptom check connections
type CheckHandler struct {
	checker           *checker.Checker
	logger            *logrus.Logger
	messagesPerMinute int
	burst             int
}

// NewCheckHandler creates a new check handler. Each connection may submit
// messagesPerMinute checks with the given burst.
func NewCheckHandler(chk *checker.Checker, logger *logrus.Logger, messagesPerMinute, burst int) *CheckHandler {
	return &CheckHandler{
		checker:           chk,
		logger:            logger,
		messagesPerMinute: messagesPerMinute,
		burst:             burst,
	}
}

// OutgoingMessage represents a message to the client
type OutgoingMessage struct {
	Type    string      `json:"type"`
	Content string      `json:"content,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// HandleCheck upgrades the connection and runs one check per incoming
// symptoms payload.
// GET /ws/check
func (h *CheckHandler) HandleCheck(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageBytes)

	log := h.logger.WithField("request_id", middleware.GetRequestID(c))
	log.Debug("WebSocket connected")

	limiter := middleware.NewWebSocketLimiter(h.messagesPerMinute, h.burst)

	for {
		var in symptoms.Input
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("WebSocket read failed")
			}
			return
		}

		if !limiter.Allow() {
			if err := h.sendError(conn, "Too many requests. Please slow down."); err != nil {
				return
			}
			continue
		}
		if err := in.Validate(); err != nil {
			if err := h.sendError(conn, err.Error()); err != nil {
				return
			}
			continue
		}

		if err := h.runCheck(c, conn, in); err != nil {
			log.WithError(err).Warn("WebSocket write failed")
			return
		}
	}
}

// runCheck streams every stage of one check, then a done message carrying
// the full report. The first write error stops further writes.
func (h *CheckHandler) runCheck(c *gin.Context, conn *websocket.Conn, in symptoms.Input) error {
	var writeErr error
	report := h.checker.Run(c.Request.Context(), in, func(u checker.Update) {
		if writeErr != nil {
			return
		}
		writeErr = conn.WriteJSON(toMessage(u))
	})
	if writeErr != nil {
		return writeErr
	}

	return h.sendDone(conn, report)
}

func toMessage(u checker.Update) OutgoingMessage {
	switch u.Stage {
	case checker.StageAnalysisUnavailable:
		return OutgoingMessage{Type: TypeAnalysisUnavailable, Content: u.Notice, Data: gin.H{"reason": u.Reason}}
	case checker.StageFirstMeasures:
		return OutgoingMessage{Type: TypeFirstMeasures, Content: u.FirstMeasures.Text, Data: u.FirstMeasures}
	case checker.StageAnalysis:
		return OutgoingMessage{Type: TypeAnalysis, Data: u.Analysis}
	default:
		return OutgoingMessage{Type: TypeRules, Data: u.Analysis}
	}
}

// sendError sends an error message to the client
func (h *CheckHandler) sendError(conn *websocket.Conn, message string) error {
	return conn.WriteJSON(OutgoingMessage{
		Type:    TypeError,
		Content: message,
	})
}

// sendDone signals that the check is complete
func (h *CheckHandler) sendDone(conn *websocket.Conn, report *checker.Report) error {
	return conn.WriteJSON(OutgoingMessage{
		Type:    TypeDone,
		Content: report.ID,
		Data:    report,
	})
}
