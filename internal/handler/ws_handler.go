package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"esign-editor-api/internal/dto"
	"esign-editor-api/internal/editor"
	"esign-editor-api/internal/middleware"
	"esign-editor-api/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WSMessage is the envelope for overlay channel messages in both directions.
// Clients send GEOMETRY reports; the server pushes OVERLAY updates whenever
// the overlay transform changes, including the delayed settle resync.
type WSMessage struct {
	Type     string               `json:"type"`
	Geometry *dto.GeometryRequest `json:"geometry,omitempty"`
	Overlay  *editor.OverlayState `json:"overlay,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// WSHandler streams overlay geometry over a websocket so clients do not have
// to poll during scroll and zoom
type WSHandler struct {
	editorService service.EditorService
	jwtSecret     string
	logger        *zap.Logger
}

// NewWSHandler creates a new WSHandler
func NewWSHandler(editorService service.EditorService, jwtSecret string, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		editorService: editorService,
		jwtSecret:     jwtSecret,
		logger:        logger,
	}
}

// HandleOverlay godoc
// @Summary      Overlay websocket
// @Description  Connects to an editor session's overlay channel. The client
// @Description  streams geometry reports up; the server pushes overlay
// @Description  transforms down, including the settle resync after a
// @Description  render-complete.
// @Tags         websocket
// @Param        sessionId path string true "Session ID (UUID)"
// @Param        token query string true "JWT access token"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} response.ErrorResponse "Invalid token"
// @Failure      404 {object} response.ErrorResponse "Session not found"
// @Router       /ws/editor/{sessionId} [get]
func (h *WSHandler) HandleOverlay(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}
	userID, err := middleware.ParseUserID(h.jwtSecret, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	session, err := h.editorService.Session(userID, sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", zap.Error(err))
		return
	}

	h.logger.Info("Overlay websocket connected",
		zap.String("session_id", sessionID.String()),
		zap.String("user_id", userID.String()),
	)

	send := make(chan []byte, 256)

	// Overlay changes from any source (REST geometry reports, the settle
	// timer) are pushed to this connection.
	session.SetOverlayListener(func(state editor.OverlayState) {
		payload, err := json.Marshal(WSMessage{Type: "OVERLAY", Overlay: &state})
		if err != nil {
			return
		}
		select {
		case send <- payload:
		default:
			// slow consumer, drop the frame; the next report supersedes it
		}
	})

	go h.writePump(conn, send)
	h.readPump(conn, session, send)
}

func (h *WSHandler) readPump(conn *websocket.Conn, session *editor.Session, send chan []byte) {
	defer func() {
		session.SetOverlayListener(nil)
		close(send)
		conn.Close()
		h.logger.Info("Overlay websocket disconnected",
			zap.String("session_id", session.ID.String()))
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("Overlay websocket error", zap.Error(err))
			}
			break
		}

		var wsMsg WSMessage
		if err := json.Unmarshal(message, &wsMsg); err != nil {
			h.logger.Warn("Failed to parse overlay message", zap.Error(err))
			continue
		}

		if err := h.handleMessage(session, &wsMsg, send); err != nil {
			h.logger.Warn("Failed to handle overlay message",
				zap.String("type", wsMsg.Type),
				zap.Error(err),
			)
		}
	}
}

func (h *WSHandler) handleMessage(session *editor.Session, wsMsg *WSMessage, send chan []byte) error {
	switch wsMsg.Type {
	case "GEOMETRY":
		if wsMsg.Geometry == nil {
			return sendError(send, "geometry payload required")
		}
		// The overlay listener pushes the recomputed state back, so the
		// return values are not re-sent here.
		if wsMsg.Geometry.RenderComplete {
			session.RenderComplete(wsMsg.Geometry.ToRenderGeometry())
		} else {
			session.ReportGeometry(wsMsg.Geometry.ToRenderGeometry())
		}
		return nil
	default:
		h.logger.Warn("Unknown overlay message type", zap.String("type", wsMsg.Type))
		return nil
	}
}

func sendError(send chan []byte, msg string) error {
	payload, err := json.Marshal(WSMessage{Type: "ERROR", Error: msg})
	if err != nil {
		return err
	}
	select {
	case send <- payload:
	default:
	}
	return nil
}

func (h *WSHandler) writePump(conn *websocket.Conn, send chan []byte) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
