package notification

import (
	"net/http"
	"sitepro/config"
	"sitepro/infras/otel"
	"sitepro/infras/socket"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	"sitepro/shared/failure"
	"sitepro/transport/http/response"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const readLimit = 512

type Handler struct {
	hub      socket.Hub
	otel     otel.Otel
	config   *config.Config
	upgrader websocket.Upgrader
}

func New(hub socket.Hub, otel otel.Otel, cfg *config.Config) Handler {
	handler := Handler{
		hub:    hub,
		otel:   otel,
		config: cfg,
	}

	handler.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     handler.checkOrigin,
	}

	return handler
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/notifications/stream", handler.Stream)
}

// An empty allow list accepts every origin.
func (handler *Handler) checkOrigin(request *http.Request) bool {
	allowed := handler.config.Websocket.AllowedOrigins
	if len(allowed) == 0 {
		return true
	}

	origin := request.Header.Get("Origin")

	return origin == constant.Empty || slices.Contains(allowed, origin) || slices.Contains(allowed, constant.Asterix)
}

// Stream upgrades the request to a websocket that receives the caller's notifications.
// @Summary Stream notifications
// @Description Opens a websocket. Each notification addressed to the caller is pushed as a JSON text frame.
// @Tags Notification
// @Param token query string false "Access token when the Authorization header cannot be set"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} response.Error
// @Router /v1/notifications/stream [get]
// @Security BearerAuth
func (handler *Handler) Stream(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Stream")
	defer scope.End()

	userID := gDto.ActorFromContext(ctx).ID
	if userID == constant.Empty {
		response.WithError(writer, failure.Unauthorized("missing user identity"))

		return
	}

	conn, err := handler.upgrader.Upgrade(writer, request, nil)
	if err != nil {
		// the upgrader has already written the error response
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", userID).Msg("failed to upgrade websocket")

		return
	}

	unregister := handler.hub.Register(userID, conn)

	scope.AddEvent("Notification stream opened for user " + userID)

	go handler.keepAlive(userID, conn, unregister)
}

// keepAlive reads until the peer goes away, pinging on an interval shorter than the pong deadline.
func (handler *Handler) keepAlive(userID string, conn *websocket.Conn, unregister func()) {
	pongWait := time.Duration(handler.config.PongWaitSeconds()) * time.Second
	pingPeriod := pongWait * 9 / 10

	done := make(chan struct{})

	defer func() {
		close(done)
		unregister()
		_ = conn.Close()
	}()

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingPeriod)); err != nil {
					log.Debug().Err(err).Str("user_id", userID).Msg("failed to ping websocket client")

					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("user_id", userID).Msg("websocket closed unexpectedly")
			}

			return
		}
	}
}
