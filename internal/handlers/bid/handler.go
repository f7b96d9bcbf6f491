package bid

import (
	"net/http"
	"sitepro/infras/otel"
	"sitepro/internal/domains/bid/model/dto"
	"sitepro/internal/domains/bid/service"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	"sitepro/shared/validator"
	"sitepro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bid
	otel    otel.Otel
}

func New(service service.Bid, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/projects/{projectId}/bids", handler.SubmitBid)
	router.Get("/bids/{id}", handler.GetBidByID)
	router.Post("/bids/{id}/transition", handler.TransitionBid)
}

// SubmitBid submits a bid to join a project.
// @Summary Submit a bid
// @Description Submit a bid to join a project. The bidder type follows the caller's role.
// @Tags Bid
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param request body dto.CreateBidRequest true "Create Bid Request"
// @Success 201 {object} response.Data[dto.BidResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects/{projectId}/bids [post]
// @Security BearerAuth
func (handler *Handler) SubmitBid(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBid")
	defer scope.End()

	req := dto.CreateBidRequest{}

	if err := validator.Validate(http.MaxBytesReader(writer, request.Body, constant.RequestMaxBodyBytes), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	actor := gDto.ActorFromContext(ctx)

	res, err := handler.service.Submit(ctx, chi.URLParam(request, constant.RequestParamProjectID), actor, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit bid")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bid submitted by user " + actor.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBidByID retrieves a bid. Contact details are masked unless the caller may see them.
// @Summary Get a bid by ID
// @Tags Bid
// @Produce json
// @Param id path string true "Bid ID"
// @Success 200 {object} response.Data[dto.BidResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bids/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBidByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBidByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	res, err := handler.service.Get(ctx, id, gDto.ActorFromContext(ctx).ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bid_id", id).Msg("failed to get bid")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// TransitionBid approves, rejects or withdraws a bid.
// @Summary Transition a bid
// @Description APPROVE and REJECT need a project manager, WITHDRAW the bidder. Only SUBMITTED bids move.
// @Tags Bid
// @Accept json
// @Produce json
// @Param id path string true "Bid ID"
// @Param request body dto.TransitionBidRequest true "Transition Bid Request"
// @Success 200 {object} response.Data[dto.BidResponse]
// @Failure 400 {object} response.Error "InvalidState or InvalidAction"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bids/{id}/transition [post]
// @Security BearerAuth
func (handler *Handler) TransitionBid(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionBid")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.TransitionBidRequest{}

	if err := validator.Validate(http.MaxBytesReader(writer, request.Body, constant.RequestMaxBodyBytes), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	actor := gDto.ActorFromContext(ctx)

	res, err := handler.service.Transition(ctx, id, actor, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bid_id", id).Str("action", string(req.Action)).Msg("failed to transition bid")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bid " + string(req.Action) + " by user " + actor.ID)

	response.WithJSON(writer, http.StatusOK, res)
}
