package rental

import (
	"net/http"
	"sitepro/infras/otel"
	"sitepro/internal/domains/rental/model/dto"
	"sitepro/internal/domains/rental/service"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	"sitepro/shared/validator"
	"sitepro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rental
	otel    otel.Otel
}

func New(service service.Rental, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rentals", func(r chi.Router) {
		r.Post("/", handler.RequestRental)
		r.Get("/{id}", handler.GetRentalByID)
		r.Post("/{id}/transition", handler.TransitionRental)
		r.Patch("/{id}/usage", handler.LogUsage)
	})
}

// RequestRental asks a vendor to rent out one of their machines.
// @Summary Request a machine rental
// @Tags Rental
// @Accept json
// @Produce json
// @Param request body dto.CreateRentalRequest true "Create Rental Request"
// @Success 201 {object} response.Data[dto.RentalResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals [post]
// @Security BearerAuth
func (handler *Handler) RequestRental(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestRental")
	defer scope.End()

	req := dto.CreateRentalRequest{}

	if err := validator.Validate(http.MaxBytesReader(writer, request.Body, constant.RequestMaxBodyBytes), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	actor := gDto.ActorFromContext(ctx)

	res, err := handler.service.Request(ctx, actor, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("machine_id", req.MachineID).Msg("failed to request rental")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rental requested by user " + actor.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetRentalByID retrieves a rental.
// @Summary Get a rental by ID
// @Tags Rental
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} response.Data[dto.RentalResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRentalByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("rental_id", id).Msg("failed to get rental")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// TransitionRental moves a rental through its lifecycle.
// @Summary Transition a rental
// @Description APPROVE and REJECT belong to the vendor, ASSIGN to the requester. START and COMPLETE follow ASSIGN.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Param request body dto.TransitionRentalRequest true "Transition Rental Request"
// @Success 200 {object} response.Data[dto.RentalResponse]
// @Failure 400 {object} response.Error "InvalidState or InvalidAction"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id}/transition [post]
// @Security BearerAuth
func (handler *Handler) TransitionRental(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionRental")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.TransitionRentalRequest{}

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
		log.Error().Err(err).Str("rental_id", id).Str("action", string(req.Action)).Msg("failed to transition rental")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rental " + string(req.Action) + " by user " + actor.ID)

	response.WithJSON(writer, http.StatusOK, res)
}

// LogUsage records hours a rented machine worked.
// @Summary Log rental usage
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Param request body dto.LogUsageRequest true "Log Usage Request"
// @Success 201 {object} response.Message "Usage logged successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id}/usage [patch]
// @Security BearerAuth
func (handler *Handler) LogUsage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LogUsage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.LogUsageRequest{}

	if err := validator.Validate(http.MaxBytesReader(writer, request.Body, constant.RequestMaxBodyBytes), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.LogUsage(ctx, id, gDto.ActorFromContext(ctx), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("rental_id", id).Msg("failed to log rental usage")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rental usage logged")

	response.WithMessage(writer, http.StatusCreated, "Usage logged successfully")
}
