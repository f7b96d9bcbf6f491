package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sitepro/config"
	"sitepro/infras/otel/mocks"
	auditModel "sitepro/internal/domains/audit/model"
	machineMocks "sitepro/internal/domains/machine/mocks"
	machineModel "sitepro/internal/domains/machine/model"
	notifModel "sitepro/internal/domains/notification/model"
	rentalMocks "sitepro/internal/domains/rental/mocks"
	"sitepro/internal/domains/rental/model"
	"sitepro/internal/domains/rental/model/dto"
	"sitepro/internal/domains/rental/service"
	orchestratorMocks "sitepro/internal/orchestrator/mocks"
	cacheMocks "sitepro/shared/cache/mocks"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	"sitepro/shared/failure"
	"sitepro/shared/timezone"
)

var (
	vendor   = gDto.Actor{ID: "vendor-1", Name: "PT Alat Berat", Role: constant.RoleVendor}
	other    = gDto.Actor{ID: "vendor-2", Name: "CV Lain", Role: constant.RoleVendor}
	pm       = gDto.Actor{ID: "pm-1", Name: "Dana", Role: constant.RoleProjectManager}
	operator = gDto.Actor{ID: "op-1", Name: "Budi", Role: constant.RoleSupervisor}
)

func rentalIn(status model.Status) model.Rental {
	return model.Rental{
		ID:                 "rental-1",
		MachineID:          "machine-1",
		MachineCode:        "EXC-01",
		VendorID:           vendor.ID,
		RequestedBy:        pm.ID,
		ProjectID:          "project-1",
		ProjectName:        "Jalan Tol",
		DailyRate:          1000,
		RequestedDays:      5,
		Status:             status,
		IsAvailableForRent: true,
	}
}

type fixture struct {
	repo    *rentalMocks.MockRental
	machine *machineMocks.MockMachine
	orch    *orchestratorMocks.MockOrchestrator
	cache   *cacheMocks.MockRedisCache
	svc     service.Rental
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:    rentalMocks.NewMockRental(ctrl),
		machine: machineMocks.NewMockMachine(ctrl),
		orch:    orchestratorMocks.NewMockOrchestrator(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.machine, f.orch, f.cache, &config.Config{}, mocks.NewOtel())
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestRentalService_Transition(t *testing.T) {
	tests := []struct {
		name      string
		rental    func() model.Rental
		actor     gDto.Actor
		req       dto.TransitionRentalRequest
		setupMock func(t *testing.T, f fixture)
		check     func(t *testing.T, res dto.RentalResponse)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name:   "approve falls back to the daily rate",
			rental: func() model.Rental { return rentalIn(model.StatusRequested) },
			actor:  vendor,
			req:    dto.TransitionRentalRequest{Action: model.ActionApprove},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
						assert.Equal(t, model.StatusApproved, fields[model.FieldStatus])
						assert.Equal(t, 1000.0, fields[model.FieldAgreedRate])
						assert.Equal(t, 5000.0, fields[model.FieldEstimatedCost])

						_, args := filter.GetWhereClause()
						assert.Equal(t, string(model.StatusRequested), args["expected_status"])

						return 1, nil
					})
				f.orch.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ns ...notifModel.Notification) {
					assert.Equal(t, pm.ID, ns[0].UserID)
					assert.Equal(t, notifModel.TypeRentalApproved, ns[0].Type)
				})
				f.orch.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, res dto.RentalResponse) {
				assert.Equal(t, model.StatusApproved, res.Status)
				assert.Equal(t, 1000.0, *res.AgreedRate)
				assert.Equal(t, 5000.0, *res.EstimatedCost)
			},
		},
		{
			name: "approve prefers the payload rate and defaults requested days",
			rental: func() model.Rental {
				r := rentalIn(model.StatusRequested)
				r.ProposedRate = float64Ptr(900)
				r.RequestedDays = 0

				return r
			},
			actor: vendor,
			req:   dto.TransitionRentalRequest{Action: model.ActionApprove, AgreedRate: float64Ptr(950)},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
						assert.Equal(t, config.DefaultRequestedDays, fields[model.FieldRequestedDays])

						return 1, nil
					})
				f.orch.EXPECT().Notify(gomock.Any(), gomock.Any())
				f.orch.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, res dto.RentalResponse) {
				assert.Equal(t, 950.0, *res.AgreedRate)
				assert.Equal(t, 950.0, *res.EstimatedCost)
				assert.Equal(t, 1, res.RequestedDays)
			},
		},
		{
			name: "approve uses the proposed rate",
			rental: func() model.Rental {
				r := rentalIn(model.StatusRequested)
				r.ProposedRate = float64Ptr(900)

				return r
			},
			actor: vendor,
			req:   dto.TransitionRentalRequest{Action: model.ActionApprove},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.orch.EXPECT().Notify(gomock.Any(), gomock.Any())
				f.orch.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, res dto.RentalResponse) {
				assert.Equal(t, 4500.0, *res.EstimatedCost)
			},
		},
		{
			name:   "reject with the default reason",
			rental: func() model.Rental { return rentalIn(model.StatusRequested) },
			actor:  vendor,
			req:    dto.TransitionRentalRequest{Action: model.ActionReject},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.orch.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ns ...notifModel.Notification) {
					assert.Equal(t, notifModel.TypeRentalRejected, ns[0].Type)
				})
				f.orch.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, res dto.RentalResponse) {
				assert.Equal(t, model.StatusCancelled, res.Status)
				assert.Equal(t, config.DefaultCancellationReason, *res.CancellationReason)
			},
		},
		{
			name: "requester assigns an operator",
			rental: func() model.Rental {
				r := rentalIn(model.StatusApproved)
				r.AgreedRate = float64Ptr(1000)

				return r
			},
			actor: pm,
			req: dto.TransitionRentalRequest{
				Action:             model.ActionAssign,
				AssignedToUserID:   stringPtr(operator.ID),
				AssignedToUserName: stringPtr(operator.Name),
			},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.orch.EXPECT().SyncMachine(gomock.Any(), "rental-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, change machineModel.StatusChange) bool {
						assert.Equal(t, machineModel.StatusAssigned, change.Status)
						assert.Equal(t, "project-1", *change.CurrentProjectID)
						assert.Equal(t, operator.ID, *change.CurrentAssignedTo)

						return true
					})
				f.orch.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Do(func(_ context.Context, ns ...notifModel.Notification) {
					assert.Equal(t, vendor.ID, ns[0].UserID)
					assert.Equal(t, operator.ID, ns[1].UserID)
				})
				f.orch.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, res dto.RentalResponse) {
				assert.Equal(t, model.StatusAssigned, res.Status)
				assert.Equal(t, pm.ID, *res.AssignedBy)
				assert.NotNil(t, res.AssignedAt)
			},
		},
		{
			name:   "operator starts",
			rental: func() model.Rental { return assigned() },
			actor:  operator,
			req:    dto.TransitionRentalRequest{Action: model.ActionStart},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.orch.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, res dto.RentalResponse) {
				assert.Equal(t, model.StatusInUse, res.Status)
				assert.NotNil(t, res.ActualStartDate)
			},
		},
		{
			name:   "complete after three days",
			rental: func() model.Rental { return inUse(operator.ID) },
			actor:  vendor,
			req:    dto.TransitionRentalRequest{Action: model.ActionComplete},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
						assert.Equal(t, 3000.0, fields[model.FieldActualCost])
						assert.Equal(t, false, fields[model.FieldIsAvailableForRent])

						return 1, nil
					})
				f.orch.EXPECT().SyncMachine(gomock.Any(), "rental-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, change machineModel.StatusChange) bool {
						assert.Equal(t, machineModel.StatusAvailable, change.Status)
						assert.Nil(t, change.CurrentProjectID)
						assert.Nil(t, change.CurrentAssignedTo)

						return true
					})
				f.orch.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Do(func(_ context.Context, ns ...notifModel.Notification) {
					var users []string
					for _, n := range ns {
						users = append(users, n.UserID)
						assert.Equal(t, notifModel.TypeRentalCompleted, n.Type)
					}

					assert.Equal(t, []string{vendor.ID, pm.ID, operator.ID}, users)
				})
				f.orch.EXPECT().Audit(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry auditModel.Entry) {
					assert.Equal(t, "IN_USE", entry.Changes.Before["status"])
					assert.Equal(t, "COMPLETED", entry.Changes.After["status"])
				})
			},
			check: func(t *testing.T, res dto.RentalResponse) {
				assert.Equal(t, model.StatusCompleted, res.Status)
				assert.Equal(t, 3000.0, *res.ActualCost)
				assert.False(t, res.IsAvailableForRent)
			},
		},
		{
			name:   "complete without an assignee notifies fewer users",
			rental: func() model.Rental { return inUse("") },
			actor:  pm,
			req:    dto.TransitionRentalRequest{Action: model.ActionComplete},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.orch.EXPECT().SyncMachine(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
				f.orch.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any())
				f.orch.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, res dto.RentalResponse) {
				assert.Equal(t, model.StatusCompleted, res.Status)
			},
		},
		{
			name: "complete without a start leaves actual cost unset",
			rental: func() model.Rental {
				r := inUse(operator.ID)
				r.ActualStartDate = nil

				return r
			},
			actor: vendor,
			req:   dto.TransitionRentalRequest{Action: model.ActionComplete},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
						_, ok := fields[model.FieldActualCost]
						assert.False(t, ok)

						return 1, nil
					})
				f.orch.EXPECT().SyncMachine(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
				f.orch.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
				f.orch.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, res dto.RentalResponse) {
				assert.Nil(t, res.ActualCost)
			},
		},
		{
			name:     "another vendor cannot approve",
			rental:   func() model.Rental { return rentalIn(model.StatusRequested) },
			actor:    other,
			req:      dto.TransitionRentalRequest{Action: model.ActionApprove},
			wantKind: failure.KindForbidden,
			wantErr:  true,
		},
		{
			name:     "only the requester assigns",
			rental:   func() model.Rental { return rentalIn(model.StatusApproved) },
			actor:    vendor,
			req:      dto.TransitionRentalRequest{Action: model.ActionAssign},
			wantKind: failure.KindForbidden,
			wantErr:  true,
		},
		{
			name:     "outsiders cannot start",
			rental:   func() model.Rental { return assigned() },
			actor:    other,
			req:      dto.TransitionRentalRequest{Action: model.ActionStart},
			wantKind: failure.KindForbidden,
			wantErr:  true,
		},
		{
			name:     "cannot start before assignment",
			rental:   func() model.Rental { return rentalIn(model.StatusApproved) },
			actor:    vendor,
			req:      dto.TransitionRentalRequest{Action: model.ActionStart},
			wantKind: failure.KindInvalidState,
			wantErr:  true,
		},
		{
			name:     "completed is terminal",
			rental:   func() model.Rental { return rentalIn(model.StatusCompleted) },
			actor:    vendor,
			req:      dto.TransitionRentalRequest{Action: model.ActionComplete},
			wantKind: failure.KindInvalidState,
			wantErr:  true,
		},
		{
			name:     "unknown action",
			rental:   func() model.Rental { return rentalIn(model.StatusRequested) },
			actor:    vendor,
			req:      dto.TransitionRentalRequest{Action: "CANCEL"},
			wantKind: failure.KindInvalidAction,
			wantErr:  true,
		},
		{
			name:   "concurrent transition loses the guard",
			rental: func() model.Rental { return rentalIn(model.StatusRequested) },
			actor:  vendor,
			req:    dto.TransitionRentalRequest{Action: model.ActionApprove},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantKind: failure.KindInvalidState,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.rental(), nil)

			if tt.setupMock != nil {
				tt.setupMock(t, f)
			}

			res, err := f.svc.Transition(context.Background(), "rental-1", tt.actor, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestRentalService_Transition_NotFound(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Rental{}, nil)

	_, err := f.svc.Transition(context.Background(), "missing", vendor, dto.TransitionRentalRequest{Action: model.ActionApprove})

	assert.True(t, failure.Is(err, failure.KindNotFound))
}

func TestRentalService_LogUsage(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LogUsageRequest
		setupMock func(t *testing.T, f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "logs hours",
			req:  dto.LogUsageRequest{HoursUsed: 7.5, Notes: "excavation"},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().LogUsage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, usage model.UsageLog) (bool, error) {
					assert.Equal(t, "rental-1", usage.RentalID)
					assert.Equal(t, 7.5, usage.HoursUsed)
					assert.Equal(t, operator.ID, usage.LoggedBy)
					assert.False(t, usage.Date.IsZero())

					return true, nil
				})
				f.orch.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "rental not found",
			req:  dto.LogUsageRequest{HoursUsed: 1},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().LogUsage(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantKind: failure.KindNotFound,
			wantErr:  true,
		},
		{
			name:      "hours must be positive",
			req:       dto.LogUsageRequest{HoursUsed: 0},
			setupMock: func(t *testing.T, f fixture) {},
			wantKind:  failure.KindBadRequest,
			wantErr:   true,
		},
		{
			name: "store failure",
			req:  dto.LogUsageRequest{HoursUsed: 2},
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().LogUsage(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantKind: failure.KindServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(t, f)

			err := f.svc.LogUsage(context.Background(), "rental-1", operator, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRentalService_Request(t *testing.T) {
	machine := machineModel.Machine{ID: "machine-1", Code: "EXC-01", VendorID: vendor.ID, DailyRate: 1000, Status: machineModel.StatusAvailable}
	req := dto.CreateRentalRequest{MachineID: "machine-1", ProjectID: "project-1", ProjectName: "Jalan Tol", RequestedDays: 5}

	tests := []struct {
		name      string
		actor     gDto.Actor
		setupMock func(t *testing.T, f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name:  "project manager requests",
			actor: pm,
			setupMock: func(t *testing.T, f fixture) {
				f.machine.EXPECT().Get(gomock.Any(), gomock.Any()).Return(machine, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r model.Rental) error {
					assert.Equal(t, model.StatusRequested, r.Status)
					assert.Equal(t, vendor.ID, r.VendorID)
					assert.Equal(t, 1000.0, r.DailyRate)
					assert.Equal(t, pm.ID, r.RequestedBy)

					return nil
				})
				f.orch.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ns ...notifModel.Notification) {
					assert.Equal(t, vendor.ID, ns[0].UserID)
					assert.Equal(t, notifModel.TypeRentalRequested, ns[0].Type)
				})
				f.orch.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
		},
		{
			name:      "vendors do not request",
			actor:     vendor,
			setupMock: func(t *testing.T, f fixture) {},
			wantKind:  failure.KindForbidden,
			wantErr:   true,
		},
		{
			name:  "machine not found",
			actor: pm,
			setupMock: func(t *testing.T, f fixture) {
				f.machine.EXPECT().Get(gomock.Any(), gomock.Any()).Return(machineModel.Machine{}, nil)
			},
			wantKind: failure.KindNotFound,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(t, f)

			res, err := f.svc.Request(context.Background(), tt.actor, req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusRequested, res.Status)
		})
	}
}

func TestRentalService_Get(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "rental:get:rental-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, v any) error {
				v.(*dto.RentalResponse).ID = "rental-1"

				return nil
			})

		res, err := f.svc.Get(context.Background(), "rental-1")

		assert.NoError(t, err)
		assert.Equal(t, "rental-1", res.ID)
	})

	t.Run("cache miss", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rentalIn(model.StatusRequested), nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Get(context.Background(), "rental-1")

		assert.NoError(t, err)
		assert.Equal(t, "EXC-01", res.MachineCode)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Rental{}, nil)

		_, err := f.svc.Get(context.Background(), "rental-1")

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func assigned() model.Rental {
	r := rentalIn(model.StatusAssigned)
	r.AgreedRate = float64Ptr(1000)
	r.AssignedBy = stringPtr(pm.ID)
	r.AssignedToUserID = stringPtr(operator.ID)

	return r
}

func inUse(assignee string) model.Rental {
	r := rentalIn(model.StatusInUse)
	r.AgreedRate = float64Ptr(1000)

	if assignee != "" {
		r.AssignedToUserID = stringPtr(assignee)
	}

	started := timezone.Now().Add(-(3*24*time.Hour - time.Hour))
	r.ActualStartDate = &started

	return r
}

func float64Ptr(v float64) *float64 {
	return &v
}

func stringPtr(s string) *string {
	return &s
}
